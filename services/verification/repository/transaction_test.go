package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/services/verification"
)

const testNamespace = "formsg.verification"

func toBsonD(t *testing.T, v interface{}) bson.D {
	raw, err := bson.Marshal(v)
	require.NoError(t, err)

	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func strPtr(s string) *string {
	return &s
}

func newTestTransactionRepo(mt *mtest.T, now time.Time) *TransactionRepo {
	return &TransactionRepo{
		coll:    mt.Coll,
		timeout: time.Second,
		now:     func() time.Time { return now },
	}
}

func sampleTransaction(now time.Time) *models.VerificationTransaction {
	created := now.Add(-time.Minute).UTC().Truncate(time.Millisecond)
	return &models.VerificationTransaction{
		ID:       "txn-1",
		FormID:   "form-1",
		ExpireAt: now.Add(4 * time.Hour).UTC().Truncate(time.Millisecond),
		Fields: []models.VerificationField{
			{
				ID:                "field-email",
				FieldType:         models.FieldTypeEmail,
				HashedOtp:         strPtr("$2a$10$hash"),
				HashCreatedAt:     &created,
				HashRetries:       2,
				PendingSignedData: strPtr("token"),
			},
			{ID: "field-mobile", FieldType: models.FieldTypeMobile},
		},
		CreatedAt: now.UTC().Truncate(time.Millisecond),
	}
}

func findAndModifyResponse(doc interface{}) bson.D {
	return bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: doc}}
}

// filterOf extracts the query filter of the last findAndModify command
func filterOf(mt *mtest.T) bson.Raw {
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	return evt.Command.Lookup("query").Document()
}

func TestTransactionRepo_CreateTransaction(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	now := time.Now()

	mt.Run("success", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, now)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		fields := []models.VerificationField{{ID: "f1", FieldType: models.FieldTypeEmail}}
		txn, err := repo.CreateTransaction(context.Background(), "form-1", fields, now.Add(4*time.Hour))

		require.NoError(t, err)
		assert.NotEmpty(t, txn.ID)
		assert.Equal(t, "form-1", txn.FormID)
		assert.Equal(t, fields, txn.Fields)
		assert.True(t, txn.ExpireAt.Equal(now.Add(4*time.Hour)))
	})

	mt.Run("write error is a database error", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, now)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		txn, err := repo.CreateTransaction(context.Background(), "form-1", nil, now.Add(time.Hour))

		assert.Nil(t, txn)
		assert.True(t, errors.Is(err, verification.ErrDatabase))
	})
}

func TestTransactionRepo_GetTransaction(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	now := time.Now()

	mt.Run("found", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, now)
		expected := sampleTransaction(now)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch, toBsonD(t, expected)))

		txn, err := repo.GetTransaction(context.Background(), "txn-1")

		require.NoError(t, err)
		assert.Equal(t, expected.ID, txn.ID)
		assert.Equal(t, expected.FormID, txn.FormID)
		require.Len(t, txn.Fields, 2)
		assert.Equal(t, "$2a$10$hash", *txn.Fields[0].HashedOtp)
		assert.Equal(t, 2, txn.Fields[0].HashRetries)
		assert.Nil(t, txn.Fields[1].HashedOtp)
		assert.Nil(t, txn.Fields[1].HashCreatedAt)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, now)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch))

		txn, err := repo.GetTransaction(context.Background(), "missing")

		assert.Nil(t, txn)
		assert.Equal(t, verification.ErrTransactionNotFound, err)
	})

	mt.Run("driver error", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, now)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "boom",
		}))

		_, err := repo.GetTransaction(context.Background(), "txn-1")

		assert.True(t, errors.Is(err, verification.ErrDatabase))
		assert.False(t, errors.Is(err, verification.ErrTransactionNotFound))
	})
}

func TestTransactionRepo_GetTransactionMetadata(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	now := time.Now()

	mt.Run("found", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, now)
		expireAt := now.Add(time.Hour).UTC().Truncate(time.Millisecond)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "txn-1"},
			{Key: "formId", Value: "form-1"},
			{Key: "expireAt", Value: expireAt},
		}))

		metadata, err := repo.GetTransactionMetadata(context.Background(), "txn-1")

		require.NoError(t, err)
		assert.Equal(t, "txn-1", metadata.TransactionID)
		assert.Equal(t, "form-1", metadata.FormID)
		assert.True(t, metadata.ExpireAt.Equal(expireAt))
	})

	mt.Run("expired or missing", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, now)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch))

		metadata, err := repo.GetTransactionMetadata(context.Background(), "txn-1")

		assert.Nil(t, metadata)
		assert.Equal(t, verification.ErrTransactionNotFound, err)

		evt := mt.GetStartedEvent()
		require.NotNil(t, evt)
		filter := evt.Command.Lookup("filter").Document()
		_, err = filter.LookupErr("expireAt", "$gt")
		assert.NoError(t, err)
	})
}

func TestTransactionRepo_InstallHash(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	now := time.Now()

	mt.Run("success", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, now)
		updated := sampleTransaction(now)
		updated.Fields[1].HashedOtp = strPtr("$2a$10$new")
		updated.Fields[1].PendingSignedData = strPtr("signed")
		mt.AddMockResponses(findAndModifyResponse(toBsonD(t, updated)))

		txn, err := repo.InstallHash(context.Background(), "txn-1", "field-mobile", "$2a$10$new", "signed")

		require.NoError(t, err)
		field, ok := txn.GetField("field-mobile")
		require.True(t, ok)
		assert.Equal(t, "$2a$10$new", *field.HashedOtp)

		filter := filterOf(mt)
		assert.Equal(t, "txn-1", filter.Lookup("_id").StringValue())
		assert.Equal(t, "field-mobile", filter.Lookup("fields", "$elemMatch", "_id").StringValue())
	})

	mt.Run("transaction gone", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, now)
		mt.AddMockResponses(findAndModifyResponse(nil))

		txn, err := repo.InstallHash(context.Background(), "txn-1", "field-mobile", "h", "s")

		assert.Nil(t, txn)
		assert.Equal(t, verification.ErrTransactionNotFound, err)
	})
}

func TestTransactionRepo_IncrementRetries(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	now := time.Now()

	mt.Run("returns pre-increment document", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, now)
		mt.AddMockResponses(findAndModifyResponse(toBsonD(t, sampleTransaction(now))))

		txn, err := repo.IncrementRetries(context.Background(), "txn-1", "field-email")

		require.NoError(t, err)
		field, _ := txn.GetField("field-email")
		assert.Equal(t, 2, field.HashRetries)

		evt := mt.GetStartedEvent()
		require.NotNil(t, evt)
		assert.False(t, evt.Command.Lookup("new").Boolean())
		inc := evt.Command.Lookup("update", "$inc", "fields.$.hashRetries")
		assert.Equal(t, int32(1), inc.Int32())
	})

	mt.Run("driver error", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, now)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    91,
			Name:    "ShutdownInProgress",
			Message: "shutting down",
		}))

		_, err := repo.IncrementRetries(context.Background(), "txn-1", "field-email")

		assert.True(t, errors.Is(err, verification.ErrDatabase))
	})
}

func TestTransactionRepo_MarkVerified(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	now := time.Now()

	mt.Run("conditional on outstanding hash", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, now)
		verified := sampleTransaction(now)
		verified.Fields[0].HashedOtp = nil
		verified.Fields[0].PendingSignedData = nil
		verified.Fields[0].SignedData = strPtr("token")
		mt.AddMockResponses(findAndModifyResponse(toBsonD(t, verified)))

		txn, err := repo.MarkVerified(context.Background(), "txn-1", "field-email", "$2a$10$hash", "token")

		require.NoError(t, err)
		field, _ := txn.GetField("field-email")
		assert.Equal(t, "token", *field.SignedData)
		assert.Nil(t, field.HashedOtp)

		filter := filterOf(mt)
		assert.Equal(t, "$2a$10$hash", filter.Lookup("fields", "$elemMatch", "hashedOtp").StringValue())
	})

	mt.Run("hash replaced concurrently", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, now)
		mt.AddMockResponses(findAndModifyResponse(nil))

		_, err := repo.MarkVerified(context.Background(), "txn-1", "field-email", "$2a$10$old", "token")

		assert.Equal(t, verification.ErrTransactionNotFound, err)
	})
}

func TestTransactionRepo_ResetField(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	now := time.Now()

	mt.Run("success", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, now)
		reset := sampleTransaction(now)
		reset.Fields[0] = models.VerificationField{ID: "field-email", FieldType: models.FieldTypeEmail}
		mt.AddMockResponses(findAndModifyResponse(toBsonD(t, reset)))

		txn, err := repo.ResetField(context.Background(), "txn-1", "field-email")

		require.NoError(t, err)
		field, _ := txn.GetField("field-email")
		assert.Nil(t, field.HashedOtp)
		assert.Nil(t, field.HashCreatedAt)
		assert.Nil(t, field.SignedData)
		assert.Equal(t, 0, field.HashRetries)

		evt := mt.GetStartedEvent()
		require.NotNil(t, evt)
		set := evt.Command.Lookup("update", "$set").Document()
		assert.Equal(t, int32(0), set.Lookup("fields.$.hashRetries").Int32())
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, now)
		mt.AddMockResponses(findAndModifyResponse(nil))

		_, err := repo.ResetField(context.Background(), "txn-1", "field-email")

		assert.Equal(t, verification.ErrTransactionNotFound, err)
	})
}

func TestTransactionRepo_EnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates ttl index", func(mt *mtest.T) {
		repo := newTestTransactionRepo(mt, time.Now())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(t, repo.EnsureIndexes(context.Background()))

		evt := mt.GetStartedEvent()
		require.NotNil(t, evt)
		index := evt.Command.Lookup("indexes").Array().Index(0).Value().Document()
		assert.Equal(t, int32(0), index.Lookup("expireAfterSeconds").Int32())
	})
}
