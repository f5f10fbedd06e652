package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/constants"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/services/verification"
)

// TransactionRepo stores verification transactions in MongoDB, one document
// per transaction with its fields embedded.
type TransactionRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
	now     func() time.Time
}

// NewTransactionRepo creates a transaction repository on db
func NewTransactionRepo(cfg *models.Config, db *mongo.Database) *TransactionRepo {
	timeout := cfg.Mongo.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TransactionRepo{
		coll:    db.Collection(constants.CollectionVerification),
		timeout: timeout,
		now:     time.Now,
	}
}

// EnsureIndexes creates the TTL index that purges transactions at expireAt
func (r *TransactionRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expireAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0).SetName("expireAt_ttl"),
	})
	if err != nil {
		return fmt.Errorf("failed to create verification indexes: %w", err)
	}
	return nil
}

// CreateTransaction inserts a new transaction for formID
func (r *TransactionRepo) CreateTransaction(ctx context.Context, formID string, fields []models.VerificationField, expireAt time.Time) (*models.VerificationTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	txn := &models.VerificationTransaction{
		ID:        uuid.New().String(),
		FormID:    formID,
		ExpireAt:  expireAt.UTC(),
		Fields:    fields,
		CreatedAt: r.now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, txn); err != nil {
		return nil, verification.WrapDatabase(fmt.Errorf("failed to insert transaction: %w", err))
	}
	return txn, nil
}

// GetTransaction loads a transaction by id
func (r *TransactionRepo) GetTransaction(ctx context.Context, transactionID string) (*models.VerificationTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var txn models.VerificationTransaction
	err := r.coll.FindOne(ctx, bson.M{"_id": transactionID}).Decode(&txn)
	if err != nil {
		return nil, r.mapError(err, "failed to get transaction")
	}
	return &txn, nil
}

// GetTransactionMetadata returns the secret-free view of a live transaction
func (r *TransactionRepo) GetTransactionMetadata(ctx context.Context, transactionID string) (*models.TransactionMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"_id": transactionID, "expireAt": bson.M{"$gt": r.now()}}
	opts := options.FindOne().SetProjection(bson.M{"formId": 1, "expireAt": 1})

	var metadata models.TransactionMetadata
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&metadata); err != nil {
		return nil, r.mapError(err, "failed to get transaction metadata")
	}
	return &metadata, nil
}

// InstallHash sets a fresh OTP hash on the field, restarts its retry count
// and binds signedData as the token released on successful verification.
func (r *TransactionRepo) InstallHash(ctx context.Context, transactionID, fieldID, hashedOtp, signedData string) (*models.VerificationTransaction, error) {
	update := bson.M{"$set": bson.M{
		"fields.$.hashedOtp":         hashedOtp,
		"fields.$.hashCreatedAt":     r.now().UTC(),
		"fields.$.hashRetries":       0,
		"fields.$.signedData":        nil,
		"fields.$.pendingSignedData": signedData,
	}}
	return r.updateField(ctx, transactionID, bson.M{"_id": fieldID}, update, options.After)
}

// IncrementRetries atomically adds one to the field's retry count
func (r *TransactionRepo) IncrementRetries(ctx context.Context, transactionID, fieldID string) (*models.VerificationTransaction, error) {
	update := bson.M{"$inc": bson.M{"fields.$.hashRetries": 1}}
	return r.updateField(ctx, transactionID, bson.M{"_id": fieldID}, update, options.Before)
}

// MarkVerified records the verification of the hash generation hashedOtp
func (r *TransactionRepo) MarkVerified(ctx context.Context, transactionID, fieldID, hashedOtp, signedData string) (*models.VerificationTransaction, error) {
	update := bson.M{"$set": bson.M{
		"fields.$.hashedOtp":         nil,
		"fields.$.signedData":        signedData,
		"fields.$.pendingSignedData": nil,
	}}
	return r.updateField(ctx, transactionID, bson.M{"_id": fieldID, "hashedOtp": hashedOtp}, update, options.After)
}

// ResetField clears every piece of OTP state on the field
func (r *TransactionRepo) ResetField(ctx context.Context, transactionID, fieldID string) (*models.VerificationTransaction, error) {
	update := bson.M{"$set": bson.M{
		"fields.$.hashedOtp":         nil,
		"fields.$.hashCreatedAt":     nil,
		"fields.$.hashRetries":       0,
		"fields.$.signedData":        nil,
		"fields.$.pendingSignedData": nil,
	}}
	return r.updateField(ctx, transactionID, bson.M{"_id": fieldID}, update, options.After)
}

// updateField applies update to the single field matched by elemMatch in a
// live transaction.
func (r *TransactionRepo) updateField(ctx context.Context, transactionID string, elemMatch, update bson.M, returnDoc options.ReturnDocument) (*models.VerificationTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{
		"_id":      transactionID,
		"expireAt": bson.M{"$gt": r.now()},
		"fields":   bson.M{"$elemMatch": elemMatch},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(returnDoc)

	var txn models.VerificationTransaction
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&txn); err != nil {
		return nil, r.mapError(err, "failed to update verification field")
	}
	return &txn, nil
}

func (r *TransactionRepo) mapError(err error, msg string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return verification.ErrTransactionNotFound
	}
	return verification.WrapDatabase(fmt.Errorf("%s: %w", msg, err))
}
