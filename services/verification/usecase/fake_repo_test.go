package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/services/verification"
)

// memoryTxnRepo is an in-memory TransactionRepo with the same per-field
// atomicity as the Mongo repository.
type memoryTxnRepo struct {
	mu    sync.Mutex
	seq   int
	now   func() time.Time
	store map[string]*models.VerificationTransaction
}

func newMemoryTxnRepo(now func() time.Time) *memoryTxnRepo {
	return &memoryTxnRepo{now: now, store: make(map[string]*models.VerificationTransaction)}
}

func cloneTxn(txn *models.VerificationTransaction) *models.VerificationTransaction {
	c := *txn
	c.Fields = append([]models.VerificationField(nil), txn.Fields...)
	return &c
}

func (r *memoryTxnRepo) CreateTransaction(_ context.Context, formID string, fields []models.VerificationField, expireAt time.Time) (*models.VerificationTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	txn := &models.VerificationTransaction{
		ID:        fmt.Sprintf("txn-%d", r.seq),
		FormID:    formID,
		ExpireAt:  expireAt,
		Fields:    append([]models.VerificationField(nil), fields...),
		CreatedAt: r.now(),
	}
	r.store[txn.ID] = txn
	return cloneTxn(txn), nil
}

func (r *memoryTxnRepo) GetTransaction(_ context.Context, id string) (*models.VerificationTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	txn, ok := r.store[id]
	if !ok {
		return nil, verification.ErrTransactionNotFound
	}
	return cloneTxn(txn), nil
}

func (r *memoryTxnRepo) GetTransactionMetadata(_ context.Context, id string) (*models.TransactionMetadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	txn, ok := r.store[id]
	if !ok || txn.IsExpired(r.now()) {
		return nil, verification.ErrTransactionNotFound
	}
	return &models.TransactionMetadata{TransactionID: txn.ID, FormID: txn.FormID, ExpireAt: txn.ExpireAt}, nil
}

func (r *memoryTxnRepo) update(id, fieldID string, match func(*models.VerificationField) bool, mutate func(*models.VerificationField), returnBefore bool) (*models.VerificationTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	txn, ok := r.store[id]
	if !ok || txn.IsExpired(r.now()) {
		return nil, verification.ErrTransactionNotFound
	}
	field, ok := txn.GetField(fieldID)
	if !ok || (match != nil && !match(field)) {
		return nil, verification.ErrTransactionNotFound
	}
	before := cloneTxn(txn)
	mutate(field)
	if returnBefore {
		return before, nil
	}
	return cloneTxn(txn), nil
}

func (r *memoryTxnRepo) InstallHash(_ context.Context, id, fieldID, hashedOtp, signedData string) (*models.VerificationTransaction, error) {
	now := r.now()
	return r.update(id, fieldID, nil, func(f *models.VerificationField) {
		f.HashedOtp = &hashedOtp
		f.HashCreatedAt = &now
		f.HashRetries = 0
		f.SignedData = nil
		f.PendingSignedData = &signedData
	}, false)
}

func (r *memoryTxnRepo) IncrementRetries(_ context.Context, id, fieldID string) (*models.VerificationTransaction, error) {
	return r.update(id, fieldID, nil, func(f *models.VerificationField) {
		f.HashRetries++
	}, true)
}

func (r *memoryTxnRepo) MarkVerified(_ context.Context, id, fieldID, hashedOtp, signedData string) (*models.VerificationTransaction, error) {
	match := func(f *models.VerificationField) bool {
		return f.HashedOtp != nil && *f.HashedOtp == hashedOtp
	}
	return r.update(id, fieldID, match, func(f *models.VerificationField) {
		f.HashedOtp = nil
		f.SignedData = &signedData
		f.PendingSignedData = nil
	}, false)
}

func (r *memoryTxnRepo) ResetField(_ context.Context, id, fieldID string) (*models.VerificationTransaction, error) {
	return r.update(id, fieldID, nil, func(f *models.VerificationField) {
		*f = models.VerificationField{ID: f.ID, FieldType: f.FieldType}
	}, false)
}

func (r *memoryTxnRepo) field(id, fieldID string) models.VerificationField {
	r.mu.Lock()
	defer r.mu.Unlock()
	field, _ := r.store[id].GetField(fieldID)
	return *field
}
