package usecase

import (
	"context"
	"time"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/services/verification"
)

// DefaultTransactionLifetime applies when no lifetime is configured
const DefaultTransactionLifetime = 4 * time.Hour

// TransactionFactory derives verification transactions from form definitions
type TransactionFactory struct {
	repo     verification.TransactionRepo
	lifetime time.Duration
	now      func() time.Time
}

// NewTransactionFactory creates a factory persisting through repo
func NewTransactionFactory(repo verification.TransactionRepo, lifetime time.Duration) *TransactionFactory {
	if lifetime <= 0 {
		lifetime = DefaultTransactionLifetime
	}
	return &TransactionFactory{repo: repo, lifetime: lifetime, now: time.Now}
}

// VerifiableFields keeps the verification-enabled fields of a supported
// type, in form order.
func VerifiableFields(formFields []models.FormField) ([]models.VerificationField, error) {
	fields := make([]models.VerificationField, 0, len(formFields))
	seen := make(map[string]struct{}, len(formFields))
	for _, f := range formFields {
		if !f.FieldType.IsVerifiable() || !f.IsVerifiable {
			continue
		}
		if _, dup := seen[f.ID]; dup {
			return nil, verification.ErrDuplicateFieldID
		}
		seen[f.ID] = struct{}{}
		fields = append(fields, models.VerificationField{
			ID:          f.ID,
			FieldType:   f.FieldType,
			HashRetries: 0,
		})
	}
	return fields, nil
}

// CreateFromFormFields persists a transaction for the form's verifiable
// fields. It returns nil without touching the store when there is nothing
// to verify.
func (f *TransactionFactory) CreateFromFormFields(ctx context.Context, formID string, formFields []models.FormField) (*models.VerificationTransaction, error) {
	fields, err := VerifiableFields(formFields)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return f.repo.CreateTransaction(ctx, formID, fields, f.now().Add(f.lifetime))
}
