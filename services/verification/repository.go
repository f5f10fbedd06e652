package verification

import (
	"context"
	"time"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/opengovsg/FormSG-sub009/services/verification TransactionRepo,FormRepo,SmsQuotaRepo

// TransactionRepo persists verification transactions. Every per-field
// mutation is a single atomic update of the transaction document and
// returns ErrTransactionNotFound when the transaction is absent or expired.
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, formID string, fields []models.VerificationField, expireAt time.Time) (*models.VerificationTransaction, error)
	// GetTransaction returns the stored document, even if it is past expireAt
	// but not yet purged. Callers must check expiry.
	GetTransaction(ctx context.Context, transactionID string) (*models.VerificationTransaction, error)
	GetTransactionMetadata(ctx context.Context, transactionID string) (*models.TransactionMetadata, error)

	InstallHash(ctx context.Context, transactionID, fieldID, hashedOtp, signedData string) (*models.VerificationTransaction, error)
	// IncrementRetries returns the document as it was before the increment.
	IncrementRetries(ctx context.Context, transactionID, fieldID string) (*models.VerificationTransaction, error)
	// MarkVerified stores signedData and clears the outstanding hash, only
	// while that hash still equals hashedOtp.
	MarkVerified(ctx context.Context, transactionID, fieldID, hashedOtp, signedData string) (*models.VerificationTransaction, error)
	ResetField(ctx context.Context, transactionID, fieldID string) (*models.VerificationTransaction, error)
}

// FormRepo reads form definitions
type FormRepo interface {
	GetFormByID(ctx context.Context, formID string) (*models.Form, error)
}

// SmsQuotaRepo counts SMS sent on the default credentials per form admin
type SmsQuotaRepo interface {
	GetSmsCount(ctx context.Context, adminID string) (int64, error)
	IncrementSmsCount(ctx context.Context, adminID string) (int64, error)
}
