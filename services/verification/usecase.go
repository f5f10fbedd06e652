package verification

import (
	"context"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/opengovsg/FormSG-sub009/services/verification VerificationUC,OtpHasher,OtpGenerator

// VerificationUC drives the lifecycle of verification transactions
type VerificationUC interface {
	CreateTransaction(ctx context.Context, formID string) (*models.CreateTransactionResponse, error)
	GetTransactionMetadata(ctx context.Context, transactionID string) (*models.TransactionMetadata, error)
	ResetField(ctx context.Context, transactionID, fieldID string) error
	IssueOtp(ctx context.Context, transactionID, fieldID, answer string) error
	VerifyOtp(ctx context.Context, transactionID, fieldID, otp string) (string, error)
}

// OtpHasher hashes and compares OTPs
type OtpHasher interface {
	Hash(ctx context.Context, secret string) (string, error)
	Compare(ctx context.Context, secret, hashed string) (bool, error)
}

// OtpGenerator creates OTPs paired with their hash
type OtpGenerator interface {
	GenerateWithHash(ctx context.Context) (*models.OtpEnvelope, error)
}
