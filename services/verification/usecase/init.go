package usecase

import (
	"time"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/services/verification"
)

// VerificationUC implements the verification transaction engine. It holds no
// per-transaction state; every mutation is delegated to the repository.
type VerificationUC struct {
	cfg       *models.Config
	txnRepo   verification.TransactionRepo
	formRepo  verification.FormRepo
	quotaRepo verification.SmsQuotaRepo
	gw        verification.VerificationGW
	hasher    verification.OtpHasher
	generator verification.OtpGenerator
	factory   *TransactionFactory
	now       func() time.Time
}

// NewVerificationUC creates a new verification usecase instance
func NewVerificationUC(
	cfg *models.Config,
	txnRepo verification.TransactionRepo,
	formRepo verification.FormRepo,
	quotaRepo verification.SmsQuotaRepo,
	gw verification.VerificationGW,
	hasher verification.OtpHasher,
	generator verification.OtpGenerator,
) *VerificationUC {
	return &VerificationUC{
		cfg:       cfg,
		txnRepo:   txnRepo,
		formRepo:  formRepo,
		quotaRepo: quotaRepo,
		gw:        gw,
		hasher:    hasher,
		generator: generator,
		factory:   NewTransactionFactory(txnRepo, cfg.Verification.TransactionLifetime),
		now:       time.Now,
	}
}
