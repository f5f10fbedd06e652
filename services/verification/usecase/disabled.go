package usecase

import (
	"context"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/services/verification"
)

// DisabledUC stands in for the engine when verification is switched off.
// Every operation fails with ErrVerificationDisabled.
type DisabledUC struct{}

// NewDisabledUC creates the switched-off engine
func NewDisabledUC() *DisabledUC {
	return &DisabledUC{}
}

func (DisabledUC) CreateTransaction(context.Context, string) (*models.CreateTransactionResponse, error) {
	return nil, verification.ErrVerificationDisabled
}

func (DisabledUC) GetTransactionMetadata(context.Context, string) (*models.TransactionMetadata, error) {
	return nil, verification.ErrVerificationDisabled
}

func (DisabledUC) ResetField(context.Context, string, string) error {
	return verification.ErrVerificationDisabled
}

func (DisabledUC) IssueOtp(context.Context, string, string, string) error {
	return verification.ErrVerificationDisabled
}

func (DisabledUC) VerifyOtp(context.Context, string, string, string) (string, error) {
	return "", verification.ErrVerificationDisabled
}

var (
	_ verification.VerificationUC = (*VerificationUC)(nil)
	_ verification.VerificationUC = (*DisabledUC)(nil)
)
