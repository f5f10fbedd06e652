package verification

import (
	"context"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/opengovsg/FormSG-sub009/services/verification VerificationGW

// VerificationGW defines the outbound collaborators of the engine
type VerificationGW interface {
	// Delivery. Failures are ErrSmsSend, ErrInvalidNumber or ErrMailSend.
	SendSmsOtp(ctx context.Context, recipient, otp string, form *models.Form) error
	SendEmailOtp(ctx context.Context, recipient, otp string, form *models.Form) error

	// Signing
	SignVerification(ctx context.Context, payload models.SignaturePayload) (string, error)

	// Events. Best effort.
	PublishVerificationEvent(ctx context.Context, event *models.VerificationEvent) error
}
