package gateway

import (
	"context"
	"time"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/jwt"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/services/verification"
	gateway_http "github.com/opengovsg/FormSG-sub009/services/verification/gateway/http"
	gateway_mail "github.com/opengovsg/FormSG-sub009/services/verification/gateway/mail"
	gateway_nsq "github.com/opengovsg/FormSG-sub009/services/verification/gateway/nsq"
)

// signer produces tokens binding a verified answer
type signer interface {
	Sign(payload models.SignaturePayload) (string, error)
}

// VerificationGW composes the delivery, signing and event gateways
type VerificationGW struct {
	smsGateway   *gateway_http.SmsGateway
	mailGateway  *gateway_mail.MailGateway
	eventGateway *gateway_nsq.EventGateway
	signer       signer
}

// NewVerificationGW creates the engine's outbound gateway. publisher may be
// nil to disable audit events.
func NewVerificationGW(cfg *models.Config, signer *jwt.Signer, publisher gateway_nsq.Publisher) verification.VerificationGW {
	timeout := cfg.Verification.DeliveryTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &VerificationGW{
		smsGateway:   gateway_http.NewSmsGateway(cfg.SMS, timeout),
		mailGateway:  gateway_mail.NewMailGateway(cfg.SMTP, cfg.Verification.OtpLifetime),
		eventGateway: gateway_nsq.NewEventGateway(publisher, cfg.NSQ.Topic),
		signer:       signer,
	}
}

// SendSmsOtp delivers otp by SMS
func (g *VerificationGW) SendSmsOtp(ctx context.Context, recipient, otp string, form *models.Form) error {
	return g.smsGateway.SendOtp(ctx, recipient, otp, form)
}

// SendEmailOtp delivers otp by email
func (g *VerificationGW) SendEmailOtp(ctx context.Context, recipient, otp string, form *models.Form) error {
	return g.mailGateway.SendOtp(ctx, recipient, otp, form)
}

// SignVerification signs payload
func (g *VerificationGW) SignVerification(_ context.Context, payload models.SignaturePayload) (string, error) {
	return g.signer.Sign(payload)
}

// PublishVerificationEvent emits an audit event
func (g *VerificationGW) PublishVerificationEvent(ctx context.Context, event *models.VerificationEvent) error {
	return g.eventGateway.Publish(ctx, event)
}
