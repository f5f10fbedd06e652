package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/jwt"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/services/verification"
)

func testGatewayConfig() *models.Config {
	return &models.Config{
		SMS:     models.SMSConfig{BaseURL: "http://127.0.0.1:1", DryRun: true},
		SMTP:    models.SMTPConfig{Host: "127.0.0.1", Port: 1, From: "donotreply@form.gov.sg", DryRun: true},
		Signing: models.SigningConfig{Secret: "secret", Issuer: "formsg"},
		NSQ:     models.NSQConfig{Topic: "verification.events"},
	}
}

func TestVerificationGW(t *testing.T) {
	cfg := testGatewayConfig()
	signer, err := jwt.NewSigner(cfg.Signing)
	require.NoError(t, err)
	gw := NewVerificationGW(cfg, signer, nil)
	ctx := context.Background()
	form := &models.Form{ID: "form-1"}

	assert.NoError(t, gw.SendSmsOtp(ctx, "+6598765432", "123456", form))
	assert.NoError(t, gw.SendEmailOtp(ctx, "a@b.com", "123456", form))
	assert.NoError(t, gw.PublishVerificationEvent(ctx, &models.VerificationEvent{}))

	payload := models.SignaturePayload{TransactionID: "txn-1", FormID: "form-1", FieldID: "f1", Answer: "a@b.com"}
	token, err := gw.SignVerification(ctx, payload)
	require.NoError(t, err)
	verified, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, payload, *verified)
}

func TestVerificationGW_DeliveryErrors(t *testing.T) {
	cfg := testGatewayConfig()
	signer, err := jwt.NewSigner(cfg.Signing)
	require.NoError(t, err)
	gw := NewVerificationGW(cfg, signer, nil)
	ctx := context.Background()

	err = gw.SendSmsOtp(ctx, "12345", "123456", &models.Form{})
	assert.True(t, errors.Is(err, verification.ErrInvalidNumber))

	err = gw.SendEmailOtp(ctx, "nobody", "123456", &models.Form{})
	assert.True(t, errors.Is(err, verification.ErrMailSend))
}
