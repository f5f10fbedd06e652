package gateway_mail

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/services/verification"
)

func testSMTPConfig() models.SMTPConfig {
	return models.SMTPConfig{
		Host:     "127.0.0.1",
		Port:     1,
		From:     "donotreply@form.gov.sg",
		FromName: "FormSG",
	}
}

func TestMailGateway_BuildMessage(t *testing.T) {
	gw := NewMailGateway(testSMTPConfig(), 0)

	msg, err := gw.buildMessage("a@b.com", "123456", &models.Form{ID: "form-1", Title: "Feedback"})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "a@b.com")
	assert.Contains(t, raw, "donotreply@form.gov.sg")
	assert.Contains(t, raw, "Your OTP for submitting Feedback")
	assert.Contains(t, raw, "123456")
}

func TestMailGateway_BodyQuotesOtpLifetime(t *testing.T) {
	tests := []struct {
		name     string
		lifetime time.Duration
		want     string
	}{
		{name: "default", lifetime: 0, want: "It will expire in 10 minutes."},
		{name: "configured", lifetime: 5 * time.Minute, want: "It will expire in 5 minutes."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := NewMailGateway(testSMTPConfig(), tt.lifetime).body("Feedback", "123456")

			assert.Contains(t, body, tt.want)
			assert.Contains(t, body, "Your OTP is 123456.")
		})
	}
}

func TestFormatLifetime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{10 * time.Minute, "10 minutes"},
		{time.Minute, "1 minute"},
		{90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatLifetime(tt.in))
		})
	}
}

func TestMailGateway_SendOtp_InvalidRecipient(t *testing.T) {
	gw := NewMailGateway(testSMTPConfig(), 0)

	err := gw.SendOtp(context.Background(), "not-an-email", "123456", &models.Form{ID: "form-1"})

	assert.True(t, errors.Is(err, verification.ErrMailSend))
}

func TestMailGateway_SendOtp_DryRun(t *testing.T) {
	cfg := testSMTPConfig()
	cfg.DryRun = true
	gw := NewMailGateway(cfg, 0)

	err := gw.SendOtp(context.Background(), "a@b.com", "123456", &models.Form{ID: "form-1"})

	assert.NoError(t, err)
}

func TestMailGateway_SendOtp_Unreachable(t *testing.T) {
	gw := NewMailGateway(testSMTPConfig(), 0)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := gw.SendOtp(ctx, "a@b.com", "123456", &models.Form{ID: "form-1"})

	assert.True(t, errors.Is(err, verification.ErrMailSend))
	assert.Equal(t, verification.KindDelivery, verification.KindOf(err))
}

func TestMailGateway_ClientOptions(t *testing.T) {
	cfg := testSMTPConfig()
	assert.Len(t, NewMailGateway(cfg, 0).clientOptions(), 2)

	cfg.TLS = true
	cfg.Port = 465
	cfg.Username = "user"
	cfg.Password = "pass"
	assert.Len(t, NewMailGateway(cfg, 0).clientOptions(), 6)
}
