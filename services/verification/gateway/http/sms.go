package gateway_http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/circuitbreaker"
	httpclient "github.com/opengovsg/FormSG-sub009/internal/pkg/http"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/logger"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/internal/utils"
	"github.com/opengovsg/FormSG-sub009/services/verification"
)

const (
	messagesEndpoint = "/messages"
	invalidNumber    = "invalid_number"
)

type smsRequest struct {
	Recipient string `json:"recipient"`
	Body      string `json:"body"`
	SenderID  string `json:"senderId,omitempty"`
}

type smsResponse struct {
	MessageID string `json:"messageId"`
}

type smsErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SmsGateway delivers OTPs through the SMS provider's HTTP API
type SmsGateway struct {
	client   *httpclient.APIKeyClient
	breaker  *circuitbreaker.CircuitBreaker
	senderID string
	dryRun   bool
}

// NewSmsGateway creates an SMS gateway for cfg
func NewSmsGateway(cfg models.SMSConfig, timeout time.Duration) *SmsGateway {
	breakerCfg := circuitbreaker.DefaultConfig("sms-provider")
	breakerCfg.IsFailure = func(err error) bool {
		return err != nil && !errors.Is(err, verification.ErrInvalidNumber)
	}
	return &SmsGateway{
		client:   httpclient.NewAPIKeyClient(cfg.APIKey, "sms-provider", cfg.BaseURL, timeout),
		breaker:  circuitbreaker.New(breakerCfg),
		senderID: cfg.SenderID,
		dryRun:   cfg.DryRun,
	}
}

// SendOtp texts otp to recipient
func (g *SmsGateway) SendOtp(ctx context.Context, recipient, otp string, form *models.Form) error {
	// Delivery uses the E.164 form; the signed token keeps the raw answer.
	number, err := utils.NormalizeMobile(recipient)
	if err != nil {
		return verification.ErrInvalidNumber
	}

	req := smsRequest{
		Recipient: number,
		Body:      otpMessage(otp, form),
		SenderID:  g.senderID,
	}

	if g.dryRun {
		logger.InfoCtx(ctx, "SMS dry run",
			logger.String("recipient", utils.MaskPhoneNumber(number)),
			logger.String("form_id", form.ID))
		return nil
	}

	err = g.breaker.Execute(ctx, func(ctx context.Context) error {
		var resp smsResponse
		return classifySmsError(g.client.PostJSON(ctx, messagesEndpoint, req, &resp))
	})
	if errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", verification.ErrSmsSend, err)
	}
	return err
}

func otpMessage(otp string, form *models.Form) string {
	if form != nil && form.Title != "" {
		return fmt.Sprintf("Use the OTP %s to verify your response to \"%s\". Never share your OTP with anyone.", otp, form.Title)
	}
	return fmt.Sprintf("Use the OTP %s to verify your response. Never share your OTP with anyone.", otp)
}

// classifySmsError maps provider failures to delivery errors
func classifySmsError(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == nethttp.StatusBadRequest || statusErr.StatusCode == nethttp.StatusUnprocessableEntity {
			var body smsErrorBody
			if json.Unmarshal(statusErr.Body, &body) == nil && body.Code == invalidNumber {
				return verification.ErrInvalidNumber
			}
		}
	}
	return fmt.Errorf("%w: %v", verification.ErrSmsSend, err)
}
