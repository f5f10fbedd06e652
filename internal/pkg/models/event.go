package models

import "time"

// VerificationEventType identifies an audit event emitted by the engine.
type VerificationEventType string

const (
	EventOtpSent       VerificationEventType = "otp_sent"
	EventFieldVerified VerificationEventType = "field_verified"
	EventFieldReset    VerificationEventType = "field_reset"
)

// VerificationEvent is published for auditing. It never carries OTPs,
// hashes, recipients or tokens.
type VerificationEvent struct {
	Type          VerificationEventType `json:"type"`
	TransactionID string                `json:"transactionId"`
	FormID        string                `json:"formId"`
	FieldID       string                `json:"fieldId"`
	FieldType     FieldType             `json:"fieldType,omitempty"`
	OccurredAt    time.Time             `json:"occurredAt"`
}
