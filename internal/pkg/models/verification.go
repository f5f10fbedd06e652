package models

import "time"

// FieldType enumerates form field kinds. Only email and mobile fields can be
// verified.
type FieldType string

const (
	FieldTypeEmail  FieldType = "email"
	FieldTypeMobile FieldType = "mobile"
	FieldTypeNumber FieldType = "number"
	FieldTypeText   FieldType = "textfield"
)

// VerifiableFieldTypes lists the field types that support OTP verification.
var VerifiableFieldTypes = []FieldType{FieldTypeEmail, FieldTypeMobile}

// IsVerifiable reports whether fields of this type can be verified.
func (t FieldType) IsVerifiable() bool {
	for _, v := range VerifiableFieldTypes {
		if t == v {
			return true
		}
	}
	return false
}

// VerificationField tracks the OTP state of one form field within a
// transaction.
type VerificationField struct {
	ID            string     `bson:"_id" json:"_id"`
	FieldType     FieldType  `bson:"fieldType" json:"fieldType"`
	HashedOtp     *string    `bson:"hashedOtp" json:"-"`
	HashCreatedAt *time.Time `bson:"hashCreatedAt" json:"hashCreatedAt,omitempty"`
	HashRetries   int        `bson:"hashRetries" json:"hashRetries"`
	SignedData    *string    `bson:"signedData" json:"-"`
	// PendingSignedData is the token bound to the outstanding hash. It is
	// promoted to SignedData when the OTP is verified.
	PendingSignedData *string `bson:"pendingSignedData" json:"-"`
}

// VerificationTransaction is a time-boxed record of verification progress for
// one response attempt on a form.
type VerificationTransaction struct {
	ID        string              `bson:"_id" json:"_id"`
	FormID    string              `bson:"formId" json:"formId"`
	ExpireAt  time.Time           `bson:"expireAt" json:"expireAt"`
	Fields    []VerificationField `bson:"fields" json:"fields"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}

// IsExpired reports whether the transaction is past its expiry at instant now.
func (t *VerificationTransaction) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpireAt)
}

// GetField returns the field with the given id.
func (t *VerificationTransaction) GetField(fieldID string) (*VerificationField, bool) {
	for i := range t.Fields {
		if t.Fields[i].ID == fieldID {
			return &t.Fields[i], true
		}
	}
	return nil, false
}

// TransactionMetadata is the secret-free view of a transaction.
type TransactionMetadata struct {
	TransactionID string    `bson:"_id" json:"transactionId"`
	FormID        string    `bson:"formId" json:"formId"`
	ExpireAt      time.Time `bson:"expireAt" json:"expireAt"`
}

// CreateTransactionResponse is returned when a transaction is created. It is
// empty when a form has nothing to verify.
type CreateTransactionResponse struct {
	TransactionID string     `json:"transactionId,omitempty"`
	ExpireAt      *time.Time `json:"expireAt,omitempty"`
}

// SignaturePayload is the data bound into a signed verification token.
type SignaturePayload struct {
	TransactionID string
	FormID        string
	FieldID       string
	Answer        string
}

// OtpEnvelope pairs a plaintext OTP with its hash.
type OtpEnvelope struct {
	Otp       string
	HashedOtp string
}
