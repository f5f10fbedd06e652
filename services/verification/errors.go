package verification

import (
	"errors"
	"fmt"
	"time"
)

// Kind groups verification errors by how the boundary should treat them.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindExpiry
	KindLimit
	KindIntegrity
	KindDelivery
	KindComputation
	KindDatabase
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindExpiry:
		return "expiry"
	case KindLimit:
		return "limit"
	case KindIntegrity:
		return "integrity"
	case KindDelivery:
		return "delivery"
	case KindComputation:
		return "computation"
	case KindDatabase:
		return "database"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Error is a typed verification outcome.
type Error struct {
	Name    string
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(name string, kind Kind, message string) *Error {
	return &Error{Name: name, Kind: kind, Message: message}
}

var (
	ErrTransactionNotFound = newError("TransactionNotFoundError", KindNotFound,
		"Your session has expired, please refresh and try again.")
	ErrFieldNotFound = newError("FieldNotFoundInTransactionError", KindNotFound,
		"Field not found in transaction. Please refresh and try again.")
	ErrFormNotFound = newError("FormNotFoundError", KindNotFound,
		"Form not found. Please refresh and try again.")

	ErrTransactionExpired = newError("TransactionExpiredError", KindExpiry,
		"Your session has expired, please refresh and try again.")
	ErrOtpExpired = newError("OtpExpiredError", KindExpiry,
		"Your OTP has expired, please request for a new one.")

	ErrWaitForOtp = newError("WaitForOtpError", KindLimit,
		"You must wait before requesting for a new OTP.")
	ErrOtpRetryExceeded = newError("OtpRetryExceededError", KindLimit,
		"You have entered too many invalid OTPs. Please request for a new OTP and try again.")
	ErrSmsLimitExceeded = newError("SmsLimitExceededError", KindLimit,
		"Sorry, this form is outdated. Please refresh your browser to get the latest version of the form.")
	ErrWrongOtp = newError("WrongOtpError", KindLimit,
		"Wrong OTP.")

	ErrMissingHashData = newError("MissingHashDataError", KindIntegrity,
		"Field not verified. Please request for a new OTP.")
	ErrNonVerifiedFieldType = newError("NonVerifiedFieldTypeError", KindIntegrity,
		"Field type cannot be verified.")
	ErrDuplicateFieldID = newError("DuplicateFieldIdError", KindIntegrity,
		"Sorry, something went wrong. Please refresh and try again.")

	ErrSmsSend = newError("SmsSendError", KindDelivery,
		"Error sending OTP. Please try again later and if the problem persists, contact us.")
	ErrInvalidNumber = newError("InvalidNumberError", KindDelivery,
		"This phone number does not seem to be valid. Please try again with a valid phone number.")
	ErrMailSend = newError("MailSendError", KindDelivery,
		"Error sending OTP. Please try again later and if the problem persists, contact us.")

	ErrHashing = newError("HashingError", KindComputation,
		"Sorry, something went wrong. Please refresh and try again.")
	ErrSigning = newError("SigningError", KindComputation,
		"Sorry, something went wrong. Please refresh and try again.")
	ErrDatabase = newError("DatabaseError", KindDatabase,
		"Sorry, something went wrong. Please refresh and try again.")

	ErrVerificationDisabled = newError("VerificationDisabledError", KindUnavailable,
		"Verification is currently unavailable. Please try again later.")
)

// WaitForOtpError reports how long a respondent must wait before another OTP
// can be issued for a field.
type WaitForOtpError struct {
	Remaining time.Duration
}

func (e *WaitForOtpError) Error() string {
	secs := int(e.Remaining.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return fmt.Sprintf("You must wait for %d seconds between each OTP request.", secs)
}

// Is makes errors.Is(err, ErrWaitForOtp) hold.
func (e *WaitForOtpError) Is(target error) bool {
	return target == ErrWaitForOtp
}

// Unwrap exposes the sentinel for errors.As on *Error.
func (e *WaitForOtpError) Unwrap() error {
	return ErrWaitForOtp
}

// NewWaitForOtpError builds a WaitForOtpError for the remaining wait.
func NewWaitForOtpError(remaining time.Duration) error {
	return &WaitForOtpError{Remaining: remaining}
}

// WrapDatabase marks err as a store fault. Domain errors pass through.
func WrapDatabase(err error) error {
	if err == nil {
		return nil
	}
	var verr *Error
	if errors.As(err, &verr) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrDatabase, err)
}

// WrapHashing marks err as a hash computation fault. Domain errors pass
// through.
func WrapHashing(err error) error {
	if err == nil {
		return nil
	}
	var verr *Error
	if errors.As(err, &verr) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrHashing, err)
}

// KindOf classifies err. Errors outside the taxonomy are KindUnknown.
func KindOf(err error) Kind {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return KindUnknown
}

// NameOf returns the stable error name, or an empty string.
func NameOf(err error) string {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Name
	}
	return ""
}
