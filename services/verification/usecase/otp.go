package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/logger"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/services/verification"
)

const (
	defaultOtpLifetime     = 10 * time.Minute
	defaultMinWait         = 30 * time.Second
	defaultMaxRetries      = 4
	defaultDeliveryTimeout = 10 * time.Second
)

func (uc *VerificationUC) otpLifetime() time.Duration {
	if uc.cfg.Verification.OtpLifetime > 0 {
		return uc.cfg.Verification.OtpLifetime
	}
	return defaultOtpLifetime
}

// minWait is the enforced gap between OTPs for one field
func (uc *VerificationUC) minWait() time.Duration {
	if uc.cfg.Verification.MinWaitBetweenOtp > 0 {
		return uc.cfg.Verification.MinWaitBetweenOtp
	}
	return defaultMinWait
}

func (uc *VerificationUC) maxRetries() int {
	if uc.cfg.Verification.MaxRetries > 0 {
		return uc.cfg.Verification.MaxRetries
	}
	return defaultMaxRetries
}

func (uc *VerificationUC) deliveryTimeout() time.Duration {
	if uc.cfg.Verification.DeliveryTimeout > 0 {
		return uc.cfg.Verification.DeliveryTimeout
	}
	return defaultDeliveryTimeout
}

// IssueOtp sends a fresh OTP for the field to answer and installs its hash.
// Nothing is persisted unless delivery succeeds.
func (uc *VerificationUC) IssueOtp(ctx context.Context, transactionID, fieldID, answer string) error {
	txn, err := uc.getValidTransaction(ctx, transactionID)
	if err != nil {
		return err
	}
	field, err := getVerifiableField(txn, fieldID)
	if err != nil {
		return err
	}

	if field.HashCreatedAt != nil {
		elapsed := uc.now().Sub(*field.HashCreatedAt)
		if wait := uc.minWait(); elapsed < wait {
			return verification.NewWaitForOtpError(wait - elapsed)
		}
	}

	form, err := uc.formRepo.GetFormByID(ctx, txn.FormID)
	if err != nil {
		return err
	}

	countSms := field.FieldType == models.FieldTypeMobile && form.UsesDefaultSmsCredentials()
	if countSms && uc.cfg.Verification.SmsQuota > 0 {
		count, err := uc.quotaRepo.GetSmsCount(ctx, form.AdminID)
		if err != nil {
			return err
		}
		if count >= uc.cfg.Verification.SmsQuota {
			logger.WarnCtx(ctx, "SMS quota exhausted for form admin",
				logger.String("form_id", form.ID),
				logger.String("admin_id", form.AdminID),
				logger.Int64("count", count))
			return verification.ErrSmsLimitExceeded
		}
	}

	envelope, err := uc.generator.GenerateWithHash(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to generate OTP",
			logger.String("transaction_id", transactionID),
			logger.String("field_id", fieldID),
			logger.Err(err))
		return verification.WrapHashing(err)
	}

	// The token binds the answer exactly as submitted. The SMS gateway
	// normalises the number for delivery only, so consumers of signedData
	// must compare against the raw answer.
	signedData, err := uc.gw.SignVerification(ctx, models.SignaturePayload{
		TransactionID: txn.ID,
		FormID:        txn.FormID,
		FieldID:       fieldID,
		Answer:        answer,
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to sign verification",
			logger.String("transaction_id", transactionID),
			logger.String("field_id", fieldID),
			logger.Err(err))
		return fmt.Errorf("%w: %v", verification.ErrSigning, err)
	}

	if err := uc.deliver(ctx, field.FieldType, answer, envelope.Otp, form); err != nil {
		logger.WarnCtx(ctx, "Failed to deliver OTP",
			logger.String("transaction_id", transactionID),
			logger.String("field_id", fieldID),
			logger.String("field_type", string(field.FieldType)),
			logger.Err(err))
		return err
	}

	if countSms {
		if _, err := uc.quotaRepo.IncrementSmsCount(ctx, form.AdminID); err != nil {
			logger.WarnCtx(ctx, "Failed to increment SMS count",
				logger.String("admin_id", form.AdminID),
				logger.Err(err))
		}
	}

	if _, err := uc.txnRepo.InstallHash(ctx, transactionID, fieldID, envelope.HashedOtp, signedData); err != nil {
		return err
	}

	uc.publish(ctx, models.EventOtpSent, txn, field)
	return nil
}

// deliver routes the OTP to the transport matching the field type, bounded
// by the delivery timeout.
func (uc *VerificationUC) deliver(ctx context.Context, fieldType models.FieldType, recipient, otp string, form *models.Form) error {
	ctx, cancel := context.WithTimeout(ctx, uc.deliveryTimeout())
	defer cancel()

	var (
		err      error
		fallback *verification.Error
	)
	switch fieldType {
	case models.FieldTypeMobile:
		err = uc.gw.SendSmsOtp(ctx, recipient, otp, form)
		fallback = verification.ErrSmsSend
	case models.FieldTypeEmail:
		err = uc.gw.SendEmailOtp(ctx, recipient, otp, form)
		fallback = verification.ErrMailSend
	default:
		return verification.ErrNonVerifiedFieldType
	}
	if err == nil {
		return nil
	}
	if verification.KindOf(err) == verification.KindDelivery {
		return err
	}
	return fmt.Errorf("%w: %v", fallback, err)
}

// VerifyOtp checks candidate against the field's outstanding OTP and returns
// the signed token on a match. Each call consumes one retry.
func (uc *VerificationUC) VerifyOtp(ctx context.Context, transactionID, fieldID, candidate string) (string, error) {
	txn, err := uc.getValidTransaction(ctx, transactionID)
	if err != nil {
		return "", err
	}
	field, err := getVerifiableField(txn, fieldID)
	if err != nil {
		return "", err
	}
	if field.HashedOtp == nil {
		return "", verification.ErrMissingHashData
	}
	if field.HashCreatedAt == nil || uc.now().Sub(*field.HashCreatedAt) > uc.otpLifetime() {
		return "", verification.ErrOtpExpired
	}

	before, err := uc.txnRepo.IncrementRetries(ctx, transactionID, fieldID)
	if err != nil {
		return "", err
	}
	snapshot, ok := before.GetField(fieldID)
	if !ok {
		return "", verification.ErrFieldNotFound
	}
	if snapshot.HashRetries >= uc.maxRetries() {
		return "", verification.ErrOtpRetryExceeded
	}
	if snapshot.HashedOtp == nil {
		return "", verification.ErrMissingHashData
	}

	matched, err := uc.hasher.Compare(ctx, candidate, *snapshot.HashedOtp)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to compare OTP",
			logger.String("transaction_id", transactionID),
			logger.String("field_id", fieldID),
			logger.Err(err))
		return "", verification.WrapHashing(err)
	}
	if !matched {
		return "", verification.ErrWrongOtp
	}

	if snapshot.PendingSignedData == nil {
		return "", verification.ErrMissingHashData
	}
	signedData := *snapshot.PendingSignedData
	if _, err := uc.txnRepo.MarkVerified(ctx, transactionID, fieldID, *snapshot.HashedOtp, signedData); err != nil {
		// the hash generation was replaced, reset or already verified
		if errors.Is(err, verification.ErrTransactionNotFound) {
			return "", verification.ErrMissingHashData
		}
		return "", err
	}

	uc.publish(ctx, models.EventFieldVerified, txn, field)
	return signedData, nil
}
