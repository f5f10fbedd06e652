package usecase

import (
	"context"
	"errors"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/logger"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/services/verification"
)

// CreateTransaction starts verification for a response to formID
func (uc *VerificationUC) CreateTransaction(ctx context.Context, formID string) (*models.CreateTransactionResponse, error) {
	form, err := uc.formRepo.GetFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	txn, err := uc.factory.CreateFromFormFields(ctx, form.ID, form.FormFields)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to create verification transaction",
			logger.String("form_id", formID),
			logger.Err(err))
		return nil, err
	}
	if txn == nil {
		return &models.CreateTransactionResponse{}, nil
	}

	logger.InfoCtx(ctx, "Created verification transaction",
		logger.String("transaction_id", txn.ID),
		logger.String("form_id", formID),
		logger.Int("fields", len(txn.Fields)))

	expireAt := txn.ExpireAt
	return &models.CreateTransactionResponse{
		TransactionID: txn.ID,
		ExpireAt:      &expireAt,
	}, nil
}

// GetTransactionMetadata returns the public view of a live transaction
func (uc *VerificationUC) GetTransactionMetadata(ctx context.Context, transactionID string) (*models.TransactionMetadata, error) {
	metadata, err := uc.txnRepo.GetTransactionMetadata(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !uc.now().Before(metadata.ExpireAt) {
		return nil, verification.ErrTransactionNotFound
	}
	return metadata, nil
}

// getValidTransaction loads a transaction and fails closed once it expired
func (uc *VerificationUC) getValidTransaction(ctx context.Context, transactionID string) (*models.VerificationTransaction, error) {
	txn, err := uc.txnRepo.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.IsExpired(uc.now()) {
		return nil, verification.ErrTransactionExpired
	}
	return txn, nil
}

// getVerifiableField finds fieldID in txn and checks it can be verified
func getVerifiableField(txn *models.VerificationTransaction, fieldID string) (*models.VerificationField, error) {
	field, ok := txn.GetField(fieldID)
	if !ok {
		return nil, verification.ErrFieldNotFound
	}
	if !field.FieldType.IsVerifiable() {
		return nil, verification.ErrNonVerifiedFieldType
	}
	return field, nil
}

// ResetField clears the OTP state of a field, returning it to unverified
func (uc *VerificationUC) ResetField(ctx context.Context, transactionID, fieldID string) error {
	txn, err := uc.getValidTransaction(ctx, transactionID)
	if err != nil {
		return err
	}
	field, ok := txn.GetField(fieldID)
	if !ok {
		return verification.ErrFieldNotFound
	}

	if _, err := uc.txnRepo.ResetField(ctx, transactionID, fieldID); err != nil {
		return err
	}

	uc.publish(ctx, models.EventFieldReset, txn, field)
	return nil
}

// publish emits an audit event. Failures never affect the operation.
func (uc *VerificationUC) publish(ctx context.Context, eventType models.VerificationEventType, txn *models.VerificationTransaction, field *models.VerificationField) {
	event := &models.VerificationEvent{
		Type:          eventType,
		TransactionID: txn.ID,
		FormID:        txn.FormID,
		FieldID:       field.ID,
		FieldType:     field.FieldType,
		OccurredAt:    uc.now().UTC(),
	}
	if err := uc.gw.PublishVerificationEvent(ctx, event); err != nil && !errors.Is(err, context.Canceled) {
		logger.WarnCtx(ctx, "Failed to publish verification event",
			logger.String("type", string(eventType)),
			logger.String("transaction_id", txn.ID),
			logger.Err(err))
	}
}
