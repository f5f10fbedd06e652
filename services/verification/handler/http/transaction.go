package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/logger"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/otp"
	"github.com/opengovsg/FormSG-sub009/internal/utils"
	"github.com/opengovsg/FormSG-sub009/services/verification"
)

const genericErrorMessage = "Sorry, something went wrong. Please refresh and try again."

type createTransactionRequest struct {
	FormID string `json:"formId"`
}

type fieldRequest struct {
	FieldID string `json:"fieldId"`
}

type issueOtpRequest struct {
	FieldID string `json:"fieldId"`
	Answer  string `json:"answer"`
}

type verifyOtpRequest struct {
	FieldID string `json:"fieldId"`
	Otp     string `json:"otp"`
}

type verifyOtpResponse struct {
	SignedData string `json:"signedData"`
}

// TransactionHandler handles HTTP requests for verification transactions
type TransactionHandler struct {
	verificationUC verification.VerificationUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(verificationUC verification.VerificationUC) *TransactionHandler {
	return &TransactionHandler{verificationUC: verificationUC}
}

// CreateTransaction starts verification for a form response
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req createTransactionRequest
	if err := c.Bind(&req); err != nil || req.FormID == "" {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.verificationUC.CreateTransaction(c.Request().Context(), req.FormID)
	if err != nil {
		return h.errorResponse(c, err, "CreateTransaction")
	}
	if resp.TransactionID == "" {
		return utils.SuccessResponse(c, http.StatusOK, "Nothing to verify", resp)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created", resp)
}

// GetTransactionMetadata returns the public view of a transaction
func (h *TransactionHandler) GetTransactionMetadata(c echo.Context) error {
	transactionID := c.Param("transactionId")
	if transactionID == "" {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	metadata, err := h.verificationUC.GetTransactionMetadata(c.Request().Context(), transactionID)
	if err != nil {
		return h.errorResponse(c, err, "GetTransactionMetadata")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved", metadata)
}

// ResetField clears the verification state of a field
func (h *TransactionHandler) ResetField(c echo.Context) error {
	transactionID := c.Param("transactionId")
	var req fieldRequest
	if err := c.Bind(&req); err != nil || transactionID == "" || req.FieldID == "" {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.verificationUC.ResetField(c.Request().Context(), transactionID, req.FieldID); err != nil {
		return h.errorResponse(c, err, "ResetField")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Field reset", nil)
}

// IssueOtp sends a new OTP for a field
func (h *TransactionHandler) IssueOtp(c echo.Context) error {
	transactionID := c.Param("transactionId")
	var req issueOtpRequest
	if err := c.Bind(&req); err != nil || transactionID == "" || req.FieldID == "" || req.Answer == "" {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.verificationUC.IssueOtp(c.Request().Context(), transactionID, req.FieldID, req.Answer); err != nil {
		return h.errorResponse(c, err, "IssueOtp")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "OTP sent", nil)
}

// VerifyOtp checks an OTP and returns the signed proof of verification
func (h *TransactionHandler) VerifyOtp(c echo.Context) error {
	transactionID := c.Param("transactionId")
	var req verifyOtpRequest
	if err := c.Bind(&req); err != nil || transactionID == "" || req.FieldID == "" {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !otp.IsWellFormed(req.Otp) {
		return utils.BadRequestResponse(c, "OTP must be 6 digits")
	}

	signedData, err := h.verificationUC.VerifyOtp(c.Request().Context(), transactionID, req.FieldID, req.Otp)
	if err != nil {
		return h.errorResponse(c, err, "VerifyOtp")
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP verified", verifyOtpResponse{SignedData: signedData})
}

// errorResponse maps an engine error to its status and respondent-facing
// message.
func (h *TransactionHandler) errorResponse(c echo.Context, err error, endpoint string) error {
	ctx := c.Request().Context()
	status, message := StatusFor(err)
	name := verification.NameOf(err)

	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(ctx, "Verification request failed",
			logger.String("endpoint", endpoint),
			logger.String("name", name),
			logger.Err(err))
	} else {
		logger.WarnCtx(ctx, "Verification request rejected",
			logger.String("endpoint", endpoint),
			logger.String("name", name),
			logger.Err(err))
	}
	return utils.NamedErrorResponse(c, status, name, message)
}

// StatusFor returns the HTTP status and message for an engine error
func StatusFor(err error) (int, string) {
	var verr *verification.Error
	if !errors.As(err, &verr) {
		return http.StatusInternalServerError, genericErrorMessage
	}

	message := verr.Message
	var waitErr *verification.WaitForOtpError
	if errors.As(err, &waitErr) {
		message = waitErr.Error()
	}

	switch verr.Kind {
	case verification.KindNotFound:
		return http.StatusNotFound, message
	case verification.KindExpiry:
		return http.StatusBadRequest, message
	case verification.KindLimit:
		if verr == verification.ErrSmsLimitExceeded {
			return http.StatusBadRequest, message
		}
		return http.StatusUnprocessableEntity, message
	case verification.KindIntegrity:
		return http.StatusBadRequest, genericErrorMessage
	case verification.KindDelivery:
		if verr == verification.ErrInvalidNumber {
			return http.StatusBadRequest, message
		}
		return http.StatusInternalServerError, message
	case verification.KindUnavailable:
		return http.StatusServiceUnavailable, message
	default:
		return http.StatusInternalServerError, genericErrorMessage
	}
}
