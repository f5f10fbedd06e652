package handler

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/middleware"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/services/verification"
	httpHandler "github.com/opengovsg/FormSG-sub009/services/verification/handler/http"
)

// Handler combines all handlers for the verification service
type Handler struct {
	transactionHTTP *httpHandler.TransactionHandler
	cfg             *models.Config
	redisClient     *redis.Client
}

// NewHandler creates a new combined handler
func NewHandler(verificationUC verification.VerificationUC, cfg *models.Config, redisClient *redis.Client) *Handler {
	return &Handler{
		transactionHTTP: httpHandler.NewTransactionHandler(verificationUC),
		cfg:             cfg,
		redisClient:     redisClient,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	txn := e.Group("/transaction")
	txn.POST("", h.transactionHTTP.CreateTransaction)
	txn.GET("/:transactionId", h.transactionHTTP.GetTransactionMetadata)
	txn.POST("/:transactionId/reset", h.transactionHTTP.ResetField)

	// OTP issuance sends SMS and mail, so it is throttled per client
	if h.redisClient != nil && h.cfg.RateLimit.Limit > 0 {
		limiter := middleware.IPRateLimiter(h.cfg.RateLimit.Limit, h.cfg.RateLimit.Period, h.redisClient)
		txn.POST("/:transactionId/otp", h.transactionHTTP.IssueOtp, limiter)
	} else {
		txn.POST("/:transactionId/otp", h.transactionHTTP.IssueOtp)
	}
	txn.POST("/:transactionId/otp/verify", h.transactionHTTP.VerifyOtp)
}
