package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/core"
	webhookUseCase "github.com/amirhossein-jamali/wallet-processor/internal/domain/usecase/webhook"
	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/api/dto"
)

// SignatureHeader carries the gateway's HMAC-SHA512 signature of the raw body
const SignatureHeader = "X-Paystack-Signature"

// WebhookHandler receives signed payment gateway notifications
type WebhookHandler struct {
	intake *webhookUseCase.Intake
	logger coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(intake *webhookUseCase.Intake, logger coreport.Logger) *WebhookHandler {
	return &WebhookHandler{
		intake: intake,
		logger: logger,
	}
}

// HandleNotification handles the POST /wallet/webhook endpoint. The raw body
// is read before any parsing: the signature covers the exact bytes sent.
func (h *WebhookHandler) HandleNotification(c *gin.Context) {
	rawPayload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Error("Failed to read notification body", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Unable to read request body",
		})
		return
	}

	signature := c.GetHeader(SignatureHeader)

	if err := h.intake.Handle(c.Request.Context(), rawPayload, signature); err != nil {
		if errors.Is(err, domainerr.ErrInvalidSignature) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Invalid signature",
			})
			return
		}
		// Queue failure: the gateway retries on non-2xx, so signal it
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Notification accepted but could not be queued",
		})
		return
	}

	c.Status(http.StatusOK)
}
