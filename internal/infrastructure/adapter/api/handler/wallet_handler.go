package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/core"
	walletUseCase "github.com/amirhossein-jamali/wallet-processor/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/api/middleware"
)

// WalletHandler handles wallet-related HTTP requests
type WalletHandler struct {
	walletService *walletUseCase.Service
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(walletService *walletUseCase.Service, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		logger:        logger,
	}
}

// Fund handles the POST /wallet/fund endpoint
func (h *WalletHandler) Fund(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidAccountID, "Missing account identity")
		return
	}

	var req dto.FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid fund request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.walletService.InitiateFunding(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.FundResponse{
		AuthorizationURL: result.AuthorizationURL,
		Reference:        result.Reference,
	})
}

// Transfer handles the POST /wallet/transfer endpoint
func (h *WalletHandler) Transfer(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidAccountID, "Missing account identity")
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid transfer request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.walletService.Transfer(c.Request.Context(), accountID, req.ReceiverEmail, req.Amount)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.TransferResponse{
		Message:      "Transfer successful",
		Reference:    result.Reference,
		Amount:       result.Amount,
		ReceiverName: result.ReceiverName,
		NewBalance:   result.NewBalance,
	})
}

// GetBalance handles the GET /wallet/balance endpoint
func (h *WalletHandler) GetBalance(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidAccountID, "Missing account identity")
		return
	}

	balance, err := h.walletService.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountID: accountID.String(),
		Balance:   balance,
	})
}

// GetTransactions handles the GET /wallet/transactions endpoint
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidAccountID, "Missing account identity")
		return
	}

	transactions, err := h.walletService.GetTransactions(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err, "")
		return
	}

	items := make([]dto.TransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		items = append(items, dto.TransactionResponse{
			Direction:   string(txn.Direction),
			Amount:      txn.Amount,
			Reference:   txn.Reference,
			Description: txn.Description,
			CreatedAt:   txn.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		AccountID:    accountID.String(),
		Transactions: items,
	})
}

// respondError maps a domain error to an HTTP status and writes the
// standard error body. An empty message falls back to the error text.
func respondError(c *gin.Context, err error, message string) {
	if message == "" {
		message = err.Error()
	}
	c.JSON(statusFromError(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// statusFromError maps domain errors onto HTTP status codes
func statusFromError(err error) int {
	switch {
	case domainerr.IsContentionError(err):
		return http.StatusTooManyRequests
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsInsufficientFundsError(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrInvalidSignature):
		return http.StatusUnauthorized
	case domainerr.IsDuplicateReferenceError(err), errors.Is(err, domainerr.ErrDuplicateReference):
		return http.StatusConflict
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
