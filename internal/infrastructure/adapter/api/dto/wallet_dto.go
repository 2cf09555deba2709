package dto

import "time"

// FundRequest is the body for POST /wallet/fund. Amount is in kobo.
type FundRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// FundResponse returns the hosted checkout session for a funding attempt
type FundResponse struct {
	AuthorizationURL string `json:"authorizationUrl"`
	Reference        string `json:"reference"`
}

// TransferRequest is the body for POST /wallet/transfer. Amount is in kobo.
type TransferRequest struct {
	ReceiverEmail string `json:"receiverEmail" binding:"required,email"`
	Amount        int64  `json:"amount" binding:"required"`
}

// TransferResponse confirms a completed transfer
type TransferResponse struct {
	Message      string `json:"message"`
	Reference    string `json:"reference"`
	Amount       int64  `json:"amount"`
	ReceiverName string `json:"receiverName"`
	NewBalance   int64  `json:"newBalance"`
}

// BalanceResponse represents the API response for an account's balance
type BalanceResponse struct {
	AccountID string `json:"accountId"`
	Balance   int64  `json:"balance"`
}

// TransactionResponse represents a single ledger entry in API responses
type TransactionResponse struct {
	Direction   string    `json:"direction"`
	Amount      int64     `json:"amount"`
	Reference   string    `json:"reference"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TransactionListResponse wraps an account's transaction history
type TransactionListResponse struct {
	AccountID    string                `json:"accountId"`
	Transactions []TransactionResponse `json:"transactions"`
}
