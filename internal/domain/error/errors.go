package error

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount      = 4001
	CodeAmountBelowMinimum = 4002
	CodeInvalidAccountID   = 4003
	CodeSelfTransfer       = 4004
	CodeInsufficientFunds  = 4005
	CodeAmountOverflow     = 4006
	CodeInvalidRequest     = 4007
	CodeInvalidSignature   = 4010
	CodeAccountNotFound    = 4040
	CodeReceiverNotFound   = 4041
	CodeDuplicateReference = 4090
	CodeTransferInProgress = 4290
	CodeFundingInProgress  = 4291

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is zero, negative or malformed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAmountBelowMinimum is returned when an amount is below the operation's minimum
	ErrAmountBelowMinimum = errors.New("amount is below the minimum for this operation")

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidAccountID is returned when the account ID is missing or not a valid UUID
	ErrInvalidAccountID = errors.New("invalid account ID")

	// ErrInvalidEmail is returned when an email is empty or malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidReference is returned when a transaction reference is empty
	ErrInvalidReference = errors.New("transaction reference cannot be empty")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrReceiverNotFound is returned when the transfer receiver cannot be resolved
	ErrReceiverNotFound = errors.New("receiver not found")

	// ErrSelfTransfer is returned when sender and receiver are the same account
	ErrSelfTransfer = errors.New("cannot transfer to yourself")

	// ErrInsufficientFunds is returned when a debit would make the balance negative
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrTransferInProgress is returned when the sender's transfer lock is held
	// by another operation. Transient: the caller should retry after the lock TTL.
	ErrTransferInProgress = errors.New("transfer already in progress")

	// ErrFundingInProgress is returned when the account's funding lock is held
	// by another credit delivery
	ErrFundingInProgress = errors.New("funding already in progress")

	// ErrDuplicateReference is returned when a transaction with the same funding
	// reference already exists. Signals a redelivery, not a fault.
	ErrDuplicateReference = errors.New("transaction with this reference already exists")

	// ErrLockNotAcquired is returned by the lock manager when the key is
	// already held by another operation
	ErrLockNotAcquired = errors.New("lock not acquired")

	// ErrInvalidSignature is returned when a gateway notification fails verification
	ErrInvalidSignature = errors.New("invalid gateway signature")

	// ErrDuplicateAccount is returned when trying to create an account that already exists
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrDatabaseConnection is returned when there's a problem reaching the ledger store
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrLockBackend is returned when the lock backend is unreachable
	ErrLockBackend = errors.New("lock backend error")

	// ErrQueueUnavailable is returned when the credit queue cannot accept a job
	ErrQueueUnavailable = errors.New("credit queue unavailable")

	// ErrGatewayUnavailable is returned when the payment gateway cannot be reached
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrAmountBelowMinimum):
		return CodeAmountBelowMinimum
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidAccountID), errors.Is(err, ErrInvalidEmail):
		return CodeInvalidAccountID
	case errors.Is(err, ErrSelfTransfer):
		return CodeSelfTransfer
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidSignature):
		return CodeInvalidSignature
	case errors.Is(err, ErrReceiverNotFound):
		return CodeReceiverNotFound
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrDuplicateReference):
		return CodeDuplicateReference
	case errors.Is(err, ErrTransferInProgress):
		return CodeTransferInProgress
	case errors.Is(err, ErrFundingInProgress):
		return CodeFundingInProgress
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a rejected debit
type InsufficientFundsError struct {
	AccountID uuid.UUID
	Required  int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for account %s: required %d, available %d",
		e.AccountID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"account_id": e.AccountID.String(),
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(accountID uuid.UUID, required, available int64) error {
	return &InsufficientFundsError{
		AccountID: accountID,
		Required:  required,
		Available: available,
	}
}

// TransferError represents an error raised while executing a transfer
type TransferError struct {
	SenderID      uuid.UUID
	ReceiverEmail string
	Amount        int64
	Reason        string
	Err           error
}

// Error implements the error interface for TransferError
func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer failed for sender %s (receiver: %s, amount: %d): %s - %v",
		e.SenderID, e.ReceiverEmail, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransferError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransferError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "transfer_error",
		"sender_id":      e.SenderID.String(),
		"receiver_email": e.ReceiverEmail,
		"amount":         e.Amount,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewTransferError creates a detailed transfer error
func NewTransferError(senderID uuid.UUID, receiverEmail string, amount int64, reason string, err error) error {
	return &TransferError{
		SenderID:      senderID,
		ReceiverEmail: receiverEmail,
		Amount:        amount,
		Reason:        reason,
		Err:           err,
	}
}

// DuplicateReferenceError provides detailed information about a redelivered credit
type DuplicateReferenceError struct {
	AccountID uuid.UUID
	Reference string
}

// Error implements the error interface
func (e *DuplicateReferenceError) Error() string {
	return fmt.Sprintf("duplicate reference detected: reference=%s for account %s",
		e.Reference, e.AccountID)
}

// Is checks if the target error is an ErrDuplicateReference
func (e *DuplicateReferenceError) Is(target error) bool {
	return target == ErrDuplicateReference
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateReferenceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duplicate_reference",
		"account_id": e.AccountID.String(),
		"reference":  e.Reference,
		"error_code": CodeDuplicateReference,
	}
}

// NewDuplicateReferenceError creates a new detailed duplicate reference error
func NewDuplicateReferenceError(accountID uuid.UUID, reference string) error {
	return &DuplicateReferenceError{
		AccountID: accountID,
		Reference: reference,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsDuplicateReferenceError checks if the error is a duplicate reference error
func IsDuplicateReferenceError(err error) bool {
	return errors.Is(err, ErrDuplicateReference)
}

// IsContentionError checks if the error signals that a lock was not acquired
func IsContentionError(err error) bool {
	return errors.Is(err, ErrTransferInProgress) || errors.Is(err, ErrFundingInProgress)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrReceiverNotFound)
}

// IsValidationError checks if the error should be surfaced as a 400 to the caller
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrAmountBelowMinimum) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrInvalidAccountID) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrSelfTransfer) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsInfrastructureError checks if the error indicates an unreachable backend
func IsInfrastructureError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection) ||
		errors.Is(err, ErrLockBackend) ||
		errors.Is(err, ErrQueueUnavailable) ||
		errors.Is(err, ErrGatewayUnavailable)
}
