package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/core"
)

// Direction indicates whether a transaction increases or decreases a balance
type Direction string

// Transaction directions
const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// Transaction represents a single ledger entry on an account. Entries are
// append-only; a transfer produces one debit on the sender and one credit on
// the receiver sharing the same reference, and a funding notification
// produces at most one credit per reference system-wide.
type Transaction struct {
	ID          uint64    // Database-assigned identifier
	AccountID   uuid.UUID // Account this entry belongs to
	Direction   Direction // credit or debit
	Amount      int64     // Amount in kobo, always positive
	Reference   string    // Correlates the entry with the operation that produced it
	Description string    // Free-text description shown in history
	CreatedAt   time.Time // When the entry was created
}

// NewCreditTransaction creates a credit entry for the given account
func NewCreditTransaction(
	accountID uuid.UUID,
	amountInKobo int64,
	reference, description string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	return newTransaction(accountID, DirectionCredit, amountInKobo, reference, description, timeProvider)
}

// NewDebitTransaction creates a debit entry for the given account
func NewDebitTransaction(
	accountID uuid.UUID,
	amountInKobo int64,
	reference, description string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	return newTransaction(accountID, DirectionDebit, amountInKobo, reference, description, timeProvider)
}

func newTransaction(
	accountID uuid.UUID,
	direction Direction,
	amountInKobo int64,
	reference, description string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if accountID == uuid.Nil {
		return nil, errs.ErrInvalidAccountID
	}
	if amountInKobo <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if reference == "" {
		return nil, errs.ErrInvalidReference
	}

	return &Transaction{
		AccountID:   accountID,
		Direction:   direction,
		Amount:      amountInKobo,
		Reference:   reference,
		Description: description,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// IsCredit returns true if this entry increases the account's balance
func (t *Transaction) IsCredit() bool {
	return t.Direction == DirectionCredit
}

// IsDebit returns true if this entry decreases the account's balance
func (t *Transaction) IsDebit() bool {
	return t.Direction == DirectionDebit
}
