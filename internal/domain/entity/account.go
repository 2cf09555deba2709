package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/core"
)

// Account represents a user's wallet account with a balance and a
// transaction history. The balance is stored in kobo (minor currency units)
// to avoid floating point precision issues and is private so that every
// mutation goes through a method that preserves the non-negative invariant.
type Account struct {
	ID        uuid.UUID // Unique identifier for the account
	Email     string    // Unique email used for receiver lookups
	Name      string    // Display name shown to transfer counterparties
	balance   int64     // Balance in kobo (private)
	CreatedAt time.Time // When the account was created
	UpdatedAt time.Time // When the account was last updated

	// Transactions holds the account's history in insertion order
	// (oldest first). Repositories hydrate it on load.
	Transactions []Transaction
}

// NewAccount creates a new account with a zero balance
func NewAccount(email, name string, timeProvider coreport.TimeProvider) (*Account, error) {
	if email == "" {
		return nil, errs.ErrInvalidEmail
	}

	now := timeProvider.Now()
	return &Account{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Balance returns the current balance in kobo
func (a *Account) Balance() int64 {
	return a.balance
}

// SetBalance updates the balance directly (for internal use, like repositories
// hydrating an account from storage)
func (a *Account) SetBalance(balanceInKobo int64, timeProvider coreport.TimeProvider) {
	a.balance = balanceInKobo
	a.UpdatedAt = timeProvider.Now()
}

// CanDebit checks if the account has enough balance for a deduction
func (a *Account) CanDebit(amountInKobo int64) bool {
	return a.balance >= amountInKobo
}

// Debit subtracts the amount from the balance if sufficient funds exist.
// Returns ErrInsufficientFunds otherwise; the balance never goes negative.
func (a *Account) Debit(amountInKobo int64, timeProvider coreport.TimeProvider) error {
	if a.balance < amountInKobo {
		return errs.ErrInsufficientFunds
	}

	a.balance -= amountInKobo
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// Credit adds the amount to the balance
func (a *Account) Credit(amountInKobo int64, timeProvider coreport.TimeProvider) {
	a.balance += amountInKobo
	a.UpdatedAt = timeProvider.Now()
}

// HasReference reports whether any transaction in the loaded history carries
// the given reference. Used as the idempotency checkpoint for funding credits.
func (a *Account) HasReference(reference string) bool {
	for i := range a.Transactions {
		if a.Transactions[i].Reference == reference {
			return true
		}
	}
	return false
}
