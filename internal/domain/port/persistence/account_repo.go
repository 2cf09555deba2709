package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/wallet-processor/internal/domain/entity"
)

// AccountRepository defines the ledger store contract. The store guarantees
// per-call atomicity (a Save either fully commits the balance update and all
// appended transactions, or none of it) but does NOT serialize concurrent
// writers to the same account; the lock manager does that, layered on top.
type AccountRepository interface {
	// GetByID retrieves an account with its transaction history
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account with the given ID exists
	// - ErrDatabaseConnection: If the store is unreachable
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// GetByEmail retrieves an account by its unique email.
	// Used to resolve transfer receivers.
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account with the given email exists
	// - ErrDatabaseConnection: If the store is unreachable
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account
	//
	// Possible errors:
	// - ErrDuplicateAccount: If an account with the same email already exists
	// - ErrDatabaseConnection: If the store is unreachable
	Create(ctx context.Context, account *entity.Account) error

	// Save persists the account's updated balance together with the given new
	// transaction entries in a single atomic write.
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrDuplicateReference: If a new entry's reference violates uniqueness
	// - ErrDatabaseConnection: If the store is unreachable
	Save(ctx context.Context, account *entity.Account, newTransactions ...*entity.Transaction) error

	// SaveTransfer persists both sides of a transfer - the sender's debited
	// balance plus debit entry and the receiver's credited balance plus credit
	// entry - in ONE store transaction, so a crash can never leave a debited
	// sender without the matching receiver credit.
	//
	// Possible errors:
	// - ErrAccountNotFound: If either account doesn't exist
	// - ErrDatabaseConnection: If the store is unreachable
	SaveTransfer(
		ctx context.Context,
		sender *entity.Account, debit *entity.Transaction,
		receiver *entity.Account, credit *entity.Transaction,
	) error

	// ReferenceExists reports whether any transaction system-wide carries the
	// given reference. Backs the anti-double-credit invariant.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the store is unreachable
	ReferenceExists(ctx context.Context, reference string) (bool, error)
}
