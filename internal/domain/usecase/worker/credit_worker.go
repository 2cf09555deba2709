package worker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/wallet-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/core"
	lockport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/lock"
	"github.com/amirhossein-jamali/wallet-processor/internal/domain/port/persistence"
	queueport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/queue"
)

// DefaultFundingLockTTL bounds how long a crashed delivery can block the next
// one for the same account
const DefaultFundingLockTTL = 10 * time.Second

// CreditDescription is the history line attached to funding credits
const CreditDescription = "Wallet funding via Paystack"

// CreditWorker applies queued funding credits. Deliveries are at-least-once,
// so every mutation is guarded twice: the per-account funding lock serializes
// concurrent deliveries, and the reference check makes a redelivered job a
// no-op once a transaction with its reference exists.
type CreditWorker struct {
	accounts     persistence.AccountRepository
	locks        lockport.Manager
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	fundingLockTTL time.Duration
}

// NewCreditWorker creates a credit worker with the default funding lock TTL
func NewCreditWorker(
	accounts persistence.AccountRepository,
	locks lockport.Manager,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *CreditWorker {
	return &CreditWorker{
		accounts:       accounts,
		locks:          locks,
		timeProvider:   timeProvider,
		logger:         logger,
		fundingLockTTL: DefaultFundingLockTTL,
	}
}

// WithFundingLockTTL overrides the funding lock TTL
func (w *CreditWorker) WithFundingLockTTL(ttl time.Duration) *CreditWorker {
	if ttl > 0 {
		w.fundingLockTTL = ttl
	}
	return w
}

// Process applies one delivered credit job. A nil return acknowledges the
// delivery (applied, already applied, or permanently unprocessable); a
// non-nil return reports the job as failed so the queue's own retry policy
// takes over - the worker never retries in-process.
func (w *CreditWorker) Process(ctx context.Context, job queueport.CreditJob) error {
	lockKey := FundingLockKey(job.AccountID)

	token, err := w.locks.Acquire(ctx, lockKey, w.fundingLockTTL)
	if err != nil {
		if errors.Is(err, errs.ErrLockNotAcquired) {
			// Another delivery of this account's credit is in flight; it will
			// complete the effect or the broker will redeliver this one.
			w.logger.Info("Funding already processing for account, skipping delivery", map[string]any{
				"account_id": job.AccountID.String(),
				"reference":  job.Reference,
			})
			return nil
		}
		return err
	}
	defer func() {
		if releaseErr := w.locks.Release(ctx, lockKey, token); releaseErr != nil {
			w.logger.Warn("Failed to release funding lock, it will expire via TTL", map[string]any{
				"lock_key": lockKey,
				"error":    releaseErr.Error(),
			})
		}
	}()

	account, err := w.accounts.GetByID(ctx, job.AccountID)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			w.logger.Warn("Dropping credit job for unknown account", map[string]any{
				"account_id": job.AccountID.String(),
				"reference":  job.Reference,
			})
			return nil
		}
		return err
	}

	// Idempotency checkpoint: once a transaction with this reference exists,
	// the job is terminally processed regardless of delivery count.
	if account.HasReference(job.Reference) {
		w.logger.Debug("Credit already applied, skipping", map[string]any{
			"account_id": job.AccountID.String(),
			"reference":  job.Reference,
		})
		return nil
	}
	applied, err := w.accounts.ReferenceExists(ctx, job.Reference)
	if err != nil {
		return err
	}
	if applied {
		w.logger.Debug("Reference already exists system-wide, skipping", map[string]any{
			"reference": job.Reference,
		})
		return nil
	}

	account.Credit(job.Amount, w.timeProvider)
	credit, err := entity.NewCreditTransaction(
		account.ID, job.Amount, job.Reference, CreditDescription, w.timeProvider)
	if err != nil {
		// Malformed job: retrying cannot fix it, acknowledge and drop.
		w.logger.Error("Dropping malformed credit job", map[string]any{
			"account_id": job.AccountID.String(),
			"reference":  job.Reference,
			"error":      err.Error(),
		})
		return nil
	}

	if err := w.accounts.Save(ctx, account, credit); err != nil {
		if errs.IsDuplicateReferenceError(err) {
			// A concurrent delivery won the race after our check; the credit
			// exists exactly once, which is the outcome we wanted.
			return nil
		}
		return err
	}

	w.logger.Info("Credited account", map[string]any{
		"account_id": account.ID.String(),
		"amount":     job.Amount,
		"reference":  job.Reference,
		"balance":    account.Balance(),
	})
	return nil
}

// FundingLockKey builds the lock key serializing funding credits per account
func FundingLockKey(accountID uuid.UUID) string {
	return "fund_lock:" + accountID.String()
}
