package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/wallet-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
)

// TransferResult is returned to the caller after a successful transfer
type TransferResult struct {
	NewBalance   int64  // Sender's balance after the debit, in kobo
	Amount       int64  // Amount moved, in kobo
	ReceiverName string // Receiver's display name
	Reference    string // Reference shared by both ledger entries
}

// Transfer moves funds from the sender to the account resolved by
// receiverEmail. The sender's balance is checked twice: once against the
// pre-lock read as a cheap reject, and again against a fresh read under the
// sender's transfer lock, because time passes between the cheap check and
// lock acquisition. Both ledger entries and both balance updates are saved
// in a single store transaction.
func (s *Service) Transfer(
	ctx context.Context,
	senderID uuid.UUID,
	receiverEmail string,
	amountInKobo int64,
) (*TransferResult, error) {
	if senderID == uuid.Nil {
		return nil, errs.ErrInvalidAccountID
	}
	if err := entity.ValidateAmount(amountInKobo, s.minTransfer); err != nil {
		return nil, err
	}
	if receiverEmail == "" {
		return nil, errs.ErrInvalidEmail
	}

	// Fast path: reject before taking a lock when the pre-lock read already
	// shows insufficient funds. Never authoritative for the mutation.
	sender, err := s.accounts.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if !sender.CanDebit(amountInKobo) {
		return nil, errs.NewInsufficientFundsError(senderID, amountInKobo, sender.Balance())
	}

	receiver, err := s.accounts.GetByEmail(ctx, receiverEmail)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return nil, errs.ErrReceiverNotFound
		}
		return nil, err
	}
	if receiver.ID == senderID {
		return nil, errs.ErrSelfTransfer
	}

	// Serialize conflicting transfers from this sender. Contention is a
	// transient condition, not a validation failure.
	lockKey := TransferLockKey(senderID)
	token, err := s.locks.Acquire(ctx, lockKey, s.transferLockTTL)
	if err != nil {
		if errors.Is(err, errs.ErrLockNotAcquired) {
			s.logger.Warn("Transfer lock contention", map[string]any{
				"sender_id": senderID.String(),
				"lock_key":  lockKey,
			})
			return nil, errs.ErrTransferInProgress
		}
		return nil, err
	}
	// The lock must never leak, whatever exit path this request takes.
	defer func() {
		if releaseErr := s.locks.Release(ctx, lockKey, token); releaseErr != nil {
			s.logger.Warn("Failed to release transfer lock, it will expire via TTL", map[string]any{
				"lock_key": lockKey,
				"error":    releaseErr.Error(),
			})
		}
	}()

	// Re-read the sender under the lock; the pre-lock value may be stale
	// relative to operations that completed in between.
	freshSender, err := s.accounts.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if !freshSender.CanDebit(amountInKobo) {
		return nil, errs.NewInsufficientFundsError(senderID, amountInKobo, freshSender.Balance())
	}

	if err := freshSender.Debit(amountInKobo, s.timeProvider); err != nil {
		return nil, errs.NewInsufficientFundsError(senderID, amountInKobo, freshSender.Balance())
	}
	receiver.Credit(amountInKobo, s.timeProvider)

	reference := TransferReference(s.timeProvider.Now(), senderID)

	debit, err := entity.NewDebitTransaction(
		freshSender.ID, amountInKobo, reference, "Sent to "+receiver.Name, s.timeProvider)
	if err != nil {
		return nil, err
	}
	credit, err := entity.NewCreditTransaction(
		receiver.ID, amountInKobo, reference, "From "+freshSender.Name, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.SaveTransfer(ctx, freshSender, debit, receiver, credit); err != nil {
		return nil, errs.NewTransferError(senderID, receiverEmail, amountInKobo, "store write failed", err)
	}

	s.logger.Info("Transfer completed", map[string]any{
		"sender_id":   senderID.String(),
		"receiver_id": receiver.ID.String(),
		"amount":      amountInKobo,
		"reference":   reference,
	})

	return &TransferResult{
		NewBalance:   freshSender.Balance(),
		Amount:       amountInKobo,
		ReceiverName: receiver.Name,
		Reference:    reference,
	}, nil
}

// TransferLockKey builds the lock key serializing transfers from one sender
func TransferLockKey(senderID uuid.UUID) string {
	return "transfer_lock:" + senderID.String()
}

// TransferReference builds the reference shared by both legs of a transfer:
// trf_<unix-millis>_<last 6 characters of the sender's id>
func TransferReference(now time.Time, senderID uuid.UUID) string {
	id := senderID.String()
	return fmt.Sprintf("trf_%d_%s", now.UnixMilli(), id[len(id)-6:])
}
