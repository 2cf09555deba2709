package wallet

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/wallet-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
)

// GetBalance returns the caller's current balance in kobo
func (s *Service) GetBalance(ctx context.Context, accountID uuid.UUID) (int64, error) {
	if accountID == uuid.Nil {
		return 0, errs.ErrInvalidAccountID
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		s.logger.Error("Failed to get account", map[string]any{
			"account_id": accountID.String(),
			"error":      err.Error(),
		})
		return 0, err
	}

	return account.Balance(), nil
}

// GetTransactions returns the caller's transaction history, most recent first
func (s *Service) GetTransactions(ctx context.Context, accountID uuid.UUID) ([]entity.Transaction, error) {
	if accountID == uuid.Nil {
		return nil, errs.ErrInvalidAccountID
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// Stored oldest first; callers want the newest at the top.
	history := make([]entity.Transaction, len(account.Transactions))
	for i := range account.Transactions {
		history[len(history)-1-i] = account.Transactions[i]
	}
	return history, nil
}
