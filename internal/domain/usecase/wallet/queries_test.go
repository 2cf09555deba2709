package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
)

func TestGetBalance(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	accountID := uuid.New()

	t.Run("Returns the current balance", func(t *testing.T) {
		f := newTransferFixture(t, fixedTime)

		account := accountWithBalance(t, accountID, "ada@example.com", "Ada", 73500, fixedTime)
		f.repo.EXPECT().GetByID(mock.Anything, accountID).Return(account, nil).Once()

		balance, err := f.service.GetBalance(ctx, accountID)

		require.NoError(t, err)
		assert.Equal(t, int64(73500), balance)
	})

	t.Run("Nil account ID", func(t *testing.T) {
		f := newTransferFixture(t, fixedTime)

		balance, err := f.service.GetBalance(ctx, uuid.Nil)

		assert.Equal(t, int64(0), balance)
		assert.Equal(t, errs.ErrInvalidAccountID, err)
	})

	t.Run("Account not found", func(t *testing.T) {
		f := newTransferFixture(t, fixedTime)

		f.repo.EXPECT().GetByID(mock.Anything, accountID).Return(nil, errs.ErrAccountNotFound).Once()

		_, err := f.service.GetBalance(ctx, accountID)

		assert.Equal(t, errs.ErrAccountNotFound, err)
	})
}

func TestGetTransactions(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	accountID := uuid.New()

	t.Run("History is returned most recent first", func(t *testing.T) {
		f := newTransferFixture(t, fixedTime)

		account := accountWithBalance(t, accountID, "ada@example.com", "Ada", 30000, fixedTime)
		account.Transactions = []entity.Transaction{
			{Reference: "fund_1_a", Direction: entity.DirectionCredit, Amount: 10000},
			{Reference: "fund_2_b", Direction: entity.DirectionCredit, Amount: 30000},
			{Reference: "trf_3_c", Direction: entity.DirectionDebit, Amount: 10000},
		}
		f.repo.EXPECT().GetByID(mock.Anything, accountID).Return(account, nil).Once()

		history, err := f.service.GetTransactions(ctx, accountID)

		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, "trf_3_c", history[0].Reference)
		assert.Equal(t, "fund_2_b", history[1].Reference)
		assert.Equal(t, "fund_1_a", history[2].Reference)
	})

	t.Run("Empty history", func(t *testing.T) {
		f := newTransferFixture(t, fixedTime)

		account := accountWithBalance(t, accountID, "ada@example.com", "Ada", 0, fixedTime)
		f.repo.EXPECT().GetByID(mock.Anything, accountID).Return(account, nil).Once()

		history, err := f.service.GetTransactions(ctx, accountID)

		require.NoError(t, err)
		assert.Empty(t, history)
	})
}
