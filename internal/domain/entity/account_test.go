package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/wallet-processor/mocks/port/core"
)

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid account creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		account, err := NewAccount("ada@example.com", "Ada", mockTime)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, account.ID)
		assert.Equal(t, "ada@example.com", account.Email)
		assert.Equal(t, "Ada", account.Name)
		assert.Equal(t, int64(0), account.Balance())
		assert.Equal(t, fixedTime, account.CreatedAt)
		assert.Equal(t, fixedTime, account.UpdatedAt)
	})

	t.Run("Empty email", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		account, err := NewAccount("", "Ada", mockTime)

		assert.Nil(t, account)
		assert.Equal(t, errs.ErrInvalidEmail, err)
	})
}

func TestAccountBalanceOperations(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	newAccount := func(t *testing.T, balance int64) (*Account, *coremocks.MockTimeProvider) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		account := &Account{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"}
		account.SetBalance(balance, mockTime)
		return account, mockTime
	}

	t.Run("CanDebit with sufficient balance", func(t *testing.T) {
		account, _ := newAccount(t, 50000)

		assert.True(t, account.CanDebit(50000))
		assert.True(t, account.CanDebit(20000))
		assert.False(t, account.CanDebit(50001))
	})

	t.Run("Debit reduces balance", func(t *testing.T) {
		account, _ := newAccount(t, 50000)

		err := account.Debit(20000, mustTimeProvider(t, fixedTime))

		require.NoError(t, err)
		assert.Equal(t, int64(30000), account.Balance())
	})

	t.Run("Debit with insufficient funds leaves balance untouched", func(t *testing.T) {
		account, _ := newAccount(t, 10000)

		err := account.Debit(10001, mustTimeProvider(t, fixedTime))

		assert.Equal(t, errs.ErrInsufficientFunds, err)
		assert.Equal(t, int64(10000), account.Balance())
	})

	t.Run("Debit of the exact balance reaches zero, never negative", func(t *testing.T) {
		account, _ := newAccount(t, 10000)

		err := account.Debit(10000, mustTimeProvider(t, fixedTime))

		require.NoError(t, err)
		assert.Equal(t, int64(0), account.Balance())
	})

	t.Run("Credit increases balance", func(t *testing.T) {
		account, _ := newAccount(t, 10000)

		account.Credit(25000, mustTimeProvider(t, fixedTime))

		assert.Equal(t, int64(35000), account.Balance())
	})
}

func TestAccountHasReference(t *testing.T) {
	accountID := uuid.New()
	account := &Account{
		ID: accountID,
		Transactions: []Transaction{
			{AccountID: accountID, Direction: DirectionCredit, Amount: 10000, Reference: "fund_1_a"},
			{AccountID: accountID, Direction: DirectionDebit, Amount: 5000, Reference: "trf_2_b"},
		},
	}

	assert.True(t, account.HasReference("fund_1_a"))
	assert.True(t, account.HasReference("trf_2_b"))
	assert.False(t, account.HasReference("fund_3_c"))
	assert.False(t, account.HasReference(""))
}

func mustTimeProvider(t *testing.T, fixed time.Time) *coremocks.MockTimeProvider {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixed).Maybe()
	return mockTime
}
