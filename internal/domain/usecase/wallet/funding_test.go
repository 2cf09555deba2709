package wallet

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
	gatewayport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/gateway"
)

func TestInitiateFunding(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	accountID := uuid.New()

	t.Run("Successful funding initiation", func(t *testing.T) {
		f := newTransferFixture(t, fixedTime)

		account := accountWithBalance(t, accountID, "ada@example.com", "Ada", 0, fixedTime)
		f.repo.EXPECT().GetByID(mock.Anything, accountID).Return(account, nil).Once()

		expectedRef := FundingReference(fixedTime, accountID)
		f.gateway.EXPECT().InitializeFunding(mock.Anything, "ada@example.com", int64(20000), expectedRef, accountID.String()).
			Return(&gatewayport.FundingSession{
				AuthorizationURL: "https://checkout.paystack.com/abc123",
				AccessCode:       "abc123",
				Reference:        expectedRef,
			}, nil).Once()

		result, err := f.service.InitiateFunding(ctx, accountID, 20000)

		require.NoError(t, err)
		assert.Equal(t, "https://checkout.paystack.com/abc123", result.AuthorizationURL)
		assert.Equal(t, expectedRef, result.Reference)
	})

	t.Run("Amount below funding minimum", func(t *testing.T) {
		f := newTransferFixture(t, fixedTime)

		result, err := f.service.InitiateFunding(ctx, accountID, 9999)

		assert.Nil(t, result)
		assert.Equal(t, errs.ErrAmountBelowMinimum, err)
	})

	t.Run("Nil account ID", func(t *testing.T) {
		f := newTransferFixture(t, fixedTime)

		result, err := f.service.InitiateFunding(ctx, uuid.Nil, 20000)

		assert.Nil(t, result)
		assert.Equal(t, errs.ErrInvalidAccountID, err)
	})

	t.Run("Account not found", func(t *testing.T) {
		f := newTransferFixture(t, fixedTime)

		f.repo.EXPECT().GetByID(mock.Anything, accountID).Return(nil, errs.ErrAccountNotFound).Once()

		result, err := f.service.InitiateFunding(ctx, accountID, 20000)

		assert.Nil(t, result)
		assert.Equal(t, errs.ErrAccountNotFound, err)
	})

	t.Run("Gateway failure is passed through", func(t *testing.T) {
		f := newTransferFixture(t, fixedTime)

		account := accountWithBalance(t, accountID, "ada@example.com", "Ada", 0, fixedTime)
		f.repo.EXPECT().GetByID(mock.Anything, accountID).Return(account, nil).Once()
		f.gateway.EXPECT().InitializeFunding(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.ErrGatewayUnavailable).Once()

		result, err := f.service.InitiateFunding(ctx, accountID, 20000)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})
}

func TestFundingReference(t *testing.T) {
	accountID := uuid.MustParse("a81bc81b-dead-4e5d-abff-90865d1e13b1")
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	reference := FundingReference(now, accountID)

	assert.Equal(t, fmt.Sprintf("fund_%d_%s", now.UnixMilli(), accountID.String()), reference)
}
