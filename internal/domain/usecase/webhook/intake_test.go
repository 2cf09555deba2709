package webhook

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
	queueport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/queue"
	coremocks "github.com/amirhossein-jamali/wallet-processor/mocks/port/core"
	queuemocks "github.com/amirhossein-jamali/wallet-processor/mocks/port/queue"
)

const intakeSecret = "sk_test_secret"

func newIntakeFixture(t *testing.T, fixedTime time.Time) (*Intake, *queuemocks.MockCreditQueue) {
	mockQueue := queuemocks.NewMockCreditQueue(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)

	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	intake := NewIntake(NewSignatureVerifier(intakeSecret), mockQueue, mockTime, mockLogger)
	return intake, mockQueue
}

func fundingPayload(event, metadataType, accountID, reference string, amount int64) []byte {
	return []byte(fmt.Sprintf(
		`{"event":%q,"data":{"amount":%d,"reference":%q,"metadata":{"userId":%q,"type":%q}}}`,
		event, amount, reference, accountID, metadataType,
	))
}

func TestIntakeHandle(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	accountID := uuid.New()

	t.Run("Valid funding notification is enqueued", func(t *testing.T) {
		intake, mockQueue := newIntakeFixture(t, fixedTime)

		payload := fundingPayload(EventChargeSuccess, MetadataWalletFund, accountID.String(), "fund_1_x", 20000)
		mockQueue.EXPECT().Enqueue(mock.Anything, queueport.CreditJob{
			AccountID:  accountID,
			Amount:     20000,
			Reference:  "fund_1_x",
			EnqueuedAt: fixedTime,
		}).Return(nil).Once()

		err := intake.Handle(ctx, payload, signPayload(intakeSecret, payload))

		assert.NoError(t, err)
	})

	t.Run("Invalid signature is rejected without enqueueing", func(t *testing.T) {
		intake, _ := newIntakeFixture(t, fixedTime)

		payload := fundingPayload(EventChargeSuccess, MetadataWalletFund, accountID.String(), "fund_1_x", 20000)

		err := intake.Handle(ctx, payload, "deadbeef")

		assert.Equal(t, errs.ErrInvalidSignature, err)
	})

	t.Run("Non charge.success events are acknowledged and dropped", func(t *testing.T) {
		intake, _ := newIntakeFixture(t, fixedTime)

		payload := fundingPayload("transfer.success", MetadataWalletFund, accountID.String(), "fund_1_x", 20000)

		err := intake.Handle(ctx, payload, signPayload(intakeSecret, payload))

		assert.NoError(t, err)
	})

	t.Run("Charges without the wallet funding marker are dropped", func(t *testing.T) {
		intake, _ := newIntakeFixture(t, fixedTime)

		payload := fundingPayload(EventChargeSuccess, "subscription", accountID.String(), "sub_1_x", 20000)

		err := intake.Handle(ctx, payload, signPayload(intakeSecret, payload))

		assert.NoError(t, err)
	})

	t.Run("Invalid account ID in metadata is dropped", func(t *testing.T) {
		intake, _ := newIntakeFixture(t, fixedTime)

		payload := fundingPayload(EventChargeSuccess, MetadataWalletFund, "not-a-uuid", "fund_1_x", 20000)

		err := intake.Handle(ctx, payload, signPayload(intakeSecret, payload))

		assert.NoError(t, err)
	})

	t.Run("Missing reference is dropped", func(t *testing.T) {
		intake, _ := newIntakeFixture(t, fixedTime)

		payload := fundingPayload(EventChargeSuccess, MetadataWalletFund, accountID.String(), "", 20000)

		err := intake.Handle(ctx, payload, signPayload(intakeSecret, payload))

		assert.NoError(t, err)
	})

	t.Run("Signed but unparseable payload is dropped", func(t *testing.T) {
		intake, _ := newIntakeFixture(t, fixedTime)

		payload := []byte("this is not json")

		err := intake.Handle(ctx, payload, signPayload(intakeSecret, payload))

		assert.NoError(t, err)
	})

	t.Run("Queue failure is reported for redelivery", func(t *testing.T) {
		intake, mockQueue := newIntakeFixture(t, fixedTime)

		payload := fundingPayload(EventChargeSuccess, MetadataWalletFund, accountID.String(), "fund_1_x", 20000)
		mockQueue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(errs.ErrQueueUnavailable).Once()

		err := intake.Handle(ctx, payload, signPayload(intakeSecret, payload))

		assert.ErrorIs(t, err, errs.ErrQueueUnavailable)
	})
}
