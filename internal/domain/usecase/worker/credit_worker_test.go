package worker

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
	queueport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/queue"
	coremocks "github.com/amirhossein-jamali/wallet-processor/mocks/port/core"
	lockmocks "github.com/amirhossein-jamali/wallet-processor/mocks/port/lock"
	persistencemocks "github.com/amirhossein-jamali/wallet-processor/mocks/port/persistence"
)

type workerFixture struct {
	repo   *persistencemocks.MockAccountRepository
	locks  *lockmocks.MockManager
	time   *coremocks.MockTimeProvider
	logger *coremocks.MockLogger
	worker *CreditWorker
}

func newWorkerFixture(t *testing.T, fixedTime time.Time) *workerFixture {
	f := &workerFixture{
		repo:   persistencemocks.NewMockAccountRepository(t),
		locks:  lockmocks.NewMockManager(t),
		time:   coremocks.NewMockTimeProvider(t),
		logger: coremocks.NewMockLogger(t),
	}
	f.time.EXPECT().Now().Return(fixedTime).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	f.worker = NewCreditWorker(f.repo, f.locks, f.time, f.logger)
	return f
}

func creditedAccount(t *testing.T, id uuid.UUID, balance int64, at time.Time, refs ...string) *entity.Account {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(at).Maybe()

	account := &entity.Account{ID: id, Email: "ada@example.com", Name: "Ada"}
	account.SetBalance(balance, mockTime)
	for _, ref := range refs {
		account.Transactions = append(account.Transactions, entity.Transaction{
			AccountID: id,
			Direction: entity.DirectionCredit,
			Amount:    10000,
			Reference: ref,
		})
	}
	return account
}

func TestCreditWorkerProcess(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	accountID := uuid.New()

	job := queueport.CreditJob{
		AccountID:  accountID,
		Amount:     20000,
		Reference:  "fund_1700000000000_x",
		EnqueuedAt: fixedTime,
	}

	t.Run("First delivery credits the account once", func(t *testing.T) {
		f := newWorkerFixture(t, fixedTime)

		account := creditedAccount(t, accountID, 5000, fixedTime)

		f.locks.EXPECT().Acquire(mock.Anything, FundingLockKey(accountID), DefaultFundingLockTTL).
			Return("token-1", nil).Once()
		f.repo.EXPECT().GetByID(mock.Anything, accountID).Return(account, nil).Once()
		f.repo.EXPECT().ReferenceExists(mock.Anything, job.Reference).Return(false, nil).Once()
		f.repo.EXPECT().Save(mock.Anything,
			mock.MatchedBy(func(a *entity.Account) bool {
				return a.ID == accountID && a.Balance() == 25000
			}),
			mock.MatchedBy(func(credit *entity.Transaction) bool {
				return credit.IsCredit() && credit.Amount == 20000 &&
					credit.Reference == job.Reference && credit.Description == CreditDescription
			}),
		).Return(nil).Once()
		f.locks.EXPECT().Release(mock.Anything, FundingLockKey(accountID), "token-1").Return(nil).Once()

		err := f.worker.Process(ctx, job)

		require.NoError(t, err)
	})

	t.Run("Redelivery with the reference already in history is a no-op", func(t *testing.T) {
		f := newWorkerFixture(t, fixedTime)

		account := creditedAccount(t, accountID, 25000, fixedTime, job.Reference)

		f.locks.EXPECT().Acquire(mock.Anything, FundingLockKey(accountID), DefaultFundingLockTTL).
			Return("token-2", nil).Once()
		f.repo.EXPECT().GetByID(mock.Anything, accountID).Return(account, nil).Once()
		f.locks.EXPECT().Release(mock.Anything, FundingLockKey(accountID), "token-2").Return(nil).Once()

		err := f.worker.Process(ctx, job)

		require.NoError(t, err)
	})

	t.Run("Reference existing system-wide is a no-op", func(t *testing.T) {
		f := newWorkerFixture(t, fixedTime)

		account := creditedAccount(t, accountID, 5000, fixedTime)

		f.locks.EXPECT().Acquire(mock.Anything, FundingLockKey(accountID), DefaultFundingLockTTL).
			Return("token-3", nil).Once()
		f.repo.EXPECT().GetByID(mock.Anything, accountID).Return(account, nil).Once()
		f.repo.EXPECT().ReferenceExists(mock.Anything, job.Reference).Return(true, nil).Once()
		f.locks.EXPECT().Release(mock.Anything, FundingLockKey(accountID), "token-3").Return(nil).Once()

		err := f.worker.Process(ctx, job)

		require.NoError(t, err)
	})

	t.Run("Lock contention skips the delivery without error", func(t *testing.T) {
		f := newWorkerFixture(t, fixedTime)

		f.locks.EXPECT().Acquire(mock.Anything, FundingLockKey(accountID), DefaultFundingLockTTL).
			Return("", errs.ErrLockNotAcquired).Once()

		err := f.worker.Process(ctx, job)

		require.NoError(t, err)
	})

	t.Run("Lock backend failure is reported for redelivery", func(t *testing.T) {
		f := newWorkerFixture(t, fixedTime)

		f.locks.EXPECT().Acquire(mock.Anything, FundingLockKey(accountID), DefaultFundingLockTTL).
			Return("", errs.ErrLockBackend).Once()

		err := f.worker.Process(ctx, job)

		assert.ErrorIs(t, err, errs.ErrLockBackend)
	})

	t.Run("Unknown account is dropped", func(t *testing.T) {
		f := newWorkerFixture(t, fixedTime)

		f.locks.EXPECT().Acquire(mock.Anything, FundingLockKey(accountID), DefaultFundingLockTTL).
			Return("token-4", nil).Once()
		f.repo.EXPECT().GetByID(mock.Anything, accountID).Return(nil, errs.ErrAccountNotFound).Once()
		f.locks.EXPECT().Release(mock.Anything, FundingLockKey(accountID), "token-4").Return(nil).Once()

		err := f.worker.Process(ctx, job)

		require.NoError(t, err)
	})

	t.Run("Duplicate reference on save is absorbed", func(t *testing.T) {
		f := newWorkerFixture(t, fixedTime)

		account := creditedAccount(t, accountID, 5000, fixedTime)

		f.locks.EXPECT().Acquire(mock.Anything, FundingLockKey(accountID), DefaultFundingLockTTL).
			Return("token-5", nil).Once()
		f.repo.EXPECT().GetByID(mock.Anything, accountID).Return(account, nil).Once()
		f.repo.EXPECT().ReferenceExists(mock.Anything, job.Reference).Return(false, nil).Once()
		f.repo.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).
			Return(errs.NewDuplicateReferenceError(accountID, job.Reference)).Once()
		f.locks.EXPECT().Release(mock.Anything, FundingLockKey(accountID), "token-5").Return(nil).Once()

		err := f.worker.Process(ctx, job)

		require.NoError(t, err)
	})

	t.Run("Store failure on save is reported for redelivery", func(t *testing.T) {
		f := newWorkerFixture(t, fixedTime)

		account := creditedAccount(t, accountID, 5000, fixedTime)

		f.locks.EXPECT().Acquire(mock.Anything, FundingLockKey(accountID), DefaultFundingLockTTL).
			Return("token-6", nil).Once()
		f.repo.EXPECT().GetByID(mock.Anything, accountID).Return(account, nil).Once()
		f.repo.EXPECT().ReferenceExists(mock.Anything, job.Reference).Return(false, nil).Once()
		f.repo.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).
			Return(errs.ErrDatabaseConnection).Once()
		f.locks.EXPECT().Release(mock.Anything, FundingLockKey(accountID), "token-6").Return(nil).Once()

		err := f.worker.Process(ctx, job)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestFundingLockKey(t *testing.T) {
	accountID := uuid.MustParse("a81bc81b-dead-4e5d-abff-90865d1e13b1")
	assert.Equal(t, "fund_lock:a81bc81b-dead-4e5d-abff-90865d1e13b1", FundingLockKey(accountID))
}
