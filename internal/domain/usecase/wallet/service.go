package wallet

import (
	"time"

	coreport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/core"
	gatewayport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/gateway"
	lockport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/lock"
	"github.com/amirhossein-jamali/wallet-processor/internal/domain/port/persistence"
)

// Default policy values, matching the reference policy: the transfer lock must
// outlive the worst-case transfer latency, the minimums reject dust amounts.
const (
	DefaultTransferLockTTL = 15 * time.Second
	DefaultMinTransferKobo = 5_000  // NGN 50
	DefaultMinFundingKobo  = 10_000 // NGN 100
)

// Service implements the wallet operations: peer-to-peer transfers under the
// sender's distributed lock, funding initiation against the payment gateway,
// and balance/history queries.
type Service struct {
	accounts     persistence.AccountRepository
	locks        lockport.Manager
	gateway      gatewayport.PaymentGateway
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	transferLockTTL time.Duration
	minTransfer     int64
	minFunding      int64
}

// NewService creates a wallet service with default policy values
func NewService(
	accounts persistence.AccountRepository,
	locks lockport.Manager,
	gateway gatewayport.PaymentGateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		accounts:        accounts,
		locks:           locks,
		gateway:         gateway,
		timeProvider:    timeProvider,
		logger:          logger,
		transferLockTTL: DefaultTransferLockTTL,
		minTransfer:     DefaultMinTransferKobo,
		minFunding:      DefaultMinFundingKobo,
	}
}

// WithTransferLockTTL overrides the transfer lock TTL
func (s *Service) WithTransferLockTTL(ttl time.Duration) *Service {
	if ttl > 0 {
		s.transferLockTTL = ttl
	}
	return s
}

// WithMinimums overrides the minimum transfer and funding amounts (in kobo)
func (s *Service) WithMinimums(minTransfer, minFunding int64) *Service {
	if minTransfer > 0 {
		s.minTransfer = minTransfer
	}
	if minFunding > 0 {
		s.minFunding = minFunding
	}
	return s
}
