package entity

import (
	"math"

	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
)

// MaxAmountInKobo bounds a single operation's amount so that repeated credits
// cannot overflow an int64 balance in any realistic lifetime.
const MaxAmountInKobo = math.MaxInt64 / 1_000_000

// ValidateAmount checks that an operation amount is positive, at or above the
// given minimum, and small enough to never overflow a balance.
func ValidateAmount(amountInKobo, minimumInKobo int64) error {
	if amountInKobo <= 0 {
		return errs.ErrInvalidAmount
	}
	if amountInKobo < minimumInKobo {
		return errs.ErrAmountBelowMinimum
	}
	if amountInKobo > MaxAmountInKobo {
		return errs.ErrAmountOverflow
	}
	return nil
}
