package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
)

func TestValidateAmount(t *testing.T) {
	const minimum = int64(5000)

	testCases := []struct {
		name     string
		amount   int64
		expected error
	}{
		{"Valid amount at minimum", 5000, nil},
		{"Valid amount above minimum", 100000, nil},
		{"Zero amount", 0, errs.ErrInvalidAmount},
		{"Negative amount", -5000, errs.ErrInvalidAmount},
		{"Below minimum", 4999, errs.ErrAmountBelowMinimum},
		{"At overflow bound", MaxAmountInKobo, nil},
		{"Above overflow bound", MaxAmountInKobo + 1, errs.ErrAmountOverflow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAmount(tc.amount, minimum)
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tc.expected, err)
			}
		})
	}
}
