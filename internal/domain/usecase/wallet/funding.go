package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/wallet-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
)

// FundingResult carries the gateway-hosted redirect handle and the locally
// generated reference the later notification must echo back
type FundingResult struct {
	AuthorizationURL string
	Reference        string
}

// InitiateFunding starts a hosted checkout for the caller. No balance is
// mutated here; the credit is applied asynchronously once the gateway's
// signed notification arrives and the queued job is processed.
func (s *Service) InitiateFunding(
	ctx context.Context,
	accountID uuid.UUID,
	amountInKobo int64,
) (*FundingResult, error) {
	if accountID == uuid.Nil {
		return nil, errs.ErrInvalidAccountID
	}
	if err := entity.ValidateAmount(amountInKobo, s.minFunding); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	reference := FundingReference(s.timeProvider.Now(), accountID)

	session, err := s.gateway.InitializeFunding(ctx, account.Email, amountInKobo, reference, accountID.String())
	if err != nil {
		s.logger.Error("Payment initialization failed", map[string]any{
			"account_id": accountID.String(),
			"amount":     amountInKobo,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Funding initiated", map[string]any{
		"account_id": accountID.String(),
		"amount":     amountInKobo,
		"reference":  reference,
	})

	return &FundingResult{
		AuthorizationURL: session.AuthorizationURL,
		Reference:        reference,
	}, nil
}

// FundingReference builds the funding reference:
// fund_<unix-millis>_<account id>
func FundingReference(now time.Time, accountID uuid.UUID) string {
	return fmt.Sprintf("fund_%d_%s", now.UnixMilli(), accountID.String())
}
