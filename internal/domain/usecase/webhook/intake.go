package webhook

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/core"
	queueport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/queue"
)

// Gateway event and metadata markers identifying a wallet funding charge
const (
	EventChargeSuccess = "charge.success"
	MetadataWalletFund = "wallet_fund"
)

// notificationPayload mirrors the gateway's signed notification body
type notificationPayload struct {
	Event string `json:"event"`
	Data  struct {
		Amount    int64  `json:"amount"` // kobo
		Reference string `json:"reference"`
		Metadata  struct {
			AccountID string `json:"userId"`
			Type      string `json:"type"`
		} `json:"metadata"`
	} `json:"data"`
}

// Intake turns verified gateway notifications into queued credit jobs. It
// never mutates a balance itself: acknowledgment latency stays decoupled from
// ledger mutation latency, and redelivery is the worker's problem to absorb.
type Intake struct {
	verifier     *SignatureVerifier
	queue        queueport.CreditQueue
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewIntake creates a notification intake
func NewIntake(
	verifier *SignatureVerifier,
	queue queueport.CreditQueue,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Intake {
	return &Intake{
		verifier:     verifier,
		queue:        queue,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle verifies the raw notification and, for successful wallet-funding
// charges, enqueues a credit job. All other event types are acknowledged and
// dropped (nil error). Returns ErrInvalidSignature when verification fails
// and ErrQueueUnavailable when the job cannot be enqueued.
func (i *Intake) Handle(ctx context.Context, rawPayload []byte, providedSignature string) error {
	if !i.verifier.Verify(rawPayload, providedSignature) {
		i.logger.Warn("Rejected notification with invalid signature", map[string]any{
			"payload_bytes": len(rawPayload),
		})
		return errs.ErrInvalidSignature
	}

	var payload notificationPayload
	if err := json.Unmarshal(rawPayload, &payload); err != nil {
		// Signed but unparseable: drop, a redelivery of the same bytes
		// cannot succeed either.
		i.logger.Error("Failed to decode verified notification", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if payload.Event != EventChargeSuccess || payload.Data.Metadata.Type != MetadataWalletFund {
		i.logger.Debug("Ignoring notification event", map[string]any{
			"event": payload.Event,
			"type":  payload.Data.Metadata.Type,
		})
		return nil
	}

	accountID, err := uuid.Parse(payload.Data.Metadata.AccountID)
	if err != nil {
		i.logger.Warn("Dropping funding notification with invalid account id", map[string]any{
			"account_id": payload.Data.Metadata.AccountID,
			"reference":  payload.Data.Reference,
		})
		return nil
	}
	if payload.Data.Amount <= 0 || payload.Data.Reference == "" {
		i.logger.Warn("Dropping funding notification with invalid fields", map[string]any{
			"amount":    payload.Data.Amount,
			"reference": payload.Data.Reference,
		})
		return nil
	}

	job := queueport.CreditJob{
		AccountID:  accountID,
		Amount:     payload.Data.Amount,
		Reference:  payload.Data.Reference,
		EnqueuedAt: i.timeProvider.Now(),
	}

	if err := i.queue.Enqueue(ctx, job); err != nil {
		i.logger.Error("Failed to enqueue credit job", map[string]any{
			"account_id": accountID.String(),
			"reference":  job.Reference,
			"error":      err.Error(),
		})
		return err
	}

	i.logger.Info("Credit job enqueued", map[string]any{
		"account_id": accountID.String(),
		"amount":     job.Amount,
		"reference":  job.Reference,
	})
	return nil
}
