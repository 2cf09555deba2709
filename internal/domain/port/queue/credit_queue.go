package queue

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreditJob is a durable work item instructing the credit worker to apply a
// verified funding notification to an account. Delivery is at-least-once;
// the worker's reference check makes redelivery harmless.
type CreditJob struct {
	AccountID  uuid.UUID `json:"account_id"`
	Amount     int64     `json:"amount"` // kobo
	Reference  string    `json:"reference"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// CreditQueue decouples notification receipt from balance mutation so that
// webhook acknowledgment stays fast and mutation is retried independently.
type CreditQueue interface {
	// Enqueue publishes a credit job for asynchronous processing
	//
	// Possible errors:
	// - ErrQueueUnavailable: If the broker cannot accept the job
	Enqueue(ctx context.Context, job CreditJob) error
}
