package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/core"
	queueport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/queue"
)

// Topology of the credit pipeline: a durable topic exchange with one durable
// queue bound to the credit routing key
const (
	Exchange         = "wallet_events"
	CreditRoutingKey = "wallet.credit"
	CreditQueueName  = "wallet_processor.credit_jobs"
)

// Producer publishes credit jobs to RabbitMQ. It implements the CreditQueue
// port with durable, persistent messages so jobs survive a broker restart.
type Producer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  coreport.Logger
}

// NewProducer dials the broker and declares the exchange
func NewProducer(amqpURL string, logger coreport.Logger) (*Producer, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrQueueUnavailable, err.Error())
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %s", errs.ErrQueueUnavailable, err.Error())
	}

	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%w: %s", errs.ErrQueueUnavailable, err.Error())
	}

	return &Producer{conn: conn, channel: ch, logger: logger}, nil
}

// Enqueue publishes a credit job for asynchronous processing
func (p *Producer) Enqueue(ctx context.Context, job queueport.CreditJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("%w: marshal credit job: %s", errs.ErrQueueUnavailable, err.Error())
	}

	err = p.channel.PublishWithContext(ctx,
		Exchange,
		CreditRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    job.EnqueuedAt,
			Body:         body,
		},
	)
	if err != nil {
		// One-shot retry on a fresh channel; publish failures are often a
		// stale channel after a broker hiccup.
		p.logger.Warn("Publish failed, reopening channel", map[string]any{
			"reference": job.Reference,
			"error":     err.Error(),
		})
		ch, chErr := p.conn.Channel()
		if chErr != nil {
			return fmt.Errorf("%w: %s", errs.ErrQueueUnavailable, err.Error())
		}
		p.channel = ch
		if err := p.channel.PublishWithContext(ctx, Exchange, CreditRoutingKey, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    job.EnqueuedAt,
			Body:         body,
		}); err != nil {
			return fmt.Errorf("%w: %s", errs.ErrQueueUnavailable, err.Error())
		}
	}

	return nil
}

// Close gracefully closes the channel and connection
func (p *Producer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
