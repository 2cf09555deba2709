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

// CreditHandler processes one delivered credit job. A nil return acknowledges
// the delivery; a non-nil return nacks it back to the broker for redelivery.
type CreditHandler interface {
	Process(ctx context.Context, job queueport.CreditJob) error
}

// Consumer drains the credit job queue and hands each delivery to the worker.
// Acknowledgments are manual: the broker redelivers anything the worker
// reported as failed, which is where the at-least-once guarantee comes from.
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  coreport.Logger
}

// NewConsumer dials the broker and opens a channel with a bounded prefetch
func NewConsumer(amqpURL string, logger coreport.Logger) (*Consumer, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrQueueUnavailable, err.Error())
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %s", errs.ErrQueueUnavailable, err.Error())
	}

	// Hand workers a few jobs at a time; unacked deliveries return to the
	// queue if this consumer dies.
	if err := ch.Qos(10, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%w: %s", errs.ErrQueueUnavailable, err.Error())
	}

	return &Consumer{conn: conn, channel: ch, logger: logger}, nil
}

// Start declares the topology, binds the credit queue and consumes
// deliveries until the channel closes. Runs its loop in a goroutine.
func (c *Consumer) Start(ctx context.Context, handler CreditHandler) error {
	if err := c.channel.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrQueueUnavailable, err.Error())
	}

	q, err := c.channel.QueueDeclare(CreditQueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrQueueUnavailable, err.Error())
	}

	if err := c.channel.QueueBind(q.Name, CreditRoutingKey, Exchange, false, nil); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrQueueUnavailable, err.Error())
	}

	deliveries, err := c.channel.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrQueueUnavailable, err.Error())
	}

	go func() {
		for d := range deliveries {
			c.handleDelivery(ctx, d, handler)
		}
		c.logger.Info("Credit consumer channel closed", nil)
	}()

	c.logger.Info("Credit consumer started", map[string]any{
		"queue":       q.Name,
		"routing_key": CreditRoutingKey,
	})
	return nil
}

func (c *Consumer) handleDelivery(ctx context.Context, d amqp.Delivery, handler CreditHandler) {
	var job queueport.CreditJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		// A payload that never parses will never parse; drop it instead of
		// redelivering forever.
		c.logger.Error("Dropping undecodable credit job", map[string]any{
			"error": err.Error(),
		})
		_ = d.Ack(false)
		return
	}

	if err := handler.Process(ctx, job); err != nil {
		c.logger.Warn("Credit job failed, requeueing", map[string]any{
			"account_id": job.AccountID.String(),
			"reference":  job.Reference,
			"error":      err.Error(),
		})
		_ = d.Nack(false, true)
		return
	}

	_ = d.Ack(false)
}

// Close gracefully closes the channel and connection
func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
