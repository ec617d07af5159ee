package reminders

import (
	"context"
	"encoding/json"
	"log"

	"github.com/streadway/amqp"
)

// Handler executes one reminder task. A non-nil error requeues the task once;
// redelivered failures are dropped.
type Handler func(ctx context.Context, task Task) error

// Consumer binds a durable queue to the reminder exchange and dispatches
// tasks to a Handler.
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

func NewConsumer(amqpURL, exchange, queue string) (*Consumer, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	// Both reminder types land in the same worker queue.
	if err := ch.QueueBind(queue, "#", exchange, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &Consumer{conn: conn, channel: ch, queue: queue}, nil
}

// Run consumes tasks until ctx is cancelled or the channel closes.
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			var task Task
			if err := json.Unmarshal(d.Body, &task); err != nil {
				log.Printf("reminder: dropping malformed task: %v", err)
				_ = d.Nack(false, false)
				continue
			}
			if err := handle(ctx, task); err != nil {
				log.Printf("reminder: task %s failed: %v", task.TaskID, err)
				_ = d.Nack(false, !d.Redelivered)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
