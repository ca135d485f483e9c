package rabbitmq

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// HandlerFunc processes one delivery body. Returned errors are logged
// and swallowed; the delivery is acknowledged either way, so redelivery
// only happens when a consumer dies before acking.
type HandlerFunc func(ctx context.Context, body []byte) error

type Consumer struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewConsumer(amqpURL, exchange string) (*Consumer, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %v", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %v", err)
	}

	if err := declareTopology(channel, exchange); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare topology: %v", err)
	}

	return &Consumer{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Consume drains the named queue until the context is cancelled or the
// channel closes.
func (c *Consumer) Consume(ctx context.Context, queue string, handler HandlerFunc) error {
	deliveries, err := c.channel.Consume(
		queue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to consume queue %s: %v", queue, err)
	}

	log.WithField("queue", queue).Info("consumer started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed for queue %s", queue)
			}
			if err := handler(ctx, d.Body); err != nil {
				log.WithFields(log.Fields{
					"queue": queue,
					"error": err,
				}).Error("handler failed, message dropped")
			}
			if err := d.Ack(false); err != nil {
				log.WithFields(log.Fields{
					"queue": queue,
					"error": err,
				}).Error("failed to ack delivery")
			}
		}
	}
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
