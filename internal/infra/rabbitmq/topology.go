package rabbitmq

import "github.com/streadway/amqp"

const (
	OrderCreatedKey   = "order.created"
	OrderConfirmedKey = "order.confirmed"
	OrderPaidKey      = "order.paid"
	OrderShippedKey   = "order.shipped"
	OrderDeliveredKey = "order.delivered"

	OrderCreatedQueue   = "order.created.queue"
	OrderConfirmedQueue = "order.confirmed.queue"
	OrderPaidQueue      = "order.paid.queue"
	OrderShippedQueue   = "order.shipped.queue"
	OrderDeliveredQueue = "order.delivered.queue"
)

// QueueBindings maps each durable queue to the exact routing key it is
// bound with on the topic exchange.
var QueueBindings = map[string]string{
	OrderCreatedQueue:   OrderCreatedKey,
	OrderConfirmedQueue: OrderConfirmedKey,
	OrderPaidQueue:      OrderPaidKey,
	OrderShippedQueue:   OrderShippedKey,
	OrderDeliveredQueue: OrderDeliveredKey,
}

// declareTopology sets up the exchange, the five durable queues and
// their bindings. Declarations are idempotent, so both the publisher
// and the consumer run it at startup.
func declareTopology(channel *amqp.Channel, exchange string) error {
	if err := channel.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return err
	}

	for queue, key := range QueueBindings {
		if _, err := channel.QueueDeclare(
			queue,
			true,
			false,
			false,
			false,
			nil,
		); err != nil {
			return err
		}
		if err := channel.QueueBind(queue, key, exchange, false, nil); err != nil {
			return err
		}
	}

	return nil
}
