package amqp

import (
	"context"
	"encoding/json"

	"ecommerce-service/internal/domain"
	"ecommerce-service/internal/infra/rabbitmq"
	"ecommerce-service/internal/services"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// OrderEventListener consumes the five order queues and turns each
// event into a customer notification. Handlers carry no idempotency
// key: a redelivered event produces a second notification row and a
// second outbound send.
type OrderEventListener struct {
	notifications *services.NotificationService
}

func NewOrderEventListener(n *services.NotificationService) *OrderEventListener {
	return &OrderEventListener{notifications: n}
}

// Handlers maps each queue to its handler for consumer wiring.
func (l *OrderEventListener) Handlers() map[string]rabbitmq.HandlerFunc {
	return map[string]rabbitmq.HandlerFunc{
		rabbitmq.OrderCreatedQueue:   l.HandleOrderCreated,
		rabbitmq.OrderConfirmedQueue: l.HandleOrderConfirmed,
		rabbitmq.OrderPaidQueue:      l.HandleOrderPaid,
		rabbitmq.OrderShippedQueue:   l.HandleOrderShipped,
		rabbitmq.OrderDeliveredQueue: l.HandleOrderDelivered,
	}
}

func (l *OrderEventListener) HandleOrderCreated(ctx context.Context, body []byte) error {
	event, err := decodeOrderEvent(body)
	if err != nil {
		return err
	}
	log.WithField("order_id", event.OrderID).Info("received ORDER_CREATED event")

	subject, message := orderCreatedMessage(event)
	return l.notify(event, domain.NotifyOrderCreated, subject, message)
}

func (l *OrderEventListener) HandleOrderConfirmed(ctx context.Context, body []byte) error {
	event, err := decodeOrderEvent(body)
	if err != nil {
		return err
	}
	log.WithField("order_id", event.OrderID).Info("received ORDER_CONFIRMED event")

	subject, message := orderConfirmedMessage(event)
	return l.notify(event, domain.NotifyOrderConfirmed, subject, message)
}

func (l *OrderEventListener) HandleOrderPaid(ctx context.Context, body []byte) error {
	event, err := decodeOrderEvent(body)
	if err != nil {
		return err
	}
	log.WithField("order_id", event.OrderID).Info("received ORDER_PAID event")

	subject, message := orderPaidMessage(event)
	return l.notify(event, domain.NotifyOrderPaid, subject, message)
}

func (l *OrderEventListener) HandleOrderShipped(ctx context.Context, body []byte) error {
	event, err := decodeOrderEvent(body)
	if err != nil {
		return err
	}
	log.WithField("order_id", event.OrderID).Info("received ORDER_SHIPPED event")

	subject, message := orderShippedMessage(event)
	return l.notify(event, domain.NotifyOrderShipped, subject, message)
}

func (l *OrderEventListener) HandleOrderDelivered(ctx context.Context, body []byte) error {
	event, err := decodeOrderEvent(body)
	if err != nil {
		return err
	}
	log.WithField("order_id", event.OrderID).Info("received ORDER_DELIVERED event")

	subject, message := orderDeliveredMessage(event)
	return l.notify(event, domain.NotifyOrderDelivered, subject, message)
}

func (l *OrderEventListener) notify(event domain.OrderEvent, notifType domain.NotificationType, subject, message string) error {
	_, err := l.notifications.CreateAndSend(event.OrderID, event.CustomerEmail, notifType, subject, message)
	return err
}

func decodeOrderEvent(body []byte) (domain.OrderEvent, error) {
	var event domain.OrderEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return event, errors.Wrap(err, "decode order event")
	}
	return event, nil
}
