package amqp

import (
	"fmt"

	"ecommerce-service/internal/domain"
)

// Fixed template catalog, one subject/body pair per event type. Each
// template interpolates only the fields relevant to its status.

func orderCreatedMessage(e domain.OrderEvent) (string, string) {
	subject := fmt.Sprintf("Order Created - Order #%d", e.OrderID)
	body := fmt.Sprintf(
		"Dear %s,\n\nYour order #%d has been created successfully.\n\n"+
			"Order Total: $%s\n"+
			"Shipping Address: %s\n\n"+
			"Thank you for shopping with us!",
		e.CustomerName, e.OrderID, e.TotalAmount.StringFixed(2), e.ShippingAddress)
	return subject, body
}

func orderConfirmedMessage(e domain.OrderEvent) (string, string) {
	subject := fmt.Sprintf("Order Confirmed - Order #%d", e.OrderID)
	body := fmt.Sprintf(
		"Dear %s,\n\nYour order #%d has been confirmed.\n\n"+
			"We are processing your order and will notify you once it's shipped.\n\n"+
			"Order Total: $%s",
		e.CustomerName, e.OrderID, e.TotalAmount.StringFixed(2))
	return subject, body
}

func orderPaidMessage(e domain.OrderEvent) (string, string) {
	subject := fmt.Sprintf("Payment Received - Order #%d", e.OrderID)
	body := fmt.Sprintf(
		"Dear %s,\n\nWe have received your payment for order #%d.\n\n"+
			"Amount Paid: $%s\n"+
			"Payment Method: %s\n\n"+
			"Your order will be shipped soon!",
		e.CustomerName, e.OrderID, e.TotalAmount.StringFixed(2), e.PaymentMethod)
	return subject, body
}

func orderShippedMessage(e domain.OrderEvent) (string, string) {
	subject := fmt.Sprintf("Order Shipped - Order #%d", e.OrderID)
	body := fmt.Sprintf(
		"Dear %s,\n\nGreat news! Your order #%d has been shipped.\n\n"+
			"Shipping Address: %s\n\n"+
			"Your order will arrive soon. Thank you for your patience!",
		e.CustomerName, e.OrderID, e.ShippingAddress)
	return subject, body
}

func orderDeliveredMessage(e domain.OrderEvent) (string, string) {
	subject := fmt.Sprintf("Order Delivered - Order #%d", e.OrderID)
	body := fmt.Sprintf(
		"Dear %s,\n\nYour order #%d has been delivered.\n\n"+
			"We hope you enjoy your purchase. Thank you for shopping with us!",
		e.CustomerName, e.OrderID)
	return subject, body
}
