package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderEvent is the flattened snapshot of an order published on every
// status transition. It reflects the order at the moment of emission,
// not its current state.
type OrderEvent struct {
	OrderID         uint64           `json:"orderId"`
	CustomerEmail   string           `json:"customerEmail"`
	CustomerName    string           `json:"customerName"`
	Status          string           `json:"status"`
	TotalAmount     decimal.Decimal  `json:"totalAmount"`
	Items           []OrderItemEvent `json:"items"`
	ShippingAddress string           `json:"shippingAddress"`
	PaymentMethod   string           `json:"paymentMethod"`
	Timestamp       time.Time        `json:"timestamp"`
}

type OrderItemEvent struct {
	ProductID   uint64          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

func NewOrderEvent(o *Order) OrderEvent {
	items := make([]OrderItemEvent, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemEvent{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.UnitPrice,
		})
	}

	return OrderEvent{
		OrderID:         o.ID,
		CustomerEmail:   o.CustomerEmail,
		CustomerName:    o.CustomerName,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		Items:           items,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		Timestamp:       time.Now(),
	}
}
