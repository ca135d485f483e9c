package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending           OrderStatus = "PENDING"
	StatusConfirmed         OrderStatus = "CONFIRMED"
	StatusPaymentProcessing OrderStatus = "PAYMENT_PROCESSING"
	StatusPaid              OrderStatus = "PAID"
	StatusProcessing        OrderStatus = "PROCESSING"
	StatusShipped           OrderStatus = "SHIPPED"
	StatusDelivered         OrderStatus = "DELIVERED"
	StatusCancelled         OrderStatus = "CANCELLED"
	StatusFailed            OrderStatus = "FAILED"
)

var orderStatuses = map[string]OrderStatus{
	"PENDING":            StatusPending,
	"CONFIRMED":          StatusConfirmed,
	"PAYMENT_PROCESSING": StatusPaymentProcessing,
	"PAID":               StatusPaid,
	"PROCESSING":         StatusProcessing,
	"SHIPPED":            StatusShipped,
	"DELIVERED":          StatusDelivered,
	"CANCELLED":          StatusCancelled,
	"FAILED":             StatusFailed,
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	if status, ok := orderStatuses[strings.ToUpper(s)]; ok {
		return status, nil
	}
	return "", fmt.Errorf("unknown order status: %q", s)
}

type Order struct {
	ID              uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerEmail   string          `json:"customerEmail" gorm:"not null;index"`
	CustomerName    string          `json:"customerName" gorm:"not null"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	ShippingAddress string          `json:"shippingAddress" gorm:"not null"`
	PaymentMethod   string          `json:"paymentMethod" gorm:"not null"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(32);default:'PENDING';index"`
	TotalAmount     decimal.Decimal `json:"totalAmount" gorm:"type:decimal(12,2);not null"`
	PaymentID       *uint64         `json:"paymentId"`
	CreatedAt       time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

// OrderItem rows are written once with their order and never edited afterwards.
type OrderItem struct {
	ID          uint64          `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID     uint64          `json:"-" gorm:"not null;index"`
	ProductID   uint64          `json:"productId" gorm:"not null"`
	ProductName string          `json:"productName" gorm:"not null"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	UnitPrice   decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2);not null"`
}
