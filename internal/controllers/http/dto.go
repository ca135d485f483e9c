package http

import "github.com/shopspring/decimal"

type OrderItemRequest struct {
	ProductID   uint64          `json:"productId" binding:"required"`
	ProductName string          `json:"productName" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,gt=0"`
	Price       decimal.Decimal `json:"price"`
}

type CreateOrderRequest struct {
	CustomerEmail   string             `json:"customerEmail" binding:"required,email"`
	CustomerName    string             `json:"customerName" binding:"required"`
	ShippingAddress string             `json:"shippingAddress" binding:"required"`
	PaymentMethod   string             `json:"paymentMethod" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required,dive"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RecordPaymentRequest struct {
	PaymentID uint64 `json:"paymentId" binding:"required"`
}

type ProcessPaymentRequest struct {
	OrderID        uint64          `json:"orderId" binding:"required"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  string          `json:"paymentMethod" binding:"required"`
	PaymentDetails string          `json:"paymentDetails"`
}
