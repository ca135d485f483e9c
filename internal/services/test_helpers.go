package services

import (
	"time"

	"ecommerce-service/internal/domain"

	"github.com/shopspring/decimal"
)

func CreateTestOrder(id uint64, status domain.OrderStatus, items ...domain.OrderItem) *domain.Order {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return &domain.Order{
		ID:              id,
		CustomerEmail:   TestCustomerEmail,
		CustomerName:    TestCustomerName,
		Items:           items,
		ShippingAddress: TestShippingAddress,
		PaymentMethod:   "CREDIT_CARD",
		Status:          status,
		TotalAmount:     total,
		CreatedAt:       time.Now(),
	}
}

func CreateTestItem(productID uint64, name string, quantity int, price string) domain.OrderItem {
	unitPrice := decimal.RequireFromString(price)
	return domain.OrderItem{
		ProductID:   productID,
		ProductName: name,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// zeroLatencyProcessors keeps payment tests from sleeping through the
// simulated provider delays.
func zeroLatencyProcessors() processorSet {
	return processorSet{
		domain.MethodCreditCard:     &creditCardProcessor{},
		domain.MethodPayPal:         &payPalProcessor{},
		domain.MethodBankTransfer:   &bankTransferProcessor{},
		domain.MethodCashOnDelivery: &cashOnDeliveryProcessor{},
	}
}

const (
	TestOrderID         = uint64(1)
	TestCustomerEmail   = "jane@example.com"
	TestCustomerName    = "Jane Doe"
	TestShippingAddress = "1 Main Street, Springfield"
)
