package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParsePaymentMethod(t *testing.T) {
	for _, s := range []string{"CREDIT_CARD", "credit_card", "PayPal", "BANK_TRANSFER", "cash_on_delivery"} {
		_, err := ParsePaymentMethod(s)
		assert.NoError(t, err, s)
	}

	_, err := ParsePaymentMethod("BITCOIN")
	assert.Error(t, err)
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("shipped")
	assert.NoError(t, err)
	assert.Equal(t, StatusShipped, status)

	_, err = ParseOrderStatus("TELEPORTED")
	assert.Error(t, err)
}

func TestNewOrderEvent_SnapshotsOrderState(t *testing.T) {
	order := &Order{
		ID:              42,
		CustomerEmail:   "jane@example.com",
		CustomerName:    "Jane Doe",
		ShippingAddress: "1 Main Street",
		PaymentMethod:   "PAYPAL",
		Status:          StatusConfirmed,
		TotalAmount:     decimal.RequireFromString("24.98"),
		Items: []OrderItem{
			{ProductID: 1, ProductName: "A", Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")},
		},
	}

	event := NewOrderEvent(order)

	assert.Equal(t, uint64(42), event.OrderID)
	assert.Equal(t, "CONFIRMED", event.Status)
	assert.True(t, order.TotalAmount.Equal(event.TotalAmount))
	assert.Len(t, event.Items, 1)
	assert.Equal(t, 2, event.Items[0].Quantity)
	assert.False(t, event.Timestamp.IsZero())

	// Mutating the order afterwards must not change the emitted snapshot.
	order.Status = StatusShipped
	assert.Equal(t, "CONFIRMED", event.Status)
}

func TestOrderEvent_WireFormat(t *testing.T) {
	event := OrderEvent{
		OrderID:     7,
		Status:      "PAID",
		TotalAmount: decimal.RequireFromString("5.00"),
	}

	body, err := json.Marshal(event)
	assert.NoError(t, err)

	var raw map[string]any
	assert.NoError(t, json.Unmarshal(body, &raw))
	assert.Equal(t, float64(7), raw["orderId"])
	assert.Equal(t, "PAID", raw["status"])
	// Amounts travel as decimal strings, not floats.
	assert.Equal(t, "5", raw["totalAmount"])
}
