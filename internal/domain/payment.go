package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodCreditCard     PaymentMethod = "CREDIT_CARD"
	MethodPayPal         PaymentMethod = "PAYPAL"
	MethodBankTransfer   PaymentMethod = "BANK_TRANSFER"
	MethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
)

// ParsePaymentMethod resolves a method name into the closed method set.
// The string is parsed exactly once at the boundary; everything past it
// works with the typed value.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToUpper(s)) {
	case MethodCreditCard:
		return MethodCreditCard, nil
	case MethodPayPal:
		return MethodPayPal, nil
	case MethodBankTransfer:
		return MethodBankTransfer, nil
	case MethodCashOnDelivery:
		return MethodCashOnDelivery, nil
	}
	return "", fmt.Errorf("unknown payment method: %q", s)
}

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentCompleted  PaymentStatus = "COMPLETED"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
	PaymentCancelled  PaymentStatus = "CANCELLED"
)

type Payment struct {
	ID                 uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID            uint64          `json:"orderId" gorm:"not null;index"`
	Amount             decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Method             PaymentMethod   `json:"method" gorm:"type:varchar(32);not null"`
	Status             PaymentStatus   `json:"status" gorm:"type:varchar(32);not null"`
	TransactionID      string          `json:"transactionId"`
	CardLastFourDigits string          `json:"cardLastFourDigits,omitempty"`
	CreatedAt          time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt          time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}
