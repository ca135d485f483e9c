package services

import (
	"regexp"
	"strings"
	"time"

	"ecommerce-service/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// PaymentProcessor is one interchangeable processing strategy. Process
// simulates the provider round trip and returns an opaque transaction
// identifier; real failures are not modeled inside the strategies.
type PaymentProcessor interface {
	Validate(details string) bool
	Process(amount decimal.Decimal, orderID uint64, details string) string
}

var (
	cardNumberPattern  = regexp.MustCompile(`^\d{10,19}$`)
	paypalEmailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	bankAccountPattern = regexp.MustCompile(`^\d{10,20}$`)
)

func transactionToken() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

type creditCardProcessor struct {
	latency time.Duration
}

func (p *creditCardProcessor) Validate(details string) bool {
	return cardNumberPattern.MatchString(details)
}

func (p *creditCardProcessor) Process(amount decimal.Decimal, orderID uint64, details string) string {
	log.WithFields(log.Fields{"order_id": orderID, "amount": amount}).Info("processing credit card payment")
	time.Sleep(p.latency)
	return "CC-" + transactionToken()
}

type payPalProcessor struct {
	latency time.Duration
}

func (p *payPalProcessor) Validate(details string) bool {
	return paypalEmailPattern.MatchString(details)
}

func (p *payPalProcessor) Process(amount decimal.Decimal, orderID uint64, details string) string {
	log.WithFields(log.Fields{"order_id": orderID, "amount": amount}).Info("processing PayPal payment")
	time.Sleep(p.latency)
	return "PP-" + transactionToken()
}

type bankTransferProcessor struct {
	latency time.Duration
}

func (p *bankTransferProcessor) Validate(details string) bool {
	return bankAccountPattern.MatchString(details)
}

func (p *bankTransferProcessor) Process(amount decimal.Decimal, orderID uint64, details string) string {
	log.WithFields(log.Fields{"order_id": orderID, "amount": amount}).Info("processing bank transfer")
	time.Sleep(p.latency)
	return "BT-" + transactionToken()
}

type cashOnDeliveryProcessor struct{}

func (p *cashOnDeliveryProcessor) Validate(details string) bool {
	return true
}

func (p *cashOnDeliveryProcessor) Process(amount decimal.Decimal, orderID uint64, details string) string {
	log.WithFields(log.Fields{"order_id": orderID, "amount": amount}).Info("recording cash on delivery")
	return "COD-" + transactionToken()
}

type processorSet map[domain.PaymentMethod]PaymentProcessor

// defaultProcessors carries the simulated provider latencies observed
// in production wiring.
func defaultProcessors() processorSet {
	return processorSet{
		domain.MethodCreditCard:     &creditCardProcessor{latency: 1000 * time.Millisecond},
		domain.MethodPayPal:         &payPalProcessor{latency: 800 * time.Millisecond},
		domain.MethodBankTransfer:   &bankTransferProcessor{latency: 1500 * time.Millisecond},
		domain.MethodCashOnDelivery: &cashOnDeliveryProcessor{},
	}
}
