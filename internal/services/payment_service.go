package services

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-service/internal/domain"
	"ecommerce-service/internal/repository"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrUnsupportedMethod     = errors.New("unsupported payment method")
	ErrInvalidPaymentDetails = errors.New("invalid payment details")
	ErrPaymentProcessing     = errors.New("payment processing failed")
)

type PaymentService struct {
	repo       repository.PaymentRepository
	processors processorSet
}

func NewPaymentService(r repository.PaymentRepository) *PaymentService {
	return &PaymentService{
		repo:       r,
		processors: defaultProcessors(),
	}
}

// ProcessPayment records an attempt for every dispatch past the method
// parse: the PROCESSING row is persisted before the outcome is known,
// and flips to a terminal COMPLETED or FAILED before returning. There
// is no automatic retry of a terminal row.
func (s *PaymentService) ProcessPayment(ctx context.Context, orderID uint64, amount decimal.Decimal, methodName, details string) (*domain.Payment, error) {
	method, err := domain.ParsePaymentMethod(methodName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMethod, err)
	}
	processor := s.processors[method]

	payment := &domain.Payment{
		OrderID: orderID,
		Amount:  amount,
		Method:  method,
		Status:  domain.PaymentProcessing,
	}
	if err := s.repo.Save(payment); err != nil {
		return nil, err
	}

	if !processor.Validate(details) {
		return nil, s.failPayment(payment, ErrInvalidPaymentDetails)
	}

	payment.TransactionID = processor.Process(amount, orderID, details)
	payment.Status = domain.PaymentCompleted
	if method == domain.MethodCreditCard && len(details) >= 4 {
		payment.CardLastFourDigits = details[len(details)-4:]
	}

	if err := s.repo.Update(payment); err != nil {
		return nil, s.failPayment(payment, err)
	}

	log.WithFields(log.Fields{
		"payment_id":     payment.ID,
		"order_id":       orderID,
		"transaction_id": payment.TransactionID,
	}).Info("payment processed")

	return payment, nil
}

// failPayment marks the row terminal FAILED and surfaces the cause
// wrapped as a processing error.
func (s *PaymentService) failPayment(payment *domain.Payment, cause error) error {
	payment.Status = domain.PaymentFailed
	payment.TransactionID = ""
	if err := s.repo.Update(payment); err != nil {
		log.WithFields(log.Fields{
			"payment_id": payment.ID,
			"error":      err,
		}).Error("failed to persist FAILED payment status")
	}
	log.WithFields(log.Fields{
		"payment_id": payment.ID,
		"order_id":   payment.OrderID,
		"error":      cause,
	}).Error("payment processing failed")
	return fmt.Errorf("%w: %v", ErrPaymentProcessing, cause)
}

func (s *PaymentService) GetPaymentByID(id uint64) (*domain.Payment, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPaymentNotFound
	}
	return p, nil
}

func (s *PaymentService) GetPaymentByOrderID(orderID uint64) (*domain.Payment, error) {
	p, err := s.repo.FindByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPaymentNotFound
	}
	return p, nil
}

func (s *PaymentService) GetAllPayments() ([]domain.Payment, error) {
	return s.repo.FindAll()
}
