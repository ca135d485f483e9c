package services

import (
	"context"
	"testing"

	"ecommerce-service/internal/domain"
	"ecommerce-service/internal/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPaymentServiceWithMocks() (*PaymentService, *mocks.MockPaymentRepository) {
	mockRepo := new(mocks.MockPaymentRepository)
	service := NewPaymentService(mockRepo)
	service.processors = zeroLatencyProcessors()
	return service, mockRepo
}

func TestPaymentService_ProcessPayment(t *testing.T) {
	amount := decimal.RequireFromString("24.98")

	tests := []struct {
		name             string
		method           string
		details          string
		expectedPrefix   string
		expectedLastFour string
	}{
		{
			name:             "credit card",
			method:           "CREDIT_CARD",
			details:          "4111111111111111",
			expectedPrefix:   "CC-",
			expectedLastFour: "1111",
		},
		{
			name:           "paypal",
			method:         "PAYPAL",
			details:        "jane@example.com",
			expectedPrefix: "PP-",
		},
		{
			name:           "bank transfer",
			method:         "BANK_TRANSFER",
			details:        "12345678901234",
			expectedPrefix: "BT-",
		},
		{
			name:           "cash on delivery needs no details",
			method:         "CASH_ON_DELIVERY",
			details:        "",
			expectedPrefix: "COD-",
		},
		{
			name:             "method name is matched case-insensitively",
			method:           "credit_card",
			details:          "4111111111111111",
			expectedPrefix:   "CC-",
			expectedLastFour: "1111",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockRepo := newPaymentServiceWithMocks()

			var statusAtSave domain.PaymentStatus
			mockRepo.On("Save", mock.AnythingOfType("*domain.Payment")).Return(nil).Run(func(args mock.Arguments) {
				p := args.Get(0).(*domain.Payment)
				p.ID = 1
				statusAtSave = p.Status
			})
			mockRepo.On("Update", mock.AnythingOfType("*domain.Payment")).Return(nil)

			payment, err := service.ProcessPayment(context.Background(), TestOrderID, amount, tt.method, tt.details)

			assert.NoError(t, err)
			assert.NotNil(t, payment)
			// The attempt row is visible as PROCESSING before the outcome.
			assert.Equal(t, domain.PaymentProcessing, statusAtSave)
			assert.Equal(t, domain.PaymentCompleted, payment.Status)
			assert.True(t, amount.Equal(payment.Amount))
			assert.Regexp(t, "^"+tt.expectedPrefix+`[0-9A-F]{8}$`, payment.TransactionID)
			assert.Equal(t, tt.expectedLastFour, payment.CardLastFourDigits)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPaymentService_ProcessPayment_InvalidDetails(t *testing.T) {
	amount := decimal.RequireFromString("10.00")

	tests := []struct {
		name    string
		method  string
		details string
	}{
		{name: "credit card number too short", method: "CREDIT_CARD", details: "123456789"},
		{name: "credit card number not numeric", method: "CREDIT_CARD", details: "41x1111111111111"},
		{name: "paypal details not an email", method: "PAYPAL", details: "not-an-email"},
		{name: "bank account too short", method: "BANK_TRANSFER", details: "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockRepo := newPaymentServiceWithMocks()

			var terminal *domain.Payment
			mockRepo.On("Save", mock.AnythingOfType("*domain.Payment")).Return(nil).Run(func(args mock.Arguments) {
				args.Get(0).(*domain.Payment).ID = 1
			})
			mockRepo.On("Update", mock.AnythingOfType("*domain.Payment")).Return(nil).Run(func(args mock.Arguments) {
				terminal = args.Get(0).(*domain.Payment)
			})

			payment, err := service.ProcessPayment(context.Background(), TestOrderID, amount, tt.method, tt.details)

			assert.Nil(t, payment)
			assert.ErrorIs(t, err, ErrPaymentProcessing)
			assert.Contains(t, err.Error(), ErrInvalidPaymentDetails.Error())
			// The row is persisted FAILED with no transaction id.
			if assert.NotNil(t, terminal) {
				assert.Equal(t, domain.PaymentFailed, terminal.Status)
				assert.Empty(t, terminal.TransactionID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPaymentService_ProcessPayment_UnsupportedMethod(t *testing.T) {
	service, mockRepo := newPaymentServiceWithMocks()

	payment, err := service.ProcessPayment(context.Background(), TestOrderID,
		decimal.RequireFromString("10.00"), "BITCOIN", "")

	assert.Nil(t, payment)
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
	// Nothing persisted when the method name fails to parse.
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestPaymentService_GetPaymentByOrderID(t *testing.T) {
	tests := []struct {
		name          string
		orderID       uint64
		setupMocks    func(*mocks.MockPaymentRepository)
		expectedError error
	}{
		{
			name:    "found",
			orderID: 1,
			setupMocks: func(mockRepo *mocks.MockPaymentRepository) {
				mockRepo.On("FindByOrderID", uint64(1)).Return(&domain.Payment{
					ID:      10,
					OrderID: 1,
					Status:  domain.PaymentCompleted,
				}, nil)
			},
		},
		{
			name:    "missing",
			orderID: 999,
			setupMocks: func(mockRepo *mocks.MockPaymentRepository) {
				mockRepo.On("FindByOrderID", uint64(999)).Return(nil, nil)
			},
			expectedError: ErrPaymentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockRepo := newPaymentServiceWithMocks()
			tt.setupMocks(mockRepo)

			payment, err := service.GetPaymentByOrderID(tt.orderID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, payment)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.orderID, payment.OrderID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
