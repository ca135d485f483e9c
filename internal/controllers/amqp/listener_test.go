package amqp

import (
	"context"
	"encoding/json"
	"testing"

	"ecommerce-service/internal/domain"
	"ecommerce-service/internal/mocks"
	"ecommerce-service/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testEventBody(t *testing.T, status string) []byte {
	t.Helper()
	event := domain.OrderEvent{
		OrderID:         42,
		CustomerEmail:   "jane@example.com",
		CustomerName:    "Jane Doe",
		Status:          status,
		TotalAmount:     decimal.RequireFromString("24.98"),
		ShippingAddress: "1 Main Street, Springfield",
		PaymentMethod:   "CREDIT_CARD",
		Items: []domain.OrderItemEvent{
			{ProductID: 1, ProductName: "A", Quantity: 2, Price: decimal.RequireFromString("9.99")},
		},
	}
	body, err := json.Marshal(event)
	assert.NoError(t, err)
	return body
}

func newListenerWithMocks() (*OrderEventListener, *mocks.MockNotificationRepository, *mocks.MockMailer) {
	mockRepo := new(mocks.MockNotificationRepository)
	mockMailer := new(mocks.MockMailer)
	listener := NewOrderEventListener(services.NewNotificationService(mockRepo, mockMailer))
	return listener, mockRepo, mockMailer
}

func TestOrderEventListener_Templates(t *testing.T) {
	tests := []struct {
		name            string
		handle          func(*OrderEventListener) error
		expectedType    domain.NotificationType
		expectedSubject string
		bodyContains    []string
		bodyExcludes    []string
	}{
		{
			name: "order created",
			handle: func(l *OrderEventListener) error {
				return l.HandleOrderCreated(context.Background(), testEventBody(t, "PENDING"))
			},
			expectedType:    domain.NotifyOrderCreated,
			expectedSubject: "Order Created - Order #42",
			bodyContains:    []string{"Jane Doe", "#42", "$24.98", "1 Main Street, Springfield"},
		},
		{
			name: "order confirmed",
			handle: func(l *OrderEventListener) error {
				return l.HandleOrderConfirmed(context.Background(), testEventBody(t, "CONFIRMED"))
			},
			expectedType:    domain.NotifyOrderConfirmed,
			expectedSubject: "Order Confirmed - Order #42",
			bodyContains:    []string{"Jane Doe", "$24.98"},
			bodyExcludes:    []string{"1 Main Street, Springfield"},
		},
		{
			name: "order paid",
			handle: func(l *OrderEventListener) error {
				return l.HandleOrderPaid(context.Background(), testEventBody(t, "PAID"))
			},
			expectedType:    domain.NotifyOrderPaid,
			expectedSubject: "Payment Received - Order #42",
			bodyContains:    []string{"Jane Doe", "$24.98", "CREDIT_CARD"},
		},
		{
			name: "order shipped",
			handle: func(l *OrderEventListener) error {
				return l.HandleOrderShipped(context.Background(), testEventBody(t, "SHIPPED"))
			},
			expectedType:    domain.NotifyOrderShipped,
			expectedSubject: "Order Shipped - Order #42",
			bodyContains:    []string{"Jane Doe", "1 Main Street, Springfield"},
			bodyExcludes:    []string{"$24.98"},
		},
		{
			name: "order delivered",
			handle: func(l *OrderEventListener) error {
				return l.HandleOrderDelivered(context.Background(), testEventBody(t, "DELIVERED"))
			},
			expectedType:    domain.NotifyOrderDelivered,
			expectedSubject: "Order Delivered - Order #42",
			bodyContains:    []string{"Jane Doe", "#42"},
			bodyExcludes:    []string{"$24.98", "1 Main Street, Springfield"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listener, mockRepo, mockMailer := newListenerWithMocks()

			var saved *domain.Notification
			mockRepo.On("Save", mock.AnythingOfType("*domain.Notification")).Return(nil).Run(func(args mock.Arguments) {
				saved = args.Get(0).(*domain.Notification)
			})
			mockRepo.On("Update", mock.AnythingOfType("*domain.Notification")).Return(nil)
			mockMailer.On("Send", "jane@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string"), false).Return(true)

			assert.NoError(t, tt.handle(listener))

			if assert.NotNil(t, saved) {
				assert.Equal(t, uint64(42), saved.OrderID)
				assert.Equal(t, tt.expectedType, saved.Type)
				assert.Equal(t, tt.expectedSubject, saved.Subject)
				for _, want := range tt.bodyContains {
					assert.Contains(t, saved.Message, want)
				}
				for _, unwanted := range tt.bodyExcludes {
					assert.NotContains(t, saved.Message, unwanted)
				}
			}
			mockRepo.AssertExpectations(t)
			mockMailer.AssertExpectations(t)
		})
	}
}

// Redelivery of the same event is not deduplicated: each pass writes a
// fresh notification row and sends again.
func TestOrderEventListener_DuplicateDelivery(t *testing.T) {
	listener, mockRepo, mockMailer := newListenerWithMocks()

	mockRepo.On("Save", mock.AnythingOfType("*domain.Notification")).Return(nil)
	mockRepo.On("Update", mock.AnythingOfType("*domain.Notification")).Return(nil)
	mockMailer.On("Send", "jane@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string"), false).Return(true)

	body := testEventBody(t, "PAID")
	assert.NoError(t, listener.HandleOrderPaid(context.Background(), body))
	assert.NoError(t, listener.HandleOrderPaid(context.Background(), body))

	mockRepo.AssertNumberOfCalls(t, "Save", 2)
	mockMailer.AssertNumberOfCalls(t, "Send", 2)
}

func TestOrderEventListener_SendFailureIsRecordedNotSurfaced(t *testing.T) {
	listener, mockRepo, mockMailer := newListenerWithMocks()

	var terminal *domain.Notification
	mockRepo.On("Save", mock.AnythingOfType("*domain.Notification")).Return(nil)
	mockRepo.On("Update", mock.AnythingOfType("*domain.Notification")).Return(nil).Run(func(args mock.Arguments) {
		terminal = args.Get(0).(*domain.Notification)
	})
	mockMailer.On("Send", mock.Anything, mock.Anything, mock.Anything, false).Return(false)

	err := listener.HandleOrderShipped(context.Background(), testEventBody(t, "SHIPPED"))

	assert.NoError(t, err)
	if assert.NotNil(t, terminal) {
		assert.Equal(t, domain.NotificationFailed, terminal.Status)
		assert.Nil(t, terminal.SentAt)
	}
}

func TestOrderEventListener_MalformedEvent(t *testing.T) {
	listener, mockRepo, _ := newListenerWithMocks()

	err := listener.HandleOrderCreated(context.Background(), []byte("{not json"))

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}
