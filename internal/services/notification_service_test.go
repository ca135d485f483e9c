package services

import (
	"testing"

	"ecommerce-service/internal/domain"
	"ecommerce-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationService_CreateAndSend(t *testing.T) {
	tests := []struct {
		name           string
		sendResult     bool
		expectedStatus domain.NotificationStatus
		expectSentAt   bool
	}{
		{name: "delivery success", sendResult: true, expectedStatus: domain.NotificationSent, expectSentAt: true},
		{name: "delivery failure is swallowed", sendResult: false, expectedStatus: domain.NotificationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockNotificationRepository)
			mockMailer := new(mocks.MockMailer)
			service := NewNotificationService(mockRepo, mockMailer)

			var statusAtSave domain.NotificationStatus
			mockRepo.On("Save", mock.AnythingOfType("*domain.Notification")).Return(nil).Run(func(args mock.Arguments) {
				n := args.Get(0).(*domain.Notification)
				n.ID = 1
				statusAtSave = n.Status
			})
			mockRepo.On("Update", mock.AnythingOfType("*domain.Notification")).Return(nil)
			mockMailer.On("Send", TestCustomerEmail, "subject", "body", false).Return(tt.sendResult)

			notification, err := service.CreateAndSend(TestOrderID, TestCustomerEmail,
				domain.NotifyOrderCreated, "subject", "body")

			// A failed send is recorded, not surfaced.
			assert.NoError(t, err)
			assert.Equal(t, domain.NotificationPending, statusAtSave)
			assert.Equal(t, tt.expectedStatus, notification.Status)
			if tt.expectSentAt {
				assert.NotNil(t, notification.SentAt)
			} else {
				assert.Nil(t, notification.SentAt)
			}
			mockRepo.AssertExpectations(t)
			mockMailer.AssertExpectations(t)
		})
	}
}

func TestNotificationService_GetNotificationByID(t *testing.T) {
	mockRepo := new(mocks.MockNotificationRepository)
	service := NewNotificationService(mockRepo, new(mocks.MockMailer))

	mockRepo.On("FindByID", uint64(999)).Return(nil, nil)

	notification, err := service.GetNotificationByID(999)

	assert.Equal(t, ErrNotificationNotFound, err)
	assert.Nil(t, notification)
}
