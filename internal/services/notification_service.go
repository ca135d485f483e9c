package services

import (
	"errors"
	"time"

	"ecommerce-service/internal/domain"
	"ecommerce-service/internal/infra"
	"ecommerce-service/internal/repository"

	log "github.com/sirupsen/logrus"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	repo   repository.NotificationRepository
	mailer infra.Mailer
}

func NewNotificationService(r repository.NotificationRepository, m infra.Mailer) *NotificationService {
	return &NotificationService{
		repo:   r,
		mailer: m,
	}
}

// CreateAndSend persists the notification as PENDING, attempts the
// delivery, and records the terminal SENT or FAILED status. Delivery
// failures are swallowed here; nothing upstream retries them.
func (s *NotificationService) CreateAndSend(orderID uint64, customerEmail string, notifType domain.NotificationType, subject, message string) (*domain.Notification, error) {
	notification := &domain.Notification{
		OrderID:       orderID,
		CustomerEmail: customerEmail,
		Type:          notifType,
		Subject:       subject,
		Message:       message,
		Status:        domain.NotificationPending,
	}
	if err := s.repo.Save(notification); err != nil {
		return nil, err
	}

	if s.mailer.Send(customerEmail, subject, message, false) {
		now := time.Now()
		notification.Status = domain.NotificationSent
		notification.SentAt = &now
		log.WithFields(log.Fields{
			"type": notifType,
			"to":   customerEmail,
		}).Info("notification sent")
	} else {
		notification.Status = domain.NotificationFailed
		log.WithFields(log.Fields{
			"type": notifType,
			"to":   customerEmail,
		}).Error("failed to send notification")
	}

	if err := s.repo.Update(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *NotificationService) GetNotificationByID(id uint64) (*domain.Notification, error) {
	n, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNotificationNotFound
	}
	return n, nil
}

func (s *NotificationService) GetNotificationsByOrderID(orderID uint64) ([]domain.Notification, error) {
	return s.repo.FindByOrderID(orderID)
}

func (s *NotificationService) GetNotificationsByCustomerEmail(email string) ([]domain.Notification, error) {
	return s.repo.FindByCustomerEmail(email)
}

func (s *NotificationService) GetAllNotifications() ([]domain.Notification, error) {
	return s.repo.FindAll()
}
