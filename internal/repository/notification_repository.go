package repository

import (
	"ecommerce-service/internal/domain"
)

type NotificationRepository interface {
	Save(notification *domain.Notification) error
	Update(notification *domain.Notification) error
	FindByID(id uint64) (*domain.Notification, error)
	FindByOrderID(orderID uint64) ([]domain.Notification, error)
	FindByCustomerEmail(email string) ([]domain.Notification, error)
	FindAll() ([]domain.Notification, error)
}
