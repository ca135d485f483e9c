package mysql

import (
	"ecommerce-service/internal/domain"
	"ecommerce-service/internal/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Save(notification *domain.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return errors.Wrap(err, "save notification")
	}
	return nil
}

func (r *notificationRepo) Update(notification *domain.Notification) error {
	if err := r.db.Save(notification).Error; err != nil {
		return errors.Wrap(err, "update notification")
	}
	return nil
}

func (r *notificationRepo) FindByID(id uint64) (*domain.Notification, error) {
	var n domain.Notification
	if err := r.db.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find notification by id")
	}
	return &n, nil
}

func (r *notificationRepo) FindByOrderID(orderID uint64) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := r.db.Where("order_id = ?", orderID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "find notifications by order")
	}
	return out, nil
}

func (r *notificationRepo) FindByCustomerEmail(email string) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := r.db.Where("customer_email = ?", email).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "find notifications by customer")
	}
	return out, nil
}

func (r *notificationRepo) FindAll() ([]domain.Notification, error) {
	var out []domain.Notification
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list notifications")
	}
	return out, nil
}
