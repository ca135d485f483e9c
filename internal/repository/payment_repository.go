package repository

import (
	"ecommerce-service/internal/domain"
)

type PaymentRepository interface {
	Save(payment *domain.Payment) error
	Update(payment *domain.Payment) error
	FindByID(id uint64) (*domain.Payment, error)
	FindByOrderID(orderID uint64) (*domain.Payment, error)
	FindAll() ([]domain.Payment, error)
}
