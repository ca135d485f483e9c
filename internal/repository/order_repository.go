package repository

import (
	"ecommerce-service/internal/domain"
)

type OrderRepository interface {
	Save(order *domain.Order) error
	Update(order *domain.Order) error
	FindByID(id uint64) (*domain.Order, error)
	FindAll() ([]domain.Order, error)
	FindByCustomerEmail(email string) ([]domain.Order, error)
}
