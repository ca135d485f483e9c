package mysql

import (
	"ecommerce-service/internal/domain"
	"ecommerce-service/internal/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Save(order *domain.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return errors.Wrap(err, "save order")
	}
	if order.ID == 0 {
		return errors.New("order saved but no ID assigned")
	}
	return nil
}

// Update writes the order row only; item rows are immutable after creation.
func (r *orderRepo) Update(order *domain.Order) error {
	if err := r.db.Omit(clause.Associations).Save(order).Error; err != nil {
		return errors.Wrap(err, "update order")
	}
	return nil
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.Preload("Items").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find order by id")
	}
	return &o, nil
}

func (r *orderRepo) FindAll() ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Preload("Items").Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return out, nil
}

func (r *orderRepo) FindByCustomerEmail(email string) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Preload("Items").Where("customer_email = ?", email).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "find orders by customer")
	}
	return out, nil
}
