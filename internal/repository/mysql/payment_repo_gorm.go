package mysql

import (
	"ecommerce-service/internal/domain"
	"ecommerce-service/internal/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Save(payment *domain.Payment) error {
	if err := r.db.Create(payment).Error; err != nil {
		return errors.Wrap(err, "save payment")
	}
	return nil
}

func (r *paymentRepo) Update(payment *domain.Payment) error {
	if err := r.db.Save(payment).Error; err != nil {
		return errors.Wrap(err, "update payment")
	}
	return nil
}

func (r *paymentRepo) FindByID(id uint64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find payment by id")
	}
	return &p, nil
}

// FindByOrderID returns the latest attempt; the orderId column carries
// no uniqueness constraint.
func (r *paymentRepo) FindByOrderID(orderID uint64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.Where("order_id = ?", orderID).Order("created_at DESC").First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find payment by order")
	}
	return &p, nil
}

func (r *paymentRepo) FindAll() ([]domain.Payment, error) {
	var out []domain.Payment
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list payments")
	}
	return out, nil
}
