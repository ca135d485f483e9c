package services

import (
	"context"
	"errors"
	"sync"

	"ecommerce-service/internal/domain"
	"ecommerce-service/internal/infra"
	rabbit "ecommerce-service/internal/infra/rabbitmq"
	"ecommerce-service/internal/repository"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyOrder    = errors.New("order must contain at least one item")
)

// statusRoutingKeys maps the transitions that emit an event. Targets
// absent here persist without publishing anything.
var statusRoutingKeys = map[domain.OrderStatus]string{
	domain.StatusPaid:      rabbit.OrderPaidKey,
	domain.StatusShipped:   rabbit.OrderShippedKey,
	domain.StatusDelivered: rabbit.OrderDeliveredKey,
}

type OrderItemParams struct {
	ProductID   uint64
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

type CreateOrderParams struct {
	CustomerEmail   string
	CustomerName    string
	ShippingAddress string
	PaymentMethod   string
	Items           []OrderItemParams
}

type OrderService struct {
	repo      repository.OrderRepository
	stock     infra.ProductClientInterface
	publisher rabbit.PublisherInterface

	// locks serializes writers per order id so concurrent status
	// updates never interleave a half-written record.
	locks sync.Map
}

func NewOrderService(r repository.OrderRepository, stock infra.ProductClientInterface, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:      r,
		stock:     stock,
		publisher: pub,
	}
}

func (s *OrderService) lockOrder(id uint64) func() {
	v, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// CreateOrder persists the order as PENDING, publishes order.created,
// then immediately confirms it and publishes order.confirmed. Callers
// never observe the PENDING state; both events always come out in that
// order for one creation.
func (s *OrderService) CreateOrder(ctx context.Context, p CreateOrderParams) (*domain.Order, error) {
	if len(p.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	total := decimal.Zero
	items := make([]domain.OrderItem, 0, len(p.Items))
	for _, it := range p.Items {
		subtotal := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items = append(items, domain.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.Price,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}

	order := &domain.Order{
		CustomerEmail:   p.CustomerEmail,
		CustomerName:    p.CustomerName,
		Items:           items,
		ShippingAddress: p.ShippingAddress,
		PaymentMethod:   p.PaymentMethod,
		Status:          domain.StatusPending,
		TotalAmount:     total,
	}

	if err := s.repo.Save(order); err != nil {
		return nil, err
	}
	log.WithField("order_id", order.ID).Info("order created")

	s.publishEvent(ctx, order, rabbit.OrderCreatedKey)

	order.Status = domain.StatusConfirmed
	if err := s.repo.Update(order); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, order, rabbit.OrderConfirmedKey)

	return order, nil
}

// UpdateStatus sets the new status unconditionally; no transition table
// is enforced. The DELIVERED edge fires the stock adjustment exactly
// once per transition into that state.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint64, status domain.OrderStatus) (*domain.Order, error) {
	unlock := s.lockOrder(orderID)
	defer unlock()

	order, err := s.repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	previous := order.Status
	order.Status = status
	if err := s.repo.Update(order); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"order_id": orderID,
		"from":     previous,
		"to":       status,
	}).Info("order status updated")

	if status == domain.StatusDelivered && previous != domain.StatusDelivered {
		s.adjustStock(order)
	}

	if key, ok := statusRoutingKeys[status]; ok {
		s.publishEvent(ctx, order, key)
	}

	return order, nil
}

// RecordPayment attaches the payment and marks the order PAID.
func (s *OrderService) RecordPayment(ctx context.Context, orderID, paymentID uint64) (*domain.Order, error) {
	unlock := s.lockOrder(orderID)
	defer unlock()

	order, err := s.repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	order.PaymentID = &paymentID
	order.Status = domain.StatusPaid
	if err := s.repo.Update(order); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, order, rabbit.OrderPaidKey)

	return order, nil
}

func (s *OrderService) GetOrderByID(id uint64) (*domain.Order, error) {
	o, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) GetAllOrders() ([]domain.Order, error) {
	return s.repo.FindAll()
}

func (s *OrderService) GetOrdersByCustomerEmail(email string) ([]domain.Order, error) {
	return s.repo.FindByCustomerEmail(email)
}

// publishEvent is best effort: the persisted state is already committed
// and is not rolled back when the publish fails. The failure is logged
// so the gap stays visible.
func (s *OrderService) publishEvent(ctx context.Context, order *domain.Order, routingKey string) {
	event := domain.NewOrderEvent(order)
	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		log.WithFields(log.Fields{
			"order_id":    order.ID,
			"routing_key": routingKey,
			"error":       err,
		}).Error("event publish failed, state not rolled back")
		return
	}
	log.WithFields(log.Fields{
		"order_id":    order.ID,
		"routing_key": routingKey,
	}).Info("order event published")
}

// adjustStock fires one goroutine per item. Nothing is awaited and the
// order record never reflects whether the adjustment landed.
func (s *OrderService) adjustStock(order *domain.Order) {
	for _, item := range order.Items {
		go func(productID uint64, quantity int) {
			if err := s.stock.AdjustStock(context.Background(), productID, quantity); err != nil {
				log.WithFields(log.Fields{
					"product_id": productID,
					"quantity":   quantity,
					"error":      err,
				}).Error("stock adjustment failed")
				return
			}
			log.WithFields(log.Fields{
				"product_id": productID,
				"quantity":   quantity,
			}).Info("stock adjusted")
		}(item.ProductID, item.Quantity)
	}
}
