package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"ecommerce-service/internal/domain"
	"ecommerce-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const customerOrdersCacheTTL = 10 * time.Second

type Handler struct {
	orders        *services.OrderService
	payments      *services.PaymentService
	notifications *services.NotificationService
	rdb           *redis.Client
}

func NewHandler(o *services.OrderService, p *services.PaymentService, n *services.NotificationService, rdb *redis.Client) *Handler {
	return &Handler{orders: o, payments: p, notifications: n, rdb: rdb}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/orders", h.CreateOrder)
	api.GET("/orders", h.GetAllOrders)
	api.GET("/orders/:id", h.GetOrderByID)
	api.GET("/orders/customer/:email", h.GetOrdersByCustomer)
	api.PUT("/orders/:id/status", h.UpdateOrderStatus)
	api.PUT("/orders/:id/payment", h.RecordPayment)

	api.POST("/payments/process", h.ProcessPayment)
	api.GET("/payments", h.GetAllPayments)
	api.GET("/payments/:id", h.GetPaymentByID)
	api.GET("/payments/order/:orderId", h.GetPaymentByOrderID)

	api.GET("/notifications", h.GetAllNotifications)
	api.GET("/notifications/:id", h.GetNotificationByID)
	api.GET("/notifications/order/:orderId", h.GetNotificationsByOrder)
	api.GET("/notifications/customer/:email", h.GetNotificationsByCustomer)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]services.OrderItemParams, 0, len(req.Items))
	for _, it := range req.Items {
		if !it.Price.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item price must be positive"})
			return
		}
		items = append(items, services.OrderItemParams{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), services.CreateOrderParams{
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Items:           items,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.invalidateCustomerOrders(order.CustomerEmail)
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) GetAllOrders(c *gin.Context) {
	orders, err := h.orders.GetAllOrders()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.GetOrderByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetOrdersByCustomer(c *gin.Context) {
	email := c.Param("email")
	cacheKey := "orders:customer:" + email

	ctx := c.Request.Context()
	if b, err := h.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var orders []domain.Order
		if json.Unmarshal([]byte(b), &orders) == nil {
			c.JSON(http.StatusOK, orders)
			return
		}
	}

	orders, err := h.orders.GetOrdersByCustomerEmail(email)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if data, err := json.Marshal(orders); err == nil {
		h.rdb.Set(ctx, cacheKey, data, customerOrdersCacheTTL)
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.invalidateCustomerOrders(order.CustomerEmail)
	c.JSON(http.StatusOK, order)
}

func (h *Handler) RecordPayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.RecordPayment(c.Request.Context(), id, req.PaymentID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.invalidateCustomerOrders(order.CustomerEmail)
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ProcessPayment(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}

	payment, err := h.payments.ProcessPayment(c.Request.Context(), req.OrderID, req.Amount, req.PaymentMethod, req.PaymentDetails)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *Handler) GetAllPayments(c *gin.Context) {
	payments, err := h.payments.GetAllPayments()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handler) GetPaymentByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	payment, err := h.payments.GetPaymentByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *Handler) GetPaymentByOrderID(c *gin.Context) {
	id, ok := parseID(c, "orderId")
	if !ok {
		return
	}
	payment, err := h.payments.GetPaymentByOrderID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *Handler) GetAllNotifications(c *gin.Context) {
	notifications, err := h.notifications.GetAllNotifications()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *Handler) GetNotificationByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	notification, err := h.notifications.GetNotificationByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *Handler) GetNotificationsByOrder(c *gin.Context) {
	id, ok := parseID(c, "orderId")
	if !ok {
		return
	}
	notifications, err := h.notifications.GetNotificationsByOrderID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *Handler) GetNotificationsByCustomer(c *gin.Context) {
	notifications, err := h.notifications.GetNotificationsByCustomerEmail(c.Param("email"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *Handler) invalidateCustomerOrders(email string) {
	if h.rdb == nil {
		return
	}
	h.rdb.Del(context.Background(), "orders:customer:"+email)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrUnsupportedMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrPaymentProcessing):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}
