package domain

import "time"

type NotificationType string

const (
	NotifyOrderCreated   NotificationType = "ORDER_CREATED"
	NotifyOrderConfirmed NotificationType = "ORDER_CONFIRMED"
	NotifyOrderPaid      NotificationType = "ORDER_PAID"
	NotifyOrderShipped   NotificationType = "ORDER_SHIPPED"
	NotifyOrderDelivered NotificationType = "ORDER_DELIVERED"
)

type NotificationStatus string

const (
	NotificationPending NotificationStatus = "PENDING"
	NotificationSent    NotificationStatus = "SENT"
	NotificationFailed  NotificationStatus = "FAILED"
)

// Notification has no dedup key: redelivery of the same order event
// produces a second row and a second outbound send.
type Notification struct {
	ID            uint64             `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID       uint64             `json:"orderId" gorm:"not null;index"`
	CustomerEmail string             `json:"customerEmail" gorm:"not null;index"`
	Type          NotificationType   `json:"type" gorm:"type:varchar(32);not null"`
	Subject       string             `json:"subject" gorm:"not null"`
	Message       string             `json:"message" gorm:"type:text;not null"`
	Status        NotificationStatus `json:"status" gorm:"type:varchar(16);not null"`
	SentAt        *time.Time         `json:"sentAt"`
	CreatedAt     time.Time          `json:"createdAt" gorm:"autoCreateTime"`
}
