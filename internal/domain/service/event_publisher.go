package service

import (
	"context"
)

// OrderEventType names the lifecycle change an OrderEvent reports.
type OrderEventType string

const (
	OrderEventCreated          OrderEventType = "order.created"
	OrderEventDelivered        OrderEventType = "order.delivered"
	OrderEventPaymentCompleted OrderEventType = "order.payment_completed"
)

// OrderEvent represents an order change to be processed by the notifier worker
type OrderEvent struct {
	RequestID     string         `json:"request_id,omitempty"` // For distributed tracing
	EventID       string         `json:"event_id"`
	Type          OrderEventType `json:"type"`
	OrderID       string         `json:"order_id"`
	BuyerID       string         `json:"buyer_id"`
	SellerID      string         `json:"seller_id"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"payment_status"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
