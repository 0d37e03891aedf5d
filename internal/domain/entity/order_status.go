package entity

import (
	"slices"

	"github.com/pkg/errors"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the only initial state.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusDelivered is terminal.
	OrderStatusDelivered OrderStatus = "delivered"
)

// PaymentStatus is the payment state of an order.
type PaymentStatus string

const (
	// PaymentStatusPending is the only initial state.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusCompleted is terminal.
	PaymentStatusCompleted PaymentStatus = "completed"
)

//nolint:gochecknoglobals
var (
	orderStatusTransitions = map[OrderStatus][]OrderStatus{
		OrderStatusPending: {OrderStatusDelivered},
	}

	paymentStatusTransitions = map[PaymentStatus][]PaymentStatus{
		PaymentStatusPending: {PaymentStatusCompleted},
	}
)

// ErrUnknownStatus is returned when a status string is not part of its enum.
var ErrUnknownStatus = errors.New("unknown status")

// ParseOrderStatus converts a raw value into an OrderStatus.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if !s.IsValid() {
		return "", errors.Wrapf(ErrUnknownStatus, "order status %q", raw)
	}

	return s, nil
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the transition table allows s -> next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderStatusTransitions[s], next)
}

// ParsePaymentStatus converts a raw value into a PaymentStatus.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	s := PaymentStatus(raw)
	if !s.IsValid() {
		return "", errors.Wrapf(ErrUnknownStatus, "payment status %q", raw)
	}

	return s, nil
}

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the transition table allows s -> next.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return slices.Contains(paymentStatusTransitions[s], next)
}
