package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStateConflict is returned by conditional writes when the stored state no longer matches.
	ErrOrderStateConflict = errors.New("order state changed concurrently")
)

// OrderRepository persists orders. Guarded writes only apply while the stored status
// still equals the expected value, so two racing requests cannot both pass a guard.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error)

	// UpdateIfStatus saves address, delivery address, quantity and sub amount when status == expected.
	UpdateIfStatus(ctx context.Context, order *entity.Order, expected entity.OrderStatus) error

	// DeleteIfStatus removes the order when status == expected.
	DeleteIfStatus(ctx context.Context, id uuid.UUID, expected entity.OrderStatus) error

	// TransitionStatus moves status from -> to.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error

	// TransitionPaymentStatus moves paymentStatus from -> to.
	TransitionPaymentStatus(ctx context.Context, id uuid.UUID, from, to entity.PaymentStatus) error
}
