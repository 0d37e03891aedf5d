package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderInput holds the raw order fields. Pointers distinguish absent from zero.
type CreateOrderInput struct {
	ProductID       uuid.UUID
	UnitAmount      *decimal.Decimal
	Quantity        *int
	SubAmount       *decimal.Decimal
	SellerID        uuid.UUID
	Address         string
	DeliveryAddress string
	Status          string
	PaymentStatus   string
}

// UpdateOrderInput carries the fields that may change while an order is pending.
type UpdateOrderInput struct {
	Address         *string
	DeliveryAddress *string
	Quantity        *int
	SubAmount       *decimal.Decimal
}

// OrderUsecase drives the order lifecycle.
type OrderUsecase interface {
	Create(ctx context.Context, actor entity.AuthenticatedContext, input *CreateOrderInput) (*entity.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListForBuyer(ctx context.Context, actor entity.AuthenticatedContext) ([]*entity.Order, error)
	ListForSeller(ctx context.Context, actor entity.AuthenticatedContext) ([]*entity.Order, error)

	// AdvanceToDelivered moves a pending order to delivered. Any other status is rejected.
	AdvanceToDelivered(ctx context.Context, id uuid.UUID, requested string) (*entity.Order, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// SetPaymentStatus applies the payment transition table. Setting the current value is a no-op.
	SetPaymentStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error)
}

// GenerateHashInput is the checkout request the browser needs a hash for.
type GenerateHashInput struct {
	MerchantID     string
	OrderID        string
	Amount         decimal.Decimal
	Currency       string
	MerchantSecret string
}

// PaymentNotificationInput is the gateway's server-to-server callback.
type PaymentNotificationInput struct {
	MerchantID string
	OrderID    string
	Amount     decimal.Decimal
	Currency   string
	StatusCode string
	Signature  string
}

// PaymentUsecase bridges the payment gateway and the order store.
type PaymentUsecase interface {
	GenerateHash(ctx context.Context, input *GenerateHashInput) (string, error)
	HandleNotification(ctx context.Context, input *PaymentNotificationInput) error
}
