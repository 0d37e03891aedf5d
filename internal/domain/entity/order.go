package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a buyer's purchase of a single seller product.
// Status and PaymentStatus are independent axes.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"productId"`
	UnitAmount      decimal.Decimal `json:"unitAmount"`
	Quantity        int             `json:"quantity"`
	SubAmount       decimal.Decimal `json:"subAmount"`
	UserID          uuid.UUID       `json:"userId"` // Buyer, taken from the caller identity.
	SellerID        uuid.UUID       `json:"sellerId"`
	Address         string          `json:"address"`
	DeliveryAddress string          `json:"deliveryAddress"`
	OrderDate       string          `json:"orderDate"`
	OrderTime       string          `json:"orderTime"`
	Status          OrderStatus     `json:"status"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// IsMutable reports whether address, quantity and amount may still change.
func (o *Order) IsMutable() bool {
	return o.Status == OrderStatusPending
}
