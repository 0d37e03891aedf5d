package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supplier is a contact that provides products to sellers.
type Supplier struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	PhoneNo     string             `json:"phoneNo"`
	Address     string             `json:"address"`
	Products    []*SupplierProduct `json:"products"` // Creation order.
	AddedBy     uuid.UUID          `json:"addedBy"`
	PublishDate string             `json:"publishDate"`
	PublishTime string             `json:"publishTime"`
	Status      Status             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// SupplierProduct belongs to exactly one supplier and is removed with it.
type SupplierProduct struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	SupplierID  uuid.UUID       `json:"supplierId"`
	AddedBy     uuid.UUID       `json:"addedBy"`
	PublishDate string          `json:"publishDate"`
	PublishTime string          `json:"publishTime"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
