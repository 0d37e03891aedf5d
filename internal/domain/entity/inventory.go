package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inventory is a product listed by a seller.
type Inventory struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	ProductPic   string          `json:"productPic"`
	Price        decimal.Decimal `json:"price"`
	CategoryType string          `json:"categoryType"`
	AddedBy      uuid.UUID       `json:"addedBy"` // Owning seller.
	Quantity     int             `json:"quantity"`
	SKU          string          `json:"sku"`
	SupplierID   *uuid.UUID      `json:"supplierId,omitempty"`
	PublishDate  string          `json:"publishDate"`
	PublishTime  string          `json:"publishTime"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// SellerWithProducts is an active seller together with its listed products.
type SellerWithProducts struct {
	*User
	Products []*Inventory `json:"products"`
}
