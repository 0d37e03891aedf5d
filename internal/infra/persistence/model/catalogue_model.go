package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryModel mirrors the 'inventories' table.
type InventoryModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key"`
	Title        string          `gorm:"type:varchar(255);not null"`
	Description  string          `gorm:"type:text;not null"`
	ProductPic   string          `gorm:"type:varchar(255)"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CategoryType string          `gorm:"type:varchar(100);not null"`
	AddedBy      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity     int             `gorm:"not null"`
	SKU          string          `gorm:"column:sku;type:varchar(32);unique;not null"`
	SupplierID   *uuid.UUID      `gorm:"type:uuid"`
	PublishDate  string          `gorm:"type:varchar(10);not null"`
	PublishTime  string          `gorm:"type:varchar(8);not null"`
	Status       string          `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryModel) TableName() string {
	return "inventories"
}

// SupplierModel mirrors the 'suppliers' table.
type SupplierModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);unique;not null"`
	PhoneNo     string    `gorm:"type:varchar(32);unique;not null"`
	Address     string    `gorm:"type:text;not null"`
	AddedBy     uuid.UUID `gorm:"type:uuid;not null"`
	PublishDate string    `gorm:"type:varchar(10);not null"`
	PublishTime string    `gorm:"type:varchar(8);not null"`
	Status      string    `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []SupplierProductModel `gorm:"foreignKey:SupplierID"`
}

// TableName explicitly sets the table name for GORM.
func (SupplierModel) TableName() string {
	return "suppliers"
}

// SupplierProductModel mirrors the 'supplier_products' table.
type SupplierProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SKU         string          `gorm:"column:sku;type:varchar(32);unique;not null"`
	Quantity    int             `gorm:"not null"`
	SupplierID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	AddedBy     uuid.UUID       `gorm:"type:uuid;not null"`
	PublishDate string          `gorm:"type:varchar(10);not null"`
	PublishTime string          `gorm:"type:varchar(8);not null"`
	Status      string          `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupplierProductModel) TableName() string {
	return "supplier_products"
}
