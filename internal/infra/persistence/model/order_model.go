package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null"`
	UnitAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity        int             `gorm:"not null"`
	SubAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	SellerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Address         string          `gorm:"type:text;not null"`
	DeliveryAddress string          `gorm:"type:text"`
	OrderDate       string          `gorm:"type:varchar(10);not null"`
	OrderTime       string          `gorm:"type:varchar(8);not null"`
	Status          string          `gorm:"type:varchar(16);not null"`
	PaymentStatus   string          `gorm:"type:varchar(16);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
