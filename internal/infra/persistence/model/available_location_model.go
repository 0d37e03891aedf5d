package model

import (
	"time"

	"github.com/google/uuid"
)

// AvailableLocationModel mirrors the 'available_locations' table, one row per seller.
type AvailableLocationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;unique;not null"`
	AddedBy     uuid.UUID `gorm:"type:uuid;not null"`
	PublishDate string    `gorm:"type:varchar(10);not null"`
	PublishTime string    `gorm:"type:varchar(8);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Polygons []AvailableLocationPolygonModel `gorm:"foreignKey:AvailableLocationID"`
}

// TableName explicitly sets the table name for GORM.
func (AvailableLocationModel) TableName() string {
	return "available_locations"
}

// AvailableLocationPolygonModel mirrors the 'available_location_polygons' join table.
type AvailableLocationPolygonModel struct {
	AvailableLocationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	PolygonID           uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (AvailableLocationPolygonModel) TableName() string {
	return "available_location_polygons"
}
