package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CoordinateJSON is one vertex inside the polygons.coordinates JSONB column.
type CoordinateJSON struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PolygonModel mirrors the 'polygons' table.
type PolygonModel struct {
	ID          uuid.UUID                           `gorm:"type:uuid;primary_key"`
	Name        string                              `gorm:"type:varchar(255);not null"`
	Coordinates datatypes.JSONSlice[CoordinateJSON] `gorm:"type:jsonb;not null"`
	AddedBy     uuid.UUID                           `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PolygonModel) TableName() string {
	return "polygons"
}
