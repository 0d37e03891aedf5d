package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// PolygonRepository persists geofence polygons. Polygons are immutable once stored.
type PolygonRepository interface {
	Create(ctx context.Context, polygon *entity.Polygon) error
	List(ctx context.Context) ([]*entity.Polygon, error)

	// FindByIDs returns the polygons that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Polygon, error)
}
