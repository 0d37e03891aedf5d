package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAvailableLocationNotFound is returned when a seller has no assignment.
var ErrAvailableLocationNotFound = errors.New("available location not found")

// AvailableLocationRepository persists seller polygon assignments.
type AvailableLocationRepository interface {
	// Upsert stores the assignment keyed by seller, replacing the previous polygon set entirely.
	Upsert(ctx context.Context, location *entity.AvailableLocation) error

	// List returns every assignment populated with emails and polygon names.
	List(ctx context.Context) ([]*entity.AvailableLocationView, error)

	// FindBySeller returns the seller's populated assignment.
	FindBySeller(ctx context.Context, sellerID uuid.UUID) (*entity.AvailableLocationView, error)

	// FindActiveSellersByPolygons returns the distinct active sellers assigned to any of the polygons.
	FindActiveSellersByPolygons(ctx context.Context, polygonIDs []uuid.UUID) ([]*entity.User, error)
}
