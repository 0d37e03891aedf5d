package usecase

import (
	"context"
	"encoding/json"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// AddPolygonInput defines the data required to store a polygon.
type AddPolygonInput struct {
	Name        string
	Coordinates []entity.Coordinate
}

// SetAvailableLocationsInput assigns polygons to a seller.
// Locations holds the raw request value; it may be an id array, an array of {id}
// objects, or a string carrying JSON of either.
type SetAvailableLocationsInput struct {
	SellerID  uuid.UUID
	Locations json.RawMessage
}

// GeofenceUsecase manages polygons and seller assignments.
type GeofenceUsecase interface {
	AddPolygon(ctx context.Context, actor entity.AuthenticatedContext, input *AddPolygonInput) (*entity.Polygon, error)
	ListPolygons(ctx context.Context) ([]*entity.Polygon, error)
	ExportGeoJSON(ctx context.Context) ([]byte, error)

	SetAvailableLocations(ctx context.Context, actor entity.AuthenticatedContext, input *SetAvailableLocationsInput) (*entity.AvailableLocation, error)
	ListAvailableLocations(ctx context.Context) ([]*entity.AvailableLocationView, error)
	GetAvailableLocations(ctx context.Context, sellerID uuid.UUID) (*entity.AvailableLocationView, error)
}

// NearbyUsecase answers which active sellers serve the caller's location.
type NearbyUsecase interface {
	FindNearbySellers(ctx context.Context, actor entity.AuthenticatedContext) ([]*entity.SellerCard, error)
}
