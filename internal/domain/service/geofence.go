package service

import (
	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Geofence answers containment questions over polygons.
type Geofence interface {
	// Contains reports whether the point lies inside or on the boundary of the polygon.
	Contains(polygon *entity.Polygon, lat, lng float64) bool

	// Match returns the ids of every polygon containing the point, in input order.
	Match(polygons []*entity.Polygon, lat, lng float64) []uuid.UUID

	// ToGeoJSON renders the polygons as a FeatureCollection.
	ToGeoJSON(polygons []*entity.Polygon) ([]byte, error)
}
