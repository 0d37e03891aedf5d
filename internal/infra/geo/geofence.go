// Package geo implements geofence containment and GeoJSON export on top of orb.
package geo

import (
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

type orbGeofence struct{}

// NewGeofence returns a planar geofence. Points on an edge or vertex count as inside.
func NewGeofence() service.Geofence {
	return &orbGeofence{}
}

// Contains reports whether the point lies inside or on the boundary of the polygon.
// Polygons with fewer than three distinct vertices never contain anything.
func (g *orbGeofence) Contains(polygon *entity.Polygon, lat, lng float64) bool {
	ring := toRing(polygon)
	if len(ring) < 4 {
		return false
	}

	return planar.RingContains(ring, orb.Point{lng, lat})
}

// Match returns the ids of every polygon containing the point, in input order.
func (g *orbGeofence) Match(polygons []*entity.Polygon, lat, lng float64) []uuid.UUID {
	matched := make([]uuid.UUID, 0)
	for _, polygon := range polygons {
		if g.Contains(polygon, lat, lng) {
			matched = append(matched, polygon.ID)
		}
	}

	return matched
}

// ToGeoJSON renders the polygons as a FeatureCollection with id and name properties.
func (g *orbGeofence) ToGeoJSON(polygons []*entity.Polygon) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, polygon := range polygons {
		feature := geojson.NewFeature(orb.Polygon{toRing(polygon)})
		feature.ID = polygon.ID.String()
		feature.Properties["id"] = polygon.ID.String()
		feature.Properties["name"] = polygon.Name
		fc.Append(feature)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "marshal feature collection")
	}

	return data, nil
}

// toRing closes the polygon and converts it to [lng, lat] order.
func toRing(polygon *entity.Polygon) orb.Ring {
	coords := polygon.ClosedRing()
	ring := make(orb.Ring, 0, len(coords))
	for _, c := range coords {
		ring = append(ring, orb.Point{c.Lng, c.Lat})
	}

	return ring
}
