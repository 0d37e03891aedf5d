package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coordinate is a single polygon vertex.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Polygon is a named geofence. Vertices are kept in the order they were drawn.
type Polygon struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Coordinates []Coordinate `json:"coordinates"`
	AddedBy     uuid.UUID    `json:"addedBy"` // Creator, not validated against users.
	CreatedAt   time.Time    `json:"createdAt"`
}

// ClosedRing returns the vertices with the first vertex appended when the ring is open.
func (p *Polygon) ClosedRing() []Coordinate {
	ring := make([]Coordinate, len(p.Coordinates), len(p.Coordinates)+1)
	copy(ring, p.Coordinates)
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}

	return ring
}

// PolygonRef is the id/name pair shown when a polygon is referenced from another record.
type PolygonRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
