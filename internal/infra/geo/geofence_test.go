package geo

import (
	"encoding/json"
	"testing"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square covers lat 6.90..6.95 and lng 79.85..79.90 (Colombo).
func square(closed bool) *entity.Polygon {
	coords := []entity.Coordinate{
		{Lat: 6.90, Lng: 79.85},
		{Lat: 6.90, Lng: 79.90},
		{Lat: 6.95, Lng: 79.90},
		{Lat: 6.95, Lng: 79.85},
	}
	if closed {
		coords = append(coords, coords[0])
	}

	return &entity.Polygon{ID: uuid.New(), Name: "Colombo 03", Coordinates: coords}
}

func TestGeofence_Contains(t *testing.T) {
	t.Parallel()

	g := NewGeofence()

	tests := []struct {
		name     string
		lat, lng float64
		want     bool
	}{
		{name: "interior", lat: 6.92, lng: 79.87, want: true},
		{name: "outside", lat: 7.10, lng: 79.87, want: false},
		{name: "on edge", lat: 6.90, lng: 79.87, want: true},
		{name: "on vertex", lat: 6.95, lng: 79.90, want: true},
		{name: "swapped axes", lat: 79.87, lng: 6.92, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, g.Contains(square(false), tt.lat, tt.lng))
			assert.Equal(t, tt.want, g.Contains(square(true), tt.lat, tt.lng), "closing the ring must not change the answer")
		})
	}
}

func TestGeofence_DegeneratePolygon(t *testing.T) {
	t.Parallel()

	g := NewGeofence()
	line := &entity.Polygon{ID: uuid.New(), Coordinates: []entity.Coordinate{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}}}

	assert.False(t, g.Contains(line, 1.5, 1.5))
	assert.False(t, g.Contains(&entity.Polygon{ID: uuid.New()}, 0, 0))
}

func TestGeofence_MatchKeepsInputOrder(t *testing.T) {
	t.Parallel()

	g := NewGeofence()
	first := square(false)
	far := &entity.Polygon{ID: uuid.New(), Coordinates: []entity.Coordinate{
		{Lat: 10, Lng: 10}, {Lat: 10, Lng: 11}, {Lat: 11, Lng: 11},
	}}
	second := square(true)

	got := g.Match([]*entity.Polygon{first, far, second}, 6.92, 79.87)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, got)

	assert.Empty(t, g.Match([]*entity.Polygon{far}, 6.92, 79.87))
}

func TestGeofence_ToGeoJSON(t *testing.T) {
	t.Parallel()

	g := NewGeofence()
	p := square(false)

	data, err := g.ToGeoJSON([]*entity.Polygon{p})
	require.NoError(t, err)

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string         `json:"type"`
				Coordinates [][][2]float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &fc))

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Polygon", fc.Features[0].Geometry.Type)
	assert.Equal(t, p.Name, fc.Features[0].Properties["name"])

	ring := fc.Features[0].Geometry.Coordinates[0]
	require.Len(t, ring, 5)
	assert.Equal(t, [2]float64{79.85, 6.90}, ring[0], "GeoJSON positions are [lng, lat]")
	assert.Equal(t, ring[0], ring[len(ring)-1])
}
