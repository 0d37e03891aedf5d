package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailableLocation is the set of polygons a seller is discoverable within.
// There is at most one per seller and saving it replaces the whole set.
type AvailableLocation struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"` // The seller.
	PolygonIDs  []uuid.UUID `json:"locations"`
	AddedBy     uuid.UUID   `json:"addedBy"`
	PublishDate string      `json:"publishDate"`
	PublishTime string      `json:"publishTime"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// AvailableLocationView is an assignment populated with the related emails and polygon names.
type AvailableLocationView struct {
	ID           uuid.UUID    `json:"id"`
	UserID       uuid.UUID    `json:"userId"`
	SellerEmail  string       `json:"sellerEmail"`
	AddedBy      uuid.UUID    `json:"addedBy"`
	AddedByEmail string       `json:"addedByEmail"`
	Locations    []PolygonRef `json:"locations"`
	PublishDate  string       `json:"publishDate"`
	PublishTime  string       `json:"publishTime"`
}
