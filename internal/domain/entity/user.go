// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account. Its Type decides which role it plays.
type User struct {
	ID           uuid.UUID    `json:"id"`                 // The Global Unique Identifier (GUID) for the user.
	Name         string       `json:"name"`               // Display name.
	Email        string       `json:"email"`              // Login identifier, unique across users.
	PasswordHash string       `json:"-"`                  // bcrypt hash, never serialised.
	PhoneNo      string       `json:"phoneNo"`            // Contact phone number.
	Type         UserType     `json:"type"`               // admin, seller or buyer.
	Status       Status       `json:"status"`             // Accounts start inactive until an admin activates them.
	ProfilePic   string       `json:"profilePic"`         // Storage key of the uploaded profile picture.
	Address      string       `json:"address"`            // Free-form postal address.
	StoreName    string       `json:"storeName"`          // Store name, used by sellers.
	Location     *GeoLocation `json:"location,omitempty"` // Last known position, required for nearby lookup.
	CreatedAt    time.Time    `json:"createdAt"`          // Timestamp of when this account was created.
	UpdatedAt    time.Time    `json:"updatedAt"`          // Timestamp of the last modification.
}

// GeoLocation is a named point in WGS84 coordinates.
type GeoLocation struct {
	Name      string  `json:"name"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// IsActiveSeller reports whether the user is discoverable by buyers.
func (u *User) IsActiveSeller() bool {
	return u.Type == UserTypeSeller && u.Status == StatusActive
}

// SellerCard is the public projection of a seller shown to buyers.
type SellerCard struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	ProfilePic string       `json:"profilePic"`
	Location   *GeoLocation `json:"location,omitempty"`
	Address    string       `json:"address"`
	StoreName  string       `json:"storeName"`
}

// ToSellerCard projects the user onto its public seller card.
func (u *User) ToSellerCard() *SellerCard {
	return &SellerCard{
		ID:         u.ID,
		Name:       u.Name,
		ProfilePic: u.ProfilePic,
		Location:   u.Location,
		Address:    u.Address,
		StoreName:  u.StoreName,
	}
}
