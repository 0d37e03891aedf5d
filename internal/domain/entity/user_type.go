// Package entity contains the core business objects of the project.
package entity

import "slices"

// UserType represents the marketplace role a user account plays.
type UserType string

const (
	// UserTypeAdmin manages users, polygons and seller assignments.
	UserTypeAdmin UserType = "admin"
	// UserTypeSeller owns inventory and is discoverable by buyers.
	UserTypeSeller UserType = "seller"
	// UserTypeBuyer places orders and looks up nearby sellers.
	UserTypeBuyer UserType = "buyer"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a valid value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeAdmin, UserTypeSeller, UserTypeBuyer:
		return true
	default:
		return false
	}
}

// UserTypes is a slice of UserType for convenience.
type UserTypes []UserType

// Contains checks if the slice contains a specific user type.
func (ts UserTypes) Contains(t UserType) bool {
	return slices.Contains(ts, t)
}
