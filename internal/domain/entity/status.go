package entity

// Status is the active/inactive flag shared by users, products and suppliers.
type Status string

const (
	// StatusActive marks a record as visible to the marketplace.
	StatusActive Status = "active"
	// StatusInactive marks a record as hidden. New users start here.
	StatusInactive Status = "inactive"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}
