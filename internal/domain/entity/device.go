package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform identifies the client platform a device runs on.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

// IsValid checks if the Platform is a valid value.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return true
	default:
		return false
	}
}

// UserDevice represents a user's device registered for order push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the device.
	UserID    uuid.UUID `json:"userId"`    // The ID of the user who owns this device.
	FCMToken  string    `json:"fcmToken"`  // Firebase Cloud Messaging token for push notifications.
	DeviceID  string    `json:"deviceId"`  // Unique device identifier from the client.
	Platform  Platform  `json:"platform"`  // Device platform.
	IsActive  bool      `json:"isActive"`  // Indicates if this device is active for notifications.
	CreatedAt time.Time `json:"createdAt"` // Timestamp of when this device was registered.
	UpdatedAt time.Time `json:"updatedAt"` // Timestamp of the last modification.
}
