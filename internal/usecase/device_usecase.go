package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcmToken" validate:"required"`
	DeviceID string `json:"deviceId" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of an existing one
	RegisterDevice(ctx context.Context, actor entity.AuthenticatedContext, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// ListDevices retrieves all active devices of the caller
	ListDevices(ctx context.Context, actor entity.AuthenticatedContext) ([]*entity.UserDevice, error)

	// DeactivateDevice stops notifications to one of the caller's devices
	DeactivateDevice(ctx context.Context, actor entity.AuthenticatedContext, deviceID uuid.UUID) error
}
