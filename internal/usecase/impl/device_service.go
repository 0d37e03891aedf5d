package impl

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes the token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, actor entity.AuthenticatedContext, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	platform := entity.Platform(deviceInfo.Platform)
	if !platform.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform must be one of ios, android, web")
	}

	existing, err := s.deviceRepo.FindDeviceByUserAndDeviceID(ctx, actor.UserID, deviceInfo.DeviceID)
	switch {
	case err == nil:
		if err := s.deviceRepo.UpdateFCMToken(ctx, existing.ID, deviceInfo.FCMToken); err != nil {
			return nil, fmt.Errorf("failed to update FCM token: %w", err)
		}
		existing.FCMToken = deviceInfo.FCMToken
		existing.IsActive = true

		return existing, nil
	case !errors.Is(err, repository.ErrDeviceNotFound):
		return nil, fmt.Errorf("failed to find device: %w", err)
	}

	device := &entity.UserDevice{
		UserID:   actor.UserID,
		FCMToken: deviceInfo.FCMToken,
		DeviceID: deviceInfo.DeviceID,
		Platform: platform,
		IsActive: true,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	return device, nil
}

// ListDevices returns every device of the caller, including deactivated ones
func (s *deviceService) ListDevices(ctx context.Context, actor entity.AuthenticatedContext) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by user: %w", err)
	}

	return devices, nil
}

// DeactivateDevice stops notifications to one of the caller's devices
func (s *deviceService) DeactivateDevice(ctx context.Context, actor entity.AuthenticatedContext, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return fmt.Errorf("failed to find device by ID: %w", err)
	}

	// Another user's device is reported as missing.
	if device.UserID != actor.UserID {
		return domainerrors.ErrDeviceNotFound
	}

	if err := s.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
		return fmt.Errorf("failed to deactivate device: %w", err)
	}

	return nil
}
