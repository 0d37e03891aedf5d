package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actor := newActor(entity.UserTypeSeller)
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, actor.UserID, "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, actor, deviceInfo)
	require.NoError(t, err)
	assert.NotNil(t, device)
	assert.Equal(t, actor.UserID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, entity.PlatformIOS, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actor := newActor(entity.UserTypeBuyer)
	deviceID := uuid.New()
	existingDevice := &entity.UserDevice{
		ID:       deviceID,
		UserID:   actor.UserID,
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: entity.PlatformAndroid,
		IsActive: false,
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, actor.UserID, "device-123").
		Return(existingDevice, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-fcm-token").
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, actor, &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, deviceID, device.ID)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_InvalidPlatform(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), newActor(entity.UserTypeBuyer), &usecase.DeviceInfo{
		FCMToken: "t",
		DeviceID: "d",
		Platform: "symbian",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_LookupError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actor := newActor(entity.UserTypeBuyer)
	dbErr := errors.New("database error")

	fx.deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, actor.UserID, "d").
		Return(nil, dbErr)

	_, err := fx.service.RegisterDevice(ctx, actor, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "web"})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestDeviceService_ListDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actor := newActor(entity.UserTypeBuyer)
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: actor.UserID, IsActive: true},
		{ID: uuid.New(), UserID: actor.UserID, IsActive: false},
	}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, actor.UserID).Return(devices, nil)

	result, err := fx.service.ListDevices(ctx, actor)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actor := newActor(entity.UserTypeBuyer)
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: actor.UserID}, nil)
	fx.deviceRepo.EXPECT().DeactivateDevice(ctx, deviceID).Return(nil)

	err := fx.service.DeactivateDevice(ctx, actor, deviceID)
	require.NoError(t, err)
}

func TestDeviceService_DeactivateDevice_NotOwner(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actor := newActor(entity.UserTypeBuyer)
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.DeactivateDevice(ctx, actor, deviceID)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_DeactivateDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.DeactivateDevice(ctx, newActor(entity.UserTypeBuyer), deviceID)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}
