package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceFixture(t *testing.T, actor entity.AuthenticatedContext) (*echo.Echo, *mockUC.MockDeviceUsecase) {
	deviceUC := mockUC.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/devices", asActor(actor))
	g.POST("", h.RegisterDevice)
	g.GET("", h.ListDevices)
	g.DELETE("/:id", h.DeactivateDevice)

	return e, deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	actor := newActor(entity.UserTypeSeller)
	e, deviceUC := newDeviceFixture(t, actor)

	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, actor, &usecase.DeviceInfo{FCMToken: "fcm-1", DeviceID: "pixel-8", Platform: "android"}).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: actor.UserID, IsActive: true}, nil)

	rec := serve(e, jsonRequest(http.MethodPost, "/devices", `{"fcmToken":"fcm-1","deviceId":"pixel-8","platform":"android"}`))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got entity.UserDevice
	decodeData(t, rec, &got)
	assert.Equal(t, actor.UserID, got.UserID)
	assert.True(t, got.IsActive)
}

func TestDeviceHandler_RegisterDevice_InvalidPlatform(t *testing.T) {
	actor := newActor(entity.UserTypeSeller)
	e, _ := newDeviceFixture(t, actor)

	rec := serve(e, jsonRequest(http.MethodPost, "/devices", `{"fcmToken":"fcm-1","deviceId":"pc","platform":"windows"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "platform: must be one of [ios android web]", decodeEnvelope(t, rec).Error.Details)
}

func TestDeviceHandler_DeactivateDevice_NotOwned(t *testing.T) {
	actor := newActor(entity.UserTypeBuyer)
	e, deviceUC := newDeviceFixture(t, actor)

	id := uuid.New()
	deviceUC.EXPECT().DeactivateDevice(mock.Anything, actor, id).Return(domainerrors.ErrDeviceNotFound)

	rec := serve(e, jsonRequest(http.MethodDelete, "/devices/"+id.String(), ""))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DEVICE_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}
