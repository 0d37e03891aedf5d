package handler

import (
	"log/slog"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req usecase.DeviceInfo
	if err := bind(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), actor, &req)
	if err != nil {
		return err
	}

	return response.Created(c, device)
}

// ListDevices handles retrieving the caller's active devices
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return response.OK(c, devices)
}

// DeactivateDevice handles deactivating a device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), actor, deviceID); err != nil {
		return err
	}

	return response.Message(c, "Device deactivated successfully")
}
