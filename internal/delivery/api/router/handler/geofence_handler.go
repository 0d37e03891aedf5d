package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeofenceHandlerParams holds dependencies for GeofenceHandler, injected by Fx.
type GeofenceHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
	NearbyUC   usecase.NearbyUsecase
	Logger     *slog.Logger
}

// GeofenceHandler serves polygons, seller location assignments and nearby lookups.
type GeofenceHandler struct {
	geofenceUC usecase.GeofenceUsecase
	nearbyUC   usecase.NearbyUsecase
	logger     *slog.Logger
}

// NewGeofenceHandler is the constructor for GeofenceHandler
func NewGeofenceHandler(params GeofenceHandlerParams) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: params.GeofenceUC,
		nearbyUC:   params.NearbyUC,
		logger:     params.Logger,
	}
}

// AddPolygonRequest represents the request body for storing a polygon
type AddPolygonRequest struct {
	Name        string              `json:"name"`
	Coordinates []entity.Coordinate `json:"coordinates"`
}

// SetAvailableLocationsRequest assigns polygons to a seller. Locations is kept raw
// because clients send ids, {id} objects, or a JSON string of either.
type SetAvailableLocationsRequest struct {
	UserID    string          `json:"userId"`
	Locations json.RawMessage `json:"locations"`
}

// AddPolygon stores a new geofence drawn by the caller.
func (h *GeofenceHandler) AddPolygon(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req AddPolygonRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	polygon, err := h.geofenceUC.AddPolygon(c.Request().Context(), actor, &usecase.AddPolygonInput{
		Name:        req.Name,
		Coordinates: req.Coordinates,
	})
	if err != nil {
		return err
	}

	return response.Created(c, polygon)
}

// ListPolygons returns every stored polygon.
func (h *GeofenceHandler) ListPolygons(c echo.Context) error {
	polygons, err := h.geofenceUC.ListPolygons(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, polygons)
}

// ExportGeoJSON returns the polygons as a GeoJSON FeatureCollection.
func (h *GeofenceHandler) ExportGeoJSON(c echo.Context) error {
	body, err := h.geofenceUC.ExportGeoJSON(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "application/geo+json", body)
}

// SellersNearBy lists the active sellers whose polygons contain the caller's location.
func (h *GeofenceHandler) SellersNearBy(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	sellers, err := h.nearbyUC.FindNearbySellers(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"sellers": sellers})
}

// SetAvailableLocations replaces the polygon set a seller is discoverable within.
func (h *GeofenceHandler) SetAvailableLocations(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req SetAvailableLocationsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	// An absent userId is reported by the use case together with the other missing fields.
	sellerID := uuid.Nil
	if req.UserID != "" {
		if sellerID, err = uuid.Parse(req.UserID); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("Invalid seller ID")
		}
	}

	location, err := h.geofenceUC.SetAvailableLocations(c.Request().Context(), actor, &usecase.SetAvailableLocationsInput{
		SellerID:  sellerID,
		Locations: req.Locations,
	})
	if err != nil {
		return err
	}

	return response.Created(c, location)
}

// ListAvailableLocations returns every seller assignment for the admin view.
func (h *GeofenceHandler) ListAvailableLocations(c echo.Context) error {
	locations, err := h.geofenceUC.ListAvailableLocations(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, locations)
}

// GetAvailableLocations returns the assignment of one seller.
func (h *GeofenceHandler) GetAvailableLocations(c echo.Context) error {
	sellerID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	location, err := h.geofenceUC.GetAvailableLocations(c.Request().Context(), sellerID)
	if err != nil {
		return err
	}

	return response.OK(c, location)
}
