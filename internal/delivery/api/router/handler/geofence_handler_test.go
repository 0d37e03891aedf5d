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

type geofenceFixture struct {
	echo       *echo.Echo
	actor      entity.AuthenticatedContext
	geofenceUC *mockUC.MockGeofenceUsecase
	nearbyUC   *mockUC.MockNearbyUsecase
}

func newGeofenceFixture(t *testing.T) geofenceFixture {
	f := geofenceFixture{
		actor:      newActor(entity.UserTypeAdmin),
		geofenceUC: mockUC.NewMockGeofenceUsecase(t),
		nearbyUC:   mockUC.NewMockNearbyUsecase(t),
	}
	h := NewGeofenceHandler(GeofenceHandlerParams{GeofenceUC: f.geofenceUC, NearbyUC: f.nearbyUC, Logger: newDiscardLogger()})

	f.echo = newTestEcho()
	g := f.echo.Group("", asActor(f.actor))
	g.POST("/polygon", h.AddPolygon)
	g.GET("/polygon/geojson", h.ExportGeoJSON)
	g.GET("/polygon/sellers-near-by", h.SellersNearBy)
	g.POST("/available-location", h.SetAvailableLocations)
	g.GET("/available-location/:id", h.GetAvailableLocations)

	return f
}

func TestGeofenceHandler_AddPolygon(t *testing.T) {
	f := newGeofenceFixture(t)

	f.geofenceUC.EXPECT().
		AddPolygon(mock.Anything, f.actor, &usecase.AddPolygonInput{
			Name:        "Colombo 07",
			Coordinates: []entity.Coordinate{{Lat: 6.9, Lng: 79.8}, {Lat: 6.9, Lng: 79.9}, {Lat: 7.0, Lng: 79.9}},
		}).
		Return(&entity.Polygon{ID: uuid.New(), Name: "Colombo 07", AddedBy: f.actor.UserID}, nil)

	rec := serve(f.echo, jsonRequest(http.MethodPost, "/polygon",
		`{"name":"Colombo 07","coordinates":[{"lat":6.9,"lng":79.8},{"lat":6.9,"lng":79.9},{"lat":7.0,"lng":79.9}]}`))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got entity.Polygon
	decodeData(t, rec, &got)
	assert.Equal(t, f.actor.UserID, got.AddedBy)
}

func TestGeofenceHandler_AddPolygon_MissingFields(t *testing.T) {
	f := newGeofenceFixture(t)

	f.geofenceUC.EXPECT().
		AddPolygon(mock.Anything, f.actor, &usecase.AddPolygonInput{}).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("missing required fields: name, coordinates"))

	rec := serve(f.echo, jsonRequest(http.MethodPost, "/polygon", `{}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "missing required fields: name, coordinates", env.Error.Details)
}

func TestGeofenceHandler_ExportGeoJSON(t *testing.T) {
	f := newGeofenceFixture(t)

	f.geofenceUC.EXPECT().ExportGeoJSON(mock.Anything).Return([]byte(`{"type":"FeatureCollection","features":[]}`), nil)

	rec := serve(f.echo, jsonRequest(http.MethodGet, "/polygon/geojson", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get(echo.HeaderContentType))
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, rec.Body.String())
}

func TestGeofenceHandler_SellersNearBy(t *testing.T) {
	f := newGeofenceFixture(t)

	card := &entity.SellerCard{ID: uuid.New(), Name: "Green Grocer", StoreName: "GG"}
	f.nearbyUC.EXPECT().FindNearbySellers(mock.Anything, f.actor).Return([]*entity.SellerCard{card}, nil)

	rec := serve(f.echo, jsonRequest(http.MethodGet, "/polygon/sellers-near-by", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Sellers []entity.SellerCard `json:"sellers"`
	}
	decodeData(t, rec, &got)
	require.Len(t, got.Sellers, 1)
	assert.Equal(t, card.ID, got.Sellers[0].ID)
}

func TestGeofenceHandler_SellersNearBy_NoMatch(t *testing.T) {
	f := newGeofenceFixture(t)

	f.nearbyUC.EXPECT().FindNearbySellers(mock.Anything, f.actor).Return(nil, domainerrors.ErrNoMatch)

	rec := serve(f.echo, jsonRequest(http.MethodGet, "/polygon/sellers-near-by", ""))

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "NO_MATCH", env.Error.Code)
	assert.Equal(t, "Location is not within any polygon.", env.Error.Message)
}

func TestGeofenceHandler_SetAvailableLocations_PassesRawLocations(t *testing.T) {
	f := newGeofenceFixture(t)

	sellerID := uuid.New()
	polygonID := uuid.New()
	f.geofenceUC.EXPECT().
		SetAvailableLocations(mock.Anything, f.actor, mock.MatchedBy(func(in *usecase.SetAvailableLocationsInput) bool {
			return in.SellerID == sellerID && string(in.Locations) == `"[\"`+polygonID.String()+`\"]"`
		})).
		Return(&entity.AvailableLocation{ID: uuid.New(), UserID: sellerID, PolygonIDs: []uuid.UUID{polygonID}}, nil)

	body := `{"userId":"` + sellerID.String() + `","locations":"[\"` + polygonID.String() + `\"]"}`
	rec := serve(f.echo, jsonRequest(http.MethodPost, "/available-location", body))

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestGeofenceHandler_SetAvailableLocations_MissingUserIDReachesUsecase(t *testing.T) {
	f := newGeofenceFixture(t)

	f.geofenceUC.EXPECT().
		SetAvailableLocations(mock.Anything, f.actor, mock.MatchedBy(func(in *usecase.SetAvailableLocationsInput) bool {
			return in.SellerID == uuid.Nil && in.Locations == nil
		})).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("missing required fields: userId, locations"))

	rec := serve(f.echo, jsonRequest(http.MethodPost, "/available-location", `{}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing required fields: userId, locations", decodeEnvelope(t, rec).Error.Details)
}

func TestGeofenceHandler_SetAvailableLocations_InvalidSellerID(t *testing.T) {
	f := newGeofenceFixture(t)

	rec := serve(f.echo, jsonRequest(http.MethodPost, "/available-location", `{"userId":"nope","locations":[]}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid seller ID", decodeEnvelope(t, rec).Error.Details)
}

func TestGeofenceHandler_GetAvailableLocations_NotFound(t *testing.T) {
	f := newGeofenceFixture(t)

	sellerID := uuid.New()
	f.geofenceUC.EXPECT().GetAvailableLocations(mock.Anything, sellerID).Return(nil, domainerrors.ErrAvailableLocationNotFound)

	rec := serve(f.echo, jsonRequest(http.MethodGet, "/available-location/"+sellerID.String(), ""))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Available locations not found for this seller!", decodeEnvelope(t, rec).Error.Message)
}
