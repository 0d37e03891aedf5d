package impl

import (
	"context"
	"encoding/json"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type geofenceServiceFixtures struct {
	service      usecase.GeofenceUsecase
	userRepo     *mockRepo.MockUserRepository
	polygonRepo  *mockRepo.MockPolygonRepository
	locationRepo *mockRepo.MockAvailableLocationRepository
	geofence     *mockSvc.MockGeofence
}

func createTestGeofenceService(t *testing.T) geofenceServiceFixtures {
	fx := geofenceServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		polygonRepo:  mockRepo.NewMockPolygonRepository(t),
		locationRepo: mockRepo.NewMockAvailableLocationRepository(t),
		geofence:     mockSvc.NewMockGeofence(t),
	}

	service, err := NewGeofenceService(GeofenceServiceParams{
		UserRepo:     fx.userRepo,
		PolygonRepo:  fx.polygonRepo,
		LocationRepo: fx.locationRepo,
		Geofence:     fx.geofence,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)
	fx.service = service

	return fx
}

func TestGeofenceService_AddPolygon(t *testing.T) {
	fx := createTestGeofenceService(t)

	ctx := context.Background()
	actor := newActor(entity.UserTypeAdmin)
	input := &usecase.AddPolygonInput{
		Name:        "Colombo 03",
		Coordinates: []entity.Coordinate{{Lat: 6.90, Lng: 79.85}, {Lat: 6.91, Lng: 79.85}, {Lat: 6.91, Lng: 79.86}},
	}

	fx.polygonRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Polygon")).Return(nil)

	polygon, err := fx.service.AddPolygon(ctx, actor, input)

	require.NoError(t, err)
	assert.Equal(t, actor.UserID, polygon.AddedBy)
	assert.Len(t, polygon.Coordinates, 3)
}

func TestGeofenceService_AddPolygon_Invalid(t *testing.T) {
	fx := createTestGeofenceService(t)
	actor := newActor(entity.UserTypeAdmin)

	_, err := fx.service.AddPolygon(context.Background(), actor, &usecase.AddPolygonInput{})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "name, coordinates")

	_, err = fx.service.AddPolygon(context.Background(), actor, &usecase.AddPolygonInput{
		Name:        "bad",
		Coordinates: []entity.Coordinate{{Lat: 91, Lng: 0}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGeofenceService_SetAvailableLocations_Success(t *testing.T) {
	fx := createTestGeofenceService(t)

	ctx := context.Background()
	actor := newActor(entity.UserTypeAdmin)
	seller := &entity.User{ID: uuid.New(), Type: entity.UserTypeSeller}
	p1, p2 := uuid.New(), uuid.New()
	raw := json.RawMessage(`["` + p1.String() + `", {"id": "` + p2.String() + `"}, "` + p1.String() + `"]`)

	fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	fx.polygonRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{p1, p2}).
		Return([]*entity.Polygon{{ID: p1}, {ID: p2}}, nil)
	fx.locationRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.AvailableLocation")).Return(nil)

	location, err := fx.service.SetAvailableLocations(ctx, actor, &usecase.SetAvailableLocationsInput{
		SellerID:  seller.ID,
		Locations: raw,
	})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{p1, p2}, location.PolygonIDs)
	assert.Equal(t, actor.UserID, location.AddedBy)
	assert.Regexp(t, dateStamp, location.PublishDate)
	assert.Regexp(t, timeStamp, location.PublishTime)
}

func TestGeofenceService_SetAvailableLocations_Idempotent(t *testing.T) {
	fx := createTestGeofenceService(t)

	ctx := context.Background()
	actor := newActor(entity.UserTypeAdmin)
	seller := &entity.User{ID: uuid.New(), Type: entity.UserTypeSeller}
	p1 := uuid.New()
	input := &usecase.SetAvailableLocationsInput{
		SellerID:  seller.ID,
		Locations: json.RawMessage(`"[\"` + p1.String() + `\"]"`),
	}

	var stored [][]uuid.UUID
	fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil).Times(2)
	fx.polygonRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{p1}).Return([]*entity.Polygon{{ID: p1}}, nil).Times(2)
	fx.locationRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.AvailableLocation")).
		Run(func(_ context.Context, location *entity.AvailableLocation) {
			stored = append(stored, location.PolygonIDs)
		}).
		Return(nil).
		Times(2)

	_, err := fx.service.SetAvailableLocations(ctx, actor, input)
	require.NoError(t, err)
	_, err = fx.service.SetAvailableLocations(ctx, actor, input)
	require.NoError(t, err)

	require.Len(t, stored, 2)
	assert.Equal(t, stored[0], stored[1])
}

func TestGeofenceService_SetAvailableLocations_UnknownPolygons(t *testing.T) {
	fx := createTestGeofenceService(t)

	ctx := context.Background()
	seller := &entity.User{ID: uuid.New(), Type: entity.UserTypeSeller}
	known, unknown := uuid.New(), uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	fx.polygonRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{known, unknown}).
		Return([]*entity.Polygon{{ID: known}}, nil)

	_, err := fx.service.SetAvailableLocations(ctx, newActor(entity.UserTypeAdmin), &usecase.SetAvailableLocationsInput{
		SellerID:  seller.ID,
		Locations: json.RawMessage(`["` + known.String() + `", "` + unknown.String() + `", "not-a-uuid"]`),
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "Some locations do not exist in saved polygons")
	assert.Contains(t, err.Error(), unknown.String())
	assert.Contains(t, err.Error(), "not-a-uuid")
}

func TestGeofenceService_SetAvailableLocations_NotASeller(t *testing.T) {
	fx := createTestGeofenceService(t)

	ctx := context.Background()
	buyer := &entity.User{ID: uuid.New(), Type: entity.UserTypeBuyer}
	missing := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)
	fx.userRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrUserNotFound)

	for _, id := range []uuid.UUID{buyer.ID, missing} {
		_, err := fx.service.SetAvailableLocations(ctx, newActor(entity.UserTypeAdmin), &usecase.SetAvailableLocationsInput{
			SellerID:  id,
			Locations: json.RawMessage(`[]`),
		})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Contains(t, err.Error(), "Invalid seller ID")
	}
}

func TestGeofenceService_SetAvailableLocations_MissingFields(t *testing.T) {
	fx := createTestGeofenceService(t)

	_, err := fx.service.SetAvailableLocations(context.Background(), newActor(entity.UserTypeAdmin), &usecase.SetAvailableLocationsInput{
		Locations: json.RawMessage(`null`),
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "userId, locations")
}

func TestGeofenceService_GetAvailableLocations_NotFound(t *testing.T) {
	fx := createTestGeofenceService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	fx.locationRepo.EXPECT().FindBySeller(ctx, sellerID).Return(nil, repository.ErrAvailableLocationNotFound)

	_, err := fx.service.GetAvailableLocations(ctx, sellerID)

	assert.ErrorIs(t, err, domainerrors.ErrAvailableLocationNotFound)
}

func TestParseLocationIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	tests := []struct {
		name        string
		raw         string
		wantIDs     []uuid.UUID
		wantInvalid []string
		wantErr     bool
	}{
		{name: "plain ids", raw: `["` + a.String() + `","` + b.String() + `"]`, wantIDs: []uuid.UUID{a, b}},
		{name: "objects", raw: `[{"id":"` + b.String() + `"}]`, wantIDs: []uuid.UUID{b}},
		{name: "stringified", raw: `"[\"` + a.String() + `\"]"`, wantIDs: []uuid.UUID{a}},
		{name: "duplicates collapse", raw: `["` + a.String() + `","` + a.String() + `"]`, wantIDs: []uuid.UUID{a}},
		{name: "invalid entry", raw: `["x"]`, wantIDs: []uuid.UUID{}, wantInvalid: []string{"x"}},
		{name: "not an array", raw: `{"id":"x"}`, wantErr: true},
		{name: "number entry", raw: `[42]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, invalid, err := parseLocationIDs(json.RawMessage(tt.raw))
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantInvalid, invalid)
		})
	}
}
