package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/geo"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type nearbyServiceFixtures struct {
	service      usecase.NearbyUsecase
	userRepo     *mockRepo.MockUserRepository
	polygonRepo  *mockRepo.MockPolygonRepository
	locationRepo *mockRepo.MockAvailableLocationRepository
	metrics      *mockSvc.MockMetricsRecorder
}

// createTestNearbyService wires the real planar geofence so containment is exercised end to end.
func createTestNearbyService(t *testing.T) nearbyServiceFixtures {
	fx := nearbyServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		polygonRepo:  mockRepo.NewMockPolygonRepository(t),
		locationRepo: mockRepo.NewMockAvailableLocationRepository(t),
		metrics:      mockSvc.NewMockMetricsRecorder(t),
	}

	fx.service = NewNearbyService(NearbyServiceParams{
		UserRepo:     fx.userRepo,
		PolygonRepo:  fx.polygonRepo,
		LocationRepo: fx.locationRepo,
		Geofence:     geo.NewGeofence(),
		Metrics:      fx.metrics,
		Logger:       newDiscardLogger(),
	})

	return fx
}

// square returns an axis-aligned polygon with its south-west corner at (lat, lng).
func square(lat, lng, size float64) *entity.Polygon {
	return &entity.Polygon{
		ID:   uuid.New(),
		Name: "square",
		Coordinates: []entity.Coordinate{
			{Lat: lat, Lng: lng},
			{Lat: lat + size, Lng: lng},
			{Lat: lat + size, Lng: lng + size},
			{Lat: lat, Lng: lng + size},
		},
	}
}

func buyerAt(actor entity.AuthenticatedContext, lat, lng float64) *entity.User {
	return &entity.User{
		ID:       actor.UserID,
		Type:     entity.UserTypeBuyer,
		Location: &entity.GeoLocation{Name: "home", Latitude: lat, Longitude: lng},
	}
}

func TestNearbyService_FindNearbySellers_Matched(t *testing.T) {
	fx := createTestNearbyService(t)

	ctx := context.Background()
	actor := newActor(entity.UserTypeBuyer)
	inside := square(6.0, 79.0, 1.0)
	overlapping := square(6.4, 79.4, 1.0)
	elsewhere := square(10.0, 80.0, 1.0)
	seller := &entity.User{ID: uuid.New(), Name: "Lanka Stores", StoreName: "LS", PasswordHash: "secret"}

	fx.userRepo.EXPECT().FindByID(ctx, actor.UserID).Return(buyerAt(actor, 6.5, 79.5), nil)
	fx.polygonRepo.EXPECT().List(ctx).Return([]*entity.Polygon{inside, elsewhere, overlapping}, nil)
	fx.locationRepo.EXPECT().
		FindActiveSellersByPolygons(ctx, []uuid.UUID{inside.ID, overlapping.ID}).
		Return([]*entity.User{seller}, nil)
	fx.metrics.EXPECT().NearbyLookup(service.NearbyResultMatched).Return()

	cards, err := fx.service.FindNearbySellers(ctx, actor)

	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, seller.ID, cards[0].ID)
	assert.Equal(t, "LS", cards[0].StoreName)
}

func TestNearbyService_FindNearbySellers_BoundaryCountsAsInside(t *testing.T) {
	fx := createTestNearbyService(t)

	ctx := context.Background()
	actor := newActor(entity.UserTypeBuyer)
	polygon := square(6.0, 79.0, 1.0)

	fx.userRepo.EXPECT().FindByID(ctx, actor.UserID).Return(buyerAt(actor, 6.0, 79.5), nil)
	fx.polygonRepo.EXPECT().List(ctx).Return([]*entity.Polygon{polygon}, nil)
	fx.locationRepo.EXPECT().
		FindActiveSellersByPolygons(ctx, []uuid.UUID{polygon.ID}).
		Return([]*entity.User{{ID: uuid.New()}}, nil)
	fx.metrics.EXPECT().NearbyLookup(service.NearbyResultMatched).Return()

	cards, err := fx.service.FindNearbySellers(ctx, actor)

	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestNearbyService_FindNearbySellers_NoPolygon(t *testing.T) {
	fx := createTestNearbyService(t)

	ctx := context.Background()
	actor := newActor(entity.UserTypeBuyer)

	fx.userRepo.EXPECT().FindByID(ctx, actor.UserID).Return(buyerAt(actor, 0, 0), nil)
	fx.polygonRepo.EXPECT().List(ctx).Return([]*entity.Polygon{square(6.0, 79.0, 1.0)}, nil)
	fx.metrics.EXPECT().NearbyLookup(service.NearbyResultNoPolygon).Return()

	_, err := fx.service.FindNearbySellers(ctx, actor)

	assert.ErrorIs(t, err, domainerrors.ErrNoMatch)
}

func TestNearbyService_FindNearbySellers_NoSeller(t *testing.T) {
	fx := createTestNearbyService(t)

	ctx := context.Background()
	actor := newActor(entity.UserTypeBuyer)
	polygon := square(6.0, 79.0, 1.0)

	fx.userRepo.EXPECT().FindByID(ctx, actor.UserID).Return(buyerAt(actor, 6.5, 79.5), nil)
	fx.polygonRepo.EXPECT().List(ctx).Return([]*entity.Polygon{polygon}, nil)
	fx.locationRepo.EXPECT().FindActiveSellersByPolygons(ctx, mock.Anything).Return(nil, nil)
	fx.metrics.EXPECT().NearbyLookup(service.NearbyResultNoSeller).Return()

	_, err := fx.service.FindNearbySellers(ctx, actor)

	require.ErrorIs(t, err, domainerrors.ErrNoMatch)
	assert.Contains(t, err.Error(), "No nearby sellers found.")
}

func TestNearbyService_FindNearbySellers_MissingLocation(t *testing.T) {
	tests := []struct {
		name string
		user *entity.User
		err  error
	}{
		{name: "no location", user: &entity.User{Type: entity.UserTypeBuyer}},
		{name: "unknown buyer", err: repository.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNearbyService(t)

			ctx := context.Background()
			actor := newActor(entity.UserTypeBuyer)

			fx.userRepo.EXPECT().FindByID(ctx, actor.UserID).Return(tt.user, tt.err)
			fx.metrics.EXPECT().NearbyLookup(service.NearbyResultMissingLocation).Return()

			_, err := fx.service.FindNearbySellers(ctx, actor)
			assert.ErrorIs(t, err, domainerrors.ErrMissingLocation)
		})
	}
}
