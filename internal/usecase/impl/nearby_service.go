package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

type nearbyService struct {
	userRepo     repository.UserRepository
	polygonRepo  repository.PolygonRepository
	locationRepo repository.AvailableLocationRepository
	geofence     service.Geofence
	metrics      service.MetricsRecorder
	logger       *slog.Logger
}

// NearbyServiceParams holds dependencies for NearbyService, injected by Fx.
type NearbyServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	PolygonRepo  repository.PolygonRepository
	LocationRepo repository.AvailableLocationRepository
	Geofence     service.Geofence
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

// NewNearbyService is the constructor for nearbyService.
func NewNearbyService(params NearbyServiceParams) usecase.NearbyUsecase {
	return &nearbyService{
		userRepo:     params.UserRepo,
		polygonRepo:  params.PolygonRepo,
		locationRepo: params.LocationRepo,
		geofence:     params.Geofence,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// FindNearbySellers returns the active sellers assigned to any polygon containing the caller's location.
func (srv *nearbyService) FindNearbySellers(ctx context.Context, actor entity.AuthenticatedContext) ([]*entity.SellerCard, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	buyer, err := srv.userRepo.FindByID(ctx, actor.UserID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to load buyer")
	}
	if buyer == nil || buyer.Location == nil {
		srv.metrics.NearbyLookup(service.NearbyResultMissingLocation)

		return nil, domainerrors.ErrMissingLocation
	}

	polygons, err := srv.polygonRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load polygons")
	}

	matched := srv.geofence.Match(polygons, buyer.Location.Latitude, buyer.Location.Longitude)
	if len(matched) == 0 {
		srv.metrics.NearbyLookup(service.NearbyResultNoPolygon)

		return nil, domainerrors.ErrNoMatch
	}

	sellers, err := srv.locationRepo.FindActiveSellersByPolygons(ctx, matched)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sellers")
	}
	if len(sellers) == 0 {
		srv.metrics.NearbyLookup(service.NearbyResultNoSeller)

		return nil, domainerrors.ErrNoMatch.WithMessage("No nearby sellers found.")
	}

	cards := make([]*entity.SellerCard, 0, len(sellers))
	for _, seller := range sellers {
		cards = append(cards, seller.ToSellerCard())
	}

	srv.metrics.NearbyLookup(service.NearbyResultMatched)
	logger.Debug("Nearby sellers resolved", slog.Int("polygons", len(matched)), slog.Int("sellers", len(cards)))

	return cards, nil
}
