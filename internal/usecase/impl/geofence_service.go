package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type geofenceService struct {
	userRepo     repository.UserRepository
	polygonRepo  repository.PolygonRepository
	locationRepo repository.AvailableLocationRepository
	geofence     service.Geofence
	clock        clock
	logger       *slog.Logger
}

// GeofenceServiceParams holds dependencies for GeofenceService, injected by Fx.
type GeofenceServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	PolygonRepo  repository.PolygonRepository
	LocationRepo repository.AvailableLocationRepository
	Geofence     service.Geofence
	Config       *config.Config
	Logger       *slog.Logger
}

// NewGeofenceService is the constructor for geofenceService.
func NewGeofenceService(params GeofenceServiceParams) (usecase.GeofenceUsecase, error) {
	clk, err := newClock(params.Config)
	if err != nil {
		return nil, err
	}

	return &geofenceService{
		userRepo:     params.UserRepo,
		polygonRepo:  params.PolygonRepo,
		locationRepo: params.LocationRepo,
		geofence:     params.Geofence,
		clock:        clk,
		logger:       params.Logger,
	}, nil
}

func (srv *geofenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddPolygon stores a polygon drawn by the actor.
func (srv *geofenceService) AddPolygon(ctx context.Context, actor entity.AuthenticatedContext, input *usecase.AddPolygonInput) (*entity.Polygon, error) {
	if err := requireFields(
		field{"name", present(input.Name)},
		field{"coordinates", len(input.Coordinates) > 0},
	); err != nil {
		return nil, err
	}

	for i, c := range input.Coordinates {
		if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("coordinate %d is out of range", i))
		}
	}

	polygon := &entity.Polygon{
		Name:        input.Name,
		Coordinates: input.Coordinates,
		AddedBy:     actor.UserID,
	}
	if err := srv.polygonRepo.Create(ctx, polygon); err != nil {
		return nil, errors.Wrap(err, "failed to create polygon")
	}

	srv.log(ctx).Info("Polygon added", slog.Any("polygonID", polygon.ID), slog.Int("vertices", len(polygon.Coordinates)))

	return polygon, nil
}

func (srv *geofenceService) ListPolygons(ctx context.Context) ([]*entity.Polygon, error) {
	return srv.polygonRepo.List(ctx)
}

// ExportGeoJSON renders every polygon as a GeoJSON FeatureCollection.
func (srv *geofenceService) ExportGeoJSON(ctx context.Context) ([]byte, error) {
	polygons, err := srv.polygonRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return srv.geofence.ToGeoJSON(polygons)
}

// SetAvailableLocations replaces the polygon set a seller is discoverable in.
func (srv *geofenceService) SetAvailableLocations(ctx context.Context, actor entity.AuthenticatedContext, input *usecase.SetAvailableLocationsInput) (*entity.AvailableLocation, error) {
	if err := requireFields(
		field{"userId", input.SellerID != uuid.Nil},
		field{"locations", len(bytes.TrimSpace(input.Locations)) > 0 && !isJSONNull(input.Locations)},
	); err != nil {
		return nil, err
	}

	seller, err := srv.userRepo.FindByID(ctx, input.SellerID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to load seller")
	}
	if seller == nil || seller.Type != entity.UserTypeSeller {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Invalid seller ID")
	}

	ids, invalid, err := parseLocationIDs(input.Locations)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("locations could not be parsed: " + err.Error())
	}

	polygons, err := srv.polygonRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve polygons")
	}
	known := make(map[uuid.UUID]struct{}, len(polygons))
	for _, p := range polygons {
		known[p.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			invalid = append(invalid, id.String())
		}
	}
	if len(invalid) > 0 {
		return nil, domainerrors.ErrValidationFailed.
			WithMessage("Some locations do not exist in saved polygons").
			WithDetails("invalidLocations: " + strings.Join(invalid, ", "))
	}

	date, at := srv.clock.stamp()
	location := &entity.AvailableLocation{
		UserID:      seller.ID,
		PolygonIDs:  ids,
		AddedBy:     actor.UserID,
		PublishDate: date,
		PublishTime: at,
	}
	if err := srv.locationRepo.Upsert(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to save available locations")
	}

	srv.log(ctx).Info("Available locations saved", slog.Any("sellerID", seller.ID), slog.Int("polygons", len(ids)))

	return location, nil
}

func (srv *geofenceService) ListAvailableLocations(ctx context.Context) ([]*entity.AvailableLocationView, error) {
	return srv.locationRepo.List(ctx)
}

func (srv *geofenceService) GetAvailableLocations(ctx context.Context, sellerID uuid.UUID) (*entity.AvailableLocationView, error) {
	view, err := srv.locationRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrAvailableLocationNotFound) {
			return nil, domainerrors.ErrAvailableLocationNotFound
		}

		return nil, err
	}

	return view, nil
}

type locationRef struct {
	ID string `json:"id"`
}

// parseLocationIDs accepts an id array, an array of {id} objects, or a string holding JSON of either.
// Ids are de-duplicated in first-seen order. Entries that are not UUIDs are returned as invalid.
func parseLocationIDs(raw json.RawMessage) ([]uuid.UUID, []string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, nil, err
		}
		raw = bytes.TrimSpace([]byte(inner))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil, err
	}

	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	var invalid []string
	for _, item := range items {
		var value string
		if err := json.Unmarshal(item, &value); err != nil {
			var ref locationRef
			if err := json.Unmarshal(item, &ref); err != nil {
				return nil, nil, errors.Errorf("unexpected location entry %s", string(item))
			}
			value = ref.ID
		}

		id, err := uuid.Parse(strings.TrimSpace(value))
		if err != nil {
			invalid = append(invalid, value)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, invalid, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
