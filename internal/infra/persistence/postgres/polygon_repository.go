package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type polygonRepository struct {
	db *gorm.DB
}

// NewPolygonRepository is the constructor for polygonRepository.
func NewPolygonRepository(db *gorm.DB) repository.PolygonRepository {
	return &polygonRepository{db: db}
}

// Create stores a polygon with its vertices as JSONB in drawing order.
func (repo *polygonRepository) Create(ctx context.Context, polygon *entity.Polygon) error {
	if polygon.ID == uuid.Nil {
		polygon.ID = newID()
	}
	polygonM := fromPolygonDomain(polygon)

	if err := repo.db.WithContext(ctx).Create(polygonM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create polygon")
	}

	polygon.CreatedAt = polygonM.CreatedAt

	return nil
}

// List returns every polygon ordered by name.
func (repo *polygonRepository) List(ctx context.Context) ([]*entity.Polygon, error) {
	var polygonModels []*model.PolygonModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Order("id ASC").
		Find(&polygonModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list polygons")
	}

	return toPolygonDomains(polygonModels), nil
}

// FindByIDs returns the polygons that exist among ids.
func (repo *polygonRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Polygon, error) {
	if len(ids) == 0 {
		return []*entity.Polygon{}, nil
	}

	var polygonModels []*model.PolygonModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&polygonModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find polygons")
	}

	return toPolygonDomains(polygonModels), nil
}

// --- Mapper Functions ---

func toPolygonDomains(models []*model.PolygonModel) []*entity.Polygon {
	polygons := make([]*entity.Polygon, 0, len(models))
	for _, polygonM := range models {
		polygons = append(polygons, toPolygonDomain(polygonM))
	}

	return polygons
}

func toPolygonDomain(data *model.PolygonModel) *entity.Polygon {
	coords := make([]entity.Coordinate, 0, len(data.Coordinates))
	for _, c := range data.Coordinates {
		coords = append(coords, entity.Coordinate{Lat: c.Lat, Lng: c.Lng})
	}

	return &entity.Polygon{
		ID:          data.ID,
		Name:        data.Name,
		Coordinates: coords,
		AddedBy:     data.AddedBy,
		CreatedAt:   data.CreatedAt,
	}
}

func fromPolygonDomain(data *entity.Polygon) *model.PolygonModel {
	coords := make([]model.CoordinateJSON, 0, len(data.Coordinates))
	for _, c := range data.Coordinates {
		coords = append(coords, model.CoordinateJSON{Lat: c.Lat, Lng: c.Lng})
	}

	return &model.PolygonModel{
		ID:          data.ID,
		Name:        data.Name,
		Coordinates: datatypes.NewJSONSlice(coords),
		AddedBy:     data.AddedBy,
		CreatedAt:   data.CreatedAt,
	}
}
