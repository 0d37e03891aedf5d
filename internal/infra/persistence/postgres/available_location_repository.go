package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type availableLocationRepository struct {
	db *gorm.DB
}

// NewAvailableLocationRepository is the constructor for availableLocationRepository.
func NewAvailableLocationRepository(db *gorm.DB) repository.AvailableLocationRepository {
	return &availableLocationRepository{db: db}
}

// availableLocationRow is the flat result of the assignment/users join.
type availableLocationRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	SellerEmail  string
	AddedBy      uuid.UUID
	AddedByEmail string
	PublishDate  string
	PublishTime  string
}

type polygonRefRow struct {
	AvailableLocationID uuid.UUID
	ID                  uuid.UUID
	Name                string
}

// Upsert stores the seller's assignment and swaps its polygon set in one transaction.
func (repo *availableLocationRepository) Upsert(ctx context.Context, location *entity.AvailableLocation) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.AvailableLocationModel
		err := tx.Where("user_id = ?", location.UserID).First(&existing).Error
		switch {
		case err == nil:
			location.ID = existing.ID
			if err := tx.Model(&model.AvailableLocationModel{}).
				Where("id = ?", existing.ID).
				Updates(map[string]any{
					"added_by":     location.AddedBy,
					"publish_date": location.PublishDate,
					"publish_time": location.PublishTime,
				}).Error; err != nil {
				return err
			}
			location.CreatedAt = existing.CreatedAt
		case isRecordNotFound(err):
			if location.ID == uuid.Nil {
				location.ID = newID()
			}
			locationM := &model.AvailableLocationModel{
				ID:          location.ID,
				UserID:      location.UserID,
				AddedBy:     location.AddedBy,
				PublishDate: location.PublishDate,
				PublishTime: location.PublishTime,
			}
			if err := tx.Create(locationM).Error; err != nil {
				return err
			}
			location.CreatedAt = locationM.CreatedAt
		default:
			return err
		}

		if err := tx.Where("available_location_id = ?", location.ID).
			Delete(&model.AvailableLocationPolygonModel{}).Error; err != nil {
			return err
		}

		links := toPolygonLinks(location.ID, location.PolygonIDs)
		if len(links) == 0 {
			return nil
		}

		return tx.Create(&links).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save available locations")
	}

	return nil
}

// List returns every assignment populated with emails and polygon names.
func (repo *availableLocationRepository) List(ctx context.Context) ([]*entity.AvailableLocationView, error) {
	var rows []availableLocationRow
	if err := repo.viewQuery(ctx).
		Order("seller.email ASC").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list available locations")
	}

	return repo.populate(ctx, rows)
}

// FindBySeller returns the seller's populated assignment.
func (repo *availableLocationRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) (*entity.AvailableLocationView, error) {
	var rows []availableLocationRow
	if err := repo.viewQuery(ctx).
		Where("al.user_id = ?", sellerID).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find available locations")
	}
	if len(rows) == 0 {
		return nil, repository.ErrAvailableLocationNotFound
	}

	views, err := repo.populate(ctx, rows)
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

// FindActiveSellersByPolygons returns the distinct active sellers assigned to any of the polygons, ordered by name.
func (repo *availableLocationRepository) FindActiveSellersByPolygons(ctx context.Context, polygonIDs []uuid.UUID) ([]*entity.User, error) {
	if len(polygonIDs) == 0 {
		return []*entity.User{}, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Distinct("users.*").
		Joins("JOIN available_locations al ON al.user_id = users.id").
		Joins("JOIN available_location_polygons alp ON alp.available_location_id = al.id").
		Where("alp.polygon_id IN ?", polygonIDs).
		Where("users.type = ? AND users.status = ?", string(entity.UserTypeSeller), string(entity.StatusActive)).
		Order("users.name ASC").
		Order("users.id ASC").
		Find(&userModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find sellers by polygons")
	}

	return toUserDomains(userModels), nil
}

func (repo *availableLocationRepository) viewQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("available_locations AS al").
		Select("al.id, al.user_id, seller.email AS seller_email, al.added_by, " +
			"COALESCE(adder.email, '') AS added_by_email, al.publish_date, al.publish_time").
		Joins("JOIN users seller ON seller.id = al.user_id").
		Joins("LEFT JOIN users adder ON adder.id = al.added_by")
}

// populate attaches the polygon refs of every row with a single query.
func (repo *availableLocationRepository) populate(ctx context.Context, rows []availableLocationRow) ([]*entity.AvailableLocationView, error) {
	views := make([]*entity.AvailableLocationView, 0, len(rows))
	if len(rows) == 0 {
		return views, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var refs []polygonRefRow
	if err := repo.db.WithContext(ctx).
		Table("available_location_polygons AS alp").
		Select("alp.available_location_id, p.id, p.name").
		Joins("JOIN polygons p ON p.id = alp.polygon_id").
		Where("alp.available_location_id IN ?", ids).
		Order("p.name ASC").
		Scan(&refs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load assigned polygons")
	}

	byLocation := make(map[uuid.UUID][]entity.PolygonRef, len(rows))
	for _, ref := range refs {
		byLocation[ref.AvailableLocationID] = append(byLocation[ref.AvailableLocationID], entity.PolygonRef{ID: ref.ID, Name: ref.Name})
	}

	for _, row := range rows {
		locations := byLocation[row.ID]
		if locations == nil {
			locations = []entity.PolygonRef{}
		}
		views = append(views, &entity.AvailableLocationView{
			ID:           row.ID,
			UserID:       row.UserID,
			SellerEmail:  row.SellerEmail,
			AddedBy:      row.AddedBy,
			AddedByEmail: row.AddedByEmail,
			Locations:    locations,
			PublishDate:  row.PublishDate,
			PublishTime:  row.PublishTime,
		})
	}

	return views, nil
}

// toPolygonLinks builds the join rows, dropping repeated polygon ids.
func toPolygonLinks(locationID uuid.UUID, polygonIDs []uuid.UUID) []model.AvailableLocationPolygonModel {
	seen := make(map[uuid.UUID]struct{}, len(polygonIDs))
	links := make([]model.AvailableLocationPolygonModel, 0, len(polygonIDs))
	for _, id := range polygonIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		links = append(links, model.AvailableLocationPolygonModel{AvailableLocationID: locationID, PolygonID: id})
	}

	return links
}
