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

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

// Create inserts a product. A taken SKU surfaces as repository.ErrDuplicateSKU so the caller can retry.
func (repo *inventoryRepository) Create(ctx context.Context, item *entity.Inventory) error {
	if item.ID == uuid.Nil {
		item.ID = newID()
	}
	itemM := fromInventoryDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSKU
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("unknown seller or supplier reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inventory")
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *inventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	var itemM model.InventoryModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrInventoryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find inventory")
	}

	return toInventoryDomain(&itemM), nil
}

func (repo *inventoryRepository) List(ctx context.Context) ([]*entity.Inventory, error) {
	var itemModels []*model.InventoryModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list inventory")
	}

	return toInventoryDomains(itemModels), nil
}

func (repo *inventoryRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Inventory, error) {
	var itemModels []*model.InventoryModel

	if err := repo.db.WithContext(ctx).
		Where("added_by = ?", sellerID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list seller inventory")
	}

	return toInventoryDomains(itemModels), nil
}

// ListBySellers groups the products of several sellers with a single IN query.
func (repo *inventoryRepository) ListBySellers(ctx context.Context, sellerIDs []uuid.UUID) (map[uuid.UUID][]*entity.Inventory, error) {
	grouped := make(map[uuid.UUID][]*entity.Inventory, len(sellerIDs))
	if len(sellerIDs) == 0 {
		return grouped, nil
	}

	var itemModels []*model.InventoryModel
	if err := repo.db.WithContext(ctx).
		Where("added_by IN ?", sellerIDs).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list inventory by sellers")
	}

	for _, itemM := range itemModels {
		grouped[itemM.AddedBy] = append(grouped[itemM.AddedBy], toInventoryDomain(itemM))
	}

	return grouped, nil
}

// Update saves the mutable columns of a product.
func (repo *inventoryRepository) Update(ctx context.Context, item *entity.Inventory) error {
	itemM := fromInventoryDomain(item)

	result := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("id = ?", item.ID).
		Select("title", "description", "product_pic", "price", "category_type", "quantity", "supplier_id", "status", "updated_at").
		Updates(itemM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("unknown supplier reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update inventory")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInventoryNotFound
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.InventoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete inventory")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInventoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toInventoryDomains(models []*model.InventoryModel) []*entity.Inventory {
	items := make([]*entity.Inventory, 0, len(models))
	for _, itemM := range models {
		items = append(items, toInventoryDomain(itemM))
	}

	return items
}

func toInventoryDomain(data *model.InventoryModel) *entity.Inventory {
	return &entity.Inventory{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		ProductPic:   data.ProductPic,
		Price:        data.Price,
		CategoryType: data.CategoryType,
		AddedBy:      data.AddedBy,
		Quantity:     data.Quantity,
		SKU:          data.SKU,
		SupplierID:   data.SupplierID,
		PublishDate:  data.PublishDate,
		PublishTime:  data.PublishTime,
		Status:       entity.Status(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromInventoryDomain(data *entity.Inventory) *model.InventoryModel {
	return &model.InventoryModel{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		ProductPic:   data.ProductPic,
		Price:        data.Price,
		CategoryType: data.CategoryType,
		AddedBy:      data.AddedBy,
		Quantity:     data.Quantity,
		SKU:          data.SKU,
		SupplierID:   data.SupplierID,
		PublishDate:  data.PublishDate,
		PublishTime:  data.PublishTime,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
