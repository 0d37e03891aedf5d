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

type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository is the constructor for supplierRepository.
func NewSupplierRepository(db *gorm.DB) repository.SupplierRepository {
	return &supplierRepository{db: db}
}

func (repo *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	if supplier.ID == uuid.Nil {
		supplier.ID = newID()
	}
	supplierM := fromSupplierDomain(supplier)

	if err := repo.db.WithContext(ctx).Omit("Products").Create(supplierM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSupplier
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supplier")
	}

	supplier.CreatedAt = supplierM.CreatedAt
	supplier.UpdatedAt = supplierM.UpdatedAt
	if supplier.Products == nil {
		supplier.Products = []*entity.SupplierProduct{}
	}

	return nil
}

// FindByID returns the supplier with its products in creation order.
func (repo *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplierM model.SupplierModel

	if err := repo.withProducts(ctx).Where("id = ?", id).First(&supplierM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find supplier")
	}

	return toSupplierDomain(&supplierM), nil
}

func (repo *supplierRepository) List(ctx context.Context) ([]*entity.Supplier, error) {
	var supplierModels []*model.SupplierModel

	if err := repo.withProducts(ctx).Order("created_at DESC").Find(&supplierModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list suppliers")
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierModels))
	for _, supplierM := range supplierModels {
		suppliers = append(suppliers, toSupplierDomain(supplierM))
	}

	return suppliers, nil
}

func (repo *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	result := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("id = ?", supplier.ID).
		Select("name", "email", "phone_no", "address", "status", "updated_at").
		Updates(supplierM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSupplier
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update supplier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	supplier.UpdatedAt = supplierM.UpdatedAt

	return nil
}

// Delete removes the supplier row only. Products must be removed first.
func (repo *supplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SupplierModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete supplier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	return nil
}

func (repo *supplierRepository) withProducts(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC").Order("id ASC")
	})
}

type supplierProductRepository struct {
	db *gorm.DB
}

// NewSupplierProductRepository is the constructor for supplierProductRepository.
func NewSupplierProductRepository(db *gorm.DB) repository.SupplierProductRepository {
	return &supplierProductRepository{db: db}
}

func (repo *supplierProductRepository) Create(ctx context.Context, product *entity.SupplierProduct) error {
	if product.ID == uuid.Nil {
		product.ID = newID()
	}
	productM := fromSupplierProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSKU
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSupplierNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supplier product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *supplierProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SupplierProduct, error) {
	var productM model.SupplierProductModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrSupplierProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find supplier product")
	}

	return toSupplierProductDomain(&productM), nil
}

func (repo *supplierProductRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.SupplierProduct, error) {
	var productModels []model.SupplierProductModel

	if err := repo.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list supplier products")
	}

	return toSupplierProductDomains(productModels), nil
}

func (repo *supplierProductRepository) Update(ctx context.Context, product *entity.SupplierProduct) error {
	productM := fromSupplierProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.SupplierProductModel{}).
		Where("id = ?", product.ID).
		Select("name", "price", "quantity", "status", "updated_at").
		Updates(productM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update supplier product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierProductNotFound
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *supplierProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SupplierProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete supplier product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierProductNotFound
	}

	return nil
}

func (repo *supplierProductRepository) DeleteBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("supplier_id = ?", supplierID).Delete(&model.SupplierProductModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete supplier products")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toSupplierDomain(data *model.SupplierModel) *entity.Supplier {
	return &entity.Supplier{
		ID:          data.ID,
		Name:        data.Name,
		Email:       data.Email,
		PhoneNo:     data.PhoneNo,
		Address:     data.Address,
		Products:    toSupplierProductDomains(data.Products),
		AddedBy:     data.AddedBy,
		PublishDate: data.PublishDate,
		PublishTime: data.PublishTime,
		Status:      entity.Status(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromSupplierDomain(data *entity.Supplier) *model.SupplierModel {
	return &model.SupplierModel{
		ID:          data.ID,
		Name:        data.Name,
		Email:       data.Email,
		PhoneNo:     data.PhoneNo,
		Address:     data.Address,
		AddedBy:     data.AddedBy,
		PublishDate: data.PublishDate,
		PublishTime: data.PublishTime,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toSupplierProductDomains(models []model.SupplierProductModel) []*entity.SupplierProduct {
	products := make([]*entity.SupplierProduct, 0, len(models))
	for i := range models {
		products = append(products, toSupplierProductDomain(&models[i]))
	}

	return products
}

func toSupplierProductDomain(data *model.SupplierProductModel) *entity.SupplierProduct {
	return &entity.SupplierProduct{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		SKU:         data.SKU,
		Quantity:    data.Quantity,
		SupplierID:  data.SupplierID,
		AddedBy:     data.AddedBy,
		PublishDate: data.PublishDate,
		PublishTime: data.PublishTime,
		Status:      entity.Status(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromSupplierProductDomain(data *entity.SupplierProduct) *model.SupplierProductModel {
	return &model.SupplierProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		SKU:         data.SKU,
		Quantity:    data.Quantity,
		SupplierID:  data.SupplierID,
		AddedBy:     data.AddedBy,
		PublishDate: data.PublishDate,
		PublishTime: data.PublishTime,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
