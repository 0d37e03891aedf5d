package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddInventoryInput defines the data required to list a product.
type AddInventoryInput struct {
	Title        string
	Description  string
	Price        decimal.Decimal
	CategoryType string
	Quantity     *int
	SupplierID   *uuid.UUID
	Status       string // active when empty
}

// UpdateInventoryInput carries a partial product update.
type UpdateInventoryInput struct {
	Title        *string
	Description  *string
	Price        *decimal.Decimal
	CategoryType *string
	Quantity     *int
	Status       *string
}

// InventoryUsecase manages seller products.
type InventoryUsecase interface {
	Add(ctx context.Context, actor entity.AuthenticatedContext, input *AddInventoryInput, picture *Upload) (*entity.Inventory, error)
	ListAll(ctx context.Context) ([]*entity.Inventory, error)
	ListMine(ctx context.Context, actor entity.AuthenticatedContext) ([]*entity.Inventory, error)
	ListForBuyer(ctx context.Context, sellerID uuid.UUID) ([]*entity.Inventory, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error)
	Update(ctx context.Context, actor entity.AuthenticatedContext, id uuid.UUID, input *UpdateInventoryInput, picture *Upload) (*entity.Inventory, error)
	Delete(ctx context.Context, actor entity.AuthenticatedContext, id uuid.UUID) error
}

// AddSupplierInput defines the data required to register a supplier.
type AddSupplierInput struct {
	Name    string
	Email   string
	PhoneNo string
	Address string
	Status  string
}

// UpdateSupplierInput carries a partial supplier update.
type UpdateSupplierInput struct {
	Name    *string
	Email   *string
	PhoneNo *string
	Address *string
	Status  *string
}

// AddSupplierProductInput defines the data required to add a product to a supplier.
type AddSupplierProductInput struct {
	Name       string
	Price      decimal.Decimal
	Quantity   *int
	SupplierID uuid.UUID
	Status     string
}

// UpdateSupplierProductInput carries a partial supplier product update.
type UpdateSupplierProductInput struct {
	Name     *string
	Price    *decimal.Decimal
	Quantity *int
	Status   *string
}

// SupplierUsecase manages suppliers and the products they offer.
type SupplierUsecase interface {
	Add(ctx context.Context, actor entity.AuthenticatedContext, input *AddSupplierInput) (*entity.Supplier, error)
	ListAll(ctx context.Context) ([]*entity.Supplier, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateSupplierInput) (*entity.Supplier, error)
	// Delete removes the supplier together with all of its products.
	Delete(ctx context.Context, id uuid.UUID) error

	AddProduct(ctx context.Context, actor entity.AuthenticatedContext, pathUserID uuid.UUID, input *AddSupplierProductInput) (*entity.SupplierProduct, error)
	ListProducts(ctx context.Context, supplierID uuid.UUID) ([]*entity.SupplierProduct, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateSupplierProductInput) (*entity.SupplierProduct, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
