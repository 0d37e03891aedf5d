package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrSupplierNotFound is returned when a supplier is not found.
	ErrSupplierNotFound = errors.New("supplier not found")
	// ErrDuplicateSupplier is returned when the email or phone number is already used.
	ErrDuplicateSupplier = errors.New("supplier already exists")
	// ErrSupplierProductNotFound is returned when a supplier product is not found.
	ErrSupplierProductNotFound = errors.New("supplier product not found")
)

// SupplierRepository persists suppliers. Reads populate the product list.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierProductRepository persists the products offered by suppliers.
type SupplierProductRepository interface {
	Create(ctx context.Context, product *entity.SupplierProduct) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SupplierProduct, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.SupplierProduct, error)
	Update(ctx context.Context, product *entity.SupplierProduct) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteBySupplier removes every product of the supplier and returns how many were removed.
	DeleteBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error)
}
