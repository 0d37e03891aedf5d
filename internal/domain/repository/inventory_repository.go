package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrInventoryNotFound is returned when a product is not found.
	ErrInventoryNotFound = errors.New("inventory not found")
	// ErrDuplicateSKU is returned when a generated SKU collides with a stored one.
	ErrDuplicateSKU = errors.New("sku already exists")
)

// InventoryRepository persists seller products.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.Inventory) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error)
	List(ctx context.Context) ([]*entity.Inventory, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Inventory, error)

	// ListBySellers groups the products of several sellers by seller id.
	ListBySellers(ctx context.Context, sellerIDs []uuid.UUID) (map[uuid.UUID][]*entity.Inventory, error)

	Update(ctx context.Context, item *entity.Inventory) error
	Delete(ctx context.Context, id uuid.UUID) error
}
