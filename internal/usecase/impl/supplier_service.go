package impl

import (
	"context"
	"log/slog"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type supplierService struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.SupplierProductRepository
	txManager    repository.TransactionManager
	clock        clock
	logger       *slog.Logger
}

// SupplierServiceParams holds dependencies for SupplierService, injected by Fx.
type SupplierServiceParams struct {
	fx.In

	SupplierRepo repository.SupplierRepository
	ProductRepo  repository.SupplierProductRepository
	TxManager    repository.TransactionManager
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSupplierService is the constructor for supplierService.
func NewSupplierService(params SupplierServiceParams) (usecase.SupplierUsecase, error) {
	c, err := newClock(params.Config)
	if err != nil {
		return nil, err
	}

	return &supplierService{
		supplierRepo: params.SupplierRepo,
		productRepo:  params.ProductRepo,
		txManager:    params.TxManager,
		clock:        c,
		logger:       params.Logger,
	}, nil
}

func (srv *supplierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *supplierService) Add(ctx context.Context, actor entity.AuthenticatedContext, input *usecase.AddSupplierInput) (*entity.Supplier, error) {
	if err := requireFields(
		field{"name", present(input.Name)},
		field{"email", present(input.Email)},
		field{"phoneNo", present(input.PhoneNo)},
		field{"address", present(input.Address)},
	); err != nil {
		return nil, err
	}

	status, err := parseStatus(input.Status, entity.StatusActive)
	if err != nil {
		return nil, err
	}

	date, at := srv.clock.stamp()
	supplier := &entity.Supplier{
		Name:        input.Name,
		Email:       input.Email,
		PhoneNo:     input.PhoneNo,
		Address:     input.Address,
		Products:    []*entity.SupplierProduct{},
		AddedBy:     actor.UserID,
		PublishDate: date,
		PublishTime: at,
		Status:      status,
	}

	if err := srv.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, supplierError(err)
	}

	srv.log(ctx).Info("Supplier added", slog.Any("supplierID", supplier.ID))

	return supplier, nil
}

func (srv *supplierService) ListAll(ctx context.Context) ([]*entity.Supplier, error) {
	return srv.supplierRepo.List(ctx)
}

func (srv *supplierService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := srv.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, supplierError(err)
	}

	return supplier, nil
}

func (srv *supplierService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := srv.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, supplierError(err)
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.Email != nil {
		supplier.Email = *input.Email
	}
	if input.PhoneNo != nil {
		supplier.PhoneNo = *input.PhoneNo
	}
	if input.Address != nil {
		supplier.Address = *input.Address
	}
	if input.Status != nil {
		if supplier.Status, err = parseStatus(*input.Status, supplier.Status); err != nil {
			return nil, err
		}
	}

	if err := srv.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, supplierError(err)
	}

	return supplier, nil
}

// Delete removes the supplier together with all of its products in one transaction.
func (srv *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	var removed int64
	err := srv.txManager.Execute(ctx, func(tx repository.RepositoryFactory) error {
		var err error
		if removed, err = tx.SupplierProductRepo().DeleteBySupplier(ctx, id); err != nil {
			return err
		}

		return tx.SupplierRepo().Delete(ctx, id)
	})
	if err != nil {
		return supplierError(err)
	}

	srv.log(ctx).Info("Supplier deleted",
		slog.Any("supplierID", id),
		slog.Int64("productsRemoved", removed),
	)

	return nil
}

// AddProduct files a product under an existing supplier. pathUserID must be the caller unless the caller is an admin.
func (srv *supplierService) AddProduct(ctx context.Context, actor entity.AuthenticatedContext, pathUserID uuid.UUID, input *usecase.AddSupplierProductInput) (*entity.SupplierProduct, error) {
	if !actor.CanManage(pathUserID) {
		return nil, domainerrors.ErrForbidden
	}

	if err := requireFields(
		field{"name", present(input.Name)},
		field{"price", !input.Price.IsZero()},
		field{"quantity", input.Quantity != nil},
		field{"supplierId", input.SupplierID != uuid.Nil},
	); err != nil {
		return nil, err
	}
	if !input.Price.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be greater than 0")
	}
	if *input.Quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}

	status, err := parseStatus(input.Status, entity.StatusActive)
	if err != nil {
		return nil, err
	}

	date, at := srv.clock.stamp()
	product := &entity.SupplierProduct{
		Name:        input.Name,
		Price:       input.Price,
		Quantity:    *input.Quantity,
		SupplierID:  input.SupplierID,
		AddedBy:     pathUserID,
		PublishDate: date,
		PublishTime: at,
		Status:      status,
	}

	// A unique violation aborts the surrounding transaction, so every SKU attempt gets its own.
	err = createWithSKU(srv.clock, util.SKUPrefixSupplier, func(sku string) error {
		product.SKU = sku

		return srv.txManager.Execute(ctx, func(tx repository.RepositoryFactory) error {
			if _, err := tx.SupplierRepo().FindByID(ctx, input.SupplierID); err != nil {
				return err
			}

			return tx.SupplierProductRepo().Create(ctx, product)
		})
	})
	if err != nil {
		return nil, supplierError(err)
	}

	srv.log(ctx).Info("Supplier product added",
		slog.Any("productID", product.ID),
		slog.Any("supplierID", product.SupplierID),
	)

	return product, nil
}

func (srv *supplierService) ListProducts(ctx context.Context, supplierID uuid.UUID) ([]*entity.SupplierProduct, error) {
	return srv.productRepo.ListBySupplier(ctx, supplierID)
}

func (srv *supplierService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateSupplierProductInput) (*entity.SupplierProduct, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, supplierError(err)
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("price must be greater than 0")
		}
		product.Price = *input.Price
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
		}
		product.Quantity = *input.Quantity
	}
	if input.Status != nil {
		if product.Status, err = parseStatus(*input.Status, product.Status); err != nil {
			return nil, err
		}
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, supplierError(err)
	}

	return product, nil
}

func (srv *supplierService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return supplierError(err)
	}

	return nil
}

// supplierError maps supplier repository sentinels onto API errors.
func supplierError(err error) error {
	switch {
	case errors.Is(err, repository.ErrSupplierNotFound):
		return domainerrors.ErrSupplierNotFound
	case errors.Is(err, repository.ErrSupplierProductNotFound):
		return domainerrors.ErrSupplierProductNotFound
	case errors.Is(err, repository.ErrDuplicateSupplier):
		return domainerrors.ErrSupplierAlreadyExists
	default:
		return err
	}
}
