package impl

import (
	"context"
	"log/slog"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	userRepo      repository.UserRepository
	storage       service.FileStorage
	clock         clock
	logger        *slog.Logger
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	InventoryRepo repository.InventoryRepository
	UserRepo      repository.UserRepository
	Storage       service.FileStorage
	Config        *config.Config
	Logger        *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) (usecase.InventoryUsecase, error) {
	c, err := newClock(params.Config)
	if err != nil {
		return nil, err
	}

	return &inventoryService{
		inventoryRepo: params.InventoryRepo,
		userRepo:      params.UserRepo,
		storage:       params.Storage,
		clock:         c,
		logger:        params.Logger,
	}, nil
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add lists a new product for the caller.
func (srv *inventoryService) Add(ctx context.Context, actor entity.AuthenticatedContext, input *usecase.AddInventoryInput, picture *usecase.Upload) (*entity.Inventory, error) {
	if err := requireFields(
		field{"title", present(input.Title)},
		field{"description", present(input.Description)},
		field{"price", !input.Price.IsZero()},
		field{"categoryType", present(input.CategoryType)},
		field{"quantity", input.Quantity != nil},
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
	item := &entity.Inventory{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		CategoryType: input.CategoryType,
		AddedBy:      actor.UserID,
		Quantity:     *input.Quantity,
		SupplierID:   input.SupplierID,
		PublishDate:  date,
		PublishTime:  at,
		Status:       status,
	}

	item.ProductPic, err = storeUpload(ctx, srv.storage, usecase.UploadKindProduct, picture)
	if err != nil {
		return nil, err
	}

	err = createWithSKU(srv.clock, util.SKUPrefixInventory, func(sku string) error {
		item.SKU = sku

		return srv.inventoryRepo.Create(ctx, item)
	})
	if err != nil {
		discardUpload(ctx, srv.storage, srv.logger, item.ProductPic)

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product added", slog.Any("productID", item.ID), slog.String("sku", item.SKU))

	return item, nil
}

func (srv *inventoryService) ListAll(ctx context.Context) ([]*entity.Inventory, error) {
	return srv.inventoryRepo.List(ctx)
}

func (srv *inventoryService) ListMine(ctx context.Context, actor entity.AuthenticatedContext) ([]*entity.Inventory, error) {
	return srv.inventoryRepo.ListBySeller(ctx, actor.UserID)
}

// ListForBuyer returns the products of one seller. An unknown seller and an empty catalogue are both 404.
func (srv *inventoryService) ListForBuyer(ctx context.Context, sellerID uuid.UUID) ([]*entity.Inventory, error) {
	if _, err := srv.userRepo.FindByID(ctx, sellerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithMessage("Seller not found!")
		}

		return nil, err
	}

	items, err := srv.inventoryRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrProductNotFound.WithMessage("No products found for this seller!")
	}

	return items, nil
}

func (srv *inventoryService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	item, err := srv.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, productNotFound(err)
	}

	return item, nil
}

// Update patches the product. Only the owning seller or an admin may change it.
func (srv *inventoryService) Update(ctx context.Context, actor entity.AuthenticatedContext, id uuid.UUID, input *usecase.UpdateInventoryInput, picture *usecase.Upload) (*entity.Inventory, error) {
	item, err := srv.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.CategoryType != nil {
		item.CategoryType = *input.CategoryType
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("price must be greater than 0")
		}
		item.Price = *input.Price
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
		}
		item.Quantity = *input.Quantity
	}
	if input.Status != nil {
		if item.Status, err = parseStatus(*input.Status, item.Status); err != nil {
			return nil, err
		}
	}

	previousPic := item.ProductPic
	if picture != nil {
		if item.ProductPic, err = storeUpload(ctx, srv.storage, usecase.UploadKindProduct, picture); err != nil {
			return nil, err
		}
	}

	if err := srv.inventoryRepo.Update(ctx, item); err != nil {
		if picture != nil {
			discardUpload(ctx, srv.storage, srv.logger, item.ProductPic)
		}

		return nil, errors.Wrap(productNotFound(err), "failed to update product")
	}

	if picture != nil {
		discardUpload(ctx, srv.storage, srv.logger, previousPic)
	}

	return item, nil
}

func (srv *inventoryService) Delete(ctx context.Context, actor entity.AuthenticatedContext, id uuid.UUID) error {
	item, err := srv.owned(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := srv.inventoryRepo.Delete(ctx, id); err != nil {
		return productNotFound(err)
	}
	discardUpload(ctx, srv.storage, srv.logger, item.ProductPic)

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

// owned loads the product and checks the caller may manage it.
func (srv *inventoryService) owned(ctx context.Context, actor entity.AuthenticatedContext, id uuid.UUID) (*entity.Inventory, error) {
	item, err := srv.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, productNotFound(err)
	}
	if !actor.CanManage(item.AddedBy) {
		srv.log(ctx).Warn("Product access denied",
			slog.Any("productID", id),
			slog.Any("userID", actor.UserID),
		)

		return nil, domainerrors.ErrForbidden
	}

	return item, nil
}

func productNotFound(err error) error {
	if errors.Is(err, repository.ErrInventoryNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return err
}
