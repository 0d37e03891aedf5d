package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type supplierServiceFixtures struct {
	service      usecase.SupplierUsecase
	supplierRepo *mockRepo.MockSupplierRepository
	productRepo  *mockRepo.MockSupplierProductRepository
	txManager    *mockRepo.MockTransactionManager

	// Repositories handed out inside transactions.
	txSupplierRepo *mockRepo.MockSupplierRepository
	txProductRepo  *mockRepo.MockSupplierProductRepository
}

func createTestSupplierService(t *testing.T) supplierServiceFixtures {
	fx := supplierServiceFixtures{
		supplierRepo:   mockRepo.NewMockSupplierRepository(t),
		productRepo:    mockRepo.NewMockSupplierProductRepository(t),
		txManager:      mockRepo.NewMockTransactionManager(t),
		txSupplierRepo: mockRepo.NewMockSupplierRepository(t),
		txProductRepo:  mockRepo.NewMockSupplierProductRepository(t),
	}

	service, err := NewSupplierService(SupplierServiceParams{
		SupplierRepo: fx.supplierRepo,
		ProductRepo:  fx.productRepo,
		TxManager:    fx.txManager,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)
	fx.service = service

	return fx
}

// expectTransactions runs every Execute callback against the tx-bound repositories.
func (fx supplierServiceFixtures) expectTransactions(t *testing.T, times int) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().SupplierRepo().Return(fx.txSupplierRepo).Maybe()
	factory.EXPECT().SupplierProductRepo().Return(fx.txProductRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Times(times)
}

func TestSupplierService_Add(t *testing.T) {
	ctx := context.Background()
	actor := newActor(entity.UserTypeAdmin)
	input := &usecase.AddSupplierInput{Name: "Ceylon Traders", Email: "ct@example.com", PhoneNo: "0771234567", Address: "Colombo"}

	t.Run("success", func(t *testing.T) {
		fx := createTestSupplierService(t)
		fx.supplierRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Supplier")).Return(nil)

		supplier, err := fx.service.Add(ctx, actor, input)
		require.NoError(t, err)
		assert.Equal(t, actor.UserID, supplier.AddedBy)
		assert.Equal(t, entity.StatusActive, supplier.Status)
		assert.NotNil(t, supplier.Products)
	})

	t.Run("duplicate", func(t *testing.T) {
		fx := createTestSupplierService(t)
		fx.supplierRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Supplier")).Return(repository.ErrDuplicateSupplier)

		_, err := fx.service.Add(ctx, actor, input)
		assert.ErrorIs(t, err, domainerrors.ErrSupplierAlreadyExists)
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestSupplierService(t)

		_, err := fx.service.Add(ctx, actor, &usecase.AddSupplierInput{Name: "x"})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Contains(t, err.Error(), "email, phoneNo, address")
	})
}

func TestSupplierService_Delete_CascadesInTransaction(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.expectTransactions(t, 1)
	fx.txProductRepo.EXPECT().DeleteBySupplier(ctx, id).Return(int64(3), nil)
	fx.txSupplierRepo.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, id))
}

func TestSupplierService_Delete_MissingSupplierRollsBack(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.expectTransactions(t, 1)
	fx.txProductRepo.EXPECT().DeleteBySupplier(ctx, id).Return(int64(0), nil)
	fx.txSupplierRepo.EXPECT().Delete(ctx, id).Return(repository.ErrSupplierNotFound)

	err := fx.service.Delete(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
}

func TestSupplierService_AddProduct(t *testing.T) {
	ctx := context.Background()
	supplierID := uuid.New()
	newInput := func() *usecase.AddSupplierProductInput {
		return &usecase.AddSupplierProductInput{
			Name:       "Coconut oil",
			Price:      decimal.RequireFromString("850.50"),
			Quantity:   ptr(20),
			SupplierID: supplierID,
		}
	}

	t.Run("success", func(t *testing.T) {
		fx := createTestSupplierService(t)
		actor := newActor(entity.UserTypeSeller)

		fx.expectTransactions(t, 1)
		fx.txSupplierRepo.EXPECT().FindByID(ctx, supplierID).Return(&entity.Supplier{ID: supplierID}, nil)
		fx.txProductRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.SupplierProduct")).Return(nil)

		product, err := fx.service.AddProduct(ctx, actor, actor.UserID, newInput())
		require.NoError(t, err)
		assert.Equal(t, actor.UserID, product.AddedBy)
		assert.Regexp(t, `^SUP\d+$`, product.SKU)
	})

	t.Run("sku collision retries in a fresh transaction", func(t *testing.T) {
		fx := createTestSupplierService(t)
		actor := newActor(entity.UserTypeSeller)

		fx.expectTransactions(t, 2)
		fx.txSupplierRepo.EXPECT().FindByID(ctx, supplierID).Return(&entity.Supplier{ID: supplierID}, nil).Times(2)
		fx.txProductRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.SupplierProduct")).Return(repository.ErrDuplicateSKU).Once()
		fx.txProductRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.SupplierProduct")).Return(nil).Once()

		_, err := fx.service.AddProduct(ctx, actor, actor.UserID, newInput())
		require.NoError(t, err)
	})

	t.Run("other user's path is forbidden", func(t *testing.T) {
		fx := createTestSupplierService(t)

		_, err := fx.service.AddProduct(ctx, newActor(entity.UserTypeSeller), uuid.New(), newInput())
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("admin may file for anyone", func(t *testing.T) {
		fx := createTestSupplierService(t)
		owner := uuid.New()

		fx.expectTransactions(t, 1)
		fx.txSupplierRepo.EXPECT().FindByID(ctx, supplierID).Return(&entity.Supplier{ID: supplierID}, nil)
		fx.txProductRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.SupplierProduct")).Return(nil)

		product, err := fx.service.AddProduct(ctx, newActor(entity.UserTypeAdmin), owner, newInput())
		require.NoError(t, err)
		assert.Equal(t, owner, product.AddedBy)
	})

	t.Run("unknown supplier", func(t *testing.T) {
		fx := createTestSupplierService(t)
		actor := newActor(entity.UserTypeSeller)

		fx.expectTransactions(t, 1)
		fx.txSupplierRepo.EXPECT().FindByID(ctx, supplierID).Return(nil, repository.ErrSupplierNotFound)

		_, err := fx.service.AddProduct(ctx, actor, actor.UserID, newInput())
		assert.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestSupplierService(t)
		actor := newActor(entity.UserTypeSeller)

		_, err := fx.service.AddProduct(ctx, actor, actor.UserID, &usecase.AddSupplierProductInput{Name: "x"})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Contains(t, err.Error(), "price, quantity, supplierId")
	})
}

func TestSupplierService_UpdateProduct(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	product := &entity.SupplierProduct{ID: uuid.New(), Name: "Tea", Quantity: 5, Status: entity.StatusActive}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, product.ID, &usecase.UpdateSupplierProductInput{Quantity: ptr(0)})

	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
	assert.Equal(t, "Tea", updated.Name)
}

func TestSupplierService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.productRepo.EXPECT().Delete(ctx, id).Return(repository.ErrSupplierProductNotFound)

	err := fx.service.DeleteProduct(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrSupplierProductNotFound)
}

func TestSupplierService_GetByID_DatabaseError(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	id := uuid.New()
	dbErr := errors.New("timeout")
	fx.supplierRepo.EXPECT().FindByID(ctx, id).Return(nil, dbErr)

	_, err := fx.service.GetByID(ctx, id)

	assert.ErrorIs(t, err, dbErr)
}
