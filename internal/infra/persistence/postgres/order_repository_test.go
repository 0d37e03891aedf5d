package postgres

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB) *entity.Order {
	t.Helper()

	order := &entity.Order{
		ProductID:     uuid.New(),
		UnitAmount:    decimal.RequireFromString("250.50"),
		Quantity:      2,
		SubAmount:     decimal.RequireFromString("501"),
		UserID:        uuid.New(),
		SellerID:      uuid.New(),
		Address:       "12 Galle Road",
		OrderDate:     "2024-03-01",
		OrderTime:     "09:30:00",
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}
	require.NoError(t, NewOrderRepository(db).Create(context.Background(), order))

	return order
}

func TestOrderRepository_TransitionStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	order := seedOrder(t, db)

	require.NoError(t, repo.TransitionStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusDelivered))

	err := repo.TransitionStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusDelivered)
	assert.ErrorIs(t, err, repository.ErrOrderStateConflict)

	err = repo.TransitionStatus(ctx, uuid.New(), entity.OrderStatusPending, entity.OrderStatusDelivered)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	stored, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, stored.Status)
	assert.Equal(t, entity.PaymentStatusPending, stored.PaymentStatus)
}

func TestOrderRepository_TransitionPaymentStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	order := seedOrder(t, db)

	require.NoError(t, repo.TransitionPaymentStatus(ctx, order.ID, entity.PaymentStatusPending, entity.PaymentStatusCompleted))

	err := repo.TransitionPaymentStatus(ctx, order.ID, entity.PaymentStatusPending, entity.PaymentStatusCompleted)
	assert.ErrorIs(t, err, repository.ErrOrderStateConflict)

	stored, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, stored.PaymentStatus)
	assert.Equal(t, entity.OrderStatusPending, stored.Status)
}

func TestOrderRepository_UpdateIfStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	order := seedOrder(t, db)

	order.DeliveryAddress = "Door 4"
	order.Quantity = 3
	order.SubAmount = decimal.RequireFromString("751.50")
	require.NoError(t, repo.UpdateIfStatus(ctx, order, entity.OrderStatusPending))

	stored, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Door 4", stored.DeliveryAddress)
	assert.Equal(t, 3, stored.Quantity)
	assert.True(t, stored.SubAmount.Equal(decimal.RequireFromString("751.50")))

	require.NoError(t, repo.TransitionStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusDelivered))

	order.Quantity = 9
	err = repo.UpdateIfStatus(ctx, order, entity.OrderStatusPending)
	assert.ErrorIs(t, err, repository.ErrOrderStateConflict)

	stored, err = repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Quantity)

	missing := *order
	missing.ID = uuid.New()
	assert.ErrorIs(t, repo.UpdateIfStatus(ctx, &missing, entity.OrderStatusPending), repository.ErrOrderNotFound)
}

func TestOrderRepository_DeleteIfStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	t.Run("pending", func(t *testing.T) {
		order := seedOrder(t, db)

		require.NoError(t, repo.DeleteIfStatus(ctx, order.ID, entity.OrderStatusPending))

		_, err := repo.FindByID(ctx, order.ID)
		assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	})

	t.Run("delivered", func(t *testing.T) {
		order := seedOrder(t, db)
		require.NoError(t, repo.TransitionStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusDelivered))

		err := repo.DeleteIfStatus(ctx, order.ID, entity.OrderStatusPending)
		assert.ErrorIs(t, err, repository.ErrOrderStateConflict)

		_, err = repo.FindByID(ctx, order.ID)
		assert.NoError(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		err := repo.DeleteIfStatus(ctx, uuid.New(), entity.OrderStatusPending)
		assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	})
}

func TestOrderRepository_ListByBuyerAndSeller(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := seedOrder(t, db)
	seedOrder(t, db)

	byBuyer, err := repo.ListByBuyer(ctx, order.UserID)
	require.NoError(t, err)
	require.Len(t, byBuyer, 1)
	assert.Equal(t, order.ID, byBuyer[0].ID)

	bySeller, err := repo.ListBySeller(ctx, order.SellerID)
	require.NoError(t, err)
	require.Len(t, bySeller, 1)

	none, err := repo.ListByBuyer(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}
