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

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = newID()
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	return repo.listBy(ctx, "user_id = ?", buyerID)
}

func (repo *orderRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error) {
	return repo.listBy(ctx, "seller_id = ?", sellerID)
}

func (repo *orderRepository) listBy(ctx context.Context, cond string, id uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where(cond, id).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateIfStatus saves the editable fields while the stored status still equals expected.
func (repo *orderRepository) UpdateIfStatus(ctx context.Context, order *entity.Order, expected entity.OrderStatus) error {
	orderM := fromOrderDomain(order)

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", order.ID, string(expected)).
		Select("address", "delivery_address", "quantity", "sub_amount", "updated_at").
		Updates(orderM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repo.missOrConflict(ctx, order.ID)
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// DeleteIfStatus removes the order while the stored status still equals expected.
func (repo *orderRepository) DeleteIfStatus(ctx context.Context, id uuid.UUID, expected entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, string(expected)).
		Delete(&model.OrderModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repo.missOrConflict(ctx, id)
	}

	return nil
}

func (repo *orderRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	return repo.transition(ctx, id, "status", string(from), string(to))
}

func (repo *orderRepository) TransitionPaymentStatus(ctx context.Context, id uuid.UUID, from, to entity.PaymentStatus) error {
	return repo.transition(ctx, id, "payment_status", string(from), string(to))
}

func (repo *orderRepository) transition(ctx context.Context, id uuid.UUID, column, from, to string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND "+column+" = ?", id, from).
		Update(column, to)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to change "+column)
	}
	if result.RowsAffected == 0 {
		return repo.missOrConflict(ctx, id)
	}

	return nil
}

// missOrConflict tells a vanished order apart from one whose guard no longer holds.
func (repo *orderRepository) missOrConflict(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check order")
	}
	if count == 0 {
		return repository.ErrOrderNotFound
	}

	return repository.ErrOrderStateConflict
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:              data.ID,
		ProductID:       data.ProductID,
		UnitAmount:      data.UnitAmount,
		Quantity:        data.Quantity,
		SubAmount:       data.SubAmount,
		UserID:          data.UserID,
		SellerID:        data.SellerID,
		Address:         data.Address,
		DeliveryAddress: data.DeliveryAddress,
		OrderDate:       data.OrderDate,
		OrderTime:       data.OrderTime,
		Status:          entity.OrderStatus(data.Status),
		PaymentStatus:   entity.PaymentStatus(data.PaymentStatus),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:              data.ID,
		ProductID:       data.ProductID,
		UnitAmount:      data.UnitAmount,
		Quantity:        data.Quantity,
		SubAmount:       data.SubAmount,
		UserID:          data.UserID,
		SellerID:        data.SellerID,
		Address:         data.Address,
		DeliveryAddress: data.DeliveryAddress,
		OrderDate:       data.OrderDate,
		OrderTime:       data.OrderTime,
		Status:          string(data.Status),
		PaymentStatus:   string(data.PaymentStatus),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
