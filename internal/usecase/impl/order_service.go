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

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo repository.OrderRepository
	events    orderEvents
	metrics   service.MetricsRecorder
	clock     clock
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) (usecase.OrderUsecase, error) {
	c, err := newClock(params.Config)
	if err != nil {
		return nil, err
	}

	return &orderService{
		orderRepo: params.OrderRepo,
		events: orderEvents{
			publisher: params.Publisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		metrics: params.Metrics,
		clock:   c,
		logger:  params.Logger,
	}, nil
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create places an order for the caller. New orders start pending on both axes.
func (srv *orderService) Create(ctx context.Context, actor entity.AuthenticatedContext, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := requireFields(
		field{"productId", input.ProductID != uuid.Nil},
		field{"unitAmount", input.UnitAmount != nil},
		field{"quantity", input.Quantity != nil},
		field{"subAmount", input.SubAmount != nil},
		field{"sellerId", input.SellerID != uuid.Nil},
		field{"address", present(input.Address)},
		field{"status", input.Status != ""},
		field{"paymentStatus", input.PaymentStatus != ""},
	); err != nil {
		return nil, err
	}

	status, err := entity.ParseOrderStatus(input.Status)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Invalid order status")
	}
	paymentStatus, err := entity.ParsePaymentStatus(input.PaymentStatus)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Invalid payment status")
	}
	if status != entity.OrderStatusPending || paymentStatus != entity.PaymentStatusPending {
		return nil, domainerrors.ErrInvalidState.WithDetails("new orders must be pending")
	}
	if *input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be a positive integer")
	}

	date, at := srv.clock.stamp()
	order := &entity.Order{
		ProductID:       input.ProductID,
		UnitAmount:      *input.UnitAmount,
		Quantity:        *input.Quantity,
		SubAmount:       *input.SubAmount,
		UserID:          actor.UserID,
		SellerID:        input.SellerID,
		Address:         input.Address,
		DeliveryAddress: input.DeliveryAddress,
		OrderDate:       date,
		OrderTime:       at,
		Status:          status,
		PaymentStatus:   paymentStatus,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.metrics.OrderCreated()
	srv.events.publish(ctx, service.OrderEventCreated, order)
	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.Any("buyerID", order.UserID),
		slog.Any("sellerID", order.SellerID),
	)

	return order, nil
}

func (srv *orderService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, orderNotFound(err)
	}

	return order, nil
}

func (srv *orderService) ListForBuyer(ctx context.Context, actor entity.AuthenticatedContext) ([]*entity.Order, error) {
	return srv.orderRepo.ListByBuyer(ctx, actor.UserID)
}

func (srv *orderService) ListForSeller(ctx context.Context, actor entity.AuthenticatedContext) ([]*entity.Order, error) {
	return srv.orderRepo.ListBySeller(ctx, actor.UserID)
}

// AdvanceToDelivered moves a pending order to delivered. Only one of two racing requests succeeds.
func (srv *orderService) AdvanceToDelivered(ctx context.Context, id uuid.UUID, requested string) (*entity.Order, error) {
	if requested != entity.OrderStatusDelivered.String() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be 'delivered'")
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, orderNotFound(err)
	}

	from := order.Status
	if !from.CanTransitionTo(entity.OrderStatusDelivered) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(from.String() + " -> delivered")
	}

	if err := srv.orderRepo.TransitionStatus(ctx, id, from, entity.OrderStatusDelivered); err != nil {
		if errors.Is(err, repository.ErrOrderStateConflict) {
			return nil, domainerrors.ErrInvalidTransition.WithDetails("order changed concurrently")
		}

		return nil, orderNotFound(err)
	}
	order.Status = entity.OrderStatusDelivered

	srv.metrics.OrderTransition("status", order.Status.String())
	srv.events.publish(ctx, service.OrderEventDelivered, order)
	srv.log(ctx).Info("Order delivered", slog.Any("orderID", id))

	return order, nil
}

// Update patches a pending order. Fields that are not positive are left unchanged.
func (srv *orderService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	order, err := srv.mutable(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Address != nil {
		order.Address = *input.Address
	}
	if input.DeliveryAddress != nil {
		order.DeliveryAddress = *input.DeliveryAddress
	}
	if input.Quantity != nil {
		if *input.Quantity > 0 {
			order.Quantity = *input.Quantity
		} else {
			srv.log(ctx).Debug("Ignoring non-positive quantity", slog.Any("orderID", id))
		}
	}
	if input.SubAmount != nil {
		if input.SubAmount.IsPositive() {
			order.SubAmount = *input.SubAmount
		} else {
			srv.log(ctx).Debug("Ignoring non-positive sub amount", slog.Any("orderID", id))
		}
	}

	if err := srv.orderRepo.UpdateIfStatus(ctx, order, entity.OrderStatusPending); err != nil {
		return nil, stateError(err)
	}

	return order, nil
}

// Delete removes a pending order.
func (srv *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.mutable(ctx, id); err != nil {
		return err
	}

	if err := srv.orderRepo.DeleteIfStatus(ctx, id, entity.OrderStatusPending); err != nil {
		return stateError(err)
	}

	srv.log(ctx).Info("Order deleted", slog.Any("orderID", id))

	return nil
}

// SetPaymentStatus applies the payment transition table. Setting the current value is a no-op.
func (srv *orderService) SetPaymentStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error) {
	if status == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing required fields: paymentStatus")
	}
	target, err := entity.ParsePaymentStatus(status)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Invalid payment status")
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, orderNotFound(err)
	}

	changed, err := settlePayment(ctx, srv.orderRepo, order, target)
	if err != nil {
		return nil, err
	}
	if changed {
		srv.events.paymentCompleted(ctx, order)
		srv.log(ctx).Info("Payment status updated",
			slog.Any("orderID", id),
			slog.String("paymentStatus", order.PaymentStatus.String()),
		)
	}

	return order, nil
}

func (srv *orderService) mutable(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, orderNotFound(err)
	}
	if !order.IsMutable() {
		return nil, domainerrors.ErrInvalidState.WithDetails("order is " + order.Status.String())
	}

	return order, nil
}

// settlePayment moves the order's payment status to target. It reports false when the
// order already had that status, including when a concurrent request got there first.
func settlePayment(ctx context.Context, repo repository.OrderRepository, order *entity.Order, target entity.PaymentStatus) (bool, error) {
	if order.PaymentStatus == target {
		return false, nil
	}
	if !order.PaymentStatus.CanTransitionTo(target) {
		return false, domainerrors.ErrInvalidTransition.WithDetails(order.PaymentStatus.String() + " -> " + target.String())
	}

	err := repo.TransitionPaymentStatus(ctx, order.ID, order.PaymentStatus, target)
	if errors.Is(err, repository.ErrOrderStateConflict) {
		current, findErr := repo.FindByID(ctx, order.ID)
		if findErr != nil {
			return false, orderNotFound(findErr)
		}
		if current.PaymentStatus == target {
			*order = *current

			return false, nil
		}

		return false, domainerrors.ErrInvalidTransition.WithDetails("order changed concurrently")
	}
	if err != nil {
		return false, orderNotFound(err)
	}

	order.PaymentStatus = target

	return true, nil
}

func orderNotFound(err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound
	}

	return err
}

// stateError maps a lost guard on a pending-only write to ErrInvalidState.
func stateError(err error) error {
	if errors.Is(err, repository.ErrOrderStateConflict) {
		return domainerrors.ErrInvalidState.WithDetails("order is no longer pending")
	}

	return orderNotFound(err)
}
