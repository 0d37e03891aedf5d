package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentServiceFixtures struct {
	service   usecase.PaymentUsecase
	signer    *mockSvc.MockPaymentSigner
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
	metrics   *mockSvc.MockMetricsRecorder
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	fx := paymentServiceFixtures{
		signer:    mockSvc.NewMockPaymentSigner(t),
		orderRepo: mockRepo.NewMockOrderRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		metrics:   mockSvc.NewMockMetricsRecorder(t),
	}

	fx.service = NewPaymentService(PaymentServiceParams{
		Signer:    fx.signer,
		OrderRepo: fx.orderRepo,
		Publisher: fx.publisher,
		Metrics:   fx.metrics,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func notificationFor(orderID uuid.UUID, statusCode string) *usecase.PaymentNotificationInput {
	return &usecase.PaymentNotificationInput{
		MerchantID: "1211149",
		OrderID:    orderID.String(),
		Amount:     decimal.RequireFromString("1000"),
		Currency:   "LKR",
		StatusCode: statusCode,
		Signature:  "ABCDEF",
	}
}

func signed(input *usecase.PaymentNotificationInput) service.PaymentNotification {
	return service.PaymentNotification{
		MerchantID: input.MerchantID,
		OrderID:    input.OrderID,
		Amount:     "1000.00",
		Currency:   input.Currency,
		StatusCode: input.StatusCode,
		Signature:  input.Signature,
	}
}

func TestPaymentService_GenerateHash(t *testing.T) {
	fx := createTestPaymentService(t)

	amount := decimal.RequireFromString("1000")
	fx.signer.EXPECT().CheckoutHash("1211149", "order-1", amount, "LKR", "secret").Return("HASH")

	hash, err := fx.service.GenerateHash(context.Background(), &usecase.GenerateHashInput{
		MerchantID:     "1211149",
		OrderID:        "order-1",
		Amount:         amount,
		Currency:       "LKR",
		MerchantSecret: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "HASH", hash)
}

func TestPaymentService_GenerateHash_MissingFields(t *testing.T) {
	fx := createTestPaymentService(t)

	_, err := fx.service.GenerateHash(context.Background(), &usecase.GenerateHashInput{MerchantID: "1211149"})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "order_id, amount, currency, merchant_secret")
}

func TestPaymentService_HandleNotification_CompletesPayment(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := pendingOrder()
	input := notificationFor(order.ID, "2")

	fx.signer.EXPECT().Verify(signed(input)).Return(true)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().
		TransitionPaymentStatus(ctx, order.ID, entity.PaymentStatusPending, entity.PaymentStatusCompleted).
		Return(nil)
	fx.metrics.EXPECT().OrderTransition("payment", "completed").Return()
	fx.metrics.EXPECT().PaymentNotification(service.PaymentResultCompleted).Return()
	fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(service.OrderEventPaymentCompleted)).Return(nil)

	require.NoError(t, fx.service.HandleNotification(ctx, input))
	assert.Equal(t, entity.PaymentStatusCompleted, order.PaymentStatus)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestPaymentService_HandleNotification_RepeatIsNoop(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := pendingOrder()
	order.PaymentStatus = entity.PaymentStatusCompleted
	input := notificationFor(order.ID, "2")

	fx.signer.EXPECT().Verify(signed(input)).Return(true)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.metrics.EXPECT().PaymentNotification(service.PaymentResultCompleted).Return()

	require.NoError(t, fx.service.HandleNotification(ctx, input))
}

func TestPaymentService_HandleNotification_InvalidSignature(t *testing.T) {
	fx := createTestPaymentService(t)

	input := notificationFor(uuid.New(), "2")
	fx.signer.EXPECT().Verify(signed(input)).Return(false)
	fx.metrics.EXPECT().PaymentNotification(service.PaymentResultInvalidSignature).Return()

	err := fx.service.HandleNotification(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidSignature)
}

func TestPaymentService_HandleNotification_OtherStatusAcknowledged(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), PaymentStatus: entity.PaymentStatusPending}
	input := notificationFor(order.ID, "0")
	fx.signer.EXPECT().Verify(signed(input)).Return(true)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.metrics.EXPECT().PaymentNotification(service.PaymentResultIgnored).Return()

	require.NoError(t, fx.service.HandleNotification(ctx, input))
}

func TestPaymentService_HandleNotification_UnknownOrderWithOtherStatus(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	input := notificationFor(orderID, "0")

	fx.signer.EXPECT().Verify(signed(input)).Return(true)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)
	fx.metrics.EXPECT().PaymentNotification(service.PaymentResultUnknownOrder).Return()

	err := fx.service.HandleNotification(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestPaymentService_HandleNotification_UnknownOrder(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	input := notificationFor(orderID, "2")

	fx.signer.EXPECT().Verify(signed(input)).Return(true)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)
	fx.metrics.EXPECT().PaymentNotification(service.PaymentResultUnknownOrder).Return()

	err := fx.service.HandleNotification(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestPaymentService_HandleNotification_MissingFields(t *testing.T) {
	fx := createTestPaymentService(t)

	err := fx.service.HandleNotification(context.Background(), &usecase.PaymentNotificationInput{MerchantID: "m"})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "md5sig")
}
