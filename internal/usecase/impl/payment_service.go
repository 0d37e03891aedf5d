package impl

import (
	"context"
	"log/slog"

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

// paymentSuccessCode is the gateway status code of a successful payment.
const paymentSuccessCode = "2"

type paymentService struct {
	signer    service.PaymentSigner
	orderRepo repository.OrderRepository
	events    orderEvents
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Signer    service.PaymentSigner
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		signer:    params.Signer,
		orderRepo: params.OrderRepo,
		events: orderEvents{
			publisher: params.Publisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateHash returns the checkout signature for the given order and amount.
func (srv *paymentService) GenerateHash(_ context.Context, input *usecase.GenerateHashInput) (string, error) {
	if err := requireFields(
		field{"merchant_id", present(input.MerchantID)},
		field{"order_id", present(input.OrderID)},
		field{"amount", !input.Amount.IsZero()},
		field{"currency", present(input.Currency)},
		field{"merchant_secret", input.MerchantSecret != ""},
	); err != nil {
		return "", err
	}

	return srv.signer.CheckoutHash(input.MerchantID, input.OrderID, input.Amount, input.Currency, input.MerchantSecret), nil
}

// HandleNotification verifies a gateway callback and completes the payment on success.
// Other status codes are acknowledged without changing the order.
func (srv *paymentService) HandleNotification(ctx context.Context, input *usecase.PaymentNotificationInput) error {
	if err := requireFields(
		field{"merchant_id", present(input.MerchantID)},
		field{"order_id", present(input.OrderID)},
		field{"payhere_amount", !input.Amount.IsZero()},
		field{"payhere_currency", present(input.Currency)},
		field{"status_code", present(input.StatusCode)},
		field{"md5sig", present(input.Signature)},
	); err != nil {
		return err
	}

	logger := srv.log(ctx).With(slog.String("orderID", input.OrderID), slog.String("statusCode", input.StatusCode))

	valid := srv.signer.Verify(service.PaymentNotification{
		MerchantID: input.MerchantID,
		OrderID:    input.OrderID,
		Amount:     input.Amount.StringFixed(2),
		Currency:   input.Currency,
		StatusCode: input.StatusCode,
		Signature:  input.Signature,
	})
	if !valid {
		srv.metrics.PaymentNotification(service.PaymentResultInvalidSignature)
		logger.Warn("Rejected payment notification with an invalid signature")

		return domainerrors.ErrInvalidSignature
	}

	order, err := srv.findOrder(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrOrderNotFound) {
			srv.metrics.PaymentNotification(service.PaymentResultUnknownOrder)
			logger.Warn("Payment notification for an unknown order")
		}

		return err
	}

	if input.StatusCode != paymentSuccessCode {
		srv.metrics.PaymentNotification(service.PaymentResultIgnored)
		logger.Info("Payment notification acknowledged without change")

		return nil
	}

	changed, err := settlePayment(ctx, srv.orderRepo, order, entity.PaymentStatusCompleted)
	if err != nil {
		return err
	}

	srv.metrics.PaymentNotification(service.PaymentResultCompleted)
	if changed {
		srv.events.paymentCompleted(ctx, order)
	}
	logger.Info("Payment completed", slog.Bool("changed", changed))

	return nil
}

func (srv *paymentService) findOrder(ctx context.Context, rawID string) (*entity.Order, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domainerrors.ErrOrderNotFound
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, orderNotFound(err)
	}

	return order, nil
}
