package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

type orderNotificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewOrderNotificationService creates a new order notification service instance
func NewOrderNotificationService(
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.OrderNotificationUsecase {
	return &orderNotificationService{
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// message is the push content for one event type.
type message struct {
	title string
	body  string
}

// HandleOrderEvent pushes the event to every active device of the interested party:
// the seller for new orders, the buyer for deliveries and completed payments.
func (s *orderNotificationService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) (*usecase.NotificationResult, error) {
	recipient, msg, err := route(event)
	if err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("eventID", event.EventID),
		slog.String("type", string(event.Type)),
		slog.String("orderID", event.OrderID),
	)

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, recipient)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch devices: %w", err)
	}

	result := &usecase.NotificationResult{
		Recipient:   recipient.String(),
		DeviceCount: len(devices),
	}

	// If no devices, return early
	if len(devices) == 0 {
		logger.Debug("Recipient has no active devices")

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"event_id":       event.EventID,
		"type":           string(event.Type),
		"order_id":       event.OrderID,
		"status":         event.Status,
		"payment_status": event.PaymentStatus,
	}

	var invalidTokens []string
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		batch := tokens[i:min(i+firebaseBatchSize, len(tokens))]

		successCount, failureCount, batchInvalidTokens, err := s.notificationSvc.SendBatchNotification(ctx, batch, msg.title, msg.body, data)
		if err != nil {
			// Log error but continue with other batches
			logger.Warn("Failed to send notification batch", slog.Int("size", len(batch)), slog.Any("error", err))
			result.FailureCount += len(batch)

			continue
		}

		result.SuccessCount += successCount
		result.FailureCount += failureCount
		invalidTokens = append(invalidTokens, batchInvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			logger.Warn("Failed to deactivate invalid tokens", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
		} else {
			logger.Info("Deactivated invalid tokens", slog.Int("count", len(invalidTokens)))
		}
	}

	logger.Info("Order notification sent",
		slog.Int("devices", result.DeviceCount),
		slog.Int("success", result.SuccessCount),
		slog.Int("failure", result.FailureCount),
	)

	return result, nil
}

func route(event *service.OrderEvent) (uuid.UUID, message, error) {
	var (
		rawID string
		msg   message
	)

	switch event.Type {
	case service.OrderEventCreated:
		rawID = event.SellerID
		msg = message{title: "New order", body: "You have received a new order."}
	case service.OrderEventDelivered:
		rawID = event.BuyerID
		msg = message{title: "Order delivered", body: "Your order has been delivered."}
	case service.OrderEventPaymentCompleted:
		rawID = event.BuyerID
		msg = message{title: "Payment received", body: "Your payment has been completed."}
	default:
		return uuid.Nil, message{}, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown event type %q", event.Type))
	}

	recipient, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, message{}, domainerrors.ErrValidationFailed.WithDetails("invalid recipient id")
	}

	return recipient, msg, nil
}
