package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
)

// orderEvents announces order changes to the notifier. Publishing never fails the caller.
type orderEvents struct {
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

func (e orderEvents) publish(ctx context.Context, eventType service.OrderEventType, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		EventID:       uuid.NewString(),
		Type:          eventType,
		OrderID:       order.ID.String(),
		BuyerID:       order.UserID.String(),
		SellerID:      order.SellerID.String(),
		Status:        order.Status.String(),
		PaymentStatus: order.PaymentStatus.String(),
	}

	if err := e.publisher.PublishOrderEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish order event",
			slog.String("type", string(eventType)),
			slog.String("orderID", event.OrderID),
			slog.Any("error", err),
		)
	}
}

// paymentCompleted records and announces a pending -> completed payment transition.
func (e orderEvents) paymentCompleted(ctx context.Context, order *entity.Order) {
	e.metrics.OrderTransition("payment", entity.PaymentStatusCompleted.String())
	e.publish(ctx, service.OrderEventPaymentCompleted, order)
}
