package usecase

import (
	"context"

	"marketplace/internal/domain/service"
)

// NotificationResult summarises one delivered order event.
type NotificationResult struct {
	Recipient    string
	DeviceCount  int
	SuccessCount int
	FailureCount int
}

// OrderNotificationUsecase turns order events into device push notifications.
type OrderNotificationUsecase interface {
	// HandleOrderEvent notifies the party an event concerns. Unknown event types are ignored.
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) (*NotificationResult, error)
}

// UploadUsecase serves stored uploads.
type UploadUsecase interface {
	Open(ctx context.Context, kind UploadKind, filename string) (*service.StoredObject, error)
}
