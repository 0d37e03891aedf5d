package notification

import (
	"context"
	"log/slog"
)

// noopService logs notifications instead of sending them
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.DebugContext(ctx, "[NoopNotification] Skipping single notification", slog.String("title", title))

	return nil
}

func (s *noopService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	s.logger.DebugContext(ctx, "[NoopNotification] Skipping batch notification",
		slog.String("title", title),
		slog.Int("token_count", len(tokens)),
	)

	return len(tokens), 0, nil, nil
}
