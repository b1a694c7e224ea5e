package notifications

import (
	"context"
	"log/slog"

	"shotlog/internal/annotation"
	"shotlog/internal/logging"
)

// WithLogger wraps a service so every notification is also surfaced on the
// console via slog. Delivery failures of the underlying transport are logged
// and swallowed; a push outage must never fail a save.
func WithLogger(next Service, logger *slog.Logger) Service {
	return &loggingService{next: next, logger: logging.WithComponent(logger, "notify")}
}

type loggingService struct {
	next   Service
	logger *slog.Logger
}

func (l *loggingService) NotifySaved(ctx context.Context, mediaPath string, rec annotation.Record) error {
	l.logger.Info("saved and sorted",
		slog.String("media", mediaPath),
		slog.String("timestamp", rec.Timestamp.String()),
		slog.String("shot_type", rec.ShotType))
	l.forward(ctx, l.next.NotifySaved(ctx, mediaPath, rec))
	return nil
}

func (l *loggingService) NotifySaveCancelled(ctx context.Context, mediaPath string) error {
	l.logger.Info("save cancelled", slog.String("media", mediaPath))
	l.forward(ctx, l.next.NotifySaveCancelled(ctx, mediaPath))
	return nil
}

func (l *loggingService) NotifyValidationFailure(ctx context.Context, mediaPath, reason string) error {
	l.logger.Warn(reason, slog.String("media", mediaPath))
	l.forward(ctx, l.next.NotifyValidationFailure(ctx, mediaPath, reason))
	return nil
}

func (l *loggingService) NotifyError(ctx context.Context, err error, contextLabel string) error {
	l.logger.Error(contextLabel, slog.Any("error", err))
	l.forward(ctx, l.next.NotifyError(ctx, err, contextLabel))
	return nil
}

func (l *loggingService) TestNotification(ctx context.Context) error {
	l.logger.Info("test notification")
	return l.next.TestNotification(ctx)
}

func (l *loggingService) forward(_ context.Context, err error) {
	if err != nil {
		l.logger.Warn("notification delivery failed", slog.Any("error", err))
	}
}
