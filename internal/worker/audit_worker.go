package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/facility-console/internal/events"
)

// StartSessionAudit subscribes an audit logger to every session lifecycle
// event so operators can trace logins, logouts, and expiries.
func StartSessionAudit(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil || logger == nil {
		return
	}

	handler := func(_ context.Context, event events.Event) error {
		logger.Info("session event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.String("user_type", string(event.UserType)),
			zap.String("username", event.Username),
			zap.String("detail", event.Detail),
			zap.Time("at", event.Timestamp),
		)
		return nil
	}

	for _, eventType := range []events.EventType{
		events.EventSessionOpened,
		events.EventSessionClosed,
		events.EventSessionExpired,
		events.EventStorageSwept,
	} {
		dispatcher.Subscribe(eventType, handler)
	}
}
