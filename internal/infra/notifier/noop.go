package notifier

import (
	"context"
	"log/slog"

	"rosterd/internal/usecase/shared"
)

// NoopNotifier stands in when no AMQP URL is configured. Events are logged
// at debug level and dropped.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) Notify(_ context.Context, event shared.Event) error {
	slog.Debug("dropping event, notifier disabled",
		"kind", event.Kind,
		"company_id", event.CompanyID,
		"target_user_id", event.TargetUserID)
	return nil
}
