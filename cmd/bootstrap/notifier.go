package bootstrap

import (
	"context"
	"log/slog"

	"rosterd/internal/infra/notifier"
	"rosterd/internal/pkg/config"
	"rosterd/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier wires the outbound gateway. Without an AMQP URL the service
// runs standalone and events are dropped.
func NewNotifier(lc fx.Lifecycle, cfg config.Config) (shared.Notifier, error) {
	if cfg.AMQP.URL == "" {
		slog.Info("AMQP_URL not set, notifications disabled")
		return notifier.NewNoopNotifier(), nil
	}

	conn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		return nil, err
	}

	gw, err := notifier.NewAMQPNotifier(conn, cfg.AMQP)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			_ = gw.Close()
			return conn.Close()
		},
	})

	slog.Info("AMQP notifier initialized", "exchange", cfg.AMQP.Exchange)
	return gw, nil
}
