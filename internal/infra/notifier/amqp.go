package notifier

import (
	"context"
	"encoding/json"
	"sync"

	"rosterd/internal/pkg/config"
	"rosterd/internal/pkg/errs"
	"rosterd/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	errChannelOpen     = errs.New("failed to open amqp channel")
	errExchangeDeclare = errs.New("failed to declare exchange")
	errPublish         = errs.New("failed to publish event")
)

// AMQPNotifier publishes events to a topic exchange, one routing key per
// event kind. Channels are not safe for concurrent use, so publishes are
// serialized behind a mutex.
type AMQPNotifier struct {
	mu      sync.Mutex
	channel *amqp.Channel
	cfg     config.AMQPConfig
}

func NewAMQPNotifier(conn *amqp.Connection, cfg config.AMQPConfig) (*AMQPNotifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, errs.Mark(err, errChannelOpen)
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, errs.Mark(err, errExchangeDeclare)
	}
	return &AMQPNotifier{channel: ch, cfg: cfg}, nil
}

func (n *AMQPNotifier) Notify(ctx context.Context, event shared.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode event")
	}

	ctx, cancel := context.WithTimeout(ctx, n.cfg.PublishTimeout)
	defer cancel()

	n.mu.Lock()
	defer n.mu.Unlock()

	err = n.channel.PublishWithContext(
		ctx,
		n.cfg.Exchange,
		event.Kind,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return errs.Mark(err, errPublish)
	}
	return nil
}

func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.channel.Close()
}
