package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
)

// Publisher emits domain events without blocking the caller. When the event
// stream is disabled by configuration every publish is a no-op.
type Publisher interface {
	Publish(ctx context.Context, key string, payload any)
}

type publisherImpl struct {
	client Client
	topic  string
	enable bool
}

func NewPublisher(cfg *config.Config, client Client) Publisher {
	return &publisherImpl{
		client: client,
		topic:  cfg.Event.Kafka.Topic,
		enable: cfg.Event.Kafka.Enable,
	}
}

// Publish sends the event in the background. Delivery failures are logged,
// never propagated; events are advisory and must not fail the operation
// that produced them.
func (p *publisherImpl) Publish(ctx context.Context, key string, payload any) {
	if !p.enable {
		return
	}

	go func(ctx context.Context) {
		err := p.client.SendMessages(ctx, p.topic, Message{Key: key, Value: payload})
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to publish event")
		}
	}(context.WithoutCancel(ctx))
}
