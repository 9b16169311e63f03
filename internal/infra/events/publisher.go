package events

import (
	"context"
	"log/slog"
	"time"

	"queue-engine/internal/pkg/errs"
	"queue-engine/internal/usecase/shared"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
)

// Metadata keys set on every published message.
const (
	MetadataAggregateID = "aggregate_id"
	MetadataTopic       = "topic"
	MetadataOccurredAt  = "occurred_at"
)

// Publisher forwards outbox rows to the message broker.
type Publisher struct {
	publisher message.Publisher
}

func NewPublisher(publisher message.Publisher) *Publisher {
	return &Publisher{publisher: publisher}
}

// NewRedisStreamPublisher publishes to one Redis stream per topic.
func NewRedisStreamPublisher(client redis.UniversalClient, logger *slog.Logger) (message.Publisher, error) {
	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: client,
	}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create redis stream publisher")
	}
	return publisher, nil
}

// Publish sends msg to its topic. The outbox row id is reused as the message UUID
// so consumers can drop redeliveries.
func (p *Publisher) Publish(ctx context.Context, msg shared.OutboxMessage) error {
	m := message.NewMessage(msg.ID.String(), msg.Payload)
	m.Metadata.Set(MetadataAggregateID, msg.AggregateID.String())
	m.Metadata.Set(MetadataTopic, msg.Topic)
	m.Metadata.Set(MetadataOccurredAt, msg.CreatedAt.UTC().Format(time.RFC3339Nano))
	m.SetContext(ctx)

	if err := p.publisher.Publish(msg.Topic, m); err != nil {
		return errs.Wrapf(err, "failed to publish %s", msg.Topic)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.publisher.Close()
}
