package bootstrap

import (
	"context"

	"queue-engine/internal/infra/events"
	"queue-engine/internal/usecase/shared"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		events.NewRedisStreamPublisher,
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(shared.EventPublisher)),
		),
	),
)

func NewEventPublisher(lc fx.Lifecycle, publisher message.Publisher) *events.Publisher {
	p := events.NewPublisher(publisher)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}
