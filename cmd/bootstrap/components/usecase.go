package components

import (
	"log/slog"
	"time"

	"queue-engine/internal/domain/claim"
	"queue-engine/internal/pkg/clock"
	"queue-engine/internal/pkg/config"
	"queue-engine/internal/usecase"
	"queue-engine/internal/usecase/commands"
	"queue-engine/internal/usecase/queries"
	"queue-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewLocation,
	NewClaimGuard,
	NewOutboxSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTicketUseCase,
		commands.NewAppointmentUseCase,
		commands.NewQueueUseCase,
		commands.NewMonitorUseCase,
		NewOutboxCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewScheduleQueries,
		queries.NewTicketQueries,
		queries.NewAppointmentQueries,
		NewQueueQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewLocation is the engine-wide zone used for businesses without a valid timezone.
func NewLocation(cfg config.Config) *time.Location {
	return cfg.Engine.Location()
}

func NewClaimGuard(cfg config.Config) claim.Guard {
	return claim.NewGuard(cfg.Engine.AppointmentCooldown)
}

func NewOutboxSettings(cfg config.Config) commands.OutboxSettings {
	return commands.OutboxSettings{
		BatchSize:   cfg.Engine.OutboxBatch,
		MaxAttempts: cfg.Engine.OutboxMaxAttempts,
	}
}

func NewOutboxCommands(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, settings commands.OutboxSettings, logger *slog.Logger) commands.OutboxCommands {
	return commands.NewOutboxUseCase(uow, publisher, clk, settings, logger.With(slog.String("component", "outbox")))
}

func NewQueueQueries(queues queries.QueueReadStore, tickets queries.TicketReadStore, clk clock.Clock, zones shared.Zones, cfg config.Config) queries.QueueQueries {
	return queries.NewQueueQueries(queues, tickets, clk, zones, cfg.Engine.DisplayLimit)
}
