package components

import (
	"context"
	"log/slog"

	"queue-engine/internal/pkg/config"
	"queue-engine/internal/usecase/commands"
	"queue-engine/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewMonitor,
		worker.NewOutboxRelay,
		worker.NewCounterReconciler,
	),
	fx.Invoke(StartWorkers),
)

func NewMonitor(cmds commands.MonitorCommands, cfg config.Config, logger *slog.Logger) *worker.Monitor {
	return worker.NewMonitor(cmds, cfg.Engine.MonitorConcurrency, logger)
}

// StartWorkers runs every background loop for the lifetime of the app.
func StartWorkers(
	lc fx.Lifecycle,
	cfg config.Config,
	logger *slog.Logger,
	monitor *worker.Monitor,
	relay *worker.OutboxRelay,
	reconciler *worker.CounterReconciler,
) {
	loops := []*worker.Loop{
		worker.NewLoop("ticket-monitor", cfg.Engine.MonitorInterval, monitor.Sweep, logger),
		worker.NewLoop("outbox-relay", cfg.Engine.OutboxInterval, relay.Relay, logger),
		worker.NewLoop("counter-reconciler", cfg.Engine.ReconcileInterval, reconciler.Reconcile, logger),
	}

	for _, l := range loops {
		lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				l.Start()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return l.Stop(ctx)
			},
		})
	}
}
