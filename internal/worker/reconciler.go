package worker

import (
	"context"
	"log/slog"

	"queue-engine/internal/usecase/commands"
)

// CounterReconciler repairs last_issued_number drift; failing queues are retried next tick.
type CounterReconciler struct {
	commands commands.QueueCommands
	logger   *slog.Logger
}

func NewCounterReconciler(queueCommands commands.QueueCommands, logger *slog.Logger) *CounterReconciler {
	return &CounterReconciler{
		commands: queueCommands,
		logger:   logger,
	}
}

func (r *CounterReconciler) Reconcile(ctx context.Context) error {
	repaired, err := r.commands.ReconcileCounters(ctx)
	if repaired > 0 {
		r.logger.Info("Queue counters repaired", slog.Int("queues", repaired))
	}
	return err
}
