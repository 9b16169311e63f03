package worker

import (
	"context"
	"log/slog"
	"sync/atomic"

	"queue-engine/internal/infra/telemetry"
	"queue-engine/internal/pkg/errs"
	"queue-engine/internal/usecase/commands"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Monitor expires passed and no-show tickets across every active queue.
type Monitor struct {
	commands    commands.MonitorCommands
	concurrency int
	tracer      trace.Tracer
	logger      *slog.Logger
}

func NewMonitor(monitorCommands commands.MonitorCommands, concurrency int, logger *slog.Logger) *Monitor {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Monitor{
		commands:    monitorCommands,
		concurrency: concurrency,
		tracer:      telemetry.Tracer(),
		logger:      logger,
	}
}

// Sweep runs one pass. A failing queue is logged and does not stop the others.
func (m *Monitor) Sweep(ctx context.Context) error {
	ctx, span := m.tracer.Start(ctx, "monitor.sweep")
	defer span.End()

	ids, err := m.commands.ActiveQueues(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list active queues")
		return errs.Wrap(err, "monitor sweep")
	}
	span.SetAttributes(attribute.Int("queue.count", len(ids)))

	var expired, completed, failed atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(m.concurrency)

	for _, id := range ids {
		g.Go(func() error {
			qctx, qspan := m.tracer.Start(ctx, "monitor.sweep_queue",
				trace.WithAttributes(attribute.String("queue.id", id.String())))
			defer qspan.End()

			result, err := m.commands.SweepQueue(qctx, id)
			if err != nil {
				failed.Add(1)
				qspan.RecordError(err)
				qspan.SetStatus(codes.Error, "sweep failed")
				m.logger.Warn("Queue sweep failed", slog.String("queue_id", id.String()), slog.Any("error", err))
				return nil
			}
			qspan.SetAttributes(
				attribute.Int("tickets.skipped", result.Skipped),
				attribute.Int("tickets.no_show", result.NoShow),
				attribute.Int("tickets.day_ended", result.DayEnded),
				attribute.Int("tickets.auto_completed", result.AutoCompleted),
			)
			expired.Add(int64(result.Expired()))
			completed.Add(int64(result.AutoCompleted))
			return nil
		})
	}
	_ = g.Wait()

	m.logger.Debug("Monitor sweep finished",
		slog.Int("queues", len(ids)),
		slog.Int64("expired", expired.Load()),
		slog.Int64("auto_completed", completed.Load()),
		slog.Int64("failed", failed.Load()))
	return nil
}
