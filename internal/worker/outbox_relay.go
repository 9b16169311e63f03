package worker

import (
	"context"
	"log/slog"

	"queue-engine/internal/usecase/commands"
)

// OutboxRelay drains pending outbox rows to the broker.
type OutboxRelay struct {
	commands commands.OutboxCommands
	logger   *slog.Logger
}

func NewOutboxRelay(outboxCommands commands.OutboxCommands, logger *slog.Logger) *OutboxRelay {
	return &OutboxRelay{
		commands: outboxCommands,
		logger:   logger,
	}
}

// Relay keeps claiming batches while they come back non-empty and fully sent.
func (r *OutboxRelay) Relay(ctx context.Context) error {
	for {
		result, err := r.commands.RelayBatch(ctx)
		if err != nil {
			return err
		}
		if result.Sent > 0 || result.Failed > 0 {
			r.logger.Debug("Outbox batch relayed", slog.Int("sent", result.Sent), slog.Int("failed", result.Failed))
		}
		if result.Sent == 0 || result.Failed > 0 || ctx.Err() != nil {
			return nil
		}
	}
}
