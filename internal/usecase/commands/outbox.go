package commands

import (
	"context"
	"log/slog"

	"queue-engine/internal/pkg/clock"
	"queue-engine/internal/pkg/errs"
	"queue-engine/internal/usecase/shared"
)

type RelayResult struct {
	Sent   int
	Failed int
}

// OutboxCommands forward committed events to the broker.
type OutboxCommands interface {
	RelayBatch(ctx context.Context) (RelayResult, error)
}

type OutboxSettings struct {
	BatchSize   int
	MaxAttempts int
}

type outboxUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
	settings  OutboxSettings
	logger    *slog.Logger
}

func NewOutboxUseCase(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, settings OutboxSettings, logger *slog.Logger) OutboxCommands {
	return &outboxUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		settings:  settings,
		logger:    logger,
	}
}

// RelayBatch claims one batch of pending rows and publishes them in creation order.
// A publish failure is recorded on the row and does not abort the batch.
func (uc *outboxUseCaseImpl) RelayBatch(ctx context.Context) (RelayResult, error) {
	var result RelayResult

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = RelayResult{}

		msgs, err := tx.Outbox().ClaimPending(ctx, tx.DB(), uc.settings.BatchSize)
		if err != nil {
			return err
		}

		for _, msg := range msgs {
			if perr := uc.publisher.Publish(ctx, msg); perr != nil {
				uc.logger.Warn("Failed to publish outbox event",
					slog.String("event_id", msg.ID.String()),
					slog.String("topic", msg.Topic),
					slog.Int("attempts", msg.Attempts+1),
					slog.Any("error", perr))
				if err := tx.Outbox().MarkFailed(ctx, tx.DB(), msg.ID, perr.Error(), uc.settings.MaxAttempts, uc.clock.Now()); err != nil {
					return err
				}
				result.Failed++
				continue
			}
			if err := tx.Outbox().MarkSent(ctx, tx.DB(), msg.ID, uc.clock.Now()); err != nil {
				return err
			}
			result.Sent++
		}
		return nil
	})
	if err != nil {
		return RelayResult{}, errs.Wrap(err, "relay outbox batch")
	}
	return result, nil
}
