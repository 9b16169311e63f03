package commands

import (
	"context"
	"log/slog"

	"queue-engine/internal/domain/queue"
	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/staff"
	"queue-engine/internal/pkg/clock"
	"queue-engine/internal/pkg/errs"
	"queue-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type QueueCommands interface {
	SetStatus(ctx context.Context, member staff.Member, queueID uuid.UUID, status string) error
	// ReconcileCounters repairs last_issued_number on every active queue and returns how many changed.
	ReconcileCounters(ctx context.Context) (int, error)
}

type queueUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	zones  shared.Zones
	logger *slog.Logger
}

func NewQueueUseCase(uow shared.UnitOfWork, clk clock.Clock, zones shared.Zones, logger *slog.Logger) QueueCommands {
	return &queueUseCaseImpl{
		uow:    uow,
		clock:  clk,
		zones:  zones,
		logger: logger,
	}
}

func (uc *queueUseCaseImpl) SetStatus(ctx context.Context, member staff.Member, queueID uuid.UUID, status string) error {
	s, err := queue.ParseStatus(status)
	if err != nil {
		return classify(err)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		q, derr := tx.Queues().LockByID(ctx, tx.DB(), queueID)
		if derr != nil {
			return notFound(derr, errs.ErrQueueNotFound)
		}
		if derr = member.Authorize(q.BusinessID()); derr != nil {
			return classify(derr)
		}
		now, derr := businessNow(ctx, uc.zones, uc.clock, q.BusinessID())
		if derr != nil {
			return derr
		}
		q.RollOver(schedule.DateOf(now))
		if derr = q.SetStatus(s); derr != nil {
			return classify(derr)
		}
		if derr = tx.Queues().Save(ctx, tx.DB(), q, now); derr != nil {
			return derr
		}
		return tx.Outbox().Append(ctx, tx.DB(), shared.QueueEvent(q, now))
	})
}

// ReconcileCounters keeps going past failing queues; they are retried on the next run.
func (uc *queueUseCaseImpl) ReconcileCounters(ctx context.Context) (int, error) {
	ids, err := uc.uow.CommandReads().ActiveQueueIDs(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "list active queues")
	}

	repaired := 0
	var firstErr error
	for _, id := range ids {
		if ctx.Err() != nil {
			return repaired, ctx.Err()
		}
		changed, rerr := uc.reconcile(ctx, id)
		if rerr != nil {
			uc.logger.Error("counter reconciliation failed", "queue_id", id, "error", rerr)
			if firstErr == nil {
				firstErr = rerr
			}
			continue
		}
		if changed {
			repaired++
		}
	}
	return repaired, firstErr
}

func (uc *queueUseCaseImpl) reconcile(ctx context.Context, queueID uuid.UUID) (bool, error) {
	now := uc.clock.Now()
	changed := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		q, derr := tx.Queues().LockByID(ctx, tx.DB(), queueID)
		if derr != nil {
			return notFound(derr, errs.ErrQueueNotFound)
		}
		maxIssued, derr := tx.Reads().MaxTicketNumber(ctx, q.ID(), q.OperatingDate())
		if derr != nil {
			return derr
		}
		before := q.LastIssuedNumber()
		if !q.ReconcileCounter(maxIssued) {
			return nil
		}
		uc.logger.Warn("queue counter behind issued tickets",
			"queue_id", q.ID(),
			"operating_date", q.OperatingDate().String(),
			"last_issued_number", before,
			"max_ticket_number", maxIssued,
		)
		changed = true
		return tx.Queues().Save(ctx, tx.DB(), q, now)
	})
	return changed, err
}
