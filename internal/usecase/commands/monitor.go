package commands

import (
	"context"

	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/ticket"
	"queue-engine/internal/pkg/clock"
	"queue-engine/internal/pkg/errs"
	"queue-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const reasonAutoCompleted = "auto_completed"

type SweepResult struct {
	QueueID       uuid.UUID
	Skipped       int
	DayEnded      int
	NoShow        int
	AutoCompleted int
}

func (r SweepResult) Expired() int { return r.Skipped + r.DayEnded + r.NoShow }

// MonitorCommands expire tickets the queue has moved past, tickets left over from an ended day,
// tickets that never showed up after being called, and finish tickets served past the average time.
type MonitorCommands interface {
	ActiveQueues(ctx context.Context) ([]uuid.UUID, error)
	SweepQueue(ctx context.Context, queueID uuid.UUID) (SweepResult, error)
}

type monitorUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	zones shared.Zones
}

func NewMonitorUseCase(uow shared.UnitOfWork, clk clock.Clock, zones shared.Zones) MonitorCommands {
	return &monitorUseCaseImpl{
		uow:   uow,
		clock: clk,
		zones: zones,
	}
}

func (uc *monitorUseCaseImpl) ActiveQueues(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := uc.uow.CommandReads().ActiveQueueIDs(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list active queues")
	}
	return ids, nil
}

// SweepQueue holds the queue lock while expiring, so it never interleaves with call-next.
func (uc *monitorUseCaseImpl) SweepQueue(ctx context.Context, queueID uuid.UUID) (SweepResult, error) {
	result := SweepResult{QueueID: queueID}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = SweepResult{QueueID: queueID}

		q, derr := tx.Queues().LockByID(ctx, tx.DB(), queueID)
		if derr != nil {
			return notFound(derr, errs.ErrQueueNotFound)
		}
		now, derr := businessNow(ctx, uc.zones, uc.clock, q.BusinessID())
		if derr != nil {
			return derr
		}
		// the queue only rolls over on issue, so an idle queue may still carry an ended day
		sweepDate := q.OperatingDate()
		if today := schedule.DateOf(now); sweepDate.Before(today) {
			sweepDate = today
		}
		rules := ticket.ExpiryRules{
			OperatingDate:    sweepDate,
			CurrentNumber:    q.CurrentNumber(),
			ToleranceMinutes: q.Settings().Tolerance,
		}

		tickets, derr := tx.Tickets().LockSweepableByQueue(ctx, tx.DB(), q.ID(), sweepDate)
		if derr != nil {
			return derr
		}

		var events []shared.Event
		for _, t := range tickets {
			var reason string
			if t.Status() == ticket.StatusServing {
				done, cerr := t.AutoComplete(q.Settings().AverageServiceTime, now)
				if cerr != nil {
					return classify(cerr)
				}
				if !done {
					continue
				}
				result.AutoCompleted++
				reason = reasonAutoCompleted
			} else {
				expiry, eerr := t.Expire(rules, now)
				if eerr != nil {
					return classify(eerr)
				}
				switch expiry {
				case ticket.ExpirySkipped:
					result.Skipped++
				case ticket.ExpiryDayEnded:
					result.DayEnded++
				case ticket.ExpiryNoShow:
					result.NoShow++
				default:
					continue
				}
				reason = string(expiry)
			}
			if uerr := tx.Tickets().Update(ctx, tx.DB(), t); uerr != nil {
				return uerr
			}
			events = append(events, shared.TicketEvent(shared.TopicTicketStatusChanged, t, reason, now))
		}
		if len(events) == 0 {
			return nil
		}
		return tx.Outbox().Append(ctx, tx.DB(), events...)
	})
	if err != nil {
		return SweepResult{QueueID: queueID}, err
	}
	return result, nil
}
