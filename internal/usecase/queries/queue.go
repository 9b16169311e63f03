package queries

import (
	"context"

	"queue-engine/internal/domain/queue"
	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/ticket"
	"queue-engine/internal/infra"
	"queue-engine/internal/pkg/clock"
	"queue-engine/internal/pkg/errs"
	"queue-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const DefaultDisplayLimit = 12

type QueueReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queue.Queue, error)
	ActiveIDs(ctx context.Context) ([]uuid.UUID, error)
	MaxTicketNumber(ctx context.Context, queueID uuid.UUID, date schedule.Date) (int, error)
}

type QueueQueries interface {
	GetStatus(ctx context.Context, queueID uuid.UUID) (*QueueView, error)
	Display(ctx context.Context, queueID uuid.UUID) (*DisplayView, error)
}

type queueQueriesImpl struct {
	queues       QueueReadStore
	tickets      TicketReadStore
	clock        clock.Clock
	zones        shared.Zones
	displayLimit int
}

func NewQueueQueries(queues QueueReadStore, tickets TicketReadStore, clk clock.Clock, zones shared.Zones, displayLimit int) QueueQueries {
	if displayLimit <= 0 {
		displayLimit = DefaultDisplayLimit
	}
	return &queueQueriesImpl{
		queues:       queues,
		tickets:      tickets,
		clock:        clk,
		zones:        zones,
		displayLimit: displayLimit,
	}
}

// GetStatus reports the stored counters; a queue whose operating date is stale shows
// the values a rollover would produce.
func (q *queueQueriesImpl) GetStatus(ctx context.Context, queueID uuid.UUID) (*QueueView, error) {
	qu, err := q.findQueue(ctx, queueID)
	if err != nil {
		return nil, err
	}
	loc, err := q.zones.Location(ctx, qu.BusinessID())
	if err != nil {
		return nil, errs.Wrap(err, "resolve business time zone")
	}
	now := clock.In(q.clock, loc)
	qu.RollOver(schedule.DateOf(now))

	operating, reason := qu.Operating(now)
	return &QueueView{
		ID:                 qu.ID(),
		BusinessID:         qu.BusinessID(),
		Name:               qu.Name(),
		Status:             qu.Status().String(),
		CurrentNumber:      qu.CurrentNumber(),
		LastIssuedNumber:   qu.LastIssuedNumber(),
		Waiting:            qu.Waiting(),
		AverageServiceTime: qu.Settings().AverageServiceTime,
		OperatingDate:      qu.OperatingDate().String(),
		IsOperating:        operating,
		Reason:             string(reason),
		UpdatedAt:          qu.UpdatedAt(),
	}, nil
}

func (q *queueQueriesImpl) Display(ctx context.Context, queueID uuid.UUID) (*DisplayView, error) {
	qu, err := q.findQueue(ctx, queueID)
	if err != nil {
		return nil, err
	}
	rows, err := q.tickets.ListDisplay(ctx, queueID, q.displayLimit)
	if err != nil {
		return nil, err
	}

	view := &DisplayView{
		QueueID:       qu.ID(),
		QueueName:     qu.Name(),
		CurrentNumber: qu.CurrentNumber(),
		Waiting:       []DisplayTicket{},
		Called:        []DisplayTicket{},
	}
	for _, t := range rows {
		switch ticket.Status(t.Status) {
		case ticket.StatusWaiting:
			view.Waiting = append(view.Waiting, t)
		case ticket.StatusCalled:
			view.Called = append(view.Called, t)
		}
	}
	return view, nil
}

func (q *queueQueriesImpl) findQueue(ctx context.Context, id uuid.UUID) (*queue.Queue, error) {
	qu, err := q.queues.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrQueueNotFound
		}
		return nil, err
	}
	return qu, nil
}
