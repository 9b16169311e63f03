package queries

import (
	"context"

	"queue-engine/internal/domain/ticket"
	"queue-engine/internal/infra"
	"queue-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

type TicketReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
	// ListDisplay returns waiting and called tickets of the current operating day by creation time.
	ListDisplay(ctx context.Context, queueID uuid.UUID, limit int) ([]DisplayTicket, error)
	ActiveStatuses(ctx context.Context, queueID uuid.UUID, email string) ([]ticket.Status, error)
}

type TicketQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
}

type ticketQueriesImpl struct {
	tickets TicketReadStore
}

func NewTicketQueries(tickets TicketReadStore) TicketQueries {
	return &ticketQueriesImpl{tickets: tickets}
}

func (q *ticketQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TicketView, error) {
	tv, err := q.tickets.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTicketNotFound
		}
		return nil, err
	}
	return tv, nil
}

// LivePosition is how many calls remain before a waiting ticket of the queue's current day is reached.
// Tickets that are not waiting, or belong to an earlier day, have no position.
func LivePosition(status string, number, currentNumber int, sameDay bool) int {
	if ticket.Status(status) != ticket.StatusWaiting || !sameDay {
		return 0
	}
	if p := number - currentNumber; p > 0 {
		return p
	}
	return 0
}
