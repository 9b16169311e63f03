package repository

import (
	"context"

	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/ticket"
	"queue-engine/internal/infra"
	"queue-engine/internal/infra/repository/converter"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TicketWriteQueries interface {
	CreateTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTicketParams) error
	UpdateTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTicketParams) error
	LockTicketByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Tickets, error)
	LockOpenTicketsByQueue(ctx context.Context, db sqlc.DBTX, arg sqlc.LockOpenTicketsByQueueParams) ([]sqlc.Tickets, error)
	LockSweepableTicketsByQueue(ctx context.Context, db sqlc.DBTX, arg sqlc.LockSweepableTicketsByQueueParams) ([]sqlc.Tickets, error)
}

type TicketRepository struct {
	queries TicketWriteQueries
	db      sqlc.DBTX
}

func NewTicketRepository(queries TicketWriteQueries, db sqlc.DBTX) *TicketRepository {
	return &TicketRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TicketRepository) Create(ctx context.Context, tx sqlc.DBTX, t *ticket.Ticket) error {
	if err := r.queries.CreateTicket(ctx, tx, converter.TicketToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to create ticket", err)
	}
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, tx sqlc.DBTX, t *ticket.Ticket) error {
	if err := r.queries.UpdateTicket(ctx, tx, converter.TicketToUpdateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to update ticket", err)
	}
	return nil
}

func (r *TicketRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*ticket.Ticket, error) {
	row, err := r.queries.LockTicketByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock ticket", err)
	}
	return converter.TicketFromRow(row), nil
}

func (r *TicketRepository) LockOpenByQueue(ctx context.Context, tx sqlc.DBTX, queueID uuid.UUID, date schedule.Date) ([]*ticket.Ticket, error) {
	rows, err := r.queries.LockOpenTicketsByQueue(ctx, tx, sqlc.LockOpenTicketsByQueueParams{
		QueueID:       queueID,
		OperatingDate: pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock open tickets", err)
	}
	tickets := make([]*ticket.Ticket, 0, len(rows))
	for _, row := range rows {
		tickets = append(tickets, converter.TicketFromRow(row))
	}
	return tickets, nil
}

func (r *TicketRepository) LockSweepableByQueue(ctx context.Context, tx sqlc.DBTX, queueID uuid.UUID, upTo schedule.Date) ([]*ticket.Ticket, error) {
	rows, err := r.queries.LockSweepableTicketsByQueue(ctx, tx, sqlc.LockSweepableTicketsByQueueParams{
		QueueID:       queueID,
		OperatingDate: pgconv.DateToPgtype(upTo),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock sweepable tickets", err)
	}
	tickets := make([]*ticket.Ticket, 0, len(rows))
	for _, row := range rows {
		tickets = append(tickets, converter.TicketFromRow(row))
	}
	return tickets, nil
}
