package readstore

import (
	"context"
	"strings"

	"queue-engine/internal/domain/ticket"
	"queue-engine/internal/infra"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/pgconv"
	"queue-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketViewQueries interface {
	GetTicketViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetTicketViewByIDRow, error)
	ListDisplayTickets(ctx context.Context, db sqlc.DBTX, arg sqlc.ListDisplayTicketsParams) ([]sqlc.ListDisplayTicketsRow, error)
	ListActiveTicketStatusesByCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveTicketStatusesByCustomerParams) ([]string, error)
}

type TicketReadStore struct {
	queries TicketViewQueries
	db      sqlc.DBTX
}

func NewTicketReadStore(queries TicketViewQueries, db sqlc.DBTX) *TicketReadStore {
	return &TicketReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TicketReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TicketView, error) {
	row, err := r.queries.GetTicketViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get ticket view by id", err)
	}

	day := pgconv.DateFromPgtype(row.OperatingDate)
	sameDay := day.Equal(pgconv.DateFromPgtype(row.QueueOperatingDate))
	position := queries.LivePosition(row.Status, int(row.TicketNumber), int(row.CurrentNumber), sameDay)

	return &queries.TicketView{
		ID:                   row.ID,
		QueueID:              row.QueueID,
		BusinessID:           row.BusinessID,
		QueueName:            row.QueueName,
		TicketNumber:         int(row.TicketNumber),
		OperatingDate:        day.String(),
		Status:               row.Status,
		CustomerName:         row.CustomerName,
		IsManual:             row.IsManual,
		CurrentNumber:        int(row.CurrentNumber),
		Position:             position,
		EstimatedWaitMinutes: position * int(row.AverageServiceTime),
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
		CalledAt:             pgconv.TimePtrFromPgtype(row.CalledAt),
		ServingStartedAt:     pgconv.TimePtrFromPgtype(row.ServingStartedAt),
		CompletedAt:          pgconv.TimePtrFromPgtype(row.CompletedAt),
	}, nil
}

func (r *TicketReadStore) ListDisplay(ctx context.Context, queueID uuid.UUID, limit int) ([]queries.DisplayTicket, error) {
	rows, err := r.queries.ListDisplayTickets(ctx, r.db, sqlc.ListDisplayTicketsParams{
		QueueID: queueID,
		Limit:   pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list display tickets", err)
	}
	items := make([]queries.DisplayTicket, 0, len(rows))
	for _, row := range rows {
		items = append(items, queries.DisplayTicket{
			ID:           row.ID,
			TicketNumber: int(row.TicketNumber),
			Status:       row.Status,
			CustomerName: row.CustomerName,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
			CalledAt:     pgconv.TimePtrFromPgtype(row.CalledAt),
		})
	}
	return items, nil
}

func (r *TicketReadStore) ActiveStatuses(ctx context.Context, queueID uuid.UUID, email string) ([]ticket.Status, error) {
	rows, err := r.queries.ListActiveTicketStatusesByCustomer(ctx, r.db, sqlc.ListActiveTicketStatusesByCustomerParams{
		QueueID: queueID,
		Email:   strings.ToLower(strings.TrimSpace(email)),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active tickets by customer", err)
	}
	statuses := make([]ticket.Status, 0, len(rows))
	for _, s := range rows {
		statuses = append(statuses, ticket.Status(s))
	}
	return statuses, nil
}
