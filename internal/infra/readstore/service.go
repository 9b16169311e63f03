package readstore

import (
	"context"

	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/service"
	"queue-engine/internal/infra"
	"queue-engine/internal/infra/repository/converter"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ServiceViewQueries interface {
	GetServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error)
	ListActiveAppointmentSpans(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveAppointmentSpansParams) ([]sqlc.ListActiveAppointmentSpansRow, error)
}

type ServiceReadStore struct {
	queries ServiceViewQueries
	db      sqlc.DBTX
}

func NewServiceReadStore(queries ServiceViewQueries, db sqlc.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	row, err := r.queries.GetServiceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service by id", err)
	}
	return converter.ServiceFromRow(row), nil
}

func (r *ServiceReadStore) BookedSpans(ctx context.Context, serviceID uuid.UUID, date schedule.Date) ([]service.Booking, error) {
	rows, err := r.queries.ListActiveAppointmentSpans(ctx, r.db, sqlc.ListActiveAppointmentSpansParams{
		ServiceID:       serviceID,
		AppointmentDate: pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked spans", err)
	}
	bookings := make([]service.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, service.Booking{
			Start:    pgconv.ClockTimeFromPgtype(row.StartTime),
			Duration: int(row.Duration),
			Buffer:   int(row.BufferTime),
		})
	}
	return bookings, nil
}
