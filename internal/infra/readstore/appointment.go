package readstore

import (
	"context"
	"strings"
	"time"

	"queue-engine/internal/domain/appointment"
	"queue-engine/internal/domain/claim"
	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/infra"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/pgconv"
	"queue-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentViewQueries interface {
	GetAppointmentByToken(ctx context.Context, db sqlc.DBTX, managementToken string) (sqlc.Appointments, error)
	ListBusinessAppointmentsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBusinessAppointmentsFirstPageParams) ([]sqlc.Appointments, error)
	ListBusinessAppointmentsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBusinessAppointmentsKeysetParams) ([]sqlc.Appointments, error)
	ListRecentAppointmentsByCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecentAppointmentsByCustomerParams) ([]sqlc.ListRecentAppointmentsByCustomerRow, error)
}

type AppointmentReadStore struct {
	queries AppointmentViewQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries AppointmentViewQueries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentReadStore) FindByToken(ctx context.Context, token appointment.ManagementToken) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointmentByToken(ctx, r.db, token.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get appointment by token", err)
	}
	return toAppointmentView(row), nil
}

func (r *AppointmentReadStore) ListByBusinessFirstPage(ctx context.Context, businessID uuid.UUID, date *schedule.Date, limit int32) ([]*queries.AppointmentView, error) {
	params := sqlc.ListBusinessAppointmentsFirstPageParams{
		BusinessID: businessID,
		Date:       optionalDate(date),
		RowLimit:   limit,
	}
	rows, err := r.queries.ListBusinessAppointmentsFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list business appointments first page", err)
	}
	return toAppointmentViews(rows), nil
}

func (r *AppointmentReadStore) ListByBusinessKeyset(
	ctx context.Context,
	businessID uuid.UUID,
	date *schedule.Date,
	after schedule.Date,
	afterTime schedule.ClockTime,
	afterID uuid.UUID,
	limit int32,
) ([]*queries.AppointmentView, error) {
	params := sqlc.ListBusinessAppointmentsKeysetParams{
		BusinessID: businessID,
		Date:       optionalDate(date),
		AfterDate:  pgconv.DateToPgtype(after),
		AfterTime:  pgconv.ClockTimeToPgtype(afterTime),
		AfterID:    afterID,
		RowLimit:   limit,
	}
	rows, err := r.queries.ListBusinessAppointmentsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list business appointments keyset", err)
	}
	return toAppointmentViews(rows), nil
}

// RecentByCustomer lists bookings the customer created since the given instant for one business service.
func (r *AppointmentReadStore) RecentByCustomer(ctx context.Context, businessID, serviceID uuid.UUID, email string, since time.Time) ([]claim.ExistingAppointment, error) {
	rows, err := r.queries.ListRecentAppointmentsByCustomer(ctx, r.db, sqlc.ListRecentAppointmentsByCustomerParams{
		BusinessID: businessID,
		ServiceID:  serviceID,
		Email:      strings.ToLower(strings.TrimSpace(email)),
		Since:      pgconv.TimeToPgtype(since),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent appointments by customer", err)
	}
	existing := make([]claim.ExistingAppointment, 0, len(rows))
	for _, row := range rows {
		existing = append(existing, claim.ExistingAppointment{
			Status:    appointment.Status(row.Status),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return existing, nil
}

func optionalDate(d *schedule.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return pgconv.DateToPgtype(*d)
}

func toAppointmentViews(rows []sqlc.Appointments) []*queries.AppointmentView {
	items := make([]*queries.AppointmentView, 0, len(rows))
	for _, row := range rows {
		items = append(items, toAppointmentView(row))
	}
	return items
}

func toAppointmentView(row sqlc.Appointments) *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:               row.ID,
		BusinessID:       row.BusinessID,
		ServiceID:        row.ServiceID,
		ServiceName:      row.ServiceName,
		CustomerName:     row.CustomerName,
		CustomerEmail:    row.CustomerEmail,
		CustomerPhone:    pgconv.StringFromPgtype(row.CustomerPhone),
		Date:             pgconv.DateFromPgtype(row.AppointmentDate).String(),
		StartTime:        pgconv.ClockTimeFromPgtype(row.StartTime).String(),
		Duration:         int(row.Duration),
		Buffer:           int(row.BufferTime),
		Note:             pgconv.StringFromPgtype(row.Note),
		BusinessResponse: pgconv.StringFromPgtype(row.BusinessResponse),
		Status:           row.Status,
		Rating:           pgconv.RatingFromPgtype(row.Rating),
		Feedback:         pgconv.StringFromPgtype(row.Feedback),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
