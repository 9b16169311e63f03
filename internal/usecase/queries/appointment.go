package queries

import (
	"context"
	"time"

	"queue-engine/internal/domain/appointment"
	"queue-engine/internal/domain/claim"
	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/staff"
	"queue-engine/internal/infra"
	"queue-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

type AppointmentReadStore interface {
	FindByToken(ctx context.Context, token appointment.ManagementToken) (*AppointmentView, error)
	ListByBusinessFirstPage(ctx context.Context, businessID uuid.UUID, date *schedule.Date, limit int32) ([]*AppointmentView, error)
	ListByBusinessKeyset(ctx context.Context, businessID uuid.UUID, date *schedule.Date, after schedule.Date, afterTime schedule.ClockTime, afterID uuid.UUID, limit int32) ([]*AppointmentView, error)
	RecentByCustomer(ctx context.Context, businessID, serviceID uuid.UUID, email string, since time.Time) ([]claim.ExistingAppointment, error)
}

type AppointmentQueries interface {
	GetByToken(ctx context.Context, token string) (*AppointmentView, error)
	ListForBusiness(ctx context.Context, member staff.Member, filter AppointmentFilter, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error)
}

type appointmentQueriesImpl struct {
	appointments AppointmentReadStore
}

func NewAppointmentQueries(appointments AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{appointments: appointments}
}

func (q *appointmentQueriesImpl) GetByToken(ctx context.Context, token string) (*AppointmentView, error) {
	if token == "" {
		return nil, errs.ErrAppointmentNotFound
	}
	av, err := q.appointments.FindByToken(ctx, appointment.ManagementToken(token))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAppointmentNotFound
		}
		return nil, err
	}
	return av, nil
}

// ListForBusiness pages through the member's appointments ordered by date, start time and id.
func (q *appointmentQueriesImpl) ListForBusiness(ctx context.Context, member staff.Member, filter AppointmentFilter, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error) {
	if err := member.Authorize(member.BusinessID()); err != nil {
		return nil, nil, errs.Mark(err, errs.ErrForbidden)
	}

	var date *schedule.Date
	if filter.Date != nil && *filter.Date != "" {
		d, err := schedule.ParseDate(*filter.Date)
		if err != nil {
			return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		date = &d
	}

	limit = ValidateLimit(limit)
	var rows []*AppointmentView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.appointments.ListByBusinessFirstPage(ctx, member.BusinessID(), date, int32(limit+1))
	} else {
		startsAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.appointments.ListByBusinessKeyset(ctx, member.BusinessID(), date,
			schedule.DateOf(startsAt), schedule.ClockTimeOf(startsAt), lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: appointmentCursor(last)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func appointmentCursor(av *AppointmentView) string {
	d, err := schedule.ParseDate(av.Date)
	if err != nil {
		return ""
	}
	start, err := schedule.ParseClockTime(av.StartTime)
	if err != nil {
		return ""
	}
	return EncodeAfterCursor(d.At(start, time.UTC), av.ID)
}
