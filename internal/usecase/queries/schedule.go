package queries

import (
	"context"
	"errors"
	"time"

	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/service"
	"queue-engine/internal/infra"
	"queue-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error)
	// BookedSpans lists the active appointments of one service day.
	BookedSpans(ctx context.Context, serviceID uuid.UUID, date schedule.Date) ([]service.Booking, error)
}

type ScheduleQueries interface {
	GetSchedule(ctx context.Context, serviceID uuid.UUID) (*ScheduleView, error)
	GetAvailability(ctx context.Context, serviceID uuid.UUID, date schedule.Date) (*AvailabilityView, error)
}

type scheduleQueriesImpl struct {
	services ServiceReadStore
}

func NewScheduleQueries(services ServiceReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{services: services}
}

func (q *scheduleQueriesImpl) GetSchedule(ctx context.Context, serviceID uuid.UUID) (*ScheduleView, error) {
	svc, err := q.findService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return toScheduleView(svc.ID(), svc.Schedule()), nil
}

// GetAvailability lists every slot of the day, past ones included.
func (q *scheduleQueriesImpl) GetAvailability(ctx context.Context, serviceID uuid.UUID, date schedule.Date) (*AvailabilityView, error) {
	svc, err := q.findService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		ServiceID:    svc.ID(),
		Date:         date.String(),
		DayAvailable: svc.IsDayAvailable(date),
		Duration:     svc.Duration(),
		Buffer:       svc.Buffer(),
		Slots:        []SlotView{},
	}
	if !view.DayAvailable {
		return view, nil
	}

	booked, err := q.services.BookedSpans(ctx, svc.ID(), date)
	if err != nil {
		return nil, err
	}
	slots, err := svc.Slots(date, booked)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDuration) {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil, err
	}
	for _, s := range slots {
		view.Slots = append(view.Slots, SlotView{Time: s.Time.String(), Available: s.Available})
	}
	return view, nil
}

func (q *scheduleQueriesImpl) findService(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	svc, err := q.services.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, err
	}
	if !svc.IsActive() {
		return nil, errs.ErrServiceNotFound
	}
	return svc, nil
}

func toScheduleView(serviceID uuid.UUID, ws schedule.WeeklySchedule) *ScheduleView {
	view := &ScheduleView{
		ServiceID: serviceID,
		Source:    string(ws.Source()),
		Days:      []DayView{},
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day, ok := ws.Day(wd)
		if !ok {
			continue
		}
		dv := DayView{
			Weekday:   schedule.WeekdayName(wd),
			Enabled:   day.Enabled,
			Malformed: day.Malformed,
			Breaks:    []BreakView{},
		}
		if !day.Malformed {
			dv.Start = day.Start.String()
			dv.End = day.End.String()
		}
		for _, b := range day.Breaks {
			if b.Malformed {
				continue
			}
			dv.Breaks = append(dv.Breaks, BreakView{Start: b.Start.String(), End: b.End.String()})
		}
		view.Days = append(view.Days, dv)
	}
	return view
}
