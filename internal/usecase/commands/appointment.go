package commands

import (
	"context"
	"time"

	"queue-engine/internal/domain/appointment"
	"queue-engine/internal/domain/claim"
	"queue-engine/internal/domain/customer"
	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/staff"
	"queue-engine/internal/pkg/clock"
	"queue-engine/internal/pkg/errs"
	"queue-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ServiceID uuid.UUID
	Name      string
	Email     string
	Phone     string
	Date      string
	StartTime string
	Note      string
}

type CreateAppointmentResult struct {
	ID              uuid.UUID
	ManagementToken string
	Status          string
	Date            string
	StartTime       string
}

type AppointmentCommands interface {
	Create(ctx context.Context, req CreateAppointmentRequest) (*CreateAppointmentResult, error)
	Transition(ctx context.Context, member staff.Member, appointmentID uuid.UUID, action, response string) error
	CancelByToken(ctx context.Context, token string) error
	RateByToken(ctx context.Context, token string, rating int, comment string) error
}

type appointmentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
	guard claim.Guard
}

func NewAppointmentUseCase(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location, guard claim.Guard) AppointmentCommands {
	return &appointmentUseCaseImpl{
		uow:   uow,
		clock: clk,
		loc:   loc,
		guard: guard,
	}
}

// Create books a slot. The service row lock serializes bookings of the same service,
// so the overlap check and the insert see the same set of booked spans.
func (uc *appointmentUseCaseImpl) Create(ctx context.Context, req CreateAppointmentRequest) (*CreateAppointmentResult, error) {
	contact, err := customer.NewContact(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, classify(err)
	}
	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		return nil, classify(err)
	}
	start, err := schedule.ParseClockTime(req.StartTime)
	if err != nil {
		return nil, classify(err)
	}
	token, err := appointment.NewManagementToken()
	if err != nil {
		return nil, errs.Wrap(err, "generate management token")
	}
	now := clock.In(uc.clock, uc.loc)

	var booked *appointment.Appointment
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, derr := tx.Services().LockByID(ctx, tx.DB(), req.ServiceID)
		if derr != nil {
			return notFound(derr, errs.ErrServiceNotFound)
		}
		if !svc.IsActive() {
			return errs.ErrServiceNotFound
		}

		existing, derr := tx.Reads().RecentAppointments(ctx, svc.BusinessID(), svc.ID(), contact.Email().Value(), uc.guard.Since(now))
		if derr != nil {
			return derr
		}
		if derr = uc.guard.CheckAppointment(existing, now); derr != nil {
			return classify(derr)
		}

		spans, derr := tx.Reads().BookedSpans(ctx, svc.ID(), date)
		if derr != nil {
			return derr
		}
		if derr = svc.CheckSlot(date, start, spans); derr != nil {
			return classify(derr)
		}

		a, derr := appointment.Book(appointment.BookParams{
			BusinessID:  svc.BusinessID(),
			ServiceID:   svc.ID(),
			ServiceName: svc.Name(),
			Customer:    contact,
			Date:        date,
			StartTime:   start,
			Duration:    svc.Duration(),
			Buffer:      svc.Buffer(),
			Note:        req.Note,
		}, token, now)
		if derr != nil {
			return classify(derr)
		}
		if derr = tx.Appointments().Create(ctx, tx.DB(), a); derr != nil {
			return derr
		}
		booked = a
		return tx.Outbox().Append(ctx, tx.DB(), shared.AppointmentEvent(shared.TopicAppointmentCreated, a, now))
	})
	if err != nil {
		return nil, err
	}
	return &CreateAppointmentResult{
		ID:              booked.ID(),
		ManagementToken: booked.Token().String(),
		Status:          booked.Status().String(),
		Date:            booked.Date().String(),
		StartTime:       booked.StartTime().String(),
	}, nil
}

func (uc *appointmentUseCaseImpl) Transition(ctx context.Context, member staff.Member, appointmentID uuid.UUID, action, response string) error {
	act, err := appointment.ParseAction(action)
	if err != nil {
		return classify(err)
	}
	now := clock.In(uc.clock, uc.loc)

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, derr := tx.Appointments().LockByID(ctx, tx.DB(), appointmentID)
		if derr != nil {
			return notFound(derr, errs.ErrAppointmentNotFound)
		}
		if derr = member.Authorize(a.BusinessID()); derr != nil {
			return classify(derr)
		}
		changed, derr := a.Apply(act, response, now)
		if derr != nil {
			return classify(derr)
		}
		if !changed {
			return nil
		}
		return uc.save(ctx, tx, a, now)
	})
}

func (uc *appointmentUseCaseImpl) CancelByToken(ctx context.Context, token string) error {
	now := clock.In(uc.clock, uc.loc)
	return uc.withToken(ctx, token, func(ctx context.Context, tx shared.Tx, a *appointment.Appointment) error {
		changed, err := a.Cancel(now)
		if err != nil {
			return classify(err)
		}
		if !changed {
			return nil
		}
		return uc.save(ctx, tx, a, now)
	})
}

func (uc *appointmentUseCaseImpl) RateByToken(ctx context.Context, token string, rating int, comment string) error {
	now := clock.In(uc.clock, uc.loc)
	return uc.withToken(ctx, token, func(ctx context.Context, tx shared.Tx, a *appointment.Appointment) error {
		if err := a.Rate(rating, comment, now); err != nil {
			return classify(err)
		}
		return tx.Appointments().Update(ctx, tx.DB(), a)
	})
}

func (uc *appointmentUseCaseImpl) withToken(
	ctx context.Context,
	token string,
	fn func(ctx context.Context, tx shared.Tx, a *appointment.Appointment) error,
) error {
	if token == "" {
		return errs.ErrAppointmentNotFound
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Appointments().LockByToken(ctx, tx.DB(), appointment.ManagementToken(token))
		if err != nil {
			return notFound(err, errs.ErrAppointmentNotFound)
		}
		return fn(ctx, tx, a)
	})
}

func (uc *appointmentUseCaseImpl) save(ctx context.Context, tx shared.Tx, a *appointment.Appointment, now time.Time) error {
	if err := tx.Appointments().Update(ctx, tx.DB(), a); err != nil {
		return err
	}
	return tx.Outbox().Append(ctx, tx.DB(), shared.AppointmentEvent(shared.TopicAppointmentStatusChanged, a, now))
}
