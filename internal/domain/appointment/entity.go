package appointment

import (
	"errors"
	"strings"
	"time"

	"queue-engine/internal/domain/customer"
	"queue-engine/internal/domain/feedback"
	"queue-engine/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid appointment status transition")
	ErrUnknownAction     = errors.New("unknown appointment action")
	ErrDateRequired      = errors.New("appointment date is required")
	ErrNoteTooLong       = errors.New("note exceeds maximum length")
	ErrTokenRequired     = errors.New("management token is required")
)

const MaxNoteLength = 1000

type Appointment struct {
	id               uuid.UUID
	businessID       uuid.UUID
	serviceID        uuid.UUID
	serviceName      string
	customer         customer.Contact
	date             schedule.Date
	startTime        schedule.ClockTime
	duration         int
	buffer           int
	note             string
	businessResponse string
	token            ManagementToken
	status           Status
	feedback         *feedback.Feedback
	createdAt        time.Time
	updatedAt        time.Time
}

type BookParams struct {
	BusinessID  uuid.UUID
	ServiceID   uuid.UUID
	ServiceName string
	Customer    customer.Contact
	Date        schedule.Date
	StartTime   schedule.ClockTime
	Duration    int
	Buffer      int
	Note        string
}

// Book creates a scheduled appointment. Slot validity is checked by the caller against the service.
func Book(p BookParams, token ManagementToken, now time.Time) (*Appointment, error) {
	if p.Customer.Name() == "" {
		return nil, customer.ErrNameRequired
	}
	if p.Customer.Email().IsZero() {
		return nil, customer.ErrInvalidEmail
	}
	if p.Date.IsZero() {
		return nil, ErrDateRequired
	}
	if p.Duration <= 0 || p.Buffer < 0 {
		return nil, schedule.ErrInvalidDuration
	}
	if token == "" {
		return nil, ErrTokenRequired
	}
	note := strings.TrimSpace(p.Note)
	if len(note) > MaxNoteLength {
		return nil, ErrNoteTooLong
	}
	return &Appointment{
		id:          uuid.New(),
		businessID:  p.BusinessID,
		serviceID:   p.ServiceID,
		serviceName: p.ServiceName,
		customer:    p.Customer,
		date:        p.Date,
		startTime:   p.StartTime,
		duration:    p.Duration,
		buffer:      p.Buffer,
		note:        note,
		token:       token,
		status:      StatusScheduled,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

type Details struct {
	ServiceName      string
	Date             schedule.Date
	StartTime        schedule.ClockTime
	Duration         int
	Buffer           int
	Note             string
	BusinessResponse string
}

func Reconstruct(
	id, businessID, serviceID uuid.UUID,
	contact customer.Contact,
	d Details,
	token ManagementToken,
	status Status,
	fb *feedback.Feedback,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:               id,
		businessID:       businessID,
		serviceID:        serviceID,
		serviceName:      d.ServiceName,
		customer:         contact,
		date:             d.Date,
		startTime:        d.StartTime,
		duration:         d.Duration,
		buffer:           d.Buffer,
		note:             d.Note,
		businessResponse: d.BusinessResponse,
		token:            token,
		status:           status,
		feedback:         fb,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (a *Appointment) ID() uuid.UUID                 { return a.id }
func (a *Appointment) BusinessID() uuid.UUID         { return a.businessID }
func (a *Appointment) ServiceID() uuid.UUID          { return a.serviceID }
func (a *Appointment) ServiceName() string           { return a.serviceName }
func (a *Appointment) Customer() customer.Contact    { return a.customer }
func (a *Appointment) Date() schedule.Date           { return a.date }
func (a *Appointment) StartTime() schedule.ClockTime { return a.startTime }
func (a *Appointment) Duration() int                 { return a.duration }
func (a *Appointment) Buffer() int                   { return a.buffer }
func (a *Appointment) Note() string                  { return a.note }
func (a *Appointment) BusinessResponse() string      { return a.businessResponse }
func (a *Appointment) Token() ManagementToken        { return a.token }
func (a *Appointment) Status() Status                { return a.status }
func (a *Appointment) Feedback() *feedback.Feedback  { return a.feedback }
func (a *Appointment) CreatedAt() time.Time          { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time          { return a.updatedAt }

// Apply performs action and records an optional business response.
// It reports whether the status changed; cancelling a cancelled appointment is a no-op.
func (a *Appointment) Apply(action Action, response string, now time.Time) (bool, error) {
	r, ok := transitions[action]
	if !ok {
		return false, ErrUnknownAction
	}
	if action == ActionCancel && a.status == StatusCancelled {
		return false, nil
	}
	allowed := false
	for _, s := range r.from {
		if s == a.status {
			allowed = true
			break
		}
	}
	if !allowed {
		return false, ErrInvalidTransition
	}
	a.status = r.to
	if resp := strings.TrimSpace(response); resp != "" {
		a.businessResponse = resp
	}
	a.updatedAt = now
	return true, nil
}

func (a *Appointment) Cancel(now time.Time) (bool, error) {
	return a.Apply(ActionCancel, "", now)
}

func (a *Appointment) Rate(rating int, comment string, now time.Time) error {
	if a.status != StatusCompleted {
		return feedback.ErrNotRateable
	}
	if a.feedback != nil {
		return feedback.ErrAlreadyReviewed
	}
	fb, err := feedback.New(rating, comment)
	if err != nil {
		return err
	}
	a.feedback = &fb
	a.updatedAt = now
	return nil
}

// StartsAt is the appointment start in loc.
func (a *Appointment) StartsAt(loc *time.Location) time.Time {
	return a.date.At(a.startTime, loc)
}
