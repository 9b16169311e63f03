package ticket

import (
	"errors"
	"time"

	"queue-engine/internal/domain/customer"
	"queue-engine/internal/domain/feedback"
	"queue-engine/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid ticket status transition")
	ErrInvalidNumber     = errors.New("ticket number must be positive")
	ErrNotOwner          = errors.New("ticket belongs to another customer")
)

type Ticket struct {
	id               uuid.UUID
	queueID          uuid.UUID
	businessID       uuid.UUID
	number           int
	operatingDate    schedule.Date
	status           Status
	customer         customer.Contact
	isManual         bool
	position         int
	estimatedWait    int
	feedback         *feedback.Feedback
	createdAt        time.Time
	calledAt         *time.Time
	servingStartedAt *time.Time
	completedAt      *time.Time
	updatedAt        time.Time
}

type IssueParams struct {
	QueueID       uuid.UUID
	BusinessID    uuid.UUID
	Number        int
	OperatingDate schedule.Date
	Position      int
	EstimatedWait int
	Customer      customer.Contact
	IsManual      bool
}

func New(p IssueParams, now time.Time) (*Ticket, error) {
	if p.Number <= 0 {
		return nil, ErrInvalidNumber
	}
	if p.Customer.Name() == "" {
		return nil, customer.ErrNameRequired
	}
	return &Ticket{
		id:            uuid.New(),
		queueID:       p.QueueID,
		businessID:    p.BusinessID,
		number:        p.Number,
		operatingDate: p.OperatingDate,
		status:        StatusWaiting,
		customer:      p.Customer,
		isManual:      p.IsManual,
		position:      p.Position,
		estimatedWait: p.EstimatedWait,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

type Timestamps struct {
	CreatedAt        time.Time
	CalledAt         *time.Time
	ServingStartedAt *time.Time
	CompletedAt      *time.Time
	UpdatedAt        time.Time
}

func Reconstruct(
	id, queueID, businessID uuid.UUID,
	number int,
	operatingDate schedule.Date,
	status Status,
	contact customer.Contact,
	isManual bool,
	position, estimatedWait int,
	fb *feedback.Feedback,
	ts Timestamps,
) *Ticket {
	return &Ticket{
		id:               id,
		queueID:          queueID,
		businessID:       businessID,
		number:           number,
		operatingDate:    operatingDate,
		status:           status,
		customer:         contact,
		isManual:         isManual,
		position:         position,
		estimatedWait:    estimatedWait,
		feedback:         fb,
		createdAt:        ts.CreatedAt,
		calledAt:         ts.CalledAt,
		servingStartedAt: ts.ServingStartedAt,
		completedAt:      ts.CompletedAt,
		updatedAt:        ts.UpdatedAt,
	}
}

func (t *Ticket) ID() uuid.UUID                { return t.id }
func (t *Ticket) QueueID() uuid.UUID           { return t.queueID }
func (t *Ticket) BusinessID() uuid.UUID        { return t.businessID }
func (t *Ticket) Number() int                  { return t.number }
func (t *Ticket) OperatingDate() schedule.Date { return t.operatingDate }
func (t *Ticket) Status() Status               { return t.status }
func (t *Ticket) Customer() customer.Contact   { return t.customer }
func (t *Ticket) IsManual() bool               { return t.isManual }
func (t *Ticket) Position() int                { return t.position }
func (t *Ticket) EstimatedWait() int           { return t.estimatedWait }
func (t *Ticket) Feedback() *feedback.Feedback { return t.feedback }
func (t *Ticket) CreatedAt() time.Time         { return t.createdAt }
func (t *Ticket) CalledAt() *time.Time         { return t.calledAt }
func (t *Ticket) ServingStartedAt() *time.Time { return t.servingStartedAt }
func (t *Ticket) CompletedAt() *time.Time      { return t.completedAt }
func (t *Ticket) UpdatedAt() time.Time         { return t.updatedAt }

func (t *Ticket) transition(a action, to Status, now time.Time) error {
	if !allowed(a, t.status) {
		return ErrInvalidTransition
	}
	t.status = to
	t.updatedAt = now
	return nil
}

func (t *Ticket) Call(now time.Time) error {
	if err := t.transition(actionCall, StatusCalled, now); err != nil {
		return err
	}
	t.calledAt = &now
	return nil
}

func (t *Ticket) StartServing(now time.Time) error {
	if err := t.transition(actionServe, StatusServing, now); err != nil {
		return err
	}
	t.servingStartedAt = &now
	return nil
}

func (t *Ticket) Complete(now time.Time) error {
	if err := t.transition(actionComplete, StatusCompleted, now); err != nil {
		return err
	}
	t.completedAt = &now
	return nil
}

// Cancel reports whether the status changed. Cancelling a cancelled ticket is a no-op.
func (t *Ticket) Cancel(now time.Time) (bool, error) {
	if t.status == StatusCancelled {
		return false, nil
	}
	if err := t.transition(actionCancel, StatusCancelled, now); err != nil {
		return false, err
	}
	return true, nil
}

// CancelBy cancels on behalf of the customer identified by email.
func (t *Ticket) CancelBy(email string, now time.Time) (bool, error) {
	if !t.customer.Matches(email) {
		return false, ErrNotOwner
	}
	return t.Cancel(now)
}

// ExpiryRules is the queue state a monitor pass judges tickets against.
type ExpiryRules struct {
	OperatingDate    schedule.Date
	CurrentNumber    int
	ToleranceMinutes int
}

// ExpiryDue evaluates the expiry rules without changing state.
//   - waiting: cancelled once its operating day has ended or current_number has moved past it
//   - called: tolerance minutes elapsed since the call, whatever day it was issued on
func (t *Ticket) ExpiryDue(r ExpiryRules, now time.Time) ExpiryReason {
	switch t.status {
	case StatusWaiting:
		if t.operatingDate.Before(r.OperatingDate) {
			return ExpiryDayEnded
		}
		if t.number < r.CurrentNumber {
			return ExpirySkipped
		}
	case StatusCalled:
		if t.calledAt != nil && now.Sub(*t.calledAt) > time.Duration(r.ToleranceMinutes)*time.Minute {
			return ExpiryNoShow
		}
	}
	return ExpiryNotNeeded
}

// Expire cancels the ticket when an expiry rule applies. Re-running it is a no-op.
func (t *Ticket) Expire(r ExpiryRules, now time.Time) (ExpiryReason, error) {
	reason := t.ExpiryDue(r, now)
	if reason == ExpiryNotNeeded {
		return ExpiryNotNeeded, nil
	}
	if _, err := t.Cancel(now); err != nil {
		return ExpiryNotNeeded, err
	}
	return reason, nil
}

// AutoComplete finishes a serving ticket once avgMinutes have passed since serving started.
// It reports whether the status changed.
func (t *Ticket) AutoComplete(avgMinutes int, now time.Time) (bool, error) {
	if t.status != StatusServing || t.servingStartedAt == nil {
		return false, nil
	}
	if now.Sub(*t.servingStartedAt) < time.Duration(avgMinutes)*time.Minute {
		return false, nil
	}
	if err := t.Complete(now); err != nil {
		return false, err
	}
	return true, nil
}

func (t *Ticket) Rate(email string, rating int, comment string, now time.Time) error {
	if !t.customer.Matches(email) {
		return ErrNotOwner
	}
	if t.status != StatusCompleted {
		return feedback.ErrNotRateable
	}
	if t.feedback != nil {
		return feedback.ErrAlreadyReviewed
	}
	fb, err := feedback.New(rating, comment)
	if err != nil {
		return err
	}
	t.feedback = &fb
	t.updatedAt = now
	return nil
}
