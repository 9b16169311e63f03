package queue

import (
	"errors"
	"time"

	"queue-engine/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid queue status")
	ErrInactive         = errors.New("queue is not active")
	ErrNotOpen          = errors.New("queue is not open")
	ErrNoWaitingTickets = errors.New("no waiting tickets")
)

const (
	DefaultAverageServiceTime = 10
	DefaultTolerance          = 15
	DefaultMaxCapacity        = 100
	DefaultAdvanceNotice      = 2
)

type Settings struct {
	AverageServiceTime int
	Tolerance          int
	MaxCapacity        int
	AdvanceNotice      int
}

func (s Settings) withDefaults() Settings {
	if s.AverageServiceTime <= 0 {
		s.AverageServiceTime = DefaultAverageServiceTime
	}
	if s.Tolerance <= 0 {
		s.Tolerance = DefaultTolerance
	}
	if s.MaxCapacity <= 0 {
		s.MaxCapacity = DefaultMaxCapacity
	}
	if s.AdvanceNotice <= 0 {
		s.AdvanceNotice = DefaultAdvanceNotice
	}
	return s
}

type Queue struct {
	id            uuid.UUID
	businessID    uuid.UUID
	name          string
	status        Status
	currentNumber int
	lastIssued    int
	settings      Settings
	workingHours  schedule.WeeklySchedule
	operatingDate schedule.Date
	isActive      bool
	createdAt     time.Time
	updatedAt     time.Time
}

func Reconstruct(
	id, businessID uuid.UUID,
	name string,
	status Status,
	currentNumber, lastIssued int,
	settings Settings,
	workingHours schedule.WeeklySchedule,
	operatingDate schedule.Date,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Queue {
	return &Queue{
		id:            id,
		businessID:    businessID,
		name:          name,
		status:        status,
		currentNumber: currentNumber,
		lastIssued:    lastIssued,
		settings:      settings.withDefaults(),
		workingHours:  workingHours,
		operatingDate: operatingDate,
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (q *Queue) ID() uuid.UUID                         { return q.id }
func (q *Queue) BusinessID() uuid.UUID                 { return q.businessID }
func (q *Queue) Name() string                          { return q.name }
func (q *Queue) Status() Status                        { return q.status }
func (q *Queue) CurrentNumber() int                    { return q.currentNumber }
func (q *Queue) LastIssuedNumber() int                 { return q.lastIssued }
func (q *Queue) Settings() Settings                    { return q.settings }
func (q *Queue) WorkingHours() schedule.WeeklySchedule { return q.workingHours }
func (q *Queue) OperatingDate() schedule.Date          { return q.operatingDate }
func (q *Queue) IsActive() bool                        { return q.isActive }
func (q *Queue) CreatedAt() time.Time                  { return q.createdAt }
func (q *Queue) UpdatedAt() time.Time                  { return q.updatedAt }

// Waiting is the number of issued tickets not yet reached by current_number.
func (q *Queue) Waiting() int {
	return q.lastIssued - q.currentNumber
}

// RollOver resets the day-scoped counters when today differs from the operating date.
// It reports whether a reset happened; applying it again on the same day is a no-op.
func (q *Queue) RollOver(today schedule.Date) bool {
	if q.operatingDate.Equal(today) {
		return false
	}
	q.currentNumber = 0
	q.lastIssued = 0
	q.operatingDate = today
	return true
}

// Position is how many calls remain before number is reached.
func (q *Queue) Position(number int) int {
	if p := number - q.currentNumber; p > 0 {
		return p
	}
	return 0
}

func (q *Queue) EstimatedWait(number int) int {
	return q.Position(number) * q.settings.AverageServiceTime
}

// Issue allocates the next ticket number. now must be in the business time zone.
// The caller is expected to hold the queue lock and to have rolled the day over.
func (q *Queue) Issue(now time.Time) (Allocation, error) {
	if err := q.CheckOperating(now); err != nil {
		return Allocation{}, err
	}
	return q.allocate(), nil
}

// IssueManual allocates a number for a staff walk-in without operating checks.
func (q *Queue) IssueManual() Allocation {
	return q.allocate()
}

func (q *Queue) allocate() Allocation {
	number := q.lastIssued + 1
	q.lastIssued = number
	return Allocation{
		Number:               number,
		Position:             q.Position(number),
		EstimatedWaitMinutes: q.EstimatedWait(number),
	}
}

// Advance moves current_number to the next ticket and returns it.
func (q *Queue) Advance() (int, error) {
	if !q.isActive {
		return 0, ErrInactive
	}
	if q.status != StatusOpen {
		return 0, ErrNotOpen
	}
	next := q.currentNumber + 1
	if next > q.lastIssued {
		return 0, ErrNoWaitingTickets
	}
	q.currentNumber = next
	return next, nil
}

// AdvanceNoticeNumber is the ticket to warn once called has been called.
func (q *Queue) AdvanceNoticeNumber(called int) int {
	return called + q.settings.AdvanceNotice
}

func (q *Queue) SetStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	q.status = s
	return nil
}

// ReconcileCounter raises last_issued to the highest persisted ticket number.
// It never lowers the counter.
func (q *Queue) ReconcileCounter(maxIssued int) bool {
	if maxIssued <= q.lastIssued {
		return false
	}
	q.lastIssued = maxIssued
	return true
}
