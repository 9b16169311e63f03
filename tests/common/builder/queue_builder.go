//go:build unit || e2e

package builder

import (
	"time"

	"queue-engine/internal/domain/queue"
	"queue-engine/internal/domain/schedule"

	"github.com/google/uuid"
)

type QueueBuilder struct {
	ID            uuid.UUID
	BusinessID    uuid.UUID
	Name          string
	Status        queue.Status
	CurrentNumber int
	LastIssued    int
	Settings      queue.Settings
	WorkingHours  map[string]schedule.RawDay
	OperatingDate schedule.Date
	IsActive      bool
}

// NewQueueBuilder defaults to an open queue working every day 08:00-20:00.
func NewQueueBuilder() *QueueBuilder {
	hours := make(map[string]schedule.RawDay, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		hours[schedule.WeekdayName(d)] = schedule.RawDay{Enabled: true, Start: "08:00", End: "20:00"}
	}
	return &QueueBuilder{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		Name:       "Front desk",
		Status:     queue.StatusOpen,
		Settings: queue.Settings{
			AverageServiceTime: 10,
			Tolerance:          15,
			MaxCapacity:        100,
			AdvanceNotice:      2,
		},
		WorkingHours:  hours,
		OperatingDate: schedule.DateOf(time.Now()),
		IsActive:      true,
	}
}

func (q *QueueBuilder) With(mutate func(*QueueBuilder)) *QueueBuilder {
	mutate(q)
	return q
}

// WithEveryDay uses the same hours on every day of the week.
func (q *QueueBuilder) WithEveryDay(day schedule.RawDay) *QueueBuilder {
	for d := time.Sunday; d <= time.Saturday; d++ {
		q.WorkingHours[schedule.WeekdayName(d)] = day
	}
	return q
}

func (q *QueueBuilder) WithCounters(current, lastIssued int) *QueueBuilder {
	q.CurrentNumber = current
	q.LastIssued = lastIssued
	return q
}

// Build methods
func (q *QueueBuilder) BuildDomain() *queue.Queue {
	now := time.Now()
	return queue.Reconstruct(
		q.ID, q.BusinessID, q.Name, q.Status,
		q.CurrentNumber, q.LastIssued, q.Settings,
		schedule.Normalize(schedule.RawConfig{WorkingHours: q.WorkingHours}),
		q.OperatingDate, q.IsActive,
		now, now,
	)
}
