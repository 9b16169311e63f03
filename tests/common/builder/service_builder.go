//go:build unit || e2e

package builder

import (
	"time"

	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/service"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	Name         string
	Duration     int
	Buffer       int
	Tolerance    int
	Schedule     schedule.RawConfig
	BlockedDates []string
	IsActive     bool
}

// NewServiceBuilder defaults to a weekday 09:00-18:00 schedule with a lunch break.
func NewServiceBuilder() *ServiceBuilder {
	weekday := schedule.RawDay{Enabled: true, Start: "09:00", End: "18:00", BreakStart: "12:00", BreakEnd: "13:00"}
	return &ServiceBuilder{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		Name:       "Haircut",
		Duration:   30,
		Buffer:     0,
		Tolerance:  15,
		Schedule: schedule.RawConfig{
			WorkingHours: map[string]schedule.RawDay{
				"monday":    weekday,
				"tuesday":   weekday,
				"wednesday": weekday,
				"thursday":  weekday,
				"friday":    weekday,
				"saturday":  {Enabled: false},
			},
		},
		IsActive: true,
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

func (s *ServiceBuilder) WithSchedule(raw schedule.RawConfig) *ServiceBuilder {
	s.Schedule = raw
	return s
}

// Build methods
func (s *ServiceBuilder) BuildDomain() *service.Service {
	now := time.Now()
	return service.Reconstruct(
		s.ID, s.BusinessID, s.Name,
		s.Duration, s.Buffer, s.Tolerance,
		s.Schedule, s.BlockedDates, s.IsActive,
		now, now,
	)
}
