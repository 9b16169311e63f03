package service

import (
	"errors"
	"time"

	"queue-engine/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInactive        = errors.New("service is not active")
	ErrDayUnavailable  = errors.New("service is not available on this date")
	ErrSlotUnavailable = errors.New("requested time slot is not available")
)

const DefaultTolerance = 15

// Booking is an active appointment occupying part of a day.
type Booking struct {
	Start    schedule.ClockTime
	Duration int
	Buffer   int
}

func (b Booking) occupied() schedule.Occupied {
	return schedule.Occupied{Start: b.Start, Width: b.Duration + b.Buffer}
}

type Service struct {
	id           uuid.UUID
	businessID   uuid.UUID
	name         string
	duration     int
	buffer       int
	tolerance    int
	weekly       schedule.WeeklySchedule
	startTime    string
	endTime      string
	blockedDates map[string]struct{}
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// Reconstruct rebuilds a Service from its stored form. The raw schedule is normalized here.
// A non-positive duration is kept as stored; Slots rejects it with schedule.ErrInvalidDuration.
func Reconstruct(
	id, businessID uuid.UUID,
	name string,
	duration, buffer, tolerance int,
	raw schedule.RawConfig,
	blockedDates []string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Service {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	blocked := make(map[string]struct{}, len(blockedDates))
	for _, d := range blockedDates {
		blocked[d] = struct{}{}
	}
	return &Service{
		id:           id,
		businessID:   businessID,
		name:         name,
		duration:     duration,
		buffer:       buffer,
		tolerance:    tolerance,
		weekly:       schedule.Normalize(raw),
		startTime:    raw.StartTime,
		endTime:      raw.EndTime,
		blockedDates: blocked,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (s *Service) ID() uuid.UUID                     { return s.id }
func (s *Service) BusinessID() uuid.UUID             { return s.businessID }
func (s *Service) Name() string                      { return s.name }
func (s *Service) Duration() int                     { return s.duration }
func (s *Service) Buffer() int                       { return s.buffer }
func (s *Service) Tolerance() int                    { return s.tolerance }
func (s *Service) Schedule() schedule.WeeklySchedule { return s.weekly }
func (s *Service) IsActive() bool                    { return s.isActive }
func (s *Service) CreatedAt() time.Time              { return s.createdAt }
func (s *Service) UpdatedAt() time.Time              { return s.updatedAt }

func (s *Service) IsBlocked(date schedule.Date) bool {
	_, ok := s.blockedDates[date.String()]
	return ok
}

// IsDayAvailable reports whether the date can be booked at all.
// Blocked dates always lose; without any weekly schedule every other day is open.
func (s *Service) IsDayAvailable(date schedule.Date) bool {
	if s.IsBlocked(date) {
		return false
	}
	if !s.weekly.Defined() {
		return true
	}
	day, ok := s.weekly.Day(date.Weekday())
	return ok && day.Enabled
}

// DayFor resolves the hours that apply on date, falling back to the global start/end.
func (s *Service) DayFor(date schedule.Date) (schedule.Day, bool) {
	if !s.weekly.Defined() {
		return schedule.FallbackDay(s.startTime, s.endTime), true
	}
	return s.weekly.Day(date.Weekday())
}

// Slots lists candidate start times on date. An unavailable day yields an empty list.
func (s *Service) Slots(date schedule.Date, booked []Booking) ([]schedule.Slot, error) {
	if !s.IsDayAvailable(date) {
		return []schedule.Slot{}, nil
	}
	day, ok := s.DayFor(date)
	if !ok {
		return []schedule.Slot{}, nil
	}
	occupied := make([]schedule.Occupied, len(booked))
	for i, b := range booked {
		occupied[i] = b.occupied()
	}
	return schedule.GenerateSlots(day, s.duration, s.buffer, occupied)
}

// CheckSlot verifies that at is one of the generated slots for date and is still free.
func (s *Service) CheckSlot(date schedule.Date, at schedule.ClockTime, booked []Booking) error {
	if !s.isActive {
		return ErrInactive
	}
	if !s.IsDayAvailable(date) {
		return ErrDayUnavailable
	}
	slots, err := s.Slots(date, booked)
	if err != nil {
		return err
	}
	for _, slot := range slots {
		if slot.Time == at {
			if !slot.Available {
				return ErrSlotUnavailable
			}
			return nil
		}
	}
	return ErrSlotUnavailable
}
