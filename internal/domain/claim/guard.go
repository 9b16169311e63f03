package claim

import (
	"errors"
	"time"

	"queue-engine/internal/domain/appointment"
	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/ticket"
)

var ErrDuplicate = errors.New("customer already holds an active claim")

const DefaultCooldown = 20 * time.Minute

// ExistingAppointment is a prior booking by the same customer for the same business and service.
type ExistingAppointment struct {
	Status    appointment.Status
	CreatedAt time.Time
}

// Guard rejects repeated claims by the same customer.
type Guard struct {
	cooldown time.Duration
}

func NewGuard(cooldown time.Duration) Guard {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return Guard{cooldown: cooldown}
}

func (g Guard) Cooldown() time.Duration { return g.cooldown }

// Since is the earliest creation time that still counts against a new booking.
func (g Guard) Since(now time.Time) time.Time {
	return now.Add(-g.cooldown)
}

// CheckAppointment blocks when an active booking was created within the cooldown window.
// The window is keyed on creation time, so distinct future bookings made later are allowed.
func (g Guard) CheckAppointment(existing []ExistingAppointment, now time.Time) error {
	windowStart := g.Since(now)
	for _, e := range existing {
		if !e.Status.IsActive() {
			continue
		}
		if schedule.TimesOverlap(windowStart, g.cooldown+time.Nanosecond, e.CreatedAt, time.Nanosecond) {
			return ErrDuplicate
		}
	}
	return nil
}

// CheckTicket blocks when any ticket on the queue is still active.
func (g Guard) CheckTicket(existing []ticket.Status) error {
	for _, s := range existing {
		if s.IsActive() {
			return ErrDuplicate
		}
	}
	return nil
}
