//go:build unit

package claim_test

import (
	"testing"
	"time"

	"queue-engine/internal/domain/appointment"
	"queue-engine/internal/domain/claim"
	"queue-engine/internal/domain/ticket"

	"github.com/stretchr/testify/assert"
)

func TestGuard_CheckAppointment(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	guard := claim.NewGuard(20 * time.Minute)

	testCases := []struct {
		name     string
		existing []claim.ExistingAppointment
		errIs    error
	}{
		{name: "no prior bookings"},
		{
			name:     "created 19 minutes ago",
			existing: []claim.ExistingAppointment{{Status: appointment.StatusScheduled, CreatedAt: now.Add(-19 * time.Minute)}},
			errIs:    claim.ErrDuplicate,
		},
		{
			name:     "created exactly 20 minutes ago",
			existing: []claim.ExistingAppointment{{Status: appointment.StatusConfirmed, CreatedAt: now.Add(-20 * time.Minute)}},
			errIs:    claim.ErrDuplicate,
		},
		{
			name:     "created 21 minutes ago",
			existing: []claim.ExistingAppointment{{Status: appointment.StatusScheduled, CreatedAt: now.Add(-21 * time.Minute)}},
		},
		{
			name:     "recent but cancelled",
			existing: []claim.ExistingAppointment{{Status: appointment.StatusCancelled, CreatedAt: now.Add(-time.Minute)}},
		},
		{
			name:     "recent and in service",
			existing: []claim.ExistingAppointment{{Status: appointment.StatusInService, CreatedAt: now.Add(-time.Minute)}},
			errIs:    claim.ErrDuplicate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := guard.CheckAppointment(tc.existing, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// The cooldown looks at when the booking was made, not when it takes place,
// so an older booking for tomorrow does not block a new one.
func TestGuard_CheckAppointment_KeyedOnCreationTime(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	guard := claim.NewGuard(0)

	assert.Equal(t, claim.DefaultCooldown, guard.Cooldown())
	assert.Equal(t, now.Add(-20*time.Minute), guard.Since(now))

	existing := []claim.ExistingAppointment{{Status: appointment.StatusScheduled, CreatedAt: now.Add(-2 * time.Hour)}}
	assert.NoError(t, guard.CheckAppointment(existing, now))
}

func TestGuard_CheckTicket(t *testing.T) {
	guard := claim.NewGuard(0)

	testCases := []struct {
		name     string
		existing []ticket.Status
		errIs    error
	}{
		{name: "none"},
		{name: "only finished tickets", existing: []ticket.Status{ticket.StatusCompleted, ticket.StatusCancelled}},
		{name: "waiting", existing: []ticket.Status{ticket.StatusWaiting}, errIs: claim.ErrDuplicate},
		{name: "called", existing: []ticket.Status{ticket.StatusCancelled, ticket.StatusCalled}, errIs: claim.ErrDuplicate},
		{name: "serving", existing: []ticket.Status{ticket.StatusServing}, errIs: claim.ErrDuplicate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := guard.CheckTicket(tc.existing)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
