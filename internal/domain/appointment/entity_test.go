//go:build unit

package appointment_test

import (
	"strings"
	"testing"
	"time"

	"queue-engine/internal/domain/appointment"
	"queue-engine/internal/domain/customer"
	"queue-engine/internal/domain/feedback"
	"queue-engine/internal/domain/schedule"
	"queue-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)

type testCase struct {
	name   string
	mutate func(*builder.AppointmentBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewAppointmentBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			actual, err := appointment.Book(b.BuildBookParams(), b.Token, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}

func TestBook(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewAppointmentBuilder()
		actual, err := appointment.Book(b.BuildBookParams(), b.Token, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, appointment.StatusScheduled, actual.Status())
		assert.Equal(t, "09:30", actual.StartTime().String())
		assert.Equal(t, b.Token, actual.Token())
		assert.Equal(t, now, actual.CreatedAt())
		assert.Equal(t, time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC), actual.StartsAt(time.UTC))
	})

	runCases(t, []testCase{
		{name: "missing customer", mutate: func(b *builder.AppointmentBuilder) { b.CustomerName = "" }, errIs: customer.ErrNameRequired},
		{name: "missing email", mutate: func(b *builder.AppointmentBuilder) { b.CustomerEmail = "" }, errIs: customer.ErrInvalidEmail},
		{name: "missing date", mutate: func(b *builder.AppointmentBuilder) { b.Date = schedule.Date{} }, errIs: appointment.ErrDateRequired},
		{name: "zero duration", mutate: func(b *builder.AppointmentBuilder) { b.Duration = 0 }, errIs: schedule.ErrInvalidDuration},
		{name: "missing token", mutate: func(b *builder.AppointmentBuilder) { b.Token = "" }, errIs: appointment.ErrTokenRequired},
		{name: "note too long", mutate: func(b *builder.AppointmentBuilder) {
			b.Note = strings.Repeat("n", appointment.MaxNoteLength+1)
		}, errIs: appointment.ErrNoteTooLong},
		{name: "note at limit", mutate: func(b *builder.AppointmentBuilder) {
			b.Note = strings.Repeat("n", appointment.MaxNoteLength)
		}},
	})
}

func TestAppointment_Apply(t *testing.T) {
	testCases := []struct {
		from    appointment.Status
		action  appointment.Action
		to      appointment.Status
		wantErr error
	}{
		{from: appointment.StatusScheduled, action: appointment.ActionConfirm, to: appointment.StatusConfirmed},
		{from: appointment.StatusScheduled, action: appointment.ActionCancel, to: appointment.StatusCancelled},
		{from: appointment.StatusConfirmed, action: appointment.ActionStart, to: appointment.StatusInService},
		{from: appointment.StatusConfirmed, action: appointment.ActionNoShow, to: appointment.StatusNoShow},
		{from: appointment.StatusConfirmed, action: appointment.ActionCancel, to: appointment.StatusCancelled},
		{from: appointment.StatusInService, action: appointment.ActionComplete, to: appointment.StatusCompleted},
		{from: appointment.StatusScheduled, action: appointment.ActionStart, wantErr: appointment.ErrInvalidTransition},
		{from: appointment.StatusScheduled, action: appointment.ActionNoShow, wantErr: appointment.ErrInvalidTransition},
		{from: appointment.StatusInService, action: appointment.ActionCancel, wantErr: appointment.ErrInvalidTransition},
		{from: appointment.StatusCompleted, action: appointment.ActionCancel, wantErr: appointment.ErrInvalidTransition},
		{from: appointment.StatusNoShow, action: appointment.ActionConfirm, wantErr: appointment.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+" "+string(tc.action), func(t *testing.T) {
			a := builder.NewAppointmentBuilder().WithStatus(tc.from).BuildDomain()

			changed, err := a.Apply(tc.action, "", now)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.False(t, changed)
				assert.Equal(t, tc.from, a.Status())
				return
			}
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, tc.to, a.Status())
		})
	}

	t.Run("business response is recorded", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().BuildDomain()

		_, err := a.Apply(appointment.ActionConfirm, "  See you soon  ", now)
		require.NoError(t, err)
		assert.Equal(t, "See you soon", a.BusinessResponse())
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().WithStatus(appointment.StatusCancelled).BuildDomain()

		changed, err := a.Cancel(now)
		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestParseAction(t *testing.T) {
	a, err := appointment.ParseAction("no-show")
	require.NoError(t, err)
	assert.Equal(t, appointment.ActionNoShow, a)

	_, err = appointment.ParseAction("reschedule")
	assert.ErrorIs(t, err, appointment.ErrUnknownAction)
}

func TestAppointment_Rate(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().WithStatus(appointment.StatusCompleted).BuildDomain()

		require.NoError(t, a.Rate(4, "good", now))
		assert.Equal(t, 4, a.Feedback().Rating().Value())
		assert.ErrorIs(t, a.Rate(5, "", now), feedback.ErrAlreadyReviewed)
	})

	t.Run("not completed", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().WithStatus(appointment.StatusConfirmed).BuildDomain()
		assert.ErrorIs(t, a.Rate(4, "", now), feedback.ErrNotRateable)
	})
}

func TestNewManagementToken(t *testing.T) {
	first, err := appointment.NewManagementToken()
	require.NoError(t, err)
	second, err := appointment.NewManagementToken()
	require.NoError(t, err)

	assert.Len(t, first.String(), 43)
	assert.NotEqual(t, first, second)
	assert.NotContains(t, first.String(), "+")
	assert.NotContains(t, first.String(), "/")
}
