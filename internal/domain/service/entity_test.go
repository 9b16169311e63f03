//go:build unit

package service_test

import (
	"testing"

	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/service"
	"queue-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-03-10 is a Monday.
var (
	monday   = schedule.MustDate("2025-03-10")
	saturday = schedule.MustDate("2025-03-15")
	sunday   = schedule.MustDate("2025-03-16")
)

func TestService_IsDayAvailable(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*builder.ServiceBuilder)
		date   schedule.Date
		want   bool
	}{
		{name: "enabled weekday", date: monday, want: true},
		{name: "disabled weekday", date: saturday, want: false},
		{name: "weekday without entry", date: sunday, want: false},
		{
			name:   "blocked date beats enabled weekday",
			mutate: func(b *builder.ServiceBuilder) { b.BlockedDates = []string{"2025-03-10"} },
			date:   monday,
			want:   false,
		},
		{
			name:   "no schedule means always open",
			mutate: func(b *builder.ServiceBuilder) { b.Schedule = schedule.RawConfig{} },
			date:   sunday,
			want:   true,
		},
		{
			name: "blocked date without schedule",
			mutate: func(b *builder.ServiceBuilder) {
				b.Schedule = schedule.RawConfig{}
				b.BlockedDates = []string{"2025-03-16"}
			},
			date: sunday,
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewServiceBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			assert.Equal(t, tc.want, b.BuildDomain().IsDayAvailable(tc.date))
		})
	}
}

func TestService_BlockedDatesAcrossWeekdays(t *testing.T) {
	b := builder.NewServiceBuilder()
	var blocked []schedule.Date
	for i := 0; i < 7; i++ {
		d := monday.AddDays(i)
		blocked = append(blocked, d)
		b.BlockedDates = append(b.BlockedDates, d.String())
	}
	svc := b.BuildDomain()

	for _, d := range blocked {
		assert.False(t, svc.IsDayAvailable(d), d.String())
	}
}

func TestService_Slots(t *testing.T) {
	t.Run("lunch break removes slots", func(t *testing.T) {
		svc := builder.NewServiceBuilder().BuildDomain()

		slots, err := svc.Slots(monday, nil)
		require.NoError(t, err)

		assert.Len(t, slots, 16)
		for _, s := range slots {
			assert.False(t, s.Time >= schedule.MustClockTime("12:00") && s.Time < schedule.MustClockTime("13:00"))
		}
	})

	t.Run("fallback hours without schedule", func(t *testing.T) {
		svc := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) {
			b.Schedule = schedule.RawConfig{StartTime: "10:00", EndTime: "11:00"}
			b.Duration = 20
		}).BuildDomain()

		slots, err := svc.Slots(sunday, nil)
		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, "10:00", slots[0].Time.String())
		assert.Equal(t, "10:40", slots[2].Time.String())
	})

	t.Run("unavailable day yields empty list", func(t *testing.T) {
		svc := builder.NewServiceBuilder().BuildDomain()

		slots, err := svc.Slots(saturday, nil)
		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("booked appointments mark slots unavailable", func(t *testing.T) {
		svc := builder.NewServiceBuilder().BuildDomain()

		slots, err := svc.Slots(monday, []service.Booking{{Start: schedule.MustClockTime("09:00"), Duration: 30}})
		require.NoError(t, err)
		assert.False(t, slots[0].Available)
		assert.True(t, slots[1].Available)
	})

	t.Run("non-positive duration is an error", func(t *testing.T) {
		svc := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) { b.Duration = -10 }).BuildDomain()

		_, err := svc.Slots(monday, nil)
		assert.ErrorIs(t, err, schedule.ErrInvalidDuration)
	})
}

func TestService_CheckSlot(t *testing.T) {
	booked := []service.Booking{{Start: schedule.MustClockTime("09:00"), Duration: 30}}

	testCases := []struct {
		name   string
		mutate func(*builder.ServiceBuilder)
		date   schedule.Date
		at     string
		errIs  error
	}{
		{name: "free slot", date: monday, at: "09:30"},
		{name: "overlapping slot", date: monday, at: "09:00", errIs: service.ErrSlotUnavailable},
		{name: "off-grid time", date: monday, at: "09:15", errIs: service.ErrSlotUnavailable},
		{name: "inside break", date: monday, at: "12:30", errIs: service.ErrSlotUnavailable},
		{name: "closed day", date: saturday, at: "10:00", errIs: service.ErrDayUnavailable},
		{
			name:   "inactive service",
			mutate: func(b *builder.ServiceBuilder) { b.IsActive = false },
			date:   monday,
			at:     "10:00",
			errIs:  service.ErrInactive,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewServiceBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			err := b.BuildDomain().CheckSlot(tc.date, schedule.MustClockTime(tc.at), booked)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_Defaults(t *testing.T) {
	svc := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) {
		b.Tolerance = 0
	}).BuildDomain()

	assert.Equal(t, service.DefaultTolerance, svc.Tolerance())
}

func TestService_Slots_ZeroDuration(t *testing.T) {
	svc := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) {
		b.Duration = 0
		b.Buffer = 0
	}).BuildDomain()

	assert.Equal(t, 0, svc.Duration())
	_, err := svc.Slots(monday, nil)
	assert.ErrorIs(t, err, schedule.ErrInvalidDuration)
}
