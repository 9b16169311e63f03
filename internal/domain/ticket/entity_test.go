//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"queue-engine/internal/domain/customer"
	"queue-engine/internal/domain/feedback"
	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/ticket"
	"queue-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	t.Run("starts waiting", func(t *testing.T) {
		tk, err := ticket.New(builder.NewTicketBuilder().With(func(b *builder.TicketBuilder) { b.Number = 6 }).BuildIssueParams(), now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, tk.ID())
		assert.Equal(t, 6, tk.Number())
		assert.Equal(t, ticket.StatusWaiting, tk.Status())
		assert.Equal(t, now, tk.CreatedAt())
		assert.Nil(t, tk.CalledAt())
	})

	t.Run("validation", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(*builder.TicketBuilder)
			errIs  error
		}{
			{name: "zero number", mutate: func(b *builder.TicketBuilder) { b.Number = 0 }, errIs: ticket.ErrInvalidNumber},
			{name: "missing contact", mutate: func(b *builder.TicketBuilder) { b.Customer = customer.Contact{} }, errIs: customer.ErrNameRequired},
			{name: "manual ticket without email", mutate: func(b *builder.TicketBuilder) {
				b.IsManual = true
				b.Customer = customer.ReconstructContact("Walk-in", "", "")
			}},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ticket.New(builder.NewTicketBuilder().With(tc.mutate).BuildIssueParams(), now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})
}

func TestTicket_Lifecycle(t *testing.T) {
	tk := builder.NewTicketBuilder().BuildDomain()

	require.NoError(t, tk.Call(now))
	assert.Equal(t, ticket.StatusCalled, tk.Status())
	require.NotNil(t, tk.CalledAt())
	assert.Equal(t, now, *tk.CalledAt())

	require.NoError(t, tk.StartServing(now.Add(time.Minute)))
	assert.Equal(t, ticket.StatusServing, tk.Status())
	require.NotNil(t, tk.ServingStartedAt())

	require.NoError(t, tk.Complete(now.Add(10*time.Minute)))
	assert.Equal(t, ticket.StatusCompleted, tk.Status())
	require.NotNil(t, tk.CompletedAt())
	assert.True(t, tk.Status().IsTerminal())
}

func TestTicket_InvalidTransitions(t *testing.T) {
	testCases := []struct {
		name string
		from ticket.Status
		act  func(*ticket.Ticket) error
	}{
		{name: "serve a waiting ticket", from: ticket.StatusWaiting, act: func(tk *ticket.Ticket) error { return tk.StartServing(now) }},
		{name: "complete a called ticket", from: ticket.StatusCalled, act: func(tk *ticket.Ticket) error { return tk.Complete(now) }},
		{name: "call a serving ticket", from: ticket.StatusServing, act: func(tk *ticket.Ticket) error { return tk.Call(now) }},
		{name: "cancel a serving ticket", from: ticket.StatusServing, act: func(tk *ticket.Ticket) error {
			_, err := tk.Cancel(now)
			return err
		}},
		{name: "cancel a completed ticket", from: ticket.StatusCompleted, act: func(tk *ticket.Ticket) error {
			_, err := tk.Cancel(now)
			return err
		}},
		{name: "call a cancelled ticket", from: ticket.StatusCancelled, act: func(tk *ticket.Ticket) error { return tk.Call(now) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tk := builder.NewTicketBuilder().WithStatus(tc.from).BuildDomain()
			assert.ErrorIs(t, tc.act(tk), ticket.ErrInvalidTransition)
			assert.Equal(t, tc.from, tk.Status())
		})
	}
}

func TestTicket_Cancel(t *testing.T) {
	t.Run("waiting and called can be cancelled", func(t *testing.T) {
		for _, from := range []ticket.Status{ticket.StatusWaiting, ticket.StatusCalled} {
			tk := builder.NewTicketBuilder().WithStatus(from).BuildDomain()
			changed, err := tk.Cancel(now)
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, ticket.StatusCancelled, tk.Status())
		}
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		tk := builder.NewTicketBuilder().WithStatus(ticket.StatusCancelled).BuildDomain()
		changed, err := tk.Cancel(now)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("customer cancel requires matching email", func(t *testing.T) {
		tk := builder.NewTicketBuilder().BuildDomain()

		_, err := tk.CancelBy("someone@example.com", now)
		assert.ErrorIs(t, err, ticket.ErrNotOwner)

		changed, err := tk.CancelBy(" ANA@example.com ", now)
		require.NoError(t, err)
		assert.True(t, changed)
	})
}

func TestTicket_Expire(t *testing.T) {
	calledAt := now.Add(-16 * time.Minute)

	testCases := []struct {
		name          string
		build         *builder.TicketBuilder
		currentNumber int
		want          ticket.ExpiryReason
		wantStatus    ticket.Status
	}{
		{
			name:          "skipped waiting ticket",
			build:         builder.NewTicketBuilder().With(func(b *builder.TicketBuilder) { b.Number = 3 }),
			currentNumber: 4,
			want:          ticket.ExpirySkipped,
			wantStatus:    ticket.StatusCancelled,
		},
		{
			name:          "waiting ticket at current number",
			build:         builder.NewTicketBuilder().With(func(b *builder.TicketBuilder) { b.Number = 4 }),
			currentNumber: 4,
			want:          ticket.ExpiryNotNeeded,
			wantStatus:    ticket.StatusWaiting,
		},
		{
			name:          "called past tolerance",
			build:         builder.NewTicketBuilder().WithCalledAt(calledAt),
			currentNumber: 1,
			want:          ticket.ExpiryNoShow,
			wantStatus:    ticket.StatusCancelled,
		},
		{
			name:          "called exactly at tolerance",
			build:         builder.NewTicketBuilder().WithCalledAt(now.Add(-15 * time.Minute)),
			currentNumber: 1,
			want:          ticket.ExpiryNotNeeded,
			wantStatus:    ticket.StatusCalled,
		},
		{
			name:          "serving ticket never expires",
			build:         builder.NewTicketBuilder().WithStatus(ticket.StatusServing),
			currentNumber: 9,
			want:          ticket.ExpiryNotNeeded,
			wantStatus:    ticket.StatusServing,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tk := tc.build.BuildDomain()

			reason, err := tk.Expire(ticket.ExpiryRules{
				OperatingDate:    tk.OperatingDate(),
				CurrentNumber:    tc.currentNumber,
				ToleranceMinutes: 15,
			}, now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, reason)
			assert.Equal(t, tc.wantStatus, tk.Status())
		})
	}

	t.Run("second pass is a no-op", func(t *testing.T) {
		tk := builder.NewTicketBuilder().WithCalledAt(calledAt).BuildDomain()

		rules := ticket.ExpiryRules{OperatingDate: tk.OperatingDate(), CurrentNumber: 1, ToleranceMinutes: 15}
		first, err := tk.Expire(rules, now)
		require.NoError(t, err)
		assert.Equal(t, ticket.ExpiryNoShow, first)

		second, err := tk.Expire(rules, now.Add(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, ticket.ExpiryNotNeeded, second)
		assert.Equal(t, ticket.StatusCancelled, tk.Status())
	})
}

func TestTicket_Expire_EarlierOperatingDay(t *testing.T) {
	yesterday := schedule.DateOf(now).AddDays(-1)
	rules := ticket.ExpiryRules{OperatingDate: schedule.DateOf(now), CurrentNumber: 0, ToleranceMinutes: 15}

	t.Run("waiting ticket from an ended day is cancelled", func(t *testing.T) {
		tk := builder.NewTicketBuilder().With(func(b *builder.TicketBuilder) {
			b.OperatingDate = yesterday
			b.Number = 40
		}).BuildDomain()

		reason, err := tk.Expire(rules, now)
		require.NoError(t, err)
		assert.Equal(t, ticket.ExpiryDayEnded, reason)
		assert.Equal(t, ticket.StatusCancelled, tk.Status())
	})

	t.Run("called ticket from an ended day follows the tolerance", func(t *testing.T) {
		tk := builder.NewTicketBuilder().WithCalledAt(now.Add(-10 * time.Hour)).With(func(b *builder.TicketBuilder) {
			b.OperatingDate = yesterday
		}).BuildDomain()

		reason, err := tk.Expire(rules, now)
		require.NoError(t, err)
		assert.Equal(t, ticket.ExpiryNoShow, reason)
		assert.Equal(t, ticket.StatusCancelled, tk.Status())
	})
}

func TestTicket_AutoComplete(t *testing.T) {
	testCases := []struct {
		name        string
		build       *builder.TicketBuilder
		wantChanged bool
		wantStatus  ticket.Status
	}{
		{
			name:        "serving longer than the average",
			build:       builder.NewTicketBuilder().WithServingStartedAt(now.Add(-10 * time.Minute)),
			wantChanged: true,
			wantStatus:  ticket.StatusCompleted,
		},
		{
			name:        "serving shorter than the average",
			build:       builder.NewTicketBuilder().WithServingStartedAt(now.Add(-9 * time.Minute)),
			wantChanged: false,
			wantStatus:  ticket.StatusServing,
		},
		{
			name:        "serving without a start time",
			build:       builder.NewTicketBuilder().WithStatus(ticket.StatusServing),
			wantChanged: false,
			wantStatus:  ticket.StatusServing,
		},
		{
			name:        "called ticket is left alone",
			build:       builder.NewTicketBuilder().WithCalledAt(now.Add(-time.Hour)),
			wantChanged: false,
			wantStatus:  ticket.StatusCalled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tk := tc.build.BuildDomain()

			changed, err := tk.AutoComplete(10, now)
			require.NoError(t, err)
			assert.Equal(t, tc.wantChanged, changed)
			assert.Equal(t, tc.wantStatus, tk.Status())
			if tc.wantChanged {
				require.NotNil(t, tk.CompletedAt())
				assert.Equal(t, now, *tk.CompletedAt())
			}
		})
	}
}

func TestTicket_Rate(t *testing.T) {
	t.Run("completed ticket can be rated once", func(t *testing.T) {
		tk := builder.NewTicketBuilder().WithStatus(ticket.StatusCompleted).BuildDomain()

		require.NoError(t, tk.Rate("ana@example.com", 5, "great", now))
		require.NotNil(t, tk.Feedback())
		assert.Equal(t, 5, tk.Feedback().Rating().Value())

		assert.ErrorIs(t, tk.Rate("ana@example.com", 4, "", now), feedback.ErrAlreadyReviewed)
	})

	t.Run("not completed", func(t *testing.T) {
		tk := builder.NewTicketBuilder().WithStatus(ticket.StatusServing).BuildDomain()
		assert.ErrorIs(t, tk.Rate("ana@example.com", 5, "", now), feedback.ErrNotRateable)
	})

	t.Run("wrong customer", func(t *testing.T) {
		tk := builder.NewTicketBuilder().WithStatus(ticket.StatusCompleted).BuildDomain()
		assert.ErrorIs(t, tk.Rate("bob@example.com", 5, "", now), ticket.ErrNotOwner)
	})

	t.Run("out of range", func(t *testing.T) {
		tk := builder.NewTicketBuilder().WithStatus(ticket.StatusCompleted).BuildDomain()
		assert.ErrorIs(t, tk.Rate("ana@example.com", 6, "", now), feedback.ErrInvalidRating)
		assert.Nil(t, tk.Feedback())
	})
}
