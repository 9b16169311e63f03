//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"queue-engine/internal/domain/queue"
	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/ticket"
	"queue-engine/internal/infra"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/errs"
	"queue-engine/internal/usecase/commands"
	"queue-engine/internal/usecase/shared"
	"queue-engine/tests/common/builder"
	sharedmock "queue-engine/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Issue Tests
// =============================================================================

func todayQueue() *builder.QueueBuilder {
	return builder.NewQueueBuilder().With(func(b *builder.QueueBuilder) {
		b.OperatingDate = schedule.DateOf(fixedNow)
	})
}

func TestTicketUseCase_Issue(t *testing.T) {
	ctx := context.Background()
	req := commands.IssueTicketRequest{Name: "Ana Souza", Email: "Ana@Example.com", Phone: "+5511999990000"}

	testCases := []struct {
		name          string
		queue         *queue.Queue
		req           commands.IssueTicketRequest
		setupMock     func(*txMocks, *queue.Queue)
		expectedError error
		expectNumber  int
		expectTopics  []string
	}{
		{
			name:  "success: first ticket of the day",
			queue: todayQueue().BuildDomain(),
			req:   req,
			setupMock: func(m *txMocks, q *queue.Queue) {
				m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)
				m.reads.EXPECT().ActiveTicketStatuses(gomock.Any(), q.ID(), "ana@example.com").Return(nil, nil)
				m.tickets.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).Return(nil)
				m.queues.EXPECT().Save(gomock.Any(), m.db, q, gomock.Any()).Return(nil)
				m.captureEvents()
			},
			expectNumber: 1,
			expectTopics: []string{shared.TopicTicketIssued, shared.TopicQueueUpdated},
		},
		{
			name:  "success: counters reset on a new operating day",
			queue: builder.NewQueueBuilder().WithCounters(5, 9).With(func(b *builder.QueueBuilder) { b.OperatingDate = schedule.DateOf(fixedNow).AddDays(-1) }).BuildDomain(),
			req:   req,
			setupMock: func(m *txMocks, q *queue.Queue) {
				m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)
				m.reads.EXPECT().ActiveTicketStatuses(gomock.Any(), q.ID(), gomock.Any()).Return(nil, nil)
				m.tickets.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).Return(nil)
				m.queues.EXPECT().Save(gomock.Any(), m.db, q, gomock.Any()).Return(nil)
				m.captureEvents()
			},
			expectNumber: 1,
			expectTopics: []string{shared.TopicTicketIssued, shared.TopicQueueUpdated},
		},
		{
			name:  "success: earlier tickets of the customer are finished",
			queue: todayQueue().WithCounters(2, 4).BuildDomain(),
			req:   req,
			setupMock: func(m *txMocks, q *queue.Queue) {
				m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)
				m.reads.EXPECT().ActiveTicketStatuses(gomock.Any(), q.ID(), gomock.Any()).
					Return([]ticket.Status{ticket.StatusCompleted, ticket.StatusCancelled}, nil)
				m.tickets.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).Return(nil)
				m.queues.EXPECT().Save(gomock.Any(), m.db, q, gomock.Any()).Return(nil)
				m.captureEvents()
			},
			expectNumber: 5,
			expectTopics: []string{shared.TopicTicketIssued, shared.TopicQueueUpdated},
		},
		{
			name:  "error: customer already holds an active ticket",
			queue: todayQueue().BuildDomain(),
			req:   req,
			setupMock: func(m *txMocks, q *queue.Queue) {
				m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)
				m.reads.EXPECT().ActiveTicketStatuses(gomock.Any(), q.ID(), gomock.Any()).
					Return([]ticket.Status{ticket.StatusCompleted, ticket.StatusWaiting}, nil)
			},
			expectedError: errs.ErrDuplicateClaim,
		},
		{
			name:  "error: queue paused",
			queue: todayQueue().With(func(b *builder.QueueBuilder) { b.Status = queue.StatusPaused }).BuildDomain(),
			req:   req,
			setupMock: func(m *txMocks, q *queue.Queue) {
				m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)
				m.reads.EXPECT().ActiveTicketStatuses(gomock.Any(), q.ID(), gomock.Any()).Return(nil, nil)
			},
			expectedError: errs.ErrQueueNotOperating,
		},
		{
			name: "error: outside working hours",
			queue: todayQueue().WithEveryDay(schedule.RawDay{Enabled: true, Start: "13:00", End: "18:00"}).
				BuildDomain(),
			req: req,
			setupMock: func(m *txMocks, q *queue.Queue) {
				m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)
				m.reads.EXPECT().ActiveTicketStatuses(gomock.Any(), q.ID(), gomock.Any()).Return(nil, nil)
			},
			expectedError: errs.ErrQueueNotOperating,
		},
		{
			name:  "error: queue not found",
			queue: todayQueue().BuildDomain(),
			req:   req,
			setupMock: func(m *txMocks, q *queue.Queue) {
				m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).
					Return(nil, infra.WrapRepoErr("queue not found", pgx.ErrNoRows, infra.KindNotFound))
			},
			expectedError: errs.ErrQueueNotFound,
		},
		{
			name:          "error: invalid email rejected before the transaction",
			queue:         todayQueue().BuildDomain(),
			req:           commands.IssueTicketRequest{Name: "Ana", Email: "not-an-email"},
			setupMock:     func(m *txMocks, q *queue.Queue) {},
			expectedError: errs.ErrDomainValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTxMocks(ctrl)
			tc.setupMock(m, tc.queue)
			uc := commands.NewTicketUseCase(m.uow, m.clock, m.zones, claimGuard())

			result, err := uc.Issue(ctx, tc.queue.ID(), tc.req)

			if tc.expectedError != nil {
				require.Error(t, err)
				assertMarked(t, err, tc.expectedError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectNumber, result.TicketNumber)
			assert.Equal(t, tc.queue.LastIssuedNumber(), result.TicketNumber)
			assert.Equal(t, "2025-03-10", result.OperatingDate)
			assert.Equal(t, tc.expectTopics, m.topics())
		})
	}
}

func TestTicketUseCase_Issue_NotOperatingReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTxMocks(ctrl)
	q := todayQueue().With(func(b *builder.QueueBuilder) { b.Status = queue.StatusClosed }).BuildDomain()
	m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)
	m.reads.EXPECT().ActiveTicketStatuses(gomock.Any(), q.ID(), gomock.Any()).Return(nil, nil)

	uc := commands.NewTicketUseCase(m.uow, m.clock, m.zones, claimGuard())
	_, err := uc.Issue(context.Background(), q.ID(), commands.IssueTicketRequest{Name: "Ana", Email: "ana@example.com"})

	var notOperating *queue.NotOperatingError
	require.True(t, errors.As(err, &notOperating))
	assert.Equal(t, queue.ReasonClosed, notOperating.Reason)
}

func TestTicketUseCase_Issue_EstimatesFromQueueState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTxMocks(ctrl)
	q := todayQueue().WithCounters(3, 6).BuildDomain()
	var created *ticket.Ticket
	m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)
	m.reads.EXPECT().ActiveTicketStatuses(gomock.Any(), q.ID(), gomock.Any()).Return(nil, nil)
	m.tickets.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, tk *ticket.Ticket) error {
			created = tk
			return nil
		})
	m.queues.EXPECT().Save(gomock.Any(), m.db, q, gomock.Any()).Return(nil)
	m.captureEvents()

	uc := commands.NewTicketUseCase(m.uow, m.clock, m.zones, claimGuard())
	result, err := uc.Issue(context.Background(), q.ID(), commands.IssueTicketRequest{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	assert.Equal(t, 7, result.TicketNumber)
	assert.Equal(t, 4, result.Position)
	assert.Equal(t, 40, result.EstimatedWaitMinutes)
	require.NotNil(t, created)
	assert.Equal(t, ticket.StatusWaiting, created.Status())
	assert.False(t, created.IsManual())
}

func TestTicketUseCase_Issue_BusinessTimeZone(t *testing.T) {
	t.Run("success: operating day follows the business zone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		// 23:00 UTC on Monday is 08:00 on Tuesday in Tokyo.
		m.clock.Set(time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC))
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)

		q := todayQueue().WithCounters(5, 9).BuildDomain()
		zones := sharedmock.NewMockZones(ctrl)
		zones.EXPECT().Location(gomock.Any(), q.BusinessID()).Return(tokyo, nil)
		m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)
		m.reads.EXPECT().ActiveTicketStatuses(gomock.Any(), q.ID(), gomock.Any()).Return(nil, nil)
		m.tickets.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).Return(nil)
		m.queues.EXPECT().Save(gomock.Any(), m.db, q, gomock.Any()).Return(nil)
		m.captureEvents()

		uc := commands.NewTicketUseCase(m.uow, m.clock, zones, claimGuard())
		result, err := uc.Issue(context.Background(), q.ID(), commands.IssueTicketRequest{Name: "Ana", Email: "ana@example.com"})

		require.NoError(t, err)
		assert.Equal(t, "2025-03-11", result.OperatingDate)
		assert.Equal(t, 1, result.TicketNumber)
	})

	t.Run("error: zone lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		q := todayQueue().BuildDomain()
		lookupErr := errors.New("connection reset")
		zones := sharedmock.NewMockZones(ctrl)
		zones.EXPECT().Location(gomock.Any(), q.BusinessID()).Return(nil, lookupErr)
		m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)

		uc := commands.NewTicketUseCase(m.uow, m.clock, zones, claimGuard())
		_, err := uc.Issue(context.Background(), q.ID(), commands.IssueTicketRequest{Name: "Ana", Email: "ana@example.com"})

		assert.ErrorIs(t, err, lookupErr)
	})
}

// =============================================================================
// IssueManual Tests
// =============================================================================

func TestTicketUseCase_IssueManual(t *testing.T) {
	t.Run("success: issued while the queue is closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		q := todayQueue().With(func(b *builder.QueueBuilder) { b.Status = queue.StatusClosed }).BuildDomain()
		m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)
		m.tickets.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, tk *ticket.Ticket) error {
				assert.True(t, tk.IsManual())
				assert.True(t, tk.Customer().Email().IsZero())
				return nil
			})
		m.queues.EXPECT().Save(gomock.Any(), m.db, q, gomock.Any()).Return(nil)
		m.captureEvents()

		uc := commands.NewTicketUseCase(m.uow, m.clock, m.zones, claimGuard())
		result, err := uc.IssueManual(context.Background(), memberOf(t, q.BusinessID()), q.ID(), "Walk In")

		require.NoError(t, err)
		assert.Equal(t, 1, result.TicketNumber)
	})

	t.Run("error: queue of another business", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		q := todayQueue().BuildDomain()
		m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)

		uc := commands.NewTicketUseCase(m.uow, m.clock, m.zones, claimGuard())
		_, err := uc.IssueManual(context.Background(), memberOf(t, uuid.New()), q.ID(), "Walk In")

		assertMarked(t, err, errs.ErrForbidden)
	})

	t.Run("error: blank name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		uc := commands.NewTicketUseCase(m.uow, m.clock, m.zones, claimGuard())
		_, err := uc.IssueManual(context.Background(), memberOf(t, uuid.New()), uuid.New(), "   ")

		assertMarked(t, err, errs.ErrDomainValidation)
	})
}

// =============================================================================
// CallNext Tests
// =============================================================================

func openTicket(q *queue.Queue, number int, status ticket.Status) *ticket.Ticket {
	b := builder.NewTicketBuilder().With(func(b *builder.TicketBuilder) {
		b.QueueID = q.ID()
		b.BusinessID = q.BusinessID()
		b.Number = number
		b.OperatingDate = q.OperatingDate()
		b.Status = status
	})
	if status == ticket.StatusCalled {
		b.WithCalledAt(fixedNow.Add(-5 * time.Minute))
	}
	return b.BuildDomain()
}

func TestTicketUseCase_CallNext(t *testing.T) {
	t.Run("success: skips numbers without a waiting ticket and cancels passed tickets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		q := todayQueue().WithCounters(1, 5).BuildDomain()
		first := openTicket(q, 1, ticket.StatusCalled)
		third := openTicket(q, 3, ticket.StatusWaiting)
		fifth := openTicket(q, 5, ticket.StatusWaiting)

		m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)
		m.tickets.EXPECT().LockOpenByQueue(gomock.Any(), m.db, q.ID(), q.OperatingDate()).
			Return([]*ticket.Ticket{first, third, fifth}, nil)
		m.tickets.EXPECT().Update(gomock.Any(), m.db, first).Return(nil)
		m.tickets.EXPECT().Update(gomock.Any(), m.db, third).Return(nil)
		m.queues.EXPECT().Save(gomock.Any(), m.db, q, gomock.Any()).Return(nil)
		m.captureEvents()

		uc := commands.NewTicketUseCase(m.uow, m.clock, m.zones, claimGuard())
		result, err := uc.CallNext(context.Background(), memberOf(t, q.BusinessID()), q.ID())

		require.NoError(t, err)
		assert.Equal(t, third.ID(), result.TicketID)
		assert.Equal(t, 3, result.TicketNumber)
		assert.Equal(t, 3, result.CurrentNumber)
		assert.Equal(t, 1, result.Cancelled)

		assert.Equal(t, ticket.StatusCancelled, first.Status())
		assert.Equal(t, ticket.StatusCalled, third.Status())
		assert.Equal(t, ticket.StatusWaiting, fifth.Status())
		assert.Equal(t, []string{
			shared.TopicTicketStatusChanged,
			shared.TopicTicketCalled,
			shared.TopicTicketAdvanceNotice,
			shared.TopicQueueUpdated,
		}, m.topics())
	})

	t.Run("error: nothing left to call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		q := todayQueue().WithCounters(4, 4).BuildDomain()
		m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)
		m.tickets.EXPECT().LockOpenByQueue(gomock.Any(), m.db, q.ID(), q.OperatingDate()).Return(nil, nil)

		uc := commands.NewTicketUseCase(m.uow, m.clock, m.zones, claimGuard())
		_, err := uc.CallNext(context.Background(), memberOf(t, q.BusinessID()), q.ID())

		assertMarked(t, err, errs.ErrNoWaitingTickets)
	})

	t.Run("error: remaining numbers were all cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		q := todayQueue().WithCounters(1, 3).BuildDomain()
		m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)
		m.tickets.EXPECT().LockOpenByQueue(gomock.Any(), m.db, q.ID(), q.OperatingDate()).Return(nil, nil)

		uc := commands.NewTicketUseCase(m.uow, m.clock, m.zones, claimGuard())
		_, err := uc.CallNext(context.Background(), memberOf(t, q.BusinessID()), q.ID())

		assertMarked(t, err, errs.ErrNoWaitingTickets)
	})

	t.Run("error: paused queue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		q := todayQueue().WithCounters(0, 2).With(func(b *builder.QueueBuilder) { b.Status = queue.StatusPaused }).BuildDomain()
		m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil)
		m.tickets.EXPECT().LockOpenByQueue(gomock.Any(), m.db, q.ID(), q.OperatingDate()).Return(nil, nil)

		uc := commands.NewTicketUseCase(m.uow, m.clock, m.zones, claimGuard())
		_, err := uc.CallNext(context.Background(), memberOf(t, q.BusinessID()), q.ID())

		assertMarked(t, err, errs.ErrQueueNotOperating)
	})
}

// =============================================================================
// Status Transition Tests
// =============================================================================

func TestTicketUseCase_StaffTransitions(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		status        ticket.Status
		act           func(commands.TicketCommands, *ticket.Ticket, *testing.T) error
		expectUpdate  bool
		expectStatus  ticket.Status
		expectedError error
	}{
		{
			name:   "success: start serving a called ticket",
			status: ticket.StatusCalled,
			act: func(uc commands.TicketCommands, tk *ticket.Ticket, t *testing.T) error {
				return uc.Start(ctx, memberOf(t, tk.BusinessID()), tk.ID())
			},
			expectUpdate: true,
			expectStatus: ticket.StatusServing,
		},
		{
			name:   "success: complete a serving ticket",
			status: ticket.StatusServing,
			act: func(uc commands.TicketCommands, tk *ticket.Ticket, t *testing.T) error {
				return uc.Complete(ctx, memberOf(t, tk.BusinessID()), tk.ID())
			},
			expectUpdate: true,
			expectStatus: ticket.StatusCompleted,
		},
		{
			name:   "success: cancel an already cancelled ticket is a no-op",
			status: ticket.StatusCancelled,
			act: func(uc commands.TicketCommands, tk *ticket.Ticket, t *testing.T) error {
				return uc.Cancel(ctx, memberOf(t, tk.BusinessID()), tk.ID())
			},
			expectStatus: ticket.StatusCancelled,
		},
		{
			name:   "error: complete a waiting ticket",
			status: ticket.StatusWaiting,
			act: func(uc commands.TicketCommands, tk *ticket.Ticket, t *testing.T) error {
				return uc.Complete(ctx, memberOf(t, tk.BusinessID()), tk.ID())
			},
			expectStatus:  ticket.StatusWaiting,
			expectedError: errs.ErrInvalidTransition,
		},
		{
			name:   "error: ticket of another business",
			status: ticket.StatusCalled,
			act: func(uc commands.TicketCommands, tk *ticket.Ticket, t *testing.T) error {
				return uc.Start(ctx, memberOf(t, uuid.New()), tk.ID())
			},
			expectStatus:  ticket.StatusCalled,
			expectedError: errs.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTxMocks(ctrl)
			tk := builder.NewTicketBuilder().WithStatus(tc.status).BuildDomain()
			m.tickets.EXPECT().LockByID(gomock.Any(), m.db, tk.ID()).Return(tk, nil)
			if tc.expectUpdate {
				m.tickets.EXPECT().Update(gomock.Any(), m.db, tk).Return(nil)
				m.captureEvents()
			}

			uc := commands.NewTicketUseCase(m.uow, m.clock, m.zones, claimGuard())
			err := tc.act(uc, tk, t)

			if tc.expectedError != nil {
				assertMarked(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expectStatus, tk.Status())
			if tc.expectUpdate {
				assert.Equal(t, []string{shared.TopicTicketStatusChanged}, m.topics())
			}
		})
	}
}

func TestTicketUseCase_CustomerCancel(t *testing.T) {
	t.Run("success: owner cancels with a differently cased email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		tk := builder.NewTicketBuilder().BuildDomain()
		m.tickets.EXPECT().LockByID(gomock.Any(), m.db, tk.ID()).Return(tk, nil)
		m.tickets.EXPECT().Update(gomock.Any(), m.db, tk).Return(nil)
		m.captureEvents()

		uc := commands.NewTicketUseCase(m.uow, m.clock, m.zones, claimGuard())
		err := uc.CustomerCancel(context.Background(), tk.ID(), "ANA@example.com")

		require.NoError(t, err)
		assert.Equal(t, ticket.StatusCancelled, tk.Status())
	})

	t.Run("error: email of someone else", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		tk := builder.NewTicketBuilder().BuildDomain()
		m.tickets.EXPECT().LockByID(gomock.Any(), m.db, tk.ID()).Return(tk, nil)

		uc := commands.NewTicketUseCase(m.uow, m.clock, m.zones, claimGuard())
		err := uc.CustomerCancel(context.Background(), tk.ID(), "bruno@example.com")

		assertMarked(t, err, errs.ErrForbidden)
		assert.Equal(t, ticket.StatusWaiting, tk.Status())
	})

	t.Run("error: unknown ticket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		id := uuid.New()
		m.tickets.EXPECT().LockByID(gomock.Any(), m.db, id).
			Return(nil, infra.WrapRepoErr("ticket not found", pgx.ErrNoRows, infra.KindNotFound))

		uc := commands.NewTicketUseCase(m.uow, m.clock, m.zones, claimGuard())
		err := uc.CustomerCancel(context.Background(), id, "ana@example.com")

		assertMarked(t, err, errs.ErrTicketNotFound)
	})
}

func TestTicketUseCase_Rate(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		status        ticket.Status
		req           commands.RateRequest
		expectedError error
	}{
		{
			name:   "success: completed ticket rated by its owner",
			status: ticket.StatusCompleted,
			req:    commands.RateRequest{Email: "ana@example.com", Rating: 5, Feedback: "quick"},
		},
		{
			name:          "error: ticket not completed",
			status:        ticket.StatusServing,
			req:           commands.RateRequest{Email: "ana@example.com", Rating: 4},
			expectedError: errs.ErrFeedbackNotAllowed,
		},
		{
			name:          "error: rating out of range",
			status:        ticket.StatusCompleted,
			req:           commands.RateRequest{Email: "ana@example.com", Rating: 6},
			expectedError: errs.ErrDomainValidation,
		},
		{
			name:          "error: not the owner",
			status:        ticket.StatusCompleted,
			req:           commands.RateRequest{Email: "other@example.com", Rating: 3},
			expectedError: errs.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTxMocks(ctrl)
			tk := builder.NewTicketBuilder().WithStatus(tc.status).BuildDomain()
			m.tickets.EXPECT().LockByID(gomock.Any(), m.db, tk.ID()).Return(tk, nil)
			if tc.expectedError == nil {
				m.tickets.EXPECT().Update(gomock.Any(), m.db, tk).Return(nil)
			}

			uc := commands.NewTicketUseCase(m.uow, m.clock, m.zones, claimGuard())
			err := uc.Rate(ctx, tk.ID(), tc.req)

			if tc.expectedError != nil {
				assertMarked(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, tk.Feedback())
			assert.Equal(t, tc.req.Rating, tk.Feedback().Rating().Value())
		})
	}
}
