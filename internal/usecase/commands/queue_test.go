//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"queue-engine/internal/domain/queue"
	"queue-engine/internal/pkg/errs"
	"queue-engine/internal/usecase/commands"
	"queue-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueueUseCase_SetStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		status        string
		sameBusiness  bool
		expectSave    bool
		expectStatus  queue.Status
		expectedError error
	}{
		{name: "success: pause", status: "paused", sameBusiness: true, expectSave: true, expectStatus: queue.StatusPaused},
		{name: "success: close", status: "closed", sameBusiness: true, expectSave: true, expectStatus: queue.StatusClosed},
		{name: "error: unknown status", status: "sleeping", sameBusiness: true, expectStatus: queue.StatusOpen, expectedError: errs.ErrDomainValidation},
		{name: "error: another business", status: "paused", expectStatus: queue.StatusOpen, expectedError: errs.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTxMocks(ctrl)
			q := todayQueue().BuildDomain()
			m.queues.EXPECT().LockByID(gomock.Any(), m.db, q.ID()).Return(q, nil).MaxTimes(1)
			if tc.expectSave {
				m.queues.EXPECT().Save(gomock.Any(), m.db, q, gomock.Any()).Return(nil)
				m.captureEvents()
			}

			member := memberOf(t, uuid.New())
			if tc.sameBusiness {
				member = memberOf(t, q.BusinessID())
			}

			uc := commands.NewQueueUseCase(m.uow, m.clock, m.zones, discardLogger())
			err := uc.SetStatus(ctx, member, q.ID(), tc.status)

			if tc.expectedError != nil {
				assertMarked(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, []string{shared.TopicQueueUpdated}, m.topics())
			}
			assert.Equal(t, tc.expectStatus, q.Status())
		})
	}
}

func TestQueueUseCase_ReconcileCounters(t *testing.T) {
	t.Run("success: raises lagging counters and leaves the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		lagging := todayQueue().WithCounters(2, 4).BuildDomain()
		healthy := todayQueue().WithCounters(1, 3).BuildDomain()

		m.reads.EXPECT().ActiveQueueIDs(gomock.Any()).Return([]uuid.UUID{lagging.ID(), healthy.ID()}, nil)
		m.queues.EXPECT().LockByID(gomock.Any(), m.db, lagging.ID()).Return(lagging, nil)
		m.queues.EXPECT().LockByID(gomock.Any(), m.db, healthy.ID()).Return(healthy, nil)
		m.reads.EXPECT().MaxTicketNumber(gomock.Any(), lagging.ID(), lagging.OperatingDate()).Return(6, nil)
		m.reads.EXPECT().MaxTicketNumber(gomock.Any(), healthy.ID(), healthy.OperatingDate()).Return(3, nil)
		m.queues.EXPECT().Save(gomock.Any(), m.db, lagging, gomock.Any()).Return(nil)

		uc := commands.NewQueueUseCase(m.uow, m.clock, m.zones, discardLogger())
		repaired, err := uc.ReconcileCounters(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, repaired)
		assert.Equal(t, 6, lagging.LastIssuedNumber())
		assert.Equal(t, 2, lagging.CurrentNumber())
		assert.Equal(t, 3, healthy.LastIssuedNumber())
	})

	t.Run("error: one failing queue does not stop the others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		broken := uuid.New()
		lagging := todayQueue().WithCounters(0, 0).BuildDomain()
		dbErr := errors.New("connection reset")

		m.reads.EXPECT().ActiveQueueIDs(gomock.Any()).Return([]uuid.UUID{broken, lagging.ID()}, nil)
		m.queues.EXPECT().LockByID(gomock.Any(), m.db, broken).Return(nil, dbErr)
		m.queues.EXPECT().LockByID(gomock.Any(), m.db, lagging.ID()).Return(lagging, nil)
		m.reads.EXPECT().MaxTicketNumber(gomock.Any(), lagging.ID(), lagging.OperatingDate()).Return(2, nil)
		m.queues.EXPECT().Save(gomock.Any(), m.db, lagging, gomock.Any()).Return(nil)

		uc := commands.NewQueueUseCase(m.uow, m.clock, m.zones, discardLogger())
		repaired, err := uc.ReconcileCounters(context.Background())

		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, 1, repaired)
		assert.Equal(t, 2, lagging.LastIssuedNumber())
	})

	t.Run("error: listing queues fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTxMocks(ctrl)
		m.reads.EXPECT().ActiveQueueIDs(gomock.Any()).Return(nil, errors.New("timeout"))

		uc := commands.NewQueueUseCase(m.uow, m.clock, m.zones, discardLogger())
		_, err := uc.ReconcileCounters(context.Background())

		assert.Error(t, err)
	})
}
