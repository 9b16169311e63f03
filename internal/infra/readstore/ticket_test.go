//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/ticket"
	"queue-engine/internal/infra"
	"queue-engine/internal/infra/readstore"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/pgconv"
	readstoremock "queue-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestTicketReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	ticketID := uuid.New()
	today := pgconv.DateToPgtype(schedule.MustDate("2025-03-10"))
	yesterday := pgconv.DateToPgtype(schedule.MustDate("2025-03-09"))

	row := func(status string, number int32, ticketDay, queueDay pgtype.Date) sqlc.GetTicketViewByIDRow {
		return sqlc.GetTicketViewByIDRow{
			ID:                 ticketID,
			QueueID:            uuid.New(),
			BusinessID:         uuid.New(),
			TicketNumber:       number,
			OperatingDate:      ticketDay,
			Status:             status,
			CustomerName:       "Ana",
			Position:           9,
			CreatedAt:          pgtype.Timestamptz{Time: time.Now(), Valid: true},
			QueueName:          "Front desk",
			CurrentNumber:      3,
			AverageServiceTime: 10,
			QueueOperatingDate: queueDay,
		}
	}

	testCases := []struct {
		name           string
		setupMock      func(*readstoremock.MockTicketViewQueries)
		expectedError  bool
		expectKind     infra.RepositoryErrorKind
		expectPosition int
		expectWait     int
	}{
		{
			name: "success: waiting ticket position derived from live counter",
			setupMock: func(mock *readstoremock.MockTicketViewQueries) {
				mock.EXPECT().GetTicketViewByID(ctx, gomock.Any(), ticketID).Return(row("waiting", 7, today, today), nil)
			},
			expectPosition: 4,
			expectWait:     40,
		},
		{
			name: "success: called ticket has no position",
			setupMock: func(mock *readstoremock.MockTicketViewQueries) {
				mock.EXPECT().GetTicketViewByID(ctx, gomock.Any(), ticketID).Return(row("called", 3, today, today), nil)
			},
		},
		{
			name: "success: ticket from a previous day has no position",
			setupMock: func(mock *readstoremock.MockTicketViewQueries) {
				mock.EXPECT().GetTicketViewByID(ctx, gomock.Any(), ticketID).Return(row("waiting", 7, yesterday, today), nil)
			},
		},
		{
			name: "error: ticket not found",
			setupMock: func(mock *readstoremock.MockTicketViewQueries) {
				mock.EXPECT().GetTicketViewByID(ctx, gomock.Any(), ticketID).Return(sqlc.GetTicketViewByIDRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockTicketViewQueries) {
				mock.EXPECT().GetTicketViewByID(ctx, gomock.Any(), ticketID).Return(sqlc.GetTicketViewByIDRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockTicketViewQueries(ctrl)
			tc.setupMock(mockQueries)

			store := readstore.NewTicketReadStore(mockQueries, nil)

			view, err := store.FindByID(ctx, ticketID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ticketID, view.ID)
			assert.Equal(t, "Front desk", view.QueueName)
			assert.Equal(t, tc.expectPosition, view.Position)
			assert.Equal(t, tc.expectWait, view.EstimatedWaitMinutes)
			assert.Nil(t, view.CalledAt)
		})
	}
}

func TestTicketReadStore_ListDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queueID := uuid.New()
	calledAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	mockQueries := readstoremock.NewMockTicketViewQueries(ctrl)
	mockQueries.EXPECT().ListDisplayTickets(gomock.Any(), gomock.Any(), sqlc.ListDisplayTicketsParams{QueueID: queueID, Limit: 20}).
		Return([]sqlc.ListDisplayTicketsRow{
			{ID: uuid.New(), TicketNumber: 3, Status: "called", CustomerName: "Ana", CalledAt: pgconv.TimeToPgtype(calledAt)},
			{ID: uuid.New(), TicketNumber: 4, Status: "waiting", CustomerName: "Bruno"},
		}, nil)

	store := readstore.NewTicketReadStore(mockQueries, nil)

	items, err := store.ListDisplay(context.Background(), queueID, 20)

	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].CalledAt)
	assert.True(t, calledAt.Equal(*items[0].CalledAt))
	assert.Nil(t, items[1].CalledAt)
	assert.Equal(t, 4, items[1].TicketNumber)
}

func TestTicketReadStore_ActiveStatuses(t *testing.T) {
	ctx := context.Background()
	queueID := uuid.New()

	t.Run("email normalized before lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockTicketViewQueries(ctrl)
		mockQueries.EXPECT().ListActiveTicketStatusesByCustomer(ctx, gomock.Any(), sqlc.ListActiveTicketStatusesByCustomerParams{
			QueueID: queueID,
			Email:   "ana@example.com",
		}).Return([]string{"waiting"}, nil)

		store := readstore.NewTicketReadStore(mockQueries, nil)

		statuses, err := store.ActiveStatuses(ctx, queueID, "  Ana@Example.com ")

		require.NoError(t, err)
		assert.Equal(t, []ticket.Status{ticket.StatusWaiting}, statuses)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockTicketViewQueries(ctrl)
		mockQueries.EXPECT().ListActiveTicketStatusesByCustomer(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		store := readstore.NewTicketReadStore(mockQueries, nil)

		_, err := store.ActiveStatuses(ctx, queueID, "ana@example.com")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
