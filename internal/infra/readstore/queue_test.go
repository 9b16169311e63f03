//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/infra"
	"queue-engine/internal/infra/readstore"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/pgconv"
	readstoremock "queue-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQueueReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockQueueViewQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: queue found",
			setupMock: func(mock *readstoremock.MockQueueViewQueries) {
				mock.EXPECT().GetQueueByID(ctx, gomock.Any(), id).Return(sqlc.Queues{
					ID:               id,
					Name:             "Front desk",
					Status:           "open",
					CurrentNumber:    1,
					LastIssuedNumber: 2,
					IsActive:         true,
				}, nil)
			},
		},
		{
			name: "error: queue not found",
			setupMock: func(mock *readstoremock.MockQueueViewQueries) {
				mock.EXPECT().GetQueueByID(ctx, gomock.Any(), id).Return(sqlc.Queues{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockQueueViewQueries) {
				mock.EXPECT().GetQueueByID(ctx, gomock.Any(), id).Return(sqlc.Queues{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockQueueViewQueries(ctrl)
			tc.setupMock(mockQueries)

			store := readstore.NewQueueReadStore(mockQueries, nil)

			q, err := store.FindByID(ctx, id)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Front desk", q.Name())
			assert.Equal(t, 1, q.Waiting())
			assert.True(t, q.OperatingDate().IsZero(), "null operating date")
		})
	}
}

func TestQueueReadStore_MaxTicketNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queueID := uuid.New()
	day := schedule.MustDate("2025-03-10")
	mockQueries := readstoremock.NewMockQueueViewQueries(ctrl)
	mockQueries.EXPECT().GetMaxTicketNumber(gomock.Any(), gomock.Any(), sqlc.GetMaxTicketNumberParams{
		QueueID:       queueID,
		OperatingDate: pgconv.DateToPgtype(day),
	}).Return(int32(12), nil)
	mockQueries.EXPECT().ListActiveQueueIDs(gomock.Any(), gomock.Any()).Return([]uuid.UUID{queueID}, nil)

	store := readstore.NewQueueReadStore(mockQueries, nil)

	n, err := store.MaxTicketNumber(context.Background(), queueID, day)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	ids, err := store.ActiveIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{queueID}, ids)
}
