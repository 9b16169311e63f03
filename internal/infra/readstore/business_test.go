//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"queue-engine/internal/infra"
	"queue-engine/internal/infra/readstore"
	"queue-engine/internal/pkg/clock"
	readstoremock "queue-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBusinessZoneStore_Location(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	fallback := time.FixedZone("engine", -3*60*60)

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockBusinessViewQueries)
		expectZone    string
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: configured zone",
			setupMock: func(mock *readstoremock.MockBusinessViewQueries) {
				mock.EXPECT().GetBusinessTimezone(ctx, gomock.Any(), businessID).Return("Asia/Tokyo", nil)
			},
			expectZone: "Asia/Tokyo",
		},
		{
			name: "success: unknown zone name uses the engine zone",
			setupMock: func(mock *readstoremock.MockBusinessViewQueries) {
				mock.EXPECT().GetBusinessTimezone(ctx, gomock.Any(), businessID).Return("Mars/Olympus", nil)
			},
			expectZone: "engine",
		},
		{
			name: "success: blank zone uses the engine zone",
			setupMock: func(mock *readstoremock.MockBusinessViewQueries) {
				mock.EXPECT().GetBusinessTimezone(ctx, gomock.Any(), businessID).Return("", nil)
			},
			expectZone: "engine",
		},
		{
			name: "error: business not found",
			setupMock: func(mock *readstoremock.MockBusinessViewQueries) {
				mock.EXPECT().GetBusinessTimezone(ctx, gomock.Any(), businessID).Return("", pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBusinessViewQueries(ctrl)
			tc.setupMock(mockQueries)
			store := readstore.NewBusinessZoneStore(mockQueries, nil, clock.NewMockClock(time.Now()), fallback)

			loc, err := store.Location(ctx, businessID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectZone, loc.String())
		})
	}
}

func TestBusinessZoneStore_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	businessID := uuid.New()
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC))
	mockQueries := readstoremock.NewMockBusinessViewQueries(ctrl)
	gomock.InOrder(
		mockQueries.EXPECT().GetBusinessTimezone(ctx, gomock.Any(), businessID).Return("America/Sao_Paulo", nil),
		mockQueries.EXPECT().GetBusinessTimezone(ctx, gomock.Any(), businessID).Return("Europe/Lisbon", nil),
	)
	store := readstore.NewBusinessZoneStore(mockQueries, nil, clk, time.UTC)

	first, err := store.Location(ctx, businessID)
	require.NoError(t, err)
	clk.Add(readstore.ZoneCacheTTL - time.Second)
	cached, err := store.Location(ctx, businessID)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	clk.Add(time.Second)
	refreshed, err := store.Location(ctx, businessID)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Lisbon", refreshed.String())
}

func TestBusinessZoneStore_LookupFailureNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	businessID := uuid.New()
	mockQueries := readstoremock.NewMockBusinessViewQueries(ctrl)
	gomock.InOrder(
		mockQueries.EXPECT().GetBusinessTimezone(ctx, gomock.Any(), businessID).Return("", errors.New("connection reset")),
		mockQueries.EXPECT().GetBusinessTimezone(ctx, gomock.Any(), businessID).Return("UTC", nil),
	)
	store := readstore.NewBusinessZoneStore(mockQueries, nil, clock.NewMockClock(time.Now()), time.UTC)

	_, err := store.Location(ctx, businessID)
	require.Error(t, err)

	loc, err := store.Location(ctx, businessID)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}
