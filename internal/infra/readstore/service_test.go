//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/service"
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

func TestServiceReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("custom schedules decoded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockServiceViewQueries(ctrl)
		mockQueries.EXPECT().GetServiceByID(ctx, gomock.Any(), id).Return(sqlc.Services{
			ID:              id,
			Name:            "Massage",
			Duration:        60,
			CustomSchedules: []byte(`{"1":{"start":"10:00","end":"14:00","breaks":[{"start":"12:00","end":"12:30"}]}}`),
			IsActive:        true,
		}, nil)

		store := readstore.NewServiceReadStore(mockQueries, nil)

		svc, err := store.FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, schedule.SourceCustomSchedules, svc.Schedule().Source())
		slots, err := svc.Slots(schedule.MustDate("2025-03-10"), nil)
		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, "13:00", slots[2].Time.String())
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockServiceViewQueries(ctrl)
		mockQueries.EXPECT().GetServiceByID(ctx, gomock.Any(), id).Return(sqlc.Services{}, pgx.ErrNoRows)

		store := readstore.NewServiceReadStore(mockQueries, nil)

		_, err := store.FindByID(ctx, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestServiceReadStore_BookedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceID := uuid.New()
	day := schedule.MustDate("2025-03-10")
	mockQueries := readstoremock.NewMockServiceViewQueries(ctrl)
	mockQueries.EXPECT().ListActiveAppointmentSpans(gomock.Any(), gomock.Any(), sqlc.ListActiveAppointmentSpansParams{
		ServiceID:       serviceID,
		AppointmentDate: pgconv.DateToPgtype(day),
	}).Return([]sqlc.ListActiveAppointmentSpansRow{
		{StartTime: pgconv.ClockTimeToPgtype(schedule.MustClockTime("09:00")), Duration: 30, BufferTime: 10},
	}, nil)

	store := readstore.NewServiceReadStore(mockQueries, nil)

	spans, err := store.BookedSpans(context.Background(), serviceID, day)

	require.NoError(t, err)
	assert.Equal(t, []service.Booking{{Start: schedule.MustClockTime("09:00"), Duration: 30, Buffer: 10}}, spans)
}
