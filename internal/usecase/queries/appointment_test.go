//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"queue-engine/internal/domain/appointment"
	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/staff"
	"queue-engine/internal/infra"
	"queue-engine/internal/pkg/errs"
	"queue-engine/internal/usecase/queries"
	queriesmock "queue-engine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// assertMarked checks a sentinel attached with errs.Mark.
func assertMarked(t *testing.T, err, target error) {
	t.Helper()
	assert.Truef(t, errs.Is(err, target), "expected %v in %v", target, err)
}

func appointmentViews(n int, date string) []*queries.AppointmentView {
	out := make([]*queries.AppointmentView, n)
	for i := range out {
		out[i] = &queries.AppointmentView{
			ID:        uuid.New(),
			Date:      date,
			StartTime: schedule.ClockTime(9*60 + 30*i).String(),
			Status:    "scheduled",
		}
	}
	return out
}

func TestAppointmentQueries_ListForBusiness(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	member, err := staff.NewMember(uuid.New(), businessID, staff.RoleOwner)
	require.NoError(t, err)

	t.Run("success: first page with a next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		rows := appointmentViews(3, "2025-03-10")
		store.EXPECT().ListByBusinessFirstPage(ctx, businessID, gomock.Nil(), int32(3)).Return(rows, nil)

		items, next, err := queries.NewAppointmentQueries(store).ListForBusiness(ctx, member, queries.AppointmentFilter{}, nil, 2)

		require.NoError(t, err)
		assert.Len(t, items, 2)
		require.NotNil(t, next)

		startsAt, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.Equal(t, time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC), startsAt)
	})

	t.Run("success: keyset page resumes after the cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC), lastID)}
		date := "2025-03-10"
		store.EXPECT().ListByBusinessKeyset(ctx, businessID, gomock.Any(),
			schedule.MustDate("2025-03-10"), schedule.MustClockTime("10:00"), lastID, int32(21)).
			Return(appointmentViews(1, date), nil)

		items, next, err := queries.NewAppointmentQueries(store).
			ListForBusiness(ctx, member, queries.AppointmentFilter{Date: &date}, cursor, 0)

		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
	})

	t.Run("error: malformed cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		_, _, err := queries.NewAppointmentQueries(store).
			ListForBusiness(ctx, member, queries.AppointmentFilter{}, &queries.Cursor{After: "garbage"}, 10)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("error: malformed date filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		bad := "10/03/2025"
		_, _, err := queries.NewAppointmentQueries(store).
			ListForBusiness(ctx, member, queries.AppointmentFilter{Date: &bad}, nil, 10)

		assertMarked(t, err, errs.ErrDomainValidation)
	})

	t.Run("error: member without business", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		_, _, err := queries.NewAppointmentQueries(store).
			ListForBusiness(ctx, staff.Member{}, queries.AppointmentFilter{}, nil, 10)

		assertMarked(t, err, errs.ErrForbidden)
	})
}

func TestAppointmentQueries_GetByToken(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		view := appointmentViews(1, "2025-03-10")[0]
		store.EXPECT().FindByToken(ctx, appointment.ManagementToken("tok")).Return(view, nil)

		got, err := queries.NewAppointmentQueries(store).GetByToken(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("error: unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		store.EXPECT().FindByToken(ctx, appointment.ManagementToken("tok")).
			Return(nil, infra.WrapRepoErr("appointment not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := queries.NewAppointmentQueries(store).GetByToken(ctx, "tok")

		assertMarked(t, err, errs.ErrAppointmentNotFound)
	})
}
