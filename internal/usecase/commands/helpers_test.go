//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"queue-engine/internal/domain/claim"
	"queue-engine/internal/domain/staff"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/clock"
	"queue-engine/internal/pkg/errs"
	"queue-engine/internal/usecase/shared"
	sharedmock "queue-engine/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Monday.
var fixedNow = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return nil
}

// txMocks wires a UnitOfWork whose Within runs the callback against mocked repositories.
type txMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	services     *sharedmock.MockServiceRepository
	queues       *sharedmock.MockQueueRepository
	tickets      *sharedmock.MockTicketRepository
	appointments *sharedmock.MockAppointmentRepository
	outbox       *sharedmock.MockOutboxRepository
	reads        *sharedmock.MockCommandReads
	zones        *sharedmock.MockZones
	db           sqlc.DBTX
	clock        *clock.MockClock
	events       []shared.Event
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		services:     sharedmock.NewMockServiceRepository(ctrl),
		queues:       sharedmock.NewMockQueueRepository(ctrl),
		tickets:      sharedmock.NewMockTicketRepository(ctrl),
		appointments: sharedmock.NewMockAppointmentRepository(ctrl),
		outbox:       sharedmock.NewMockOutboxRepository(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		zones:        sharedmock.NewMockZones(ctrl),
		db:           &mockDBTX{},
		clock:        clock.NewMockClock(fixedNow),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.zones.EXPECT().Location(gomock.Any(), gomock.Any()).Return(time.UTC, nil).AnyTimes()

	m.tx.EXPECT().Services().Return(m.services).AnyTimes()
	m.tx.EXPECT().Queues().Return(m.queues).AnyTimes()
	m.tx.EXPECT().Tickets().Return(m.tickets).AnyTimes()
	m.tx.EXPECT().Appointments().Return(m.appointments).AnyTimes()
	m.tx.EXPECT().Outbox().Return(m.outbox).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().DB().Return(m.db).AnyTimes()

	return m
}

// captureEvents records everything appended to the outbox.
func (m *txMocks) captureEvents() {
	m.outbox.EXPECT().Append(gomock.Any(), m.db, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, events ...shared.Event) error {
			m.events = append(m.events, events...)
			return nil
		}).AnyTimes()
}

func (m *txMocks) topics() []string {
	out := make([]string, len(m.events))
	for i, e := range m.events {
		out[i] = e.Topic
	}
	return out
}

func memberOf(t *testing.T, businessID uuid.UUID) staff.Member {
	t.Helper()
	member, err := staff.NewMember(uuid.New(), businessID, staff.RoleStaff)
	require.NoError(t, err)
	return member
}

func claimGuard() claim.Guard {
	return claim.NewGuard(claim.DefaultCooldown)
}

// assertMarked checks a sentinel attached with errs.Mark.
func assertMarked(t *testing.T, err, target error) {
	t.Helper()
	assert.Truef(t, errs.Is(err, target), "expected %v in %v", target, err)
}
