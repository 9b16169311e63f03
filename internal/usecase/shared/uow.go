package shared

import (
	"context"
	"time"

	"queue-engine/internal/domain/appointment"
	"queue-engine/internal/domain/claim"
	"queue-engine/internal/domain/queue"
	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/service"
	"queue-engine/internal/domain/ticket"
	sqlc "queue-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Services() ServiceRepository
	Queues() QueueRepository
	Tickets() TicketRepository
	Appointments() AppointmentRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups commands need besides the aggregates they lock.
type CommandReads interface {
	ActiveQueueIDs(ctx context.Context) ([]uuid.UUID, error)
	MaxTicketNumber(ctx context.Context, queueID uuid.UUID, date schedule.Date) (int, error)
	ActiveTicketStatuses(ctx context.Context, queueID uuid.UUID, email string) ([]ticket.Status, error)
	RecentAppointments(ctx context.Context, businessID, serviceID uuid.UUID, email string, since time.Time) ([]claim.ExistingAppointment, error)
	BookedSpans(ctx context.Context, serviceID uuid.UUID, date schedule.Date) ([]service.Booking, error)
}

// LockByID methods take a row lock held until the transaction ends.

type ServiceRepository interface {
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*service.Service, error)
}

type QueueRepository interface {
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*queue.Queue, error)
	Save(ctx context.Context, tx sqlc.DBTX, q *queue.Queue, now time.Time) error
}

type TicketRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *ticket.Ticket) error
	Update(ctx context.Context, tx sqlc.DBTX, t *ticket.Ticket) error
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*ticket.Ticket, error)
	// LockOpenByQueue returns waiting and called tickets of one operating day ordered by number.
	LockOpenByQueue(ctx context.Context, tx sqlc.DBTX, queueID uuid.UUID, date schedule.Date) ([]*ticket.Ticket, error)
	// LockSweepableByQueue returns waiting, called and serving tickets of every operating day up to upTo.
	LockSweepableByQueue(ctx context.Context, tx sqlc.DBTX, queueID uuid.UUID, upTo schedule.Date) ([]*ticket.Ticket, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error
	Update(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error)
	LockByToken(ctx context.Context, tx sqlc.DBTX, token appointment.ManagementToken) (*appointment.Appointment, error)
}

type OutboxRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, events ...Event) error
	// ClaimPending locks up to limit pending rows, skipping rows locked by another relay.
	ClaimPending(ctx context.Context, tx sqlc.DBTX, limit int) ([]OutboxMessage, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, cause string, maxAttempts int, at time.Time) error
}
