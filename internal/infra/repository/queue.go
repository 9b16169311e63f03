package repository

import (
	"context"
	"time"

	"queue-engine/internal/domain/queue"
	"queue-engine/internal/infra"
	"queue-engine/internal/infra/repository/converter"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type QueueWriteQueries interface {
	LockQueueByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Queues, error)
	UpdateQueueState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateQueueStateParams) error
}

type QueueRepository struct {
	queries QueueWriteQueries
	db      sqlc.DBTX
}

func NewQueueRepository(queries QueueWriteQueries, db sqlc.DBTX) *QueueRepository {
	return &QueueRepository{
		queries: queries,
		db:      db,
	}
}

// LockByID loads the queue with SELECT ... FOR UPDATE; counters read here are authoritative
// until the transaction ends.
func (r *QueueRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*queue.Queue, error) {
	row, err := r.queries.LockQueueByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("queue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock queue", err)
	}
	return converter.QueueFromRow(row), nil
}

func (r *QueueRepository) Save(ctx context.Context, tx sqlc.DBTX, q *queue.Queue, now time.Time) error {
	if err := r.queries.UpdateQueueState(ctx, tx, converter.QueueToStateParams(q, now)); err != nil {
		return infra.WrapRepoErr("failed to update queue state", err)
	}
	return nil
}
