package readstore

import (
	"context"

	"queue-engine/internal/domain/queue"
	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/infra"
	"queue-engine/internal/infra/repository/converter"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type QueueViewQueries interface {
	GetQueueByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Queues, error)
	ListActiveQueueIDs(ctx context.Context, db sqlc.DBTX) ([]uuid.UUID, error)
	GetMaxTicketNumber(ctx context.Context, db sqlc.DBTX, arg sqlc.GetMaxTicketNumberParams) (int32, error)
}

type QueueReadStore struct {
	queries QueueViewQueries
	db      sqlc.DBTX
}

func NewQueueReadStore(queries QueueViewQueries, db sqlc.DBTX) *QueueReadStore {
	return &QueueReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *QueueReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queue.Queue, error) {
	row, err := r.queries.GetQueueByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("queue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get queue by id", err)
	}
	return converter.QueueFromRow(row), nil
}

func (r *QueueReadStore) ActiveIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := r.queries.ListActiveQueueIDs(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active queues", err)
	}
	return ids, nil
}

// MaxTicketNumber is the highest number persisted for the day, 0 when none was issued.
func (r *QueueReadStore) MaxTicketNumber(ctx context.Context, queueID uuid.UUID, date schedule.Date) (int, error) {
	n, err := r.queries.GetMaxTicketNumber(ctx, r.db, sqlc.GetMaxTicketNumberParams{
		QueueID:       queueID,
		OperatingDate: pgconv.DateToPgtype(date),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to get max ticket number", err)
	}
	return int(n), nil
}
