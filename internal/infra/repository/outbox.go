package repository

import (
	"context"
	"encoding/json"
	"time"

	"queue-engine/internal/infra"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/errs"
	"queue-engine/internal/pkg/pgconv"
	"queue-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutboxWriteQueries interface {
	AppendOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.AppendOutboxEventParams) error
	ClaimPendingOutboxEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventSentParams) error
	MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
	now     func() time.Time
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
		now:     time.Now,
	}
}

func (r *OutboxRepository) Append(ctx context.Context, tx sqlc.DBTX, events ...shared.Event) error {
	for _, e := range events {
		payload, err := json.Marshal(e.Payload)
		if err != nil {
			return errs.Wrapf(err, "failed to encode %s event", e.Topic)
		}
		params := sqlc.AppendOutboxEventParams{
			ID:          uuid.New(),
			Topic:       e.Topic,
			AggregateID: e.AggregateID,
			Payload:     payload,
			CreatedAt:   pgconv.TimeToPgtype(r.now()),
		}
		if err := r.queries.AppendOutboxEvent(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to append outbox event", err)
		}
	}
	return nil
}

func (r *OutboxRepository) ClaimPending(ctx context.Context, tx sqlc.DBTX, limit int) ([]shared.OutboxMessage, error) {
	rows, err := r.queries.ClaimPendingOutboxEvents(ctx, tx, pgconv.IntToInt32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}
	msgs := make([]shared.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, shared.OutboxMessage{
			ID:          row.ID,
			Topic:       row.Topic,
			AggregateID: row.AggregateID,
			Payload:     row.Payload,
			Attempts:    int(row.Attempts),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return msgs, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	params := sqlc.MarkOutboxEventSentParams{
		ID:     id,
		SentAt: pgconv.TimeToPgtype(at),
	}
	if err := r.queries.MarkOutboxEventSent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event sent", err)
	}
	return nil
}

// MarkFailed records a delivery failure; the row turns failed once attempts reach maxAttempts.
func (r *OutboxRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, cause string, maxAttempts int, at time.Time) error {
	params := sqlc.MarkOutboxEventFailedParams{
		ID:          id,
		LastError:   pgconv.StringToPgtype(cause),
		MaxAttempts: pgconv.IntToInt32(maxAttempts),
		UpdatedAt:   pgconv.TimeToPgtype(at),
	}
	if err := r.queries.MarkOutboxEventFailed(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}
