package repository

import (
	"context"

	"queue-engine/internal/domain/service"
	"queue-engine/internal/infra"
	"queue-engine/internal/infra/repository/converter"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ServiceWriteQueries interface {
	LockServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error)
}

type ServiceRepository struct {
	queries ServiceWriteQueries
	db      sqlc.DBTX
}

func NewServiceRepository(queries ServiceWriteQueries, db sqlc.DBTX) *ServiceRepository {
	return &ServiceRepository{
		queries: queries,
		db:      db,
	}
}

// LockByID serializes bookings of one service for the rest of the transaction.
func (r *ServiceRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*service.Service, error) {
	row, err := r.queries.LockServiceByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock service", err)
	}
	return converter.ServiceFromRow(row), nil
}
