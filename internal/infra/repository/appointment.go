package repository

import (
	"context"

	"queue-engine/internal/domain/appointment"
	"queue-engine/internal/infra"
	"queue-engine/internal/infra/repository/converter"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) error
	UpdateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentParams) error
	LockAppointmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error)
	LockAppointmentByToken(ctx context.Context, db sqlc.DBTX, managementToken string) (sqlc.Appointments, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      sqlc.DBTX
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db sqlc.DBTX) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error {
	if err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToCreateParams(a)); err != nil {
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) Update(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error {
	if err := r.queries.UpdateAppointment(ctx, tx, converter.AppointmentToUpdateParams(a)); err != nil {
		return infra.WrapRepoErr("failed to update appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := r.queries.LockAppointmentByID(ctx, tx, id)
	if err != nil {
		return nil, wrapLookupErr("appointment", err)
	}
	return converter.AppointmentFromRow(row), nil
}

func (r *AppointmentRepository) LockByToken(ctx context.Context, tx sqlc.DBTX, token appointment.ManagementToken) (*appointment.Appointment, error) {
	row, err := r.queries.LockAppointmentByToken(ctx, tx, token.String())
	if err != nil {
		return nil, wrapLookupErr("appointment", err)
	}
	return converter.AppointmentFromRow(row), nil
}

func wrapLookupErr(entity string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to lock "+entity, err)
}
