package components

import (
	"queue-engine/internal/infra/readstore"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/infra/uow"
	"queue-engine/internal/usecase/queries"
	"queue-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Service
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ServiceViewQueries)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		// Queue
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.QueueViewQueries)),
		),
		fx.Annotate(
			readstore.NewQueueReadStore,
			fx.As(new(queries.QueueReadStore)),
		),
		// Ticket
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TicketViewQueries)),
		),
		fx.Annotate(
			readstore.NewTicketReadStore,
			fx.As(new(queries.TicketReadStore)),
		),
		// Appointment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AppointmentViewQueries)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		// Business
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BusinessViewQueries)),
		),
		fx.Annotate(
			readstore.NewBusinessZoneStore,
			fx.As(new(shared.Zones)),
		),
	),
)

// Write-side repositories are built per transaction by the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
