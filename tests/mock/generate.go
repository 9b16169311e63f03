// Package mock holds gomock doubles generated from the interfaces under internal/.
package mock

//go:generate mockgen -source=../../internal/usecase/shared/uow.go -destination=shared/uow.go -package=sharedmock
//go:generate mockgen -source=../../internal/infra/repository/service.go -destination=repository/service.go -package=repositorymock
//go:generate mockgen -source=../../internal/infra/repository/queue.go -destination=repository/queue.go -package=repositorymock
//go:generate mockgen -source=../../internal/infra/repository/ticket.go -destination=repository/ticket.go -package=repositorymock
//go:generate mockgen -source=../../internal/infra/repository/appointment.go -destination=repository/appointment.go -package=repositorymock
//go:generate mockgen -source=../../internal/infra/repository/outbox.go -destination=repository/outbox.go -package=repositorymock
//go:generate mockgen -source=../../internal/infra/readstore/service.go -destination=readstore/service.go -package=readstoremock
//go:generate mockgen -source=../../internal/infra/readstore/queue.go -destination=readstore/queue.go -package=readstoremock
//go:generate mockgen -source=../../internal/infra/readstore/ticket.go -destination=readstore/ticket.go -package=readstoremock
//go:generate mockgen -source=../../internal/infra/readstore/appointment.go -destination=readstore/appointment.go -package=readstoremock
//go:generate mockgen -source=../../internal/infra/readstore/business.go -destination=readstore/business.go -package=readstoremock
//go:generate mockgen -source=../../internal/usecase/queries/schedule.go -destination=queries/schedule.go -package=queriesmock
//go:generate mockgen -source=../../internal/usecase/queries/queue.go -destination=queries/queue.go -package=queriesmock
//go:generate mockgen -source=../../internal/usecase/queries/ticket.go -destination=queries/ticket.go -package=queriesmock
//go:generate mockgen -source=../../internal/usecase/queries/appointment.go -destination=queries/appointment.go -package=queriesmock
//go:generate mockgen -source=../../internal/usecase/commands/ticket.go -destination=commands/ticket.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/commands/queue.go -destination=commands/queue.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/commands/appointment.go -destination=commands/appointment.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/commands/monitor.go -destination=commands/monitor.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/token_validator.go -destination=usecase/token_validator.go -package=usecasemock
//go:generate mockgen -source=../../internal/usecase/shared/events.go -destination=shared/events.go -package=sharedmock
//go:generate mockgen -source=../../internal/usecase/shared/zones.go -destination=shared/zones.go -package=sharedmock
//go:generate mockgen -source=../../internal/usecase/commands/outbox.go -destination=commands/outbox.go -package=commandsmock
