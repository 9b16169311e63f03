package components

import (
	"queue-engine/internal/handler"
	"queue-engine/internal/handler/api"
	"queue-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewServiceHandler,
		api.NewAppointmentHandler,
		api.NewQueueHandler,
		api.NewTicketHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	service *api.ServiceHandler,
	appointment *api.AppointmentHandler,
	queue *api.QueueHandler,
	ticket *api.TicketHandler,
) handler.Handlers {
	return handler.Handlers{
		Service:     service,
		Appointment: appointment,
		Queue:       queue,
		Ticket:      ticket,
	}
}
