package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"queue-engine/internal/domain/appointment"
	"queue-engine/internal/handler/api"
	"queue-engine/internal/handler/middleware"
	"queue-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler mounted by NewRouter.
type Handlers struct {
	Service     *api.ServiceHandler
	Appointment *api.AppointmentHandler
	Queue       *api.QueueHandler
	Ticket      *api.TicketHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/services"), []route{
			{Method: http.MethodGet, Path: "/:id/schedule", Handler: h.Service.Schedule},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Service.Availability},
		})

		addRoutes(apiGroup.Group("/appointments"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Appointment.Create},
			{Method: http.MethodGet, Path: "/manage/:token", Handler: h.Appointment.GetByToken},
			{Method: http.MethodPost, Path: "/manage/:token/cancel", Handler: h.Appointment.CancelByToken},
			{Method: http.MethodPost, Path: "/manage/:token/feedback", Handler: h.Appointment.FeedbackByToken},
		})

		addRoutes(apiGroup.Group("/queues"), []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Queue.Get},
			{Method: http.MethodGet, Path: "/:id/display", Handler: h.Queue.Display},
			{Method: http.MethodPost, Path: "/:id/tickets", Handler: h.Ticket.Issue},
		})

		addRoutes(apiGroup.Group("/tickets"), []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Ticket.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Ticket.CustomerCancel},
			{Method: http.MethodPost, Path: "/:id/feedback", Handler: h.Ticket.Feedback},
		})

		business := apiGroup.Group("/business")
		business.Use(authMiddleware.StaffAuth())
		{
			addRoutes(business.Group("/queues"), []route{
				{Method: http.MethodPost, Path: "/:id/call-next", Handler: h.Queue.CallNext},
				{Method: http.MethodPost, Path: "/:id/tickets", Handler: h.Queue.IssueManual},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Queue.SetStatus},
			})

			addRoutes(business.Group("/tickets"), []route{
				{Method: http.MethodPost, Path: "/:id/start", Handler: h.Ticket.Start},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Ticket.Complete},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Ticket.Cancel},
			})

			addRoutes(business.Group("/appointments"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Appointment.List},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Appointment.Transition(appointment.ActionConfirm)},
				{Method: http.MethodPost, Path: "/:id/start", Handler: h.Appointment.Transition(appointment.ActionStart)},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Appointment.Transition(appointment.ActionComplete)},
				{Method: http.MethodPost, Path: "/:id/no-show", Handler: h.Appointment.Transition(appointment.ActionNoShow)},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Appointment.Transition(appointment.ActionCancel)},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
