package api

import (
	"net/http"

	"queue-engine/internal/domain/appointment"
	reqdto "queue-engine/internal/handler/dto/request"
	resdto "queue-engine/internal/handler/dto/response"
	"queue-engine/internal/handler/httperr"
	"queue-engine/internal/usecase/commands"
	"queue-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Book appointment
// @Description Book a slot of a service. The response carries the management token.
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Create appointment request"
// @Success 201 {object} resdto.CreateAppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.Header("Location", "/api/appointments/manage/"+result.ManagementToken)
	c.JSON(http.StatusCreated, resdto.FromCreateAppointmentResult(result))
}

// @Summary View appointment by token
// @Tags appointments
// @Produce json
// @Param token path string true "Management token"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/manage/{token} [get]
func (h *AppointmentHandler) GetByToken(c *gin.Context) {
	view, err := h.q.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Cancel appointment by token
// @Tags appointments
// @Param token path string true "Management token"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/manage/{token}/cancel [post]
func (h *AppointmentHandler) CancelByToken(c *gin.Context) {
	if err := h.cmds.CancelByToken(c.Request.Context(), c.Param("token")); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Rate appointment by token
// @Description Rating 1-5 with optional feedback, only after the appointment is completed
// @Tags appointments
// @Accept json
// @Param token path string true "Management token"
// @Param request body reqdto.AppointmentFeedbackRequest true "Feedback request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/manage/{token}/feedback [post]
func (h *AppointmentHandler) FeedbackByToken(c *gin.Context) {
	var req reqdto.AppointmentFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.RateByToken(c.Request.Context(), c.Param("token"), req.Rating, req.Feedback); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List business appointments
// @Description Keyset-paginated by date, start time and id
// @Tags business
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/business/appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	member, ok := requireMember(c)
	if !ok {
		return
	}
	var q reqdto.ListAppointmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, next, err := h.q.ListForBusiness(c.Request.Context(), member, q.Filter(), q.Cursor(), q.Limit)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentList(views, next))
}

// Transition returns the handler of one staff action.
//
// @Summary Change appointment status
// @Description confirm, start, complete, no-show or cancel with an optional business response
// @Tags business
// @Accept json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param action path string true "confirm|start|complete|no-show|cancel"
// @Param request body reqdto.AppointmentTransitionRequest false "Business response"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/business/appointments/{id}/{action} [post]
func (h *AppointmentHandler) Transition(action appointment.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		member, ok := requireMember(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req reqdto.AppointmentTransitionRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
				return
			}
		}
		if err := h.cmds.Transition(c.Request.Context(), member, id, string(action), req.BusinessResponse); err != nil {
			httperr.Handle(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
