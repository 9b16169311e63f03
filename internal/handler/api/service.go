package api

import (
	"net/http"

	"queue-engine/internal/domain/schedule"
	resdto "queue-engine/internal/handler/dto/response"
	"queue-engine/internal/handler/httperr"
	"queue-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	q queries.ScheduleQueries
}

func NewServiceHandler(q queries.ScheduleQueries) *ServiceHandler {
	return &ServiceHandler{q: q}
}

// @Summary Get service schedule
// @Description Normalized weekly schedule of a service with the encoding it was read from
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/services/{id}/schedule [get]
func (h *ServiceHandler) Schedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetSchedule(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleView(view))
}

// @Summary Get availability
// @Description Bookable start times of a service on one calendar day
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/services/{id}/availability [get]
func (h *ServiceHandler) Availability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	date, err := schedule.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", "date must be YYYY-MM-DD")
		return
	}
	view, err := h.q.GetAvailability(c.Request.Context(), id, date)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
