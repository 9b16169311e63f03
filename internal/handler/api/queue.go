package api

import (
	"net/http"

	reqdto "queue-engine/internal/handler/dto/request"
	resdto "queue-engine/internal/handler/dto/response"
	"queue-engine/internal/handler/httperr"
	"queue-engine/internal/usecase/commands"
	"queue-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QueueHandler struct {
	queueCmds  commands.QueueCommands
	ticketCmds commands.TicketCommands
	q          queries.QueueQueries
}

func NewQueueHandler(queueCmds commands.QueueCommands, ticketCmds commands.TicketCommands, q queries.QueueQueries) *QueueHandler {
	return &QueueHandler{queueCmds: queueCmds, ticketCmds: ticketCmds, q: q}
}

// @Summary Get queue status
// @Description Counters, operating flag and the reason when the queue is not taking tickets
// @Tags queues
// @Produce json
// @Param id path string true "Queue ID"
// @Success 200 {object} resdto.QueueResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/queues/{id} [get]
func (h *QueueHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetStatus(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQueueView(view))
}

// @Summary Waiting-room display
// @Tags queues
// @Produce json
// @Param id path string true "Queue ID"
// @Success 200 {object} resdto.DisplayResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/queues/{id}/display [get]
func (h *QueueHandler) Display(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.Display(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDisplayView(view))
}

// @Summary Call next ticket
// @Description Cancels skipped tickets below the next number and calls the next waiting one
// @Tags business
// @Produce json
// @Security BearerAuth
// @Param id path string true "Queue ID"
// @Success 200 {object} resdto.CallNextResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/business/queues/{id}/call-next [post]
func (h *QueueHandler) CallNext(c *gin.Context) {
	member, ok := requireMember(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	result, err := h.ticketCmds.CallNext(c.Request.Context(), member, id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCallNextResult(result))
}

// @Summary Issue walk-in ticket
// @Tags business
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Queue ID"
// @Param request body reqdto.ManualTicketRequest true "Walk-in customer"
// @Success 201 {object} resdto.IssueTicketResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/business/queues/{id}/tickets [post]
func (h *QueueHandler) IssueManual(c *gin.Context) {
	member, ok := requireMember(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.ManualTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.ticketCmds.IssueManual(c.Request.Context(), member, id, req.CustomerName)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.Header("Location", "/api/tickets/"+result.TicketID.String())
	c.JSON(http.StatusCreated, resdto.FromIssueTicketResult(result))
}

// @Summary Set queue status
// @Tags business
// @Accept json
// @Security BearerAuth
// @Param id path string true "Queue ID"
// @Param request body reqdto.QueueStatusRequest true "open, paused or closed"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/business/queues/{id}/status [patch]
func (h *QueueHandler) SetStatus(c *gin.Context) {
	member, ok := requireMember(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.QueueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.queueCmds.SetStatus(c.Request.Context(), member, id, req.Status); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
