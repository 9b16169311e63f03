package api

import (
	"context"
	"net/http"

	"queue-engine/internal/domain/staff"
	reqdto "queue-engine/internal/handler/dto/request"
	resdto "queue-engine/internal/handler/dto/response"
	"queue-engine/internal/handler/httperr"
	"queue-engine/internal/usecase/commands"
	"queue-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TicketHandler struct {
	cmds commands.TicketCommands
	q    queries.TicketQueries
}

func NewTicketHandler(cmds commands.TicketCommands, q queries.TicketQueries) *TicketHandler {
	return &TicketHandler{cmds: cmds, q: q}
}

// @Summary Take a ticket
// @Description Issues the next number of the queue's operating day
// @Tags queues
// @Accept json
// @Produce json
// @Param id path string true "Queue ID"
// @Param request body reqdto.IssueTicketRequest true "Customer"
// @Success 201 {object} resdto.IssueTicketResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/queues/{id}/tickets [post]
func (h *TicketHandler) Issue(c *gin.Context) {
	queueID, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.IssueTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Issue(c.Request.Context(), queueID, req.ToCommand())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.Header("Location", "/api/tickets/"+result.TicketID.String())
	c.JSON(http.StatusCreated, resdto.FromIssueTicketResult(result))
}

// @Summary Get ticket
// @Description Ticket with its live position and estimated wait
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}

// @Summary Cancel own ticket
// @Tags tickets
// @Accept json
// @Param id path string true "Ticket ID"
// @Param request body reqdto.CancelTicketRequest true "Email the ticket was issued to"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/tickets/{id}/cancel [post]
func (h *TicketHandler) CustomerCancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CancelTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.CustomerCancel(c.Request.Context(), id, req.CustomerEmail); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Rate ticket
// @Tags tickets
// @Accept json
// @Param id path string true "Ticket ID"
// @Param request body reqdto.TicketFeedbackRequest true "Rating request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/tickets/{id}/feedback [post]
func (h *TicketHandler) Feedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.TicketFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Rate(c.Request.Context(), id, req.ToCommand()); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Start serving ticket
// @Tags business
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/business/tickets/{id}/start [post]
func (h *TicketHandler) Start(c *gin.Context) {
	h.staffTransition(c, h.cmds.Start)
}

// @Summary Complete ticket
// @Tags business
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/business/tickets/{id}/complete [post]
func (h *TicketHandler) Complete(c *gin.Context) {
	h.staffTransition(c, h.cmds.Complete)
}

// @Summary Cancel ticket
// @Tags business
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/business/tickets/{id}/cancel [post]
func (h *TicketHandler) Cancel(c *gin.Context) {
	h.staffTransition(c, h.cmds.Cancel)
}

func (h *TicketHandler) staffTransition(c *gin.Context, apply func(ctx context.Context, member staff.Member, ticketID uuid.UUID) error) {
	member, ok := requireMember(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := apply(c.Request.Context(), member, id); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
