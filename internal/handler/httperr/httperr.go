package httperr

import (
	"errors"
	"net/http"

	"queue-engine/internal/domain/queue"
	"queue-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type statusRule struct {
	sentinel error
	status   int
	message  string
}

var rules = []statusRule{
	{errs.ErrServiceNotFound, http.StatusNotFound, "Service not found"},
	{errs.ErrQueueNotFound, http.StatusNotFound, "Queue not found"},
	{errs.ErrTicketNotFound, http.StatusNotFound, "Ticket not found"},
	{errs.ErrAppointmentNotFound, http.StatusNotFound, "Appointment not found"},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{errs.ErrQueueNotOperating, http.StatusConflict, "Queue is not operating"},
	{errs.ErrDuplicateClaim, http.StatusConflict, "Already holding an active claim"},
	{errs.ErrSlotUnavailable, http.StatusConflict, "Slot unavailable"},
	{errs.ErrNoWaitingTickets, http.StatusConflict, "No waiting tickets"},
	{errs.ErrInvalidTransition, http.StatusConflict, "Invalid status transition"},
	{errs.ErrFeedbackNotAllowed, http.StatusConflict, "Feedback not allowed"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request"},
}

// Status maps a usecase error to its HTTP status, public message and optional detail.
func Status(err error) (int, string, any) {
	for _, r := range rules {
		if !errs.Is(err, r.sentinel) {
			continue
		}
		if r.sentinel == errs.ErrQueueNotOperating {
			var noe *queue.NotOperatingError
			if errors.As(err, &noe) {
				return r.status, r.message, gin.H{"reason": string(noe.Reason), "message": noe.Message}
			}
		}
		if r.status == http.StatusBadRequest {
			return r.status, r.message, err.Error()
		}
		return r.status, r.message, nil
	}
	return http.StatusInternalServerError, "Internal server error", nil
}

// Handle aborts the request with the status mapped from err.
func Handle(c *gin.Context, err error) {
	status, msg, detail := Status(err)
	AbortWithError(c, status, err, msg, detail)
}
