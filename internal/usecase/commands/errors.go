package commands

import (
	"errors"

	"queue-engine/internal/domain/appointment"
	"queue-engine/internal/domain/claim"
	"queue-engine/internal/domain/customer"
	"queue-engine/internal/domain/feedback"
	"queue-engine/internal/domain/queue"
	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/service"
	"queue-engine/internal/domain/staff"
	"queue-engine/internal/domain/ticket"
	"queue-engine/internal/infra"
	"queue-engine/internal/pkg/errs"
)

// classify marks domain errors with the sentinel the handler layer maps to a status code.
// Errors that are not domain errors pass through unchanged.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, queue.ErrNotOperating),
		errors.Is(err, queue.ErrNotOpen),
		errors.Is(err, queue.ErrInactive):
		return errs.Mark(err, errs.ErrQueueNotOperating)
	case errors.Is(err, queue.ErrNoWaitingTickets):
		return errs.Mark(err, errs.ErrNoWaitingTickets)
	case errors.Is(err, claim.ErrDuplicate):
		return errs.Mark(err, errs.ErrDuplicateClaim)
	case errors.Is(err, service.ErrSlotUnavailable),
		errors.Is(err, service.ErrDayUnavailable),
		errors.Is(err, service.ErrInactive):
		return errs.Mark(err, errs.ErrSlotUnavailable)
	case errors.Is(err, ticket.ErrInvalidTransition),
		errors.Is(err, appointment.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errors.Is(err, ticket.ErrNotOwner),
		errors.Is(err, staff.ErrWrongBusiness):
		return errs.Mark(err, errs.ErrForbidden)
	case errors.Is(err, feedback.ErrNotRateable),
		errors.Is(err, feedback.ErrAlreadyReviewed):
		return errs.Mark(err, errs.ErrFeedbackNotAllowed)
	case isValidationError(err):
		return errs.Mark(err, errs.ErrDomainValidation)
	default:
		return err
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		customer.ErrInvalidEmail,
		customer.ErrNameRequired,
		customer.ErrNameTooLong,
		feedback.ErrInvalidRating,
		feedback.ErrCommentTooLong,
		schedule.ErrInvalidClockTime,
		schedule.ErrInvalidDate,
		schedule.ErrInvalidDuration,
		appointment.ErrDateRequired,
		appointment.ErrNoteTooLong,
		appointment.ErrUnknownAction,
		queue.ErrInvalidStatus,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// notFound converts a repository NOT_FOUND into the given sentinel.
func notFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
