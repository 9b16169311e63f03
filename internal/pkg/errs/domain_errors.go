package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Lookup errors
	ErrServiceNotFound     = errors.New("service not found")
	ErrQueueNotFound       = errors.New("queue not found")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrAppointmentNotFound = errors.New("appointment not found")

	// Claim errors
	ErrDuplicateClaim     = errors.New("duplicate claim")
	ErrQueueNotOperating  = errors.New("queue is not operating")
	ErrSlotUnavailable    = errors.New("slot unavailable")
	ErrNoWaitingTickets   = errors.New("no waiting tickets")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrForbidden          = errors.New("forbidden")
	ErrFeedbackNotAllowed = errors.New("feedback not allowed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
