package queue

import (
	"errors"
	"fmt"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusPaused Status = "paused"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusPaused, StatusClosed:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Reason explains why a queue is not accepting tickets.
type Reason string

const (
	ReasonPaused             Reason = "paused"
	ReasonClosed             Reason = "closed"
	ReasonNoSchedule         Reason = "no_schedule"
	ReasonClosedToday        Reason = "closed_today"
	ReasonMisconfigured      Reason = "misconfigured"
	ReasonNotOpenYet         Reason = "not_open_yet"
	ReasonAlreadyClosed      Reason = "already_closed"
	ReasonBreakMisconfigured Reason = "break_misconfigured"
	ReasonOnBreak            Reason = "on_break"
	ReasonFull               Reason = "full"
)

var ErrNotOperating = errors.New("queue is not operating")

// NotOperatingError carries the reason a ticket could not be issued.
type NotOperatingError struct {
	Reason  Reason
	Message string
}

func (e *NotOperatingError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("queue is not operating: %s", e.Reason)
	}
	return fmt.Sprintf("queue is not operating: %s", e.Message)
}

func (e *NotOperatingError) Unwrap() error {
	return ErrNotOperating
}

func notOperating(reason Reason, format string, args ...any) *NotOperatingError {
	return &NotOperatingError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Allocation is the outcome of issuing one ticket number.
type Allocation struct {
	Number               int
	Position             int
	EstimatedWaitMinutes int
}
