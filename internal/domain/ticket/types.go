package ticket

type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusCalled    Status = "called"
	StatusServing   Status = "serving"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusCalled, StatusServing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the ticket still holds a place in its queue.
func (s Status) IsActive() bool {
	return s == StatusWaiting || s == StatusCalled || s == StatusServing
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ActiveStatuses are the statuses counted by the duplicate-claim guard.
var ActiveStatuses = []Status{StatusWaiting, StatusCalled, StatusServing}

// DisplayStatuses are shown on the public waiting-room screen.
var DisplayStatuses = []Status{StatusWaiting, StatusCalled}

type action string

const (
	actionCall     action = "call"
	actionServe    action = "start_serving"
	actionComplete action = "complete"
	actionCancel   action = "cancel"
)

var transitions = map[action][]Status{
	actionCall:     {StatusWaiting},
	actionServe:    {StatusCalled},
	actionComplete: {StatusServing},
	actionCancel:   {StatusWaiting, StatusCalled},
}

func allowed(a action, from Status) bool {
	for _, s := range transitions[a] {
		if s == from {
			return true
		}
	}
	return false
}

// SweepStatuses are the statuses a monitor pass inspects.
var SweepStatuses = []Status{StatusWaiting, StatusCalled, StatusServing}

// ExpiryReason records why the monitor cancelled a ticket.
type ExpiryReason string

const (
	ExpirySkipped   ExpiryReason = "skipped"
	ExpiryDayEnded  ExpiryReason = "day_ended"
	ExpiryNoShow    ExpiryReason = "tolerance_exceeded"
	ExpiryNotNeeded ExpiryReason = ""
)
