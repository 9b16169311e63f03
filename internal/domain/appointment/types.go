package appointment

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusInService Status = "in_service"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInService, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsActive reports whether the appointment still occupies its slot.
func (s Status) IsActive() bool {
	return s == StatusScheduled || s == StatusConfirmed || s == StatusInService
}

func (s Status) IsTerminal() bool {
	return !s.IsActive()
}

// ActiveStatuses occupy slots and count for the duplicate-claim guard.
var ActiveStatuses = []Status{StatusScheduled, StatusConfirmed, StatusInService}

// Action is a staff or customer driven status change.
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
	ActionNoShow   Action = "no-show"
	ActionCancel   Action = "cancel"
)

type rule struct {
	from []Status
	to   Status
}

var transitions = map[Action]rule{
	ActionConfirm:  {from: []Status{StatusScheduled}, to: StatusConfirmed},
	ActionStart:    {from: []Status{StatusConfirmed}, to: StatusInService},
	ActionComplete: {from: []Status{StatusInService}, to: StatusCompleted},
	ActionNoShow:   {from: []Status{StatusConfirmed}, to: StatusNoShow},
	ActionCancel:   {from: []Status{StatusScheduled, StatusConfirmed}, to: StatusCancelled},
}

func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := transitions[a]; !ok {
		return "", ErrUnknownAction
	}
	return a, nil
}
