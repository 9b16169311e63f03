package queue

import (
	"errors"
	"time"

	"queue-engine/internal/domain/schedule"
)

// CheckOperating returns a *NotOperatingError when the queue cannot take tickets at now.
// now must already be converted to the business time zone.
func (q *Queue) CheckOperating(now time.Time) error {
	if err := q.checkHours(now); err != nil {
		return err
	}
	if q.Waiting() >= q.settings.MaxCapacity {
		return notOperating(ReasonFull, "queue is full (%d waiting)", q.Waiting())
	}
	return nil
}

// Operating reports the operating state for display.
func (q *Queue) Operating(now time.Time) (bool, Reason) {
	err := q.CheckOperating(now)
	if err == nil {
		return true, ""
	}
	var noe *NotOperatingError
	if errors.As(err, &noe) {
		return false, noe.Reason
	}
	return false, ReasonClosed
}

func (q *Queue) checkHours(now time.Time) error {
	if !q.isActive {
		return notOperating(ReasonClosed, "queue is inactive")
	}
	if q.status != StatusOpen {
		if q.status == StatusPaused {
			return notOperating(ReasonPaused, "queue is paused")
		}
		return notOperating(ReasonClosed, "queue is closed")
	}
	if !q.workingHours.Defined() {
		return notOperating(ReasonNoSchedule, "working hours are not configured")
	}

	today, ok := q.workingHours.Day(now.Weekday())
	if !ok || !today.Enabled {
		return notOperating(ReasonClosedToday, "queue is closed today")
	}
	if today.Malformed {
		return notOperating(ReasonMisconfigured, "today's hours are misconfigured")
	}

	current := schedule.ClockTimeOf(now)
	start, end := today.Start, today.End

	if end <= start {
		// hours run past midnight; end 00:00 means open until the end of the day
		if end == 0 {
			if current < start {
				return notOperating(ReasonNotOpenYet, "queue opens at %s", start)
			}
		} else if current < start && current >= end {
			return notOperating(ReasonAlreadyClosed, "queue closed at %s", end)
		}
	} else {
		if current < start {
			return notOperating(ReasonNotOpenYet, "queue opens at %s", start)
		}
		if current >= end {
			return notOperating(ReasonAlreadyClosed, "queue closed at %s", end)
		}
	}

	// overnight hours are checked on an extended day: clock times before the opening
	// time belong to the stretch after midnight
	overnight := end <= start
	effectiveEnd := end
	if overnight {
		effectiveEnd = end + schedule.MinutesPerDay
	}
	extend := func(t schedule.ClockTime) schedule.ClockTime {
		if overnight && t < start {
			return t + schedule.MinutesPerDay
		}
		return t
	}

	at := extend(current)
	for _, b := range today.Breaks {
		if b.Malformed {
			return notOperating(ReasonBreakMisconfigured, "break is misconfigured")
		}
		bs, be := extend(b.Start), extend(b.End)
		if be <= bs {
			return notOperating(ReasonBreakMisconfigured, "break is misconfigured")
		}
		if bs < start || be > effectiveEnd {
			return notOperating(ReasonBreakMisconfigured, "break lies outside working hours")
		}
		if bs <= at && at < be {
			return notOperating(ReasonOnBreak, "queue is on break until %s", b.End)
		}
	}
	return nil
}
