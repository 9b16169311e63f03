package schedule

import (
	"errors"
	"time"
)

var ErrInvalidDuration = errors.New("slot duration must be positive")

// Occupied is an existing booking: its start and the minutes it blocks (duration + buffer).
type Occupied struct {
	Start ClockTime
	Width int
}

type Slot struct {
	Time      ClockTime
	Available bool
}

// GenerateSlots walks [day.Start, day.End) in steps of duration+buffer.
// Times inside a break are dropped; times overlapping an occupied range are listed as unavailable.
// Past times are not filtered.
func GenerateSlots(day Day, duration, buffer int, occupied []Occupied) ([]Slot, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	interval := duration + buffer
	if interval <= 0 {
		return nil, ErrInvalidDuration
	}

	slots := make([]Slot, 0)
	if day.Malformed || !day.Enabled {
		return slots, nil
	}

	for t := day.Start; t < day.End; t += ClockTime(interval) {
		if day.InBreak(t) {
			continue
		}
		slots = append(slots, Slot{Time: t, Available: !overlapsAny(t, interval, occupied)})
	}
	return slots, nil
}

func overlapsAny(start ClockTime, width int, occupied []Occupied) bool {
	for _, o := range occupied {
		if Overlaps(start.Minutes(), width, o.Start.Minutes(), o.Width) {
			return true
		}
	}
	return false
}

// Overlaps reports whether [aStart, aStart+aWidth) and [bStart, bStart+bWidth) intersect.
func Overlaps(aStart, aWidth, bStart, bWidth int) bool {
	return aStart < bStart+bWidth && bStart < aStart+aWidth
}

// TimesOverlap is Overlaps over instants.
func TimesOverlap(aStart time.Time, aWidth time.Duration, bStart time.Time, bWidth time.Duration) bool {
	return aStart.Before(bStart.Add(bWidth)) && bStart.Before(aStart.Add(aWidth))
}
