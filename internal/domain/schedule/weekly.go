package schedule

import (
	"maps"
	"time"
)

// Source tags which legacy encoding a WeeklySchedule was built from.
type Source string

const (
	SourceNone            Source = "none"
	SourceWorkingHours    Source = "working_hours"
	SourceCustomSchedules Source = "custom_schedules"
	SourceAvailableDays   Source = "available_days"
)

const (
	DefaultStart = "09:00"
	DefaultEnd   = "18:00"
)

var weekdayNames = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

func WeekdayFromName(name string) (time.Weekday, bool) {
	for i, n := range weekdayNames {
		if n == name {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

type Break struct {
	Start ClockTime
	End   ClockTime
	// Malformed is set when either bound could not be parsed.
	Malformed bool
}

func (b Break) Contains(t ClockTime) bool {
	return !b.Malformed && b.Start <= t && t < b.End
}

type Day struct {
	Enabled bool
	Start   ClockTime
	End     ClockTime
	Breaks  []Break
	// Malformed is set when start or end could not be parsed.
	Malformed bool
}

func (d Day) InBreak(t ClockTime) bool {
	for _, b := range d.Breaks {
		if b.Contains(t) {
			return true
		}
	}
	return false
}

// WeeklySchedule is the canonical per-weekday schedule.
type WeeklySchedule struct {
	source Source
	days   map[time.Weekday]Day
}

func NewWeeklySchedule(source Source, days map[time.Weekday]Day) WeeklySchedule {
	if len(days) == 0 {
		return WeeklySchedule{source: SourceNone}
	}
	return WeeklySchedule{source: source, days: maps.Clone(days)}
}

func (w WeeklySchedule) Source() Source {
	if w.source == "" {
		return SourceNone
	}
	return w.source
}

// Defined reports whether any weekday entry exists.
func (w WeeklySchedule) Defined() bool {
	return len(w.days) > 0
}

func (w WeeklySchedule) Day(d time.Weekday) (Day, bool) {
	day, ok := w.days[d]
	return day, ok
}

func (w WeeklySchedule) Days() map[time.Weekday]Day {
	return maps.Clone(w.days)
}

// FallbackDay is used when no weekly schedule exists at all.
func FallbackDay(start, end string) Day {
	return buildDay(start, end, nil)
}

func buildDay(start, end string, breaks []Break) Day {
	if start == "" {
		start = DefaultStart
	}
	if end == "" {
		end = DefaultEnd
	}
	return parseDay(true, start, end, breaks)
}

func parseDay(enabled bool, start, end string, breaks []Break) Day {
	day := Day{Enabled: enabled, Breaks: breaks}
	s, errStart := ParseClockTime(start)
	e, errEnd := ParseClockTime(end)
	if errStart != nil || errEnd != nil {
		day.Malformed = true
		return day
	}
	day.Start, day.End = s, e
	return day
}

func parseBreak(start, end string) Break {
	s, errStart := ParseClockTime(start)
	e, errEnd := ParseClockTime(end)
	if errStart != nil || errEnd != nil {
		return Break{Malformed: true}
	}
	return Break{Start: s, End: e}
}
