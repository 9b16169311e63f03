package schedule

import (
	"strconv"
	"strings"
	"time"
)

type RawBreak struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RawDay covers every shape a stored weekday entry has been written in.
type RawDay struct {
	Enabled    bool       `json:"enabled"`
	Start      string     `json:"start"`
	End        string     `json:"end"`
	BreakStart string     `json:"break_start,omitempty"`
	BreakEnd   string     `json:"break_end,omitempty"`
	Breaks     []RawBreak `json:"breaks,omitempty"`
}

// RawConfig is a service or queue schedule as persisted.
//   - WorkingHours: keyed by weekday name ("sunday".."saturday")
//   - CustomSchedules: keyed by weekday index ("0".."6"), inline breaks
//   - AvailableDays: weekday indices sharing StartTime/EndTime
type RawConfig struct {
	WorkingHours    map[string]RawDay
	CustomSchedules map[string]RawDay
	AvailableDays   []int
	StartTime       string
	EndTime         string
}

// Normalize converts a raw configuration into the canonical schedule.
// Precedence: WorkingHours, then CustomSchedules, then AvailableDays.
// Malformed entries never fail; they are skipped or flagged on the Day.
func Normalize(raw RawConfig) WeeklySchedule {
	switch {
	case len(raw.WorkingHours) > 0:
		return fromWorkingHours(raw.WorkingHours)
	case len(raw.CustomSchedules) > 0:
		return fromCustomSchedules(raw.CustomSchedules)
	case len(raw.AvailableDays) > 0:
		return fromAvailableDays(raw.AvailableDays, raw.StartTime, raw.EndTime)
	default:
		return WeeklySchedule{source: SourceNone}
	}
}

func fromWorkingHours(in map[string]RawDay) WeeklySchedule {
	days := make(map[time.Weekday]Day, len(in))
	for name, rd := range in {
		wd, ok := WeekdayFromName(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			continue
		}
		var breaks []Break
		if len(rd.Breaks) > 0 {
			for _, b := range rd.Breaks {
				if b.Start == "" || b.End == "" {
					continue
				}
				breaks = append(breaks, parseBreak(b.Start, b.End))
			}
		} else if rd.BreakStart != "" && rd.BreakEnd != "" {
			breaks = []Break{parseBreak(rd.BreakStart, rd.BreakEnd)}
		}
		days[wd] = parseDay(rd.Enabled, rd.Start, rd.End, breaks)
	}
	return NewWeeklySchedule(SourceWorkingHours, days)
}

func fromCustomSchedules(in map[string]RawDay) WeeklySchedule {
	days := make(map[time.Weekday]Day, len(in))
	for key, rd := range in {
		idx, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || idx < 0 || idx > 6 {
			continue
		}
		var breaks []Break
		if len(rd.Breaks) > 0 && rd.Breaks[0].Start != "" && rd.Breaks[0].End != "" {
			breaks = []Break{parseBreak(rd.Breaks[0].Start, rd.Breaks[0].End)}
		}
		days[time.Weekday(idx)] = buildDay(rd.Start, rd.End, breaks)
	}
	return NewWeeklySchedule(SourceCustomSchedules, days)
}

func fromAvailableDays(in []int, start, end string) WeeklySchedule {
	days := make(map[time.Weekday]Day, len(in))
	for _, idx := range in {
		if idx < 0 || idx > 6 {
			continue
		}
		days[time.Weekday(idx)] = buildDay(start, end, nil)
	}
	return NewWeeklySchedule(SourceAvailableDays, days)
}
