package converter

import (
	"encoding/json"
	"log/slog"

	"queue-engine/internal/domain/schedule"
)

// decodeDays reads a JSONB weekday map. Unreadable documents count as absent.
func decodeDays(column string, raw []byte) map[string]schedule.RawDay {
	if len(raw) == 0 {
		return nil
	}
	var days map[string]schedule.RawDay
	if err := json.Unmarshal(raw, &days); err != nil {
		slog.Warn("ignoring unreadable schedule column", "column", column, "error", err.Error())
		return nil
	}
	return days
}

func intsFromInt32(in []int32) []int {
	if len(in) == 0 {
		return nil
	}
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
