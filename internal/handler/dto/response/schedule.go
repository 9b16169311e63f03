package response

import (
	"queue-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BreakResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DayResponse struct {
	Weekday   string          `json:"weekday"`
	Enabled   bool            `json:"enabled"`
	Start     string          `json:"start,omitempty"`
	End       string          `json:"end,omitempty"`
	Breaks    []BreakResponse `json:"breaks"`
	Malformed bool            `json:"malformed,omitempty"`
}

type ScheduleResponse struct {
	ServiceID uuid.UUID     `json:"service_id"`
	Source    string        `json:"source"`
	Days      []DayResponse `json:"days"`
}

func FromScheduleView(v *queries.ScheduleView) *ScheduleResponse {
	return copyInto[ScheduleResponse](v)
}

type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	ServiceID    uuid.UUID      `json:"service_id"`
	Date         string         `json:"date"`
	DayAvailable bool           `json:"day_available"`
	Duration     int            `json:"duration"`
	Buffer       int            `json:"buffer"`
	Slots        []SlotResponse `json:"slots"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	res := copyInto[AvailabilityResponse](v)
	if res.Slots == nil {
		res.Slots = []SlotResponse{}
	}
	return res
}
