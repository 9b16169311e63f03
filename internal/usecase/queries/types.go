package queries

import (
	"time"

	"github.com/google/uuid"
)

// BreakView is a pause inside working hours
type BreakView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayView is one weekday of a normalized schedule
type DayView struct {
	Weekday   string      `json:"weekday"`
	Enabled   bool        `json:"enabled"`
	Start     string      `json:"start,omitempty"`
	End       string      `json:"end,omitempty"`
	Breaks    []BreakView `json:"breaks"`
	Malformed bool        `json:"malformed,omitempty"`
}

// ScheduleView is the canonical weekly schedule of a service with the encoding it came from
type ScheduleView struct {
	ServiceID uuid.UUID `json:"service_id"`
	Source    string    `json:"source"`
	Days      []DayView `json:"days"`
}

type SlotView struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// AvailabilityView lists the bookable start times of one calendar day
type AvailabilityView struct {
	ServiceID    uuid.UUID  `json:"service_id"`
	Date         string     `json:"date"`
	DayAvailable bool       `json:"day_available"`
	Duration     int        `json:"duration"`
	Buffer       int        `json:"buffer"`
	Slots        []SlotView `json:"slots"`
}

// QueueView is the public status of a queue
type QueueView struct {
	ID                 uuid.UUID `json:"id"`
	BusinessID         uuid.UUID `json:"business_id"`
	Name               string    `json:"name"`
	Status             string    `json:"status"`
	CurrentNumber      int       `json:"current_number"`
	LastIssuedNumber   int       `json:"last_issued_number"`
	Waiting            int       `json:"waiting"`
	AverageServiceTime int       `json:"average_service_time"`
	OperatingDate      string    `json:"operating_date"`
	IsOperating        bool      `json:"is_operating"`
	Reason             string    `json:"reason,omitempty"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type DisplayTicket struct {
	ID           uuid.UUID  `json:"id"`
	TicketNumber int        `json:"ticket_number"`
	Status       string     `json:"status"`
	CustomerName string     `json:"customer_name"`
	CreatedAt    time.Time  `json:"created_at"`
	CalledAt     *time.Time `json:"called_at,omitempty"`
}

// DisplayView feeds the public waiting-room screen
type DisplayView struct {
	QueueID       uuid.UUID       `json:"queue_id"`
	QueueName     string          `json:"queue_name"`
	CurrentNumber int             `json:"current_number"`
	Waiting       []DisplayTicket `json:"waiting"`
	Called        []DisplayTicket `json:"called"`
}

// TicketView carries the live position of a ticket, not the one recorded at issuance
type TicketView struct {
	ID                   uuid.UUID  `json:"id"`
	QueueID              uuid.UUID  `json:"queue_id"`
	BusinessID           uuid.UUID  `json:"business_id"`
	QueueName            string     `json:"queue_name"`
	TicketNumber         int        `json:"ticket_number"`
	OperatingDate        string     `json:"operating_date"`
	Status               string     `json:"status"`
	CustomerName         string     `json:"customer_name"`
	IsManual             bool       `json:"is_manual"`
	CurrentNumber        int        `json:"current_number"`
	Position             int        `json:"position"`
	EstimatedWaitMinutes int        `json:"estimated_wait_minutes"`
	CreatedAt            time.Time  `json:"created_at"`
	CalledAt             *time.Time `json:"called_at,omitempty"`
	ServingStartedAt     *time.Time `json:"serving_started_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
}

type AppointmentView struct {
	ID               uuid.UUID `json:"id"`
	BusinessID       uuid.UUID `json:"business_id"`
	ServiceID        uuid.UUID `json:"service_id"`
	ServiceName      string    `json:"service_name"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	CustomerPhone    string    `json:"customer_phone,omitempty"`
	Date             string    `json:"date"`
	StartTime        string    `json:"start_time"`
	Duration         int       `json:"duration"`
	Buffer           int       `json:"buffer"`
	Note             string    `json:"note,omitempty"`
	BusinessResponse string    `json:"business_response,omitempty"`
	Status           string    `json:"status"`
	Rating           *int      `json:"rating,omitempty"`
	Feedback         string    `json:"feedback,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AppointmentFilter narrows the staff appointment list
type AppointmentFilter struct {
	Date *string
}
