package response

import (
	"time"

	"queue-engine/internal/usecase/commands"
	"queue-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketResponse struct {
	ID                   uuid.UUID  `json:"id"`
	QueueID              uuid.UUID  `json:"queue_id"`
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

func FromTicketView(v *queries.TicketView) *TicketResponse {
	return copyInto[TicketResponse](v)
}

type IssueTicketResponse struct {
	TicketID             uuid.UUID `json:"ticket_id"`
	QueueID              uuid.UUID `json:"queue_id"`
	TicketNumber         int       `json:"ticket_number"`
	OperatingDate        string    `json:"operating_date"`
	Position             int       `json:"position"`
	EstimatedWaitMinutes int       `json:"estimated_wait_minutes"`
}

func FromIssueTicketResult(r *commands.IssueTicketResult) *IssueTicketResponse {
	return copyInto[IssueTicketResponse](r)
}

type CallNextResponse struct {
	TicketID      uuid.UUID `json:"ticket_id"`
	TicketNumber  int       `json:"ticket_number"`
	CurrentNumber int       `json:"current_number"`
	Cancelled     int       `json:"cancelled"`
}

func FromCallNextResult(r *commands.CallNextResult) *CallNextResponse {
	return copyInto[CallNextResponse](r)
}
