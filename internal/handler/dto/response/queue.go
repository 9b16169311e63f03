package response

import (
	"time"

	"queue-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type QueueResponse struct {
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

func FromQueueView(v *queries.QueueView) *QueueResponse {
	return copyInto[QueueResponse](v)
}

type DisplayTicketResponse struct {
	ID           uuid.UUID  `json:"id"`
	TicketNumber int        `json:"ticket_number"`
	Status       string     `json:"status"`
	CustomerName string     `json:"customer_name"`
	CreatedAt    time.Time  `json:"created_at"`
	CalledAt     *time.Time `json:"called_at,omitempty"`
}

type DisplayResponse struct {
	QueueID       uuid.UUID               `json:"queue_id"`
	QueueName     string                  `json:"queue_name"`
	CurrentNumber int                     `json:"current_number"`
	Waiting       []DisplayTicketResponse `json:"waiting"`
	Called        []DisplayTicketResponse `json:"called"`
}

func FromDisplayView(v *queries.DisplayView) *DisplayResponse {
	res := copyInto[DisplayResponse](v)
	if res.Waiting == nil {
		res.Waiting = []DisplayTicketResponse{}
	}
	if res.Called == nil {
		res.Called = []DisplayTicketResponse{}
	}
	return res
}
