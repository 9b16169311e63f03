//go:build unit || e2e

package builder

import (
	"time"

	"queue-engine/internal/domain/customer"
	"queue-engine/internal/domain/feedback"
	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/ticket"
	reqdto "queue-engine/internal/handler/dto/request"
	"queue-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketBuilder struct {
	ID            uuid.UUID
	QueueID       uuid.UUID
	BusinessID    uuid.UUID
	Number        int
	OperatingDate schedule.Date
	Status        ticket.Status
	Customer      customer.Contact
	IsManual      bool
	Position      int
	EstimatedWait int
	Feedback      *feedback.Feedback
	CreatedAt     time.Time
	CalledAt      *time.Time
	ServingAt     *time.Time
	UpdatedAt     time.Time
}

func NewTicketBuilder() *TicketBuilder {
	now := time.Now()
	return &TicketBuilder{
		ID:            uuid.New(),
		QueueID:       uuid.New(),
		BusinessID:    uuid.New(),
		Number:        1,
		OperatingDate: schedule.DateOf(now),
		Status:        ticket.StatusWaiting,
		Customer:      customer.ReconstructContact("Ana Souza", "ana@example.com", "+5511999990000"),
		Position:      1,
		EstimatedWait: 10,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (t *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(t)
	return t
}

func (t *TicketBuilder) WithStatus(s ticket.Status) *TicketBuilder {
	t.Status = s
	return t
}

func (t *TicketBuilder) WithCalledAt(at time.Time) *TicketBuilder {
	t.Status = ticket.StatusCalled
	t.CalledAt = &at
	return t
}

func (t *TicketBuilder) WithServingStartedAt(at time.Time) *TicketBuilder {
	t.Status = ticket.StatusServing
	t.ServingAt = &at
	return t
}

// Build methods
func (t *TicketBuilder) BuildDomain() *ticket.Ticket {
	return ticket.Reconstruct(
		t.ID, t.QueueID, t.BusinessID,
		t.Number, t.OperatingDate, t.Status, t.Customer, t.IsManual,
		t.Position, t.EstimatedWait, t.Feedback,
		ticket.Timestamps{CreatedAt: t.CreatedAt, CalledAt: t.CalledAt, ServingStartedAt: t.ServingAt, UpdatedAt: t.UpdatedAt},
	)
}

func (t *TicketBuilder) BuildIssueParams() ticket.IssueParams {
	return ticket.IssueParams{
		QueueID:       t.QueueID,
		BusinessID:    t.BusinessID,
		Number:        t.Number,
		OperatingDate: t.OperatingDate,
		Position:      t.Position,
		EstimatedWait: t.EstimatedWait,
		Customer:      t.Customer,
		IsManual:      t.IsManual,
	}
}

func (t *TicketBuilder) BuildIssueRequestDTO() reqdto.IssueTicketRequest {
	return reqdto.IssueTicketRequest{
		CustomerName:  t.Customer.Name(),
		CustomerEmail: t.Customer.Email().Value(),
		CustomerPhone: t.Customer.Phone(),
	}
}

func (t *TicketBuilder) BuildViewQuery() *queries.TicketView {
	return &queries.TicketView{
		ID:                   t.ID,
		QueueID:              t.QueueID,
		BusinessID:           t.BusinessID,
		QueueName:            "Front desk",
		TicketNumber:         t.Number,
		OperatingDate:        t.OperatingDate.String(),
		Status:               t.Status.String(),
		CustomerName:         t.Customer.Name(),
		IsManual:             t.IsManual,
		Position:             t.Position,
		EstimatedWaitMinutes: t.EstimatedWait,
		CreatedAt:            t.CreatedAt,
		CalledAt:             t.CalledAt,
	}
}
