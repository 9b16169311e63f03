package shared

import (
	"context"
	"time"

	"queue-engine/internal/domain/appointment"
	"queue-engine/internal/domain/queue"
	"queue-engine/internal/domain/ticket"

	"github.com/google/uuid"
)

const (
	TopicTicketIssued             = "ticket.issued"
	TopicTicketCalled             = "ticket.called"
	TopicTicketAdvanceNotice      = "ticket.advance_notice"
	TopicTicketStatusChanged      = "ticket.status_changed"
	TopicQueueUpdated             = "queue.updated"
	TopicAppointmentCreated       = "appointment.created"
	TopicAppointmentStatusChanged = "appointment.status_changed"
)

// Event is appended to the outbox inside the transaction that caused it.
type Event struct {
	Topic       string
	AggregateID uuid.UUID
	Payload     any
}

type TicketEventPayload struct {
	TicketID      uuid.UUID `json:"ticket_id"`
	QueueID       uuid.UUID `json:"queue_id"`
	BusinessID    uuid.UUID `json:"business_id"`
	TicketNumber  int       `json:"ticket_number"`
	Status        string    `json:"status"`
	Reason        string    `json:"reason,omitempty"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type QueueEventPayload struct {
	QueueID          uuid.UUID `json:"queue_id"`
	BusinessID       uuid.UUID `json:"business_id"`
	Status           string    `json:"status"`
	CurrentNumber    int       `json:"current_number"`
	LastIssuedNumber int       `json:"last_issued_number"`
	OperatingDate    string    `json:"operating_date"`
	OccurredAt       time.Time `json:"occurred_at"`
}

type AppointmentEventPayload struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	BusinessID    uuid.UUID `json:"business_id"`
	ServiceID     uuid.UUID `json:"service_id"`
	Status        string    `json:"status"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	CustomerEmail string    `json:"customer_email"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func TicketEvent(topic string, t *ticket.Ticket, reason string, now time.Time) Event {
	return Event{
		Topic:       topic,
		AggregateID: t.ID(),
		Payload: TicketEventPayload{
			TicketID:      t.ID(),
			QueueID:       t.QueueID(),
			BusinessID:    t.BusinessID(),
			TicketNumber:  t.Number(),
			Status:        t.Status().String(),
			Reason:        reason,
			CustomerEmail: t.Customer().Email().Value(),
			OccurredAt:    now,
		},
	}
}

func QueueEvent(q *queue.Queue, now time.Time) Event {
	return Event{
		Topic:       TopicQueueUpdated,
		AggregateID: q.ID(),
		Payload: QueueEventPayload{
			QueueID:          q.ID(),
			BusinessID:       q.BusinessID(),
			Status:           q.Status().String(),
			CurrentNumber:    q.CurrentNumber(),
			LastIssuedNumber: q.LastIssuedNumber(),
			OperatingDate:    q.OperatingDate().String(),
			OccurredAt:       now,
		},
	}
}

func AppointmentEvent(topic string, a *appointment.Appointment, now time.Time) Event {
	return Event{
		Topic:       topic,
		AggregateID: a.ID(),
		Payload: AppointmentEventPayload{
			AppointmentID: a.ID(),
			BusinessID:    a.BusinessID(),
			ServiceID:     a.ServiceID(),
			Status:        a.Status().String(),
			Date:          a.Date().String(),
			StartTime:     a.StartTime().String(),
			CustomerEmail: a.Customer().Email().Value(),
			OccurredAt:    now,
		},
	}
}

// EventPublisher delivers a stored event to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
