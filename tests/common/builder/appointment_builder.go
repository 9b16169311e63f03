//go:build unit || e2e

package builder

import (
	"time"

	"queue-engine/internal/domain/appointment"
	"queue-engine/internal/domain/customer"
	"queue-engine/internal/domain/schedule"
	reqdto "queue-engine/internal/handler/dto/request"
	"queue-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID               uuid.UUID
	BusinessID       uuid.UUID
	ServiceID        uuid.UUID
	ServiceName      string
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	Date             schedule.Date
	StartTime        string
	Duration         int
	Buffer           int
	Note             string
	BusinessResponse string
	Token            appointment.ManagementToken
	Status           appointment.Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Now()
	return &AppointmentBuilder{
		ID:            uuid.New(),
		BusinessID:    uuid.New(),
		ServiceID:     uuid.New(),
		ServiceName:   "Haircut",
		CustomerName:  "Ana Souza",
		CustomerEmail: "ana@example.com",
		CustomerPhone: "+5511999990000",
		Date:          schedule.MustDate("2025-03-10"),
		StartTime:     "09:30",
		Duration:      30,
		Token:         "test-management-token",
		Status:        appointment.StatusScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (a *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(a)
	return a
}

func (a *AppointmentBuilder) WithStatus(s appointment.Status) *AppointmentBuilder {
	a.Status = s
	return a
}

// Build methods
func (a *AppointmentBuilder) BuildDomain() *appointment.Appointment {
	return appointment.Reconstruct(
		a.ID, a.BusinessID, a.ServiceID,
		customer.ReconstructContact(a.CustomerName, a.CustomerEmail, a.CustomerPhone),
		appointment.Details{
			ServiceName:      a.ServiceName,
			Date:             a.Date,
			StartTime:        schedule.MustClockTime(a.StartTime),
			Duration:         a.Duration,
			Buffer:           a.Buffer,
			Note:             a.Note,
			BusinessResponse: a.BusinessResponse,
		},
		a.Token, a.Status, nil,
		a.CreatedAt, a.UpdatedAt,
	)
}

func (a *AppointmentBuilder) BuildBookParams() appointment.BookParams {
	return appointment.BookParams{
		BusinessID:  a.BusinessID,
		ServiceID:   a.ServiceID,
		ServiceName: a.ServiceName,
		Customer:    customer.ReconstructContact(a.CustomerName, a.CustomerEmail, a.CustomerPhone),
		Date:        a.Date,
		StartTime:   schedule.MustClockTime(a.StartTime),
		Duration:    a.Duration,
		Buffer:      a.Buffer,
		Note:        a.Note,
	}
}

func (a *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		ServiceID:     a.ServiceID,
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		CustomerPhone: a.CustomerPhone,
		Date:          a.Date.String(),
		StartTime:     a.StartTime,
		Note:          a.Note,
	}
}

func (a *AppointmentBuilder) BuildViewQuery() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:               a.ID,
		BusinessID:       a.BusinessID,
		ServiceID:        a.ServiceID,
		ServiceName:      a.ServiceName,
		CustomerName:     a.CustomerName,
		CustomerEmail:    a.CustomerEmail,
		CustomerPhone:    a.CustomerPhone,
		Date:             a.Date.String(),
		StartTime:        a.StartTime,
		Duration:         a.Duration,
		Buffer:           a.Buffer,
		Note:             a.Note,
		BusinessResponse: a.BusinessResponse,
		Status:           a.Status.String(),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
