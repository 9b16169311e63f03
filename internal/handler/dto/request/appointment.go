package request

import (
	"queue-engine/internal/usecase/commands"
	"queue-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ServiceID     uuid.UUID `json:"service_id" binding:"required"`
	CustomerName  string    `json:"customer_name" binding:"required,max=200"`
	CustomerEmail string    `json:"customer_email" binding:"required,email"`
	CustomerPhone string    `json:"customer_phone" binding:"omitempty,max=40"`
	Date          string    `json:"date" binding:"required"`
	StartTime     string    `json:"start_time" binding:"required"`
	Note          string    `json:"note" binding:"omitempty,max=1000"`
}

func (r *CreateAppointmentRequest) ToCommand() commands.CreateAppointmentRequest {
	return commands.CreateAppointmentRequest{
		ServiceID: r.ServiceID,
		Name:      r.CustomerName,
		Email:     r.CustomerEmail,
		Phone:     r.CustomerPhone,
		Date:      r.Date,
		StartTime: r.StartTime,
		Note:      r.Note,
	}
}

type AppointmentFeedbackRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback string `json:"feedback" binding:"omitempty,max=1000"`
}

// AppointmentTransitionRequest is optional on every staff transition.
type AppointmentTransitionRequest struct {
	BusinessResponse string `json:"business_response" binding:"omitempty,max=1000"`
}

type ListAppointmentsQuery struct {
	Date  string `form:"date"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
	After string `form:"after"`
}

func (q *ListAppointmentsQuery) Filter() queries.AppointmentFilter {
	if q.Date == "" {
		return queries.AppointmentFilter{}
	}
	date := q.Date
	return queries.AppointmentFilter{Date: &date}
}

func (q *ListAppointmentsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}
