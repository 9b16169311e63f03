package response

import (
	"time"

	"queue-engine/internal/usecase/commands"
	"queue-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID               uuid.UUID `json:"id"`
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

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return copyInto[AppointmentResponse](v)
}

type AppointmentListResponse struct {
	Items      []*AppointmentResponse `json:"items"`
	NextCursor string                 `json:"next_cursor,omitempty"`
}

func FromAppointmentList(views []*queries.AppointmentView, next *queries.Cursor) *AppointmentListResponse {
	res := &AppointmentListResponse{Items: make([]*AppointmentResponse, len(views))}
	for i, v := range views {
		res.Items[i] = FromAppointmentView(v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

// CreateAppointmentResponse is the only response that carries the management token.
type CreateAppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	ManagementToken string    `json:"management_token"`
	Status          string    `json:"status"`
	Date            string    `json:"date"`
	StartTime       string    `json:"start_time"`
}

func FromCreateAppointmentResult(r *commands.CreateAppointmentResult) *CreateAppointmentResponse {
	return copyInto[CreateAppointmentResponse](r)
}
