package request

import (
	"queue-engine/internal/usecase/commands"
)

type IssueTicketRequest struct {
	CustomerName  string `json:"customer_name" binding:"required,max=200"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"omitempty,max=40"`
}

func (r *IssueTicketRequest) ToCommand() commands.IssueTicketRequest {
	return commands.IssueTicketRequest{
		Name:  r.CustomerName,
		Email: r.CustomerEmail,
		Phone: r.CustomerPhone,
	}
}

type ManualTicketRequest struct {
	CustomerName string `json:"customer_name" binding:"required,max=200"`
}

type CancelTicketRequest struct {
	CustomerEmail string `json:"customer_email" binding:"required,email"`
}

type TicketFeedbackRequest struct {
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback      string `json:"feedback" binding:"omitempty,max=1000"`
}

func (r *TicketFeedbackRequest) ToCommand() commands.RateRequest {
	return commands.RateRequest{
		Email:    r.CustomerEmail,
		Rating:   r.Rating,
		Feedback: r.Feedback,
	}
}

type QueueStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open paused closed"`
}
