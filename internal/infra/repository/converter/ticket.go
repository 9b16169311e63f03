package converter

import (
	"queue-engine/internal/domain/customer"
	"queue-engine/internal/domain/ticket"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/pgconv"
)

func TicketFromRow(row sqlc.Tickets) *ticket.Ticket {
	contact := customer.ReconstructContact(
		row.CustomerName,
		pgconv.StringFromPgtype(row.CustomerEmail),
		pgconv.StringFromPgtype(row.CustomerPhone),
	)
	return ticket.Reconstruct(
		row.ID,
		row.QueueID,
		row.BusinessID,
		int(row.TicketNumber),
		pgconv.DateFromPgtype(row.OperatingDate),
		ticket.Status(row.Status),
		contact,
		row.IsManual,
		int(row.Position),
		int(row.EstimatedWaitMinutes),
		feedbackFromColumns(row.Rating, row.Feedback),
		ticket.Timestamps{
			CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
			CalledAt:         pgconv.TimePtrFromPgtype(row.CalledAt),
			ServingStartedAt: pgconv.TimePtrFromPgtype(row.ServingStartedAt),
			CompletedAt:      pgconv.TimePtrFromPgtype(row.CompletedAt),
			UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
		},
	)
}

func TicketToCreateParams(t *ticket.Ticket) sqlc.CreateTicketParams {
	c := t.Customer()
	return sqlc.CreateTicketParams{
		ID:                   t.ID(),
		QueueID:              t.QueueID(),
		BusinessID:           t.BusinessID(),
		TicketNumber:         pgconv.IntToInt32(t.Number()),
		OperatingDate:        pgconv.DateToPgtype(t.OperatingDate()),
		Status:               t.Status().String(),
		CustomerName:         c.Name(),
		CustomerEmail:        pgconv.StringToPgtype(c.Email().Value()),
		CustomerPhone:        pgconv.StringToPgtype(c.Phone()),
		IsManual:             t.IsManual(),
		Position:             pgconv.IntToInt32(t.Position()),
		EstimatedWaitMinutes: pgconv.IntToInt32(t.EstimatedWait()),
		CreatedAt:            pgconv.TimeToPgtype(t.CreatedAt()),
		UpdatedAt:            pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

func TicketToUpdateParams(t *ticket.Ticket) sqlc.UpdateTicketParams {
	rating, comment := feedbackToColumns(t.Feedback())
	return sqlc.UpdateTicketParams{
		ID:               t.ID(),
		Status:           t.Status().String(),
		CalledAt:         pgconv.TimePtrToPgtype(t.CalledAt()),
		ServingStartedAt: pgconv.TimePtrToPgtype(t.ServingStartedAt()),
		CompletedAt:      pgconv.TimePtrToPgtype(t.CompletedAt()),
		Rating:           rating,
		Feedback:         comment,
		UpdatedAt:        pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}
