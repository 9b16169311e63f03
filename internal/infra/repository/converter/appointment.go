package converter

import (
	"queue-engine/internal/domain/appointment"
	"queue-engine/internal/domain/customer"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/pgconv"
)

func AppointmentFromRow(row sqlc.Appointments) *appointment.Appointment {
	contact := customer.ReconstructContact(row.CustomerName, row.CustomerEmail, pgconv.StringFromPgtype(row.CustomerPhone))
	details := appointment.Details{
		ServiceName:      row.ServiceName,
		Date:             pgconv.DateFromPgtype(row.AppointmentDate),
		StartTime:        pgconv.ClockTimeFromPgtype(row.StartTime),
		Duration:         int(row.Duration),
		Buffer:           int(row.BufferTime),
		Note:             pgconv.StringFromPgtype(row.Note),
		BusinessResponse: pgconv.StringFromPgtype(row.BusinessResponse),
	}
	return appointment.Reconstruct(
		row.ID,
		row.BusinessID,
		row.ServiceID,
		contact,
		details,
		appointment.ManagementToken(row.ManagementToken),
		appointment.Status(row.Status),
		feedbackFromColumns(row.Rating, row.Feedback),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	c := a.Customer()
	return sqlc.CreateAppointmentParams{
		ID:              a.ID(),
		BusinessID:      a.BusinessID(),
		ServiceID:       a.ServiceID(),
		ServiceName:     a.ServiceName(),
		CustomerName:    c.Name(),
		CustomerEmail:   c.Email().Value(),
		CustomerPhone:   pgconv.StringToPgtype(c.Phone()),
		AppointmentDate: pgconv.DateToPgtype(a.Date()),
		StartTime:       pgconv.ClockTimeToPgtype(a.StartTime()),
		Duration:        pgconv.IntToInt32(a.Duration()),
		BufferTime:      pgconv.IntToInt32(a.Buffer()),
		Note:            pgconv.StringToPgtype(a.Note()),
		ManagementToken: a.Token().String(),
		Status:          a.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AppointmentToUpdateParams(a *appointment.Appointment) sqlc.UpdateAppointmentParams {
	rating, comment := feedbackToColumns(a.Feedback())
	return sqlc.UpdateAppointmentParams{
		ID:               a.ID(),
		Status:           a.Status().String(),
		BusinessResponse: pgconv.StringToPgtype(a.BusinessResponse()),
		Rating:           rating,
		Feedback:         comment,
		UpdatedAt:        pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}
