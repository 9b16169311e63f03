package converter

import (
	"queue-engine/internal/domain/schedule"
	"queue-engine/internal/domain/service"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/pgconv"
)

func ServiceFromRow(row sqlc.Services) *service.Service {
	raw := schedule.RawConfig{
		WorkingHours:    decodeDays("services.working_hours", row.WorkingHours),
		CustomSchedules: decodeDays("services.custom_schedules", row.CustomSchedules),
		AvailableDays:   intsFromInt32(row.AvailableDays),
		StartTime:       pgconv.StringFromPgtype(row.StartTime),
		EndTime:         pgconv.StringFromPgtype(row.EndTime),
	}
	return service.Reconstruct(
		row.ID,
		row.BusinessID,
		row.Name,
		int(row.Duration),
		int(row.BufferTime),
		int(row.ToleranceTime),
		raw,
		row.BlockedDates,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
