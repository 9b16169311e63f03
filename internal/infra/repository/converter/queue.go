package converter

import (
	"time"

	"queue-engine/internal/domain/queue"
	"queue-engine/internal/domain/schedule"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/pgconv"
)

func QueueFromRow(row sqlc.Queues) *queue.Queue {
	hours := schedule.Normalize(schedule.RawConfig{
		WorkingHours: decodeDays("queues.working_hours", row.WorkingHours),
	})
	settings := queue.Settings{
		AverageServiceTime: int(row.AverageServiceTime),
		Tolerance:          int(row.ToleranceTime),
		MaxCapacity:        int(row.MaxCapacity),
		AdvanceNotice:      int(row.AdvanceNotice),
	}
	return queue.Reconstruct(
		row.ID,
		row.BusinessID,
		row.Name,
		queue.Status(row.Status),
		int(row.CurrentNumber),
		int(row.LastIssuedNumber),
		settings,
		hours,
		pgconv.DateFromPgtype(row.OperatingDate),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func QueueToStateParams(q *queue.Queue, now time.Time) sqlc.UpdateQueueStateParams {
	return sqlc.UpdateQueueStateParams{
		ID:               q.ID(),
		Status:           q.Status().String(),
		CurrentNumber:    pgconv.IntToInt32(q.CurrentNumber()),
		LastIssuedNumber: pgconv.IntToInt32(q.LastIssuedNumber()),
		OperatingDate:    pgconv.DateToPgtype(q.OperatingDate()),
		UpdatedAt:        pgconv.TimeToPgtype(now),
	}
}
