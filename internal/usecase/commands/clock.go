package commands

import (
	"context"
	"time"

	"queue-engine/internal/pkg/clock"
	"queue-engine/internal/pkg/errs"
	"queue-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// businessNow is the current wall clock of the business; operating days and hours are read in it.
func businessNow(ctx context.Context, zones shared.Zones, clk clock.Clock, businessID uuid.UUID) (time.Time, error) {
	loc, err := zones.Location(ctx, businessID)
	if err != nil {
		return time.Time{}, errs.Wrap(err, "resolve business time zone")
	}
	return clock.In(clk, loc), nil
}
