package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Zones resolves the time zone a business keeps its operating days and hours in.
type Zones interface {
	Location(ctx context.Context, businessID uuid.UUID) (*time.Location, error)
}
