package readstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"queue-engine/internal/infra"
	sqlc "queue-engine/internal/infra/sqlc/generated"
	"queue-engine/internal/pkg/clock"
	"queue-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// ZoneCacheTTL bounds how long a business time zone change takes to reach the engine.
const ZoneCacheTTL = 5 * time.Minute

type BusinessViewQueries interface {
	GetBusinessTimezone(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (string, error)
}

type cachedZone struct {
	loc     *time.Location
	expires time.Time
}

// BusinessZoneStore resolves businesses.timezone. Blank or unknown zone names fall back
// to the engine-wide location.
type BusinessZoneStore struct {
	queries  BusinessViewQueries
	db       sqlc.DBTX
	clock    clock.Clock
	fallback *time.Location

	mu    sync.Mutex
	cache map[uuid.UUID]cachedZone
}

func NewBusinessZoneStore(queries BusinessViewQueries, db sqlc.DBTX, clk clock.Clock, fallback *time.Location) *BusinessZoneStore {
	if fallback == nil {
		fallback = time.UTC
	}
	return &BusinessZoneStore{
		queries:  queries,
		db:       db,
		clock:    clk,
		fallback: fallback,
		cache:    make(map[uuid.UUID]cachedZone),
	}
}

func (s *BusinessZoneStore) Location(ctx context.Context, businessID uuid.UUID) (*time.Location, error) {
	now := s.clock.Now()
	s.mu.Lock()
	if c, ok := s.cache[businessID]; ok && now.Before(c.expires) {
		s.mu.Unlock()
		return c.loc, nil
	}
	s.mu.Unlock()

	name, err := s.queries.GetBusinessTimezone(ctx, s.db, businessID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("business not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get business timezone", err)
	}

	loc := s.fallback
	if name != "" {
		if l, lerr := time.LoadLocation(name); lerr == nil {
			loc = l
		} else {
			slog.Warn("Unknown business timezone, using engine default",
				slog.String("business_id", businessID.String()),
				slog.String("timezone", name),
				slog.String("fallback", s.fallback.String()))
		}
	}

	s.mu.Lock()
	s.cache[businessID] = cachedZone{loc: loc, expires: now.Add(ZoneCacheTTL)}
	s.mu.Unlock()
	return loc, nil
}
