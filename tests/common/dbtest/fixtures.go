//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestBusiness(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	businessID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO businesses (id, name, timezone) VALUES ($1, $2, 'UTC')", businessID, name)
	require.NoError(t, err)

	return businessID
}

// AllDayHours opens every weekday for the whole day.
func AllDayHours() map[string]any {
	hours := make(map[string]any, 7)
	for _, d := range []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		hours[d] = map[string]any{"enabled": true, "start": "00:00", "end": "24:00"}
	}
	return hours
}

// CreateTestQueue inserts an open queue. A nil hours map leaves working hours unset.
func CreateTestQueue(t *testing.T, db DBLike, businessID uuid.UUID, name string, hours map[string]any) uuid.UUID {
	t.Helper()

	var raw []byte
	if hours != nil {
		var err error
		raw, err = json.Marshal(hours)
		require.NoError(t, err)
	}

	queueID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO queues (id, business_id, name, status, average_service_time, tolerance_time, max_capacity, advance_notice, working_hours)
		VALUES ($1, $2, $3, 'open', 10, 15, 100, 2, $4)`,
		queueID, businessID, name, raw)
	require.NoError(t, err)

	return queueID
}

// CreateTestService inserts an active service using the weekly working_hours encoding.
func CreateTestService(t *testing.T, db DBLike, businessID uuid.UUID, name string, duration, buffer int, hours map[string]any) uuid.UUID {
	t.Helper()

	raw, err := json.Marshal(hours)
	require.NoError(t, err)

	serviceID := uuid.New()
	_, err = db.Exec(context.Background(), `
		INSERT INTO services (id, business_id, name, duration, buffer_time, working_hours)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		serviceID, businessID, name, duration, buffer, raw)
	require.NoError(t, err)

	return serviceID
}

func CountOutboxEvents(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM outbox_events WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)

	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO businesses (id, name) VALUES
		    ('00000000-0000-0000-0000-000000000001', 'Default Business')
		ON CONFLICT (id) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
