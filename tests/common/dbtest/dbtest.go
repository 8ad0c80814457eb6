//go:build unit || e2e

package dbtest

import (
	"context"
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

// the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each subtest starts from an empty schema
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

	return nil
}

func CreateTestStation(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	stationID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO stations (id, name, location, capacity_per_hour, operating_hours_start, operating_hours_end, is_active)
		VALUES ($1, $2, 'Zeebrugge, Belgium', 150, '06:00', '22:00', true)
		ON CONFLICT (name) DO NOTHING`,
		stationID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM stations WHERE name = $1", name).Scan(&stationID)
	}

	return stationID
}

func CreateTestCustomer(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO customers (id, name, contact_person, email, phone, contract_type)
		VALUES ($1, 'Acme Logistics', 'Marc Janssens', $2, '+32 50 123 456', 'contract')
		ON CONFLICT (email) DO NOTHING`,
		customerID, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM customers WHERE email = $1", email).Scan(&customerID)
	}

	return customerID
}

func CreateTestSlot(t *testing.T, db DBLike, stationID uuid.UUID, date, start, end, status string) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO loading_slots (id, station_id, date, start_time, end_time, max_volume, status)
		VALUES ($1, $2, $3, $4, $5, 50, $6)`,
		slotID, stationID, date, start, end, status)
	require.NoError(t, err)

	return slotID
}
