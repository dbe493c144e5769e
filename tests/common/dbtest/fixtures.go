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

	"booking-core/internal/domain/resource"
	"booking-core/internal/infra/repository"
	sqlc "booking-core/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestUnit inserts an active unit through the write repository.
func CreateTestUnit(t *testing.T, db DBLike, kind resource.Kind, name string, capacity int, priceCents int64) uuid.UUID {
	t.Helper()

	eventDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	u, err := resource.NewUnit(kind, name, "A", &eventDate, capacity, priceCents)
	require.NoError(t, err)

	repo := repository.NewUnitRepository(sqlc.New(), db)
	require.NoError(t, repo.Create(context.Background(), db, u))
	return u.ID()
}

func CommittedQty(t *testing.T, db DBLike, unitID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT committed_qty FROM resource_units WHERE id = $1", unitID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountOrders(t *testing.T, db DBLike, unitID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `
		SELECT count(DISTINCT o.id) FROM orders o
		JOIN order_lines l ON l.order_id = o.id
		WHERE l.unit_id = $1 AND o.status = $2`, unitID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountJobs(t *testing.T, db DBLike, orderID uuid.UUID, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1 AND payload->>'order_id' = $2",
		topic, orderID.String()).Scan(&n)
	require.NoError(t, err)
	return n
}

// BackdateOrder moves an order's deadline into the past so it reads as lapsed.
func BackdateOrder(t *testing.T, db DBLike, orderID uuid.UUID, by time.Duration) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE orders SET created_at = created_at - $2::int * interval '1 second', expires_at = expires_at - $2::int * interval '1 second' WHERE id = $1",
		orderID, int(by.Seconds()))
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
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
