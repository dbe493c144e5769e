//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"booking-core/internal/domain/order"
	"booking-core/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

var fixedNow = time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC)

func newPendingOrder(t *testing.T, qty int, priceCents int64) *order.Order {
	t.Helper()

	line, err := order.NewLine(uuid.New(), qty, order.MustMoney(priceCents))
	require.NoError(t, err)

	o, err := order.NewHold(&order.Services{Clock: clock.NewMockClock(fixedNow)}, uuid.New(), []order.Line{line})
	require.NoError(t, err)
	return o
}
