//go:build unit

package uow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, want: true},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "wrapped deadlock", err: fmt.Errorf("lock units: %w", &pgconn.PgError{Code: "40P01"}), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain error", err: errors.New("capacity exceeded"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryableError(tc.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	deadlock := &pgconn.PgError{Code: pgErrCodeDeadlockDetected}

	assert.True(t, shouldRetry(deadlock, 0, 1))
	assert.False(t, shouldRetry(deadlock, 1, 1), "retries exhausted")
	assert.False(t, shouldRetry(deadlock, 0, 0), "retries disabled")
	assert.False(t, shouldRetry(errors.New("boom"), 0, 1))
}

func TestCalculateBackoff(t *testing.T) {
	base := 50 * time.Millisecond

	for attempt := 0; attempt < 4; attempt++ {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base

		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}
