//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"

	"booking-core/internal/domain/order"
	"booking-core/internal/worker"
	workermock "booking-core/tests/mock/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExpirySweeper_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("reconciles on every third tick", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := workermock.NewMockOrderMaintenance(ctrl)
		sweeper := worker.NewExpirySweeper(orders, 0, 3)

		orders.EXPECT().ExpireStale(ctx, order.GlobalScope()).Return(1, nil).Times(6)
		orders.EXPECT().ReconcileLedger(ctx).Return(0, nil).Times(2)

		for range 6 {
			require.NoError(t, sweeper.RunOnce(ctx))
		}
	})

	t.Run("reconcile disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := workermock.NewMockOrderMaintenance(ctrl)
		sweeper := worker.NewExpirySweeper(orders, 0, 0)

		orders.EXPECT().ExpireStale(ctx, order.GlobalScope()).Return(0, nil).Times(2)

		require.NoError(t, sweeper.RunOnce(ctx))
		require.NoError(t, sweeper.RunOnce(ctx))
	})

	t.Run("expiry failure skips reconcile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := workermock.NewMockOrderMaintenance(ctrl)
		sweeper := worker.NewExpirySweeper(orders, 0, 1)

		orders.EXPECT().ExpireStale(ctx, order.GlobalScope()).Return(0, errors.New("connection refused"))

		err := sweeper.RunOnce(ctx)

		assert.Error(t, err)
	})
}
