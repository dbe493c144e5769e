//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"booking-core/internal/domain/order"
	"booking-core/internal/domain/resource"
	"booking-core/internal/domain/user"
	"booking-core/internal/infra"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/shared"
	commandsmock "booking-core/tests/mock/commands"
	queriesmock "booking-core/tests/mock/queries"
	sharedmock "booking-core/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC)

type harness struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	orders        *sharedmock.MockOrderRepository
	units         *sharedmock.MockUnitRepository
	proofs        *sharedmock.MockPaymentProofRepository
	notifications *sharedmock.MockNotificationRepository
	reads         *sharedmock.MockCommandReads
	verifier      *commandsmock.MockPaymentVerifier
	encoder       *queriesmock.MockPaymentPayloadEncoder
	clock         *clock.MockClock
	uc            commands.OrderCommands
}

func newHarness(t *testing.T, settings commands.OrderSettings) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		orders:        sharedmock.NewMockOrderRepository(ctrl),
		units:         sharedmock.NewMockUnitRepository(ctrl),
		proofs:        sharedmock.NewMockPaymentProofRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		verifier:      commandsmock.NewMockPaymentVerifier(ctrl),
		encoder:       queriesmock.NewMockPaymentPayloadEncoder(ctrl),
		clock:         clock.NewMockClock(fixedNow),
	}

	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().Orders().Return(h.orders).AnyTimes()
	h.tx.EXPECT().Units().Return(h.units).AnyTimes()
	h.tx.EXPECT().PaymentProofs().Return(h.proofs).AnyTimes()
	h.tx.EXPECT().Notifications().Return(h.notifications).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()

	h.uc = commands.NewOrderCommands(h.uow, h.verifier, h.encoder, settings, h.clock)
	return h
}

// expectJobs expects one push and one event job for topic.
func (h *harness) expectJobs(topic string) {
	h.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), shared.JobKindPush, topic, gomock.Any(), gomock.Any()).Return(nil)
	h.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), shared.JobKindEvent, topic, gomock.Any(), gomock.Any()).Return(nil)
}

func customer(id uuid.UUID) order.Actor {
	return order.Actor{UserID: id, Role: user.RoleCustomer}
}

func newUnit(id uuid.UUID, capacity int, priceCents int64, active bool, committed int) *resource.Unit {
	return resource.ReconstructUnit(id, resource.KindTicketPool, "Floor A", "A", nil,
		capacity, priceCents, active, committed, fixedNow, fixedNow)
}

func newOrder(id, ownerID, unitID uuid.UUID, totalCents int64, status order.Status, expiresAt *time.Time) *order.Order {
	line, _ := order.NewLine(unitID, 1, order.MustMoney(totalCents))
	created := fixedNow.Add(-time.Minute)
	return order.ReconstructOrder(id, ownerID, []order.Line{line}, order.MustMoney(totalCents), status,
		expiresAt, nil, nil, nil, nil, created, created)
}

func deadline(d time.Duration) *time.Time {
	t := fixedNow.Add(d)
	return &t
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

// =============================================================================
// CreateHold Tests
// =============================================================================

func TestOrderCommands_CreateHold(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	unitID := uuid.New()
	ids := []uuid.UUID{unitID}

	t.Run("success: pending hold with payment payload", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())

		gomock.InOrder(
			h.units.EXPECT().LockForUpdate(ctx, gomock.Any(), ids).Return([]*resource.Unit{newUnit(unitID, 10, 5000, true, 2)}, nil),
			h.orders.EXPECT().ExpireStale(ctx, gomock.Any(), order.UnitScope(ids), fixedNow).Return(nil, nil),
			h.orders.EXPECT().ExpireStale(ctx, gomock.Any(), order.OwnerScope(ownerID), fixedNow).Return(nil, nil),
			h.units.EXPECT().ReservedQuantities(ctx, gomock.Any(), ids, fixedNow).Return(map[uuid.UUID]int{unitID: 5}, nil),
			h.orders.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ any, o *order.Order) error {
					assert.Equal(t, ownerID, o.OwnerID())
					assert.Equal(t, order.StatusPending, o.Status())
					assert.Equal(t, int64(15000), o.Total().Cents())
					return nil
				}),
		)
		h.expectJobs(shared.EventOrderHeld)
		h.encoder.EXPECT().Encode(int64(15000)).Return("000201...6304ABCD", nil)

		result, err := h.uc.CreateHold(ctx, customer(ownerID), commands.CreateHoldRequest{
			Lines: []commands.HoldLine{{UnitID: unitID, Quantity: 3}},
		})

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, result.Status)
		assert.Equal(t, int64(15000), result.TotalCents)
		require.NotNil(t, result.ExpiresAt)
		assert.Equal(t, fixedNow.Add(15*time.Minute), *result.ExpiresAt)
		require.NotNil(t, result.PaymentPayload)
		assert.Equal(t, "000201...6304ABCD", *result.PaymentPayload)
	})

	t.Run("success: zero total is paid and committed at once", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())

		h.units.EXPECT().LockForUpdate(ctx, gomock.Any(), ids).Return([]*resource.Unit{newUnit(unitID, 10, 0, true, 0)}, nil)
		h.orders.EXPECT().ExpireStale(ctx, gomock.Any(), gomock.Any(), fixedNow).Return(nil, nil).Times(2)
		h.units.EXPECT().ReservedQuantities(ctx, gomock.Any(), ids, fixedNow).Return(map[uuid.UUID]int{}, nil)
		h.orders.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
		h.units.EXPECT().AddCommitted(ctx, gomock.Any(), unitID, 2).Return(nil)
		h.expectJobs(shared.EventOrderPaid)

		result, err := h.uc.CreateHold(ctx, customer(ownerID), commands.CreateHoldRequest{
			Lines: []commands.HoldLine{{UnitID: unitID, Quantity: 2}},
		})

		require.NoError(t, err)
		assert.Equal(t, order.StatusPaid, result.Status)
		assert.Nil(t, result.ExpiresAt)
		assert.Nil(t, result.PaymentPayload)
	})

	t.Run("success: lapsed holds on the unit are released first", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		lapsed := shared.ExpiredOrder{ID: uuid.New(), OwnerID: uuid.New()}

		h.units.EXPECT().LockForUpdate(ctx, gomock.Any(), ids).Return([]*resource.Unit{newUnit(unitID, 1, 10000, true, 0)}, nil)
		h.orders.EXPECT().ExpireStale(ctx, gomock.Any(), order.UnitScope(ids), fixedNow).Return([]shared.ExpiredOrder{lapsed}, nil)
		h.orders.EXPECT().ExpireStale(ctx, gomock.Any(), order.OwnerScope(ownerID), fixedNow).Return(nil, nil)
		h.notifications.EXPECT().CreateJob(ctx, gomock.Any(), gomock.Any(), shared.EventOrderExpired, gomock.Any(), fixedNow).DoAndReturn(
			func(_ context.Context, _ any, _ string, _ string, payload []byte, _ time.Time) error {
				var ev shared.OrderEvent
				require.NoError(t, json.Unmarshal(payload, &ev))
				assert.Equal(t, lapsed.ID, ev.OrderID)
				assert.Equal(t, lapsed.OwnerID, ev.RecipientID)
				assert.Equal(t, "expired", ev.Status)
				return nil
			}).Times(2)
		h.units.EXPECT().ReservedQuantities(ctx, gomock.Any(), ids, fixedNow).Return(map[uuid.UUID]int{}, nil)
		h.orders.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
		h.expectJobs(shared.EventOrderHeld)
		h.encoder.EXPECT().Encode(int64(10000)).Return("payload", nil)

		result, err := h.uc.CreateHold(ctx, customer(ownerID), commands.CreateHoldRequest{
			Lines: []commands.HoldLine{{UnitID: unitID, Quantity: 1}},
		})

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, result.Status)
	})

	t.Run("success: encoder failure leaves payload empty", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())

		h.units.EXPECT().LockForUpdate(ctx, gomock.Any(), ids).Return([]*resource.Unit{newUnit(unitID, 5, 100, true, 0)}, nil)
		h.orders.EXPECT().ExpireStale(ctx, gomock.Any(), gomock.Any(), fixedNow).Return(nil, nil).Times(2)
		h.units.EXPECT().ReservedQuantities(ctx, gomock.Any(), ids, fixedNow).Return(nil, nil)
		h.orders.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
		h.expectJobs(shared.EventOrderHeld)
		h.encoder.EXPECT().Encode(int64(100)).Return("", errors.New("no target configured"))

		result, err := h.uc.CreateHold(ctx, customer(ownerID), commands.CreateHoldRequest{
			Lines: []commands.HoldLine{{UnitID: unitID, Quantity: 1}},
		})

		require.NoError(t, err)
		assert.Nil(t, result.PaymentPayload)
	})

	t.Run("error: capacity exceeded", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())

		h.units.EXPECT().LockForUpdate(ctx, gomock.Any(), ids).Return([]*resource.Unit{newUnit(unitID, 5, 100, true, 3)}, nil)
		h.orders.EXPECT().ExpireStale(ctx, gomock.Any(), gomock.Any(), fixedNow).Return(nil, nil).Times(2)
		h.units.EXPECT().ReservedQuantities(ctx, gomock.Any(), ids, fixedNow).Return(map[uuid.UUID]int{unitID: 1}, nil)

		result, err := h.uc.CreateHold(ctx, customer(ownerID), commands.CreateHoldRequest{
			Lines: []commands.HoldLine{{UnitID: unitID, Quantity: 2}},
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, commands.ErrCapacityExceeded)
	})

	t.Run("error: inactive unit", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())

		h.units.EXPECT().LockForUpdate(ctx, gomock.Any(), ids).Return([]*resource.Unit{newUnit(unitID, 5, 100, false, 0)}, nil)
		h.orders.EXPECT().ExpireStale(ctx, gomock.Any(), gomock.Any(), fixedNow).Return(nil, nil).Times(2)
		h.units.EXPECT().ReservedQuantities(ctx, gomock.Any(), ids, fixedNow).Return(nil, nil)

		_, err := h.uc.CreateHold(ctx, customer(ownerID), commands.CreateHoldRequest{
			Lines: []commands.HoldLine{{UnitID: unitID, Quantity: 1}},
		})

		assert.ErrorIs(t, err, commands.ErrUnitUnavailable)
	})

	t.Run("error: unknown unit", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())

		h.units.EXPECT().LockForUpdate(ctx, gomock.Any(), ids).Return(nil, notFound())

		_, err := h.uc.CreateHold(ctx, customer(ownerID), commands.CreateHoldRequest{
			Lines: []commands.HoldLine{{UnitID: unitID, Quantity: 1}},
		})

		assert.ErrorIs(t, err, commands.ErrUnitNotFound)
	})

	t.Run("error: invalid requests never open a transaction", func(t *testing.T) {
		settings := commands.DefaultOrderSettings()
		settings.MaxQuantityPerLine = 4

		cases := []struct {
			name  string
			lines []commands.HoldLine
		}{
			{name: "no lines", lines: nil},
			{name: "zero quantity", lines: []commands.HoldLine{{UnitID: unitID, Quantity: 0}}},
			{name: "negative quantity", lines: []commands.HoldLine{{UnitID: unitID, Quantity: -1}}},
			{name: "quantity above limit", lines: []commands.HoldLine{{UnitID: unitID, Quantity: 5}}},
			{name: "nil unit id", lines: []commands.HoldLine{{UnitID: uuid.Nil, Quantity: 1}}},
			{name: "duplicate unit", lines: []commands.HoldLine{{UnitID: unitID, Quantity: 1}, {UnitID: unitID, Quantity: 2}}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				h := newHarness(t, settings)

				_, err := h.uc.CreateHold(ctx, customer(ownerID), commands.CreateHoldRequest{Lines: tc.lines})

				assert.ErrorIs(t, err, commands.ErrValidation)
			})
		}
	})
}

// =============================================================================
// ConfirmPayment Tests
// =============================================================================

func TestOrderCommands_ConfirmPayment(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()
	unitID := uuid.New()
	proof, _ := order.NewProofRef("SLIP-0001")
	hundred := decimal.RequireFromString("100.00")

	pending := func() *order.Order {
		return newOrder(orderID, ownerID, unitID, 10000, order.StatusPending, deadline(10*time.Minute))
	}
	request := func(amount decimal.Decimal) commands.ConfirmPaymentRequest {
		return commands.ConfirmPaymentRequest{OrderID: orderID, ProofRef: "SLIP-0001", ClaimedAmount: amount}
	}
	expectPrelude := func(h *harness, o *order.Order) {
		h.reads.EXPECT().OrderByID(ctx, orderID).Return(o, nil)
	}

	t.Run("success: order paid and committed", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())

		expectPrelude(h, pending())
		h.verifier.EXPECT().Verify(ctx, proof, order.MustMoney(10000)).Return(nil)
		h.reads.EXPECT().ProofUsed(ctx, proof).Return(false, nil)
		gomock.InOrder(
			h.units.EXPECT().LockForUpdate(ctx, gomock.Any(), []uuid.UUID{unitID}).Return(nil, nil),
			h.orders.EXPECT().FindForUpdate(ctx, gomock.Any(), orderID).Return(pending(), nil),
			h.proofs.EXPECT().Claim(ctx, gomock.Any(), proof, orderID, shared.ProofPurposeOrderPayment, order.MustMoney(10000)).Return(nil),
			h.orders.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ any, o *order.Order) error {
					assert.Equal(t, order.StatusPaid, o.Status())
					require.NotNil(t, o.ProofRef())
					assert.Equal(t, "SLIP-0001", o.ProofRef().String())
					assert.Equal(t, fixedNow, *o.PaidAt())
					return nil
				}),
			h.units.EXPECT().AddCommitted(ctx, gomock.Any(), unitID, 1).Return(nil),
		)
		h.expectJobs(shared.EventOrderPaid)

		result, err := h.uc.ConfirmPayment(ctx, customer(ownerID), request(hundred))

		require.NoError(t, err)
		assert.Equal(t, order.StatusPaid, result.Status)
		assert.Equal(t, orderID, result.OrderID)
	})

	t.Run("error: order not found", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())

		h.reads.EXPECT().OrderByID(ctx, orderID).Return(nil, notFound())

		_, err := h.uc.ConfirmPayment(ctx, customer(ownerID), request(hundred))

		assert.ErrorIs(t, err, commands.ErrOrderNotFound)
	})

	t.Run("error: another user's order", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		expectPrelude(h, pending())

		_, err := h.uc.ConfirmPayment(ctx, customer(uuid.New()), request(hundred))

		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("error: lapsed hold is expired on the owner's attempt", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		lapsed := newOrder(orderID, ownerID, unitID, 10000, order.StatusPending, deadline(-time.Second))
		expectPrelude(h, lapsed)
		h.orders.EXPECT().ExpireStale(ctx, gomock.Any(), order.OrderScope(orderID), fixedNow).
			Return([]shared.ExpiredOrder{{ID: orderID, OwnerID: ownerID}}, nil)
		h.expectJobs(shared.EventOrderExpired)

		_, err := h.uc.ConfirmPayment(ctx, customer(ownerID), request(hundred))

		assert.ErrorIs(t, err, commands.ErrOrderExpired)
	})

	t.Run("error: stranger cannot touch a lapsed hold", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		expectPrelude(h, newOrder(orderID, ownerID, unitID, 10000, order.StatusPending, deadline(-time.Second)))
		// No ExpireStale expectation: the order is left pending.

		_, err := h.uc.ConfirmPayment(ctx, customer(uuid.New()), request(hundred))

		assert.ErrorIs(t, err, commands.ErrForbidden)
		assert.NotErrorIs(t, err, commands.ErrOrderExpired)
	})

	t.Run("error: already expired", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		expectPrelude(h, newOrder(orderID, ownerID, unitID, 10000, order.StatusExpired, deadline(-time.Minute)))

		_, err := h.uc.ConfirmPayment(ctx, customer(ownerID), request(hundred))

		assert.ErrorIs(t, err, commands.ErrOrderExpired)
	})

	t.Run("error: already paid", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		expectPrelude(h, newOrder(orderID, ownerID, unitID, 10000, order.StatusPaid, nil))

		_, err := h.uc.ConfirmPayment(ctx, customer(ownerID), request(hundred))

		assert.ErrorIs(t, err, commands.ErrAlreadyTerminal)
	})

	t.Run("error: amount mismatch is checked before verification", func(t *testing.T) {
		for _, amount := range []string{"99.98", "100.02", "100.011", "0", "1000.00"} {
			t.Run(amount, func(t *testing.T) {
				h := newHarness(t, commands.DefaultOrderSettings())
				expectPrelude(h, pending())

				_, err := h.uc.ConfirmPayment(ctx, customer(ownerID), request(decimal.RequireFromString(amount)))

				assert.ErrorIs(t, err, commands.ErrAmountMismatch)
			})
		}
	})

	t.Run("error: verification failed", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		expectPrelude(h, pending())
		h.verifier.EXPECT().Verify(ctx, proof, order.MustMoney(10000)).Return(context.DeadlineExceeded)

		_, err := h.uc.ConfirmPayment(ctx, customer(ownerID), request(decimal.RequireFromString("100.005")))

		assert.ErrorIs(t, err, commands.ErrVerificationFailed)
	})

	t.Run("error: proof already recorded", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		expectPrelude(h, pending())
		h.verifier.EXPECT().Verify(ctx, proof, order.MustMoney(10000)).Return(nil)
		h.reads.EXPECT().ProofUsed(ctx, proof).Return(true, nil)

		_, err := h.uc.ConfirmPayment(ctx, customer(ownerID), request(hundred))

		assert.ErrorIs(t, err, commands.ErrProofAlreadyUsed)
	})

	t.Run("error: proof claimed concurrently", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		expectPrelude(h, pending())
		h.verifier.EXPECT().Verify(ctx, proof, order.MustMoney(10000)).Return(nil)
		h.reads.EXPECT().ProofUsed(ctx, proof).Return(false, nil)
		h.units.EXPECT().LockForUpdate(ctx, gomock.Any(), []uuid.UUID{unitID}).Return(nil, nil)
		h.orders.EXPECT().FindForUpdate(ctx, gomock.Any(), orderID).Return(pending(), nil)
		h.proofs.EXPECT().Claim(ctx, gomock.Any(), proof, orderID, shared.ProofPurposeOrderPayment, gomock.Any()).
			Return(infra.WrapRepoErr("payment proof already used", nil, infra.KindDuplicateKey))

		_, err := h.uc.ConfirmPayment(ctx, customer(ownerID), request(hundred))

		assert.ErrorIs(t, err, commands.ErrProofAlreadyUsed)
	})

	t.Run("error: hold lapses while the proof is verified", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		expectPrelude(h, pending())
		h.verifier.EXPECT().Verify(ctx, proof, order.MustMoney(10000)).DoAndReturn(
			func(context.Context, order.ProofRef, order.Money) error {
				h.clock.Add(11 * time.Minute)
				return nil
			})
		h.reads.EXPECT().ProofUsed(ctx, proof).Return(false, nil)
		h.units.EXPECT().LockForUpdate(ctx, gomock.Any(), []uuid.UUID{unitID}).Return(nil, nil)
		h.orders.EXPECT().FindForUpdate(ctx, gomock.Any(), orderID).Return(pending(), nil)
		h.orders.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, o *order.Order) error {
				assert.Equal(t, order.StatusExpired, o.Status())
				return nil
			})
		h.expectJobs(shared.EventOrderExpired)

		_, err := h.uc.ConfirmPayment(ctx, customer(ownerID), request(hundred))

		assert.ErrorIs(t, err, commands.ErrOrderExpired)
	})

	t.Run("error: malformed proof reference", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())

		_, err := h.uc.ConfirmPayment(ctx, customer(ownerID), commands.ConfirmPaymentRequest{
			OrderID: orderID, ProofRef: "   ", ClaimedAmount: hundred,
		})

		assert.ErrorIs(t, err, commands.ErrValidation)
	})
}

// =============================================================================
// Cancel Tests
// =============================================================================

func TestOrderCommands_Cancel(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()
	unitID := uuid.New()

	pending := func() *order.Order {
		return newOrder(orderID, ownerID, unitID, 10000, order.StatusPending, deadline(5*time.Minute))
	}

	t.Run("success: owner cancels pending order", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		h.orders.EXPECT().FindForUpdate(ctx, gomock.Any(), orderID).Return(pending(), nil)
		h.orders.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, o *order.Order) error {
				assert.Equal(t, order.StatusCancelled, o.Status())
				assert.Equal(t, fixedNow, *o.CancelledAt())
				return nil
			})
		h.expectJobs(shared.EventOrderCancelled)

		result, err := h.uc.Cancel(ctx, customer(ownerID), orderID)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, result.Status)
	})

	t.Run("success: admin cancels someone else's order", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		h.orders.EXPECT().FindForUpdate(ctx, gomock.Any(), orderID).Return(pending(), nil)
		h.orders.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Return(nil)
		h.expectJobs(shared.EventOrderCancelled)

		result, err := h.uc.Cancel(ctx, order.Actor{UserID: uuid.New(), Role: user.RoleAdmin}, orderID)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, result.Status)
	})

	t.Run("error: stranger", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		h.orders.EXPECT().FindForUpdate(ctx, gomock.Any(), orderID).Return(pending(), nil)

		_, err := h.uc.Cancel(ctx, customer(uuid.New()), orderID)

		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("error: terminal orders stay put", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusPaid, order.StatusExpired, order.StatusCancelled} {
			t.Run(status.String(), func(t *testing.T) {
				h := newHarness(t, commands.DefaultOrderSettings())
				h.orders.EXPECT().FindForUpdate(ctx, gomock.Any(), orderID).
					Return(newOrder(orderID, ownerID, unitID, 10000, status, nil), nil)

				_, err := h.uc.Cancel(ctx, customer(ownerID), orderID)

				assert.ErrorIs(t, err, commands.ErrAlreadyTerminal)
			})
		}
	})

	t.Run("error: lapsed hold is expired instead", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		h.orders.EXPECT().FindForUpdate(ctx, gomock.Any(), orderID).
			Return(newOrder(orderID, ownerID, unitID, 10000, order.StatusPending, deadline(0)), nil)
		h.orders.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, o *order.Order) error {
				assert.Equal(t, order.StatusExpired, o.Status())
				return nil
			})
		h.expectJobs(shared.EventOrderExpired)

		_, err := h.uc.Cancel(ctx, customer(ownerID), orderID)

		assert.ErrorIs(t, err, commands.ErrOrderExpired)
	})

	t.Run("error: not found", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		h.orders.EXPECT().FindForUpdate(ctx, gomock.Any(), orderID).Return(nil, notFound())

		_, err := h.uc.Cancel(ctx, customer(ownerID), orderID)

		assert.ErrorIs(t, err, commands.ErrOrderNotFound)
	})
}

// =============================================================================
// Transfer Tests
// =============================================================================

func TestOrderCommands_Transfer(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	newOwnerID := uuid.New()
	orderID := uuid.New()
	unitID := uuid.New()

	paid := func() *order.Order {
		return newOrder(orderID, ownerID, unitID, 10000, order.StatusPaid, nil)
	}
	withFee := func() commands.OrderSettings {
		s := commands.DefaultOrderSettings()
		s.TransferFee = order.MustMoney(5000)
		return s
	}

	t.Run("success: no fee configured", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		h.reads.EXPECT().OrderByID(ctx, orderID).Return(paid(), nil)
		h.orders.EXPECT().FindForUpdate(ctx, gomock.Any(), orderID).Return(paid(), nil)
		h.orders.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, o *order.Order) error {
				assert.Equal(t, newOwnerID, o.OwnerID())
				assert.Equal(t, order.StatusPaid, o.Status())
				return nil
			})
		h.orders.EXPECT().RecordTransfer(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, tr *order.Transfer) error {
				assert.Equal(t, ownerID, tr.FromOwner())
				assert.Equal(t, newOwnerID, tr.ToOwner())
				assert.Nil(t, tr.FeeProof())
				return nil
			})
		h.expectJobs(shared.EventOrderTransferred)

		result, err := h.uc.Transfer(ctx, customer(ownerID), commands.TransferRequest{OrderID: orderID, NewOwnerID: newOwnerID})

		require.NoError(t, err)
		assert.Equal(t, newOwnerID, result.OwnerID)
	})

	t.Run("success: fee proof verified and claimed", func(t *testing.T) {
		h := newHarness(t, withFee())
		feeRef := "FEE-77"
		feeProof, _ := order.NewProofRef(feeRef)

		h.reads.EXPECT().OrderByID(ctx, orderID).Return(paid(), nil)
		h.verifier.EXPECT().Verify(ctx, feeProof, order.MustMoney(5000)).Return(nil)
		h.orders.EXPECT().FindForUpdate(ctx, gomock.Any(), orderID).Return(paid(), nil)
		h.proofs.EXPECT().Claim(ctx, gomock.Any(), feeProof, orderID, shared.ProofPurposeTransferFee, order.MustMoney(5000)).Return(nil)
		h.orders.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Return(nil)
		h.orders.EXPECT().RecordTransfer(ctx, gomock.Any(), gomock.Any()).Return(nil)
		h.expectJobs(shared.EventOrderTransferred)

		_, err := h.uc.Transfer(ctx, customer(ownerID), commands.TransferRequest{
			OrderID: orderID, NewOwnerID: newOwnerID, FeeProofRef: &feeRef,
		})

		require.NoError(t, err)
	})

	t.Run("error: fee proof reused", func(t *testing.T) {
		h := newHarness(t, withFee())
		feeRef := "FEE-77"

		h.reads.EXPECT().OrderByID(ctx, orderID).Return(paid(), nil)
		h.verifier.EXPECT().Verify(ctx, gomock.Any(), gomock.Any()).Return(nil)
		h.orders.EXPECT().FindForUpdate(ctx, gomock.Any(), orderID).Return(paid(), nil)
		h.proofs.EXPECT().Claim(ctx, gomock.Any(), gomock.Any(), orderID, shared.ProofPurposeTransferFee, gomock.Any()).
			Return(infra.WrapRepoErr("payment proof already used", nil, infra.KindDuplicateKey))

		_, err := h.uc.Transfer(ctx, customer(ownerID), commands.TransferRequest{
			OrderID: orderID, NewOwnerID: newOwnerID, FeeProofRef: &feeRef,
		})

		assert.ErrorIs(t, err, commands.ErrProofAlreadyUsed)
	})

	t.Run("error: fee proof missing", func(t *testing.T) {
		h := newHarness(t, withFee())

		_, err := h.uc.Transfer(ctx, customer(ownerID), commands.TransferRequest{OrderID: orderID, NewOwnerID: newOwnerID})

		assert.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("error: pending order", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		h.reads.EXPECT().OrderByID(ctx, orderID).
			Return(newOrder(orderID, ownerID, unitID, 10000, order.StatusPending, deadline(time.Minute)), nil)

		_, err := h.uc.Transfer(ctx, customer(ownerID), commands.TransferRequest{OrderID: orderID, NewOwnerID: newOwnerID})

		assert.ErrorIs(t, err, commands.ErrNotTransferable)
	})

	t.Run("error: transfer to current owner", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		h.reads.EXPECT().OrderByID(ctx, orderID).Return(paid(), nil)
		h.orders.EXPECT().FindForUpdate(ctx, gomock.Any(), orderID).Return(paid(), nil)

		_, err := h.uc.Transfer(ctx, customer(ownerID), commands.TransferRequest{OrderID: orderID, NewOwnerID: ownerID})

		assert.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("error: stranger", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		h.reads.EXPECT().OrderByID(ctx, orderID).Return(paid(), nil)

		_, err := h.uc.Transfer(ctx, customer(uuid.New()), commands.TransferRequest{OrderID: orderID, NewOwnerID: newOwnerID})

		assert.ErrorIs(t, err, commands.ErrForbidden)
	})
}

// =============================================================================
// ExpireStale Tests
// =============================================================================

func TestOrderCommands_ExpireStale(t *testing.T) {
	ctx := context.Background()

	t.Run("success: second pass is a no-op", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		expired := []shared.ExpiredOrder{
			{ID: uuid.New(), OwnerID: uuid.New()},
			{ID: uuid.New(), OwnerID: uuid.New()},
		}

		gomock.InOrder(
			h.orders.EXPECT().ExpireStale(ctx, gomock.Any(), order.GlobalScope(), fixedNow).Return(expired, nil),
			h.orders.EXPECT().ExpireStale(ctx, gomock.Any(), order.GlobalScope(), fixedNow).Return(nil, nil),
		)
		h.notifications.EXPECT().CreateJob(ctx, gomock.Any(), gomock.Any(), shared.EventOrderExpired, gomock.Any(), fixedNow).
			Return(nil).Times(4)

		first, err := h.uc.ExpireStale(ctx, order.GlobalScope())
		require.NoError(t, err)
		second, err := h.uc.ExpireStale(ctx, order.GlobalScope())
		require.NoError(t, err)

		assert.Equal(t, 2, first)
		assert.Equal(t, 0, second)
	})

	t.Run("error: repository failure", func(t *testing.T) {
		h := newHarness(t, commands.DefaultOrderSettings())
		h.orders.EXPECT().ExpireStale(ctx, gomock.Any(), gomock.Any(), fixedNow).
			Return(nil, infra.WrapRepoErr("failed to expire orders", errors.New("connection reset")))

		count, err := h.uc.ExpireStale(ctx, order.GlobalScope())

		require.Error(t, err)
		assert.Zero(t, count)
	})
}

// =============================================================================
// ReconcileLedger Tests
// =============================================================================

func TestOrderCommands_ReconcileLedger(t *testing.T) {
	ctx := context.Background()
	inSync := uuid.New()
	drifted := uuid.New()

	h := newHarness(t, commands.DefaultOrderSettings())
	h.units.EXPECT().ListIDs(ctx, gomock.Any()).Return([]uuid.UUID{inSync, drifted}, nil)
	h.units.EXPECT().LockForUpdate(ctx, gomock.Any(), []uuid.UUID{inSync}).Return([]*resource.Unit{newUnit(inSync, 10, 100, true, 2)}, nil)
	h.units.EXPECT().PaidQuantity(ctx, gomock.Any(), inSync).Return(2, nil)
	h.units.EXPECT().LockForUpdate(ctx, gomock.Any(), []uuid.UUID{drifted}).Return([]*resource.Unit{newUnit(drifted, 10, 100, true, 5)}, nil)
	h.units.EXPECT().PaidQuantity(ctx, gomock.Any(), drifted).Return(3, nil)
	h.units.EXPECT().SetCommitted(ctx, gomock.Any(), drifted, 3).Return(nil)

	adjusted, err := h.uc.ReconcileLedger(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, adjusted)
}
