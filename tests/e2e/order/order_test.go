//go:build e2e

package order_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"booking-core/internal/domain/resource"
	"booking-core/internal/domain/user"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/handler/httperr"
	"booking-core/tests/common/authtest"
	"booking-core/tests/common/dbtest"
	"booking-core/tests/common/httptest"
	"booking-core/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL      = "/api/orders"
	orderURL       = "/api/orders/%s"
	paymentURL     = "/api/orders/%s/payment"
	cancelURL      = "/api/orders/%s/cancel"
	transferURL    = "/api/orders/%s/transfer"
	unitURL        = "/api/units/%s"
	expireStaleURL = "/api/admin/orders/expire-stale"
	reconcileURL   = "/api/admin/units/reconcile"
)

type OrderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

func holdBody(unitID uuid.UUID, qty int) map[string]any {
	return map[string]any{"lines": []any{map[string]any{"unit_id": unitID, "quantity": qty}}}
}

func paymentBody(proof, amount string) map[string]any {
	return map[string]any{"proof_ref": proof, "amount": amount}
}

func (s *OrderSuite) hold(caller authtest.Caller, unitID uuid.UUID, qty int) resdto.HoldResponse {
	t := s.T()
	t.Helper()

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, holdBody(unitID, qty), caller.Token)
	var res resdto.HoldResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &res)
	require.NotEqual(t, uuid.Nil, res.OrderID)
	return res
}

func (s *OrderSuite) unit(caller authtest.Caller, unitID uuid.UUID) resdto.UnitResponse {
	t := s.T()
	t.Helper()

	rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(unitURL, unitID), nil, caller.Token)
	var res resdto.UnitResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
	return res
}

func (s *OrderSuite) status(caller authtest.Caller, orderID uuid.UUID) string {
	t := s.T()
	t.Helper()

	rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(orderURL, orderID), nil, caller.Token)
	var res resdto.OrderResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
	return res.Status
}

// =============================================================================
// Holds
// =============================================================================

func (s *OrderSuite) TestCreateHold() {
	s.Run("priced hold is pending with a deadline and a payment payload", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 10, 25000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)

		res := s.hold(alice, unitID, 2)

		s.Equal("pending", res.Status)
		s.Equal(int64(50000), res.TotalCents)
		s.True(res.RequiresPayment)
		s.Require().NotNil(res.ExpiresAt)
		s.WithinDuration(time.Now().Add(15*time.Minute), *res.ExpiresAt, time.Minute)
		s.Require().NotNil(res.PaymentPayload)
		s.Contains(*res.PaymentPayload, "5406500.00")

		u := s.unit(alice, unitID)
		s.Equal(2, u.Reserved)
		s.Equal(8, u.Available)
		s.Equal(2, dbtest.CountJobs(t, s.DB, res.OrderID, "order.held"))
	})

	s.Run("zero-total hold is paid immediately and commits capacity", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "Free Entry", 5, 0)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)

		res := s.hold(alice, unitID, 3)

		s.Equal("paid", res.Status)
		s.False(res.RequiresPayment)
		s.Nil(res.ExpiresAt)
		s.Nil(res.PaymentPayload)
		s.Equal(3, dbtest.CommittedQty(t, s.DB, unitID))
		s.Equal(2, s.unit(alice, unitID).Available)
	})

	s.Run("table units hold one party at a time", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTable, "Table 7", 1, 100000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		bob := s.Auth.NewCaller(t, user.RoleCustomer)

		s.hold(alice, unitID, 1)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, holdBody(unitID, 1), bob.Token)
		httptest.AssertErrorCode(t, rec, http.StatusConflict, httperr.CodeCapacityExceeded)
	})

	s.Run("unknown unit", func() {
		t := s.T()
		alice := s.Auth.NewCaller(t, user.RoleCustomer)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, holdBody(uuid.New(), 1), alice.Token)
		httptest.AssertErrorCode(t, rec, http.StatusNotFound, httperr.CodeResourceNotFound)
	})

	s.Run("closed unit", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "Closed", 10, 1000)
		_, err := s.DB.Exec(t.Context(), "UPDATE resource_units SET is_active = false WHERE id = $1", unitID)
		require.NoError(t, err)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, holdBody(unitID, 1), alice.Token)
		httptest.AssertErrorCode(t, rec, http.StatusConflict, httperr.CodeUnitUnavailable)
	})
}

func (s *OrderSuite) TestConcurrentHoldsNeverOversell() {
	s.Run("parallel holds on the last seats", func() {
		t := s.T()
		const capacity, buyers = 5, 12
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "Front Row", capacity, 50000)

		callers := make([]authtest.Caller, buyers)
		for i := range callers {
			callers[i] = s.Auth.NewCaller(t, user.RoleCustomer)
		}

		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			codes = map[int]int{}
		)
		for _, c := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, holdBody(unitID, 1), c.Token)
				mu.Lock()
				codes[rec.Code]++
				mu.Unlock()
			}()
		}
		wg.Wait()

		s.Equal(capacity, codes[http.StatusCreated])
		s.Equal(buyers-capacity, codes[http.StatusConflict])
		s.Equal(0, s.unit(callers[0], unitID).Available)
		s.Equal(capacity, dbtest.CountOrders(t, s.DB, unitID, "pending"))
	})
}

// =============================================================================
// Payment
// =============================================================================

func (s *OrderSuite) TestConfirmPayment() {
	s.Run("exact amount pays the order and commits capacity", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 10, 25000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		held := s.hold(alice, unitID, 2)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(paymentURL, held.OrderID),
			paymentBody("SLIP-1001", "500.00"), alice.Token)

		var res resdto.OrderStateResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		s.Equal("paid", res.Status)
		s.Equal(2, dbtest.CommittedQty(t, s.DB, unitID))
		u := s.unit(alice, unitID)
		s.Equal(0, u.Reserved)
		s.Equal(8, u.Available)
	})

	s.Run("amount within one satang is accepted", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 10, 25000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		held := s.hold(alice, unitID, 1)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(paymentURL, held.OrderID),
			paymentBody("SLIP-1002", "249.995"), alice.Token)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	s.Run("rejections carry reason codes and leave the order pending", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 10, 25000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		mallory := s.Auth.NewCaller(t, user.RoleCustomer)
		held := s.hold(alice, unitID, 1)
		url := fmt.Sprintf(paymentURL, held.OrderID)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url, paymentBody("SLIP-2001", "240.00"), alice.Token)
		httptest.AssertErrorCode(t, rec, http.StatusUnprocessableEntity, httperr.CodeAmountMismatch)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, url, paymentBody(e2e.RejectedProofPrefix+"2002", "250.00"), alice.Token)
		httptest.AssertErrorCode(t, rec, http.StatusPaymentRequired, httperr.CodeVerificationFailed)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, url, paymentBody("SLIP-2003", "250.00"), mallory.Token)
		httptest.AssertErrorCode(t, rec, http.StatusForbidden, httperr.CodeForbidden)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(paymentURL, uuid.New()), paymentBody("SLIP-2004", "250.00"), alice.Token)
		httptest.AssertErrorCode(t, rec, http.StatusNotFound, httperr.CodeOrderNotFound)

		s.Equal("pending", s.status(alice, held.OrderID))
		s.Equal(0, dbtest.CommittedQty(t, s.DB, unitID))
	})

	s.Run("paying twice is rejected as terminal", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 10, 25000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		held := s.hold(alice, unitID, 1)
		url := fmt.Sprintf(paymentURL, held.OrderID)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url, paymentBody("SLIP-3001", "250.00"), alice.Token)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, url, paymentBody("SLIP-3002", "250.00"), alice.Token)
		httptest.AssertErrorCode(t, rec, http.StatusConflict, httperr.CodeAlreadyTerminal)
		s.Equal(1, dbtest.CommittedQty(t, s.DB, unitID))
	})
}

func (s *OrderSuite) TestProofIsSingleUse() {
	s.Run("a proof pays at most one order", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 10, 25000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		bob := s.Auth.NewCaller(t, user.RoleCustomer)
		first := s.hold(alice, unitID, 1)
		second := s.hold(bob, unitID, 1)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(paymentURL, first.OrderID),
			paymentBody("SLIP-SHARED", "250.00"), alice.Token)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(paymentURL, second.OrderID),
			paymentBody("SLIP-SHARED", "250.00"), bob.Token)
		httptest.AssertErrorCode(t, rec, http.StatusConflict, httperr.CodeProofAlreadyUsed)
		s.Equal("pending", s.status(bob, second.OrderID))
	})

	s.Run("concurrent submissions of one proof", func() {
		t := s.T()
		const orders = 6
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 20, 25000)

		type pending struct {
			caller authtest.Caller
			id     uuid.UUID
		}
		holds := make([]pending, orders)
		for i := range holds {
			c := s.Auth.NewCaller(t, user.RoleCustomer)
			holds[i] = pending{caller: c, id: s.hold(c, unitID, 1).OrderID}
		}

		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			codes = map[int]int{}
		)
		for _, h := range holds {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(paymentURL, h.id),
					paymentBody("SLIP-RACE", "250.00"), h.caller.Token)
				mu.Lock()
				codes[rec.Code]++
				mu.Unlock()
			}()
		}
		wg.Wait()

		s.Equal(1, codes[http.StatusOK])
		s.Equal(orders-1, codes[http.StatusConflict])
		s.Equal(1, dbtest.CommittedQty(t, s.DB, unitID))
	})
}

// =============================================================================
// Expiry
// =============================================================================

func (s *OrderSuite) TestHoldWindow() {
	s.Run("payment inside the window succeeds", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 10, 25000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		held := s.hold(alice, unitID, 1)
		dbtest.BackdateOrder(t, s.DB, held.OrderID, 14*time.Minute)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(paymentURL, held.OrderID),
			paymentBody("SLIP-4001", "250.00"), alice.Token)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	s.Run("payment after the window expires the order and frees capacity", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 2, 25000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		held := s.hold(alice, unitID, 2)
		s.Equal(0, s.unit(alice, unitID).Available)
		dbtest.BackdateOrder(t, s.DB, held.OrderID, 16*time.Minute)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(paymentURL, held.OrderID),
			paymentBody("SLIP-4002", "500.00"), alice.Token)
		httptest.AssertErrorCode(t, rec, http.StatusGone, httperr.CodeOrderExpired)

		s.Equal("expired", s.status(alice, held.OrderID))
		s.Equal(2, s.unit(alice, unitID).Available)
		s.Equal(0, dbtest.CommittedQty(t, s.DB, unitID))
	})

	s.Run("lapsed holds do not block new holds", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTable, "Table 3", 1, 80000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		bob := s.Auth.NewCaller(t, user.RoleCustomer)
		stale := s.hold(alice, unitID, 1)
		dbtest.BackdateOrder(t, s.DB, stale.OrderID, 20*time.Minute)

		s.hold(bob, unitID, 1)
		s.Equal("expired", s.status(alice, stale.OrderID))
	})

	s.Run("sweeping twice expires once and notifies once", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 10, 25000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		admin := s.Auth.NewCaller(t, user.RoleAdmin)
		held := s.hold(alice, unitID, 3)
		dbtest.BackdateOrder(t, s.DB, held.OrderID, time.Hour)

		var first, second resdto.SweepResponse
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, expireStaleURL, nil, admin.Token)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &first)
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, expireStaleURL, nil, admin.Token)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &second)

		s.Equal(1, first.Affected)
		s.Equal(0, second.Affected)
		// One push job and one event job.
		s.Equal(2, dbtest.CountJobs(t, s.DB, held.OrderID, "order.expired"))
		s.Equal(10, s.unit(alice, unitID).Available)
	})

	s.Run("admin endpoints require the admin role", func() {
		t := s.T()
		staff := s.Auth.NewCaller(t, user.RoleStaff)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, expireStaleURL, nil, staff.Token)
		httptest.AssertErrorCode(t, rec, http.StatusForbidden, httperr.CodeForbidden)
	})
}

// =============================================================================
// Cancel / Transfer
// =============================================================================

func (s *OrderSuite) TestCancel() {
	s.Run("owner cancels a pending order and capacity returns", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 4, 25000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		held := s.hold(alice, unitID, 4)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, held.OrderID), nil, alice.Token)
		var res resdto.OrderStateResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		s.Equal("cancelled", res.Status)
		s.Equal(4, s.unit(alice, unitID).Available)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, held.OrderID), nil, alice.Token)
		httptest.AssertErrorCode(t, rec, http.StatusConflict, httperr.CodeAlreadyTerminal)
	})

	s.Run("strangers cannot cancel, admins can", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 4, 25000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		mallory := s.Auth.NewCaller(t, user.RoleCustomer)
		admin := s.Auth.NewCaller(t, user.RoleAdmin)
		held := s.hold(alice, unitID, 1)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, held.OrderID), nil, mallory.Token)
		httptest.AssertErrorCode(t, rec, http.StatusForbidden, httperr.CodeForbidden)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, held.OrderID), nil, admin.Token)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})
}

func (s *OrderSuite) TestTransfer() {
	s.Run("paid order moves to the new owner", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 4, 25000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		bob := s.Auth.NewCaller(t, user.RoleCustomer)
		held := s.hold(alice, unitID, 1)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(paymentURL, held.OrderID),
			paymentBody("SLIP-5001", "250.00"), alice.Token)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transferURL, held.OrderID),
			map[string]any{"new_owner_id": bob.ID}, alice.Token)
		var res resdto.OrderStateResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		s.Equal(bob.ID, res.OwnerID)

		s.Equal("paid", s.status(bob, held.OrderID))
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(orderURL, held.OrderID), nil, alice.Token)
		httptest.AssertErrorCode(t, rec, http.StatusForbidden, httperr.CodeForbidden)
		s.Equal(1, dbtest.CommittedQty(t, s.DB, unitID))
	})

	s.Run("pending orders are not transferable", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 4, 25000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		held := s.hold(alice, unitID, 1)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transferURL, held.OrderID),
			map[string]any{"new_owner_id": uuid.New()}, alice.Token)
		httptest.AssertErrorCode(t, rec, http.StatusConflict, httperr.CodeNotTransferable)
	})
}

// =============================================================================
// Reads and ledger
// =============================================================================

func (s *OrderSuite) TestListOrders() {
	s.Run("pending first, then paid, expired and cancelled", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 20, 25000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)

		cancelled := s.hold(alice, unitID, 1)
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, cancelled.OrderID), nil, alice.Token)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		expired := s.hold(alice, unitID, 1)
		dbtest.BackdateOrder(t, s.DB, expired.OrderID, time.Hour)

		paid := s.hold(alice, unitID, 1)
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(paymentURL, paid.OrderID),
			paymentBody("SLIP-6001", "250.00"), alice.Token)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		olderPending := s.hold(alice, unitID, 1)
		newerPending := s.hold(alice, unitID, 1)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, alice.Token)
		var res resdto.OrderListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)

		got := make([]uuid.UUID, len(res.Orders))
		for i, o := range res.Orders {
			got[i] = o.ID
		}
		want := []uuid.UUID{newerPending.OrderID, olderPending.OrderID, paid.OrderID, expired.OrderID, cancelled.OrderID}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("order listing mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("another user's list is forbidden to customers", func() {
		t := s.T()
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		bob := s.Auth.NewCaller(t, user.RoleCustomer)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"?owner_id="+bob.ID.String(), nil, alice.Token)
		httptest.AssertErrorCode(t, rec, http.StatusForbidden, httperr.CodeForbidden)
	})

	s.Run("order view carries line details", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "Balcony", 20, 12000)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		held := s.hold(alice, unitID, 3)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(orderURL, held.OrderID), nil, alice.Token)
		var res resdto.OrderResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)

		want := []resdto.OrderLineResponse{{
			UnitID:         unitID,
			UnitKind:       "ticket_pool",
			UnitName:       "Balcony",
			UnitZone:       "A",
			Quantity:       3,
			UnitPriceCents: 12000,
		}}
		if diff := cmp.Diff(want, res.Lines, cmpopts.IgnoreFields(resdto.OrderLineResponse{}, "UnitEventDate")); diff != "" {
			t.Errorf("order lines mismatch (-want +got):\n%s", diff)
		}
		s.Equal(int64(36000), res.TotalCents)
	})
}

func (s *OrderSuite) TestReconcileLedger() {
	s.Run("drifted committed counts are restored from paid orders", func() {
		t := s.T()
		unitID := dbtest.CreateTestUnit(t, s.DB, resource.KindTicketPool, "GA", 10, 0)
		alice := s.Auth.NewCaller(t, user.RoleCustomer)
		admin := s.Auth.NewCaller(t, user.RoleAdmin)
		s.hold(alice, unitID, 3)

		_, err := s.DB.Exec(t.Context(), "UPDATE resource_units SET committed_qty = 7 WHERE id = $1", unitID)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, reconcileURL, nil, admin.Token)
		var res resdto.SweepResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		s.Equal(1, res.Affected)
		s.Equal(3, dbtest.CommittedQty(t, s.DB, unitID))
	})
}
