package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"booking-core/internal/domain/order"
	"booking-core/internal/domain/resource"
	"booking-core/internal/infra"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrValidation         = errs.ErrValidation
	ErrOrderNotFound      = errs.ErrOrderNotFound
	ErrUnitNotFound       = errs.ErrUnitNotFound
	ErrForbidden          = errs.ErrForbidden
	ErrUnitUnavailable    = errs.New("unit is not open for booking")
	ErrCapacityExceeded   = errs.New("requested quantity exceeds availability")
	ErrOrderExpired       = errs.New("order hold has expired")
	ErrAlreadyTerminal    = errs.New("order is already final")
	ErrAmountMismatch     = errs.New("claimed amount does not match order total")
	ErrVerificationFailed = errs.New("payment proof could not be verified")
	ErrProofAlreadyUsed   = errs.New("payment proof has already been used")
	ErrNotTransferable    = errs.New("order cannot be transferred")
)

type OrderCommands interface {
	CreateHold(ctx context.Context, actor order.Actor, req CreateHoldRequest) (*HoldResult, error)
	ConfirmPayment(ctx context.Context, actor order.Actor, req ConfirmPaymentRequest) (*OrderStateResult, error)
	Cancel(ctx context.Context, actor order.Actor, orderID uuid.UUID) (*OrderStateResult, error)
	Transfer(ctx context.Context, actor order.Actor, req TransferRequest) (*OrderStateResult, error)
	ExpireStale(ctx context.Context, scope order.ExpiryScope) (int, error)
	ReconcileLedger(ctx context.Context) (int, error)
}

type orderCommandsImpl struct {
	uow      shared.UnitOfWork
	verifier PaymentVerifier
	encoder  queries.PaymentPayloadEncoder
	settings OrderSettings
	services *order.Services
	clock    clock.Clock
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	verifier PaymentVerifier,
	encoder queries.PaymentPayloadEncoder,
	settings OrderSettings,
	clock clock.Clock,
) OrderCommands {
	return &orderCommandsImpl{
		uow:      uow,
		verifier: verifier,
		encoder:  encoder,
		settings: settings,
		services: &order.Services{Clock: clock, HoldWindow: settings.HoldWindow},
		clock:    clock,
	}
}

func (uc *orderCommandsImpl) CreateHold(ctx context.Context, actor order.Actor, req CreateHoldRequest) (*HoldResult, error) {
	requested, ids, err := uc.validateHoldLines(req.Lines)
	if err != nil {
		return nil, err
	}

	var (
		created   *order.Order
		rejection error
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, rejection = nil, nil
		now := uc.clock.Now()

		units, err := tx.Units().LockForUpdate(ctx, tx.DB(), ids)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUnitNotFound)
			}
			return err
		}

		if err := uc.expireForHold(ctx, tx, actor.UserID, ids, now); err != nil {
			return err
		}

		reserved, err := tx.Units().ReservedQuantities(ctx, tx.DB(), ids, now)
		if err != nil {
			return err
		}

		lines := make([]order.Line, 0, len(units))
		for _, u := range units {
			qty := requested[u.ID()]
			if err := u.Reserve(qty, reserved[u.ID()]); err != nil {
				// Keep the expiry pass; only the hold itself is refused.
				rejection = mapReserveErr(err)
				return nil
			}
			line, err := order.NewLine(u.ID(), qty, order.MustMoney(u.PriceCents()))
			if err != nil {
				return errs.Mark(err, ErrValidation)
			}
			lines = append(lines, line)
		}

		o, err := order.NewHold(uc.services, actor.UserID, lines)
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}
		if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
			return err
		}

		if o.Status() == order.StatusPaid {
			if err := commitLines(ctx, tx, o); err != nil {
				return err
			}
			if err := enqueueEvent(ctx, tx, paidEvent(o, now)); err != nil {
				return err
			}
		} else if err := enqueueEvent(ctx, tx, heldEvent(o, now)); err != nil {
			return err
		}

		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	if rejection != nil {
		return nil, rejection
	}

	slog.Info("order hold created",
		slog.String("order_id", created.ID().String()),
		slog.String("status", created.Status().String()),
		slog.Int64("total_cents", created.Total().Cents()))

	result := &HoldResult{
		OrderID:    created.ID(),
		Status:     created.Status(),
		TotalCents: created.Total().Cents(),
		ExpiresAt:  created.ExpiresAt(),
	}
	if created.RequiresPayment() && uc.encoder != nil {
		payload, err := uc.encoder.Encode(created.Total().Cents())
		if err != nil {
			slog.Warn("failed to encode payment payload",
				slog.String("order_id", created.ID().String()),
				slog.String("error", err.Error()))
		} else {
			result.PaymentPayload = &payload
		}
	}
	return result, nil
}

func (uc *orderCommandsImpl) validateHoldLines(lines []HoldLine) (map[uuid.UUID]int, []uuid.UUID, error) {
	if len(lines) == 0 {
		return nil, nil, errs.Mark(order.ErrEmptyLines, ErrValidation)
	}

	requested := make(map[uuid.UUID]int, len(lines))
	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		if l.UnitID == uuid.Nil {
			return nil, nil, errs.Mark(errs.New("unit id is required"), ErrValidation)
		}
		if l.Quantity <= 0 {
			return nil, nil, errs.Mark(order.ErrInvalidQuantity, ErrValidation)
		}
		if uc.settings.MaxQuantityPerLine > 0 && l.Quantity > uc.settings.MaxQuantityPerLine {
			return nil, nil, errs.Mark(order.ErrQuantityTooLarge, ErrValidation)
		}
		if _, dup := requested[l.UnitID]; dup {
			return nil, nil, errs.Mark(order.ErrDuplicateUnit, ErrValidation)
		}
		requested[l.UnitID] = l.Quantity
		ids = append(ids, l.UnitID)
	}
	order.SortUnitIDs(ids)
	return requested, ids, nil
}

// expireForHold releases stale holds on the locked units and on the owner's
// other orders before availability is recomputed.
func (uc *orderCommandsImpl) expireForHold(ctx context.Context, tx shared.Tx, ownerID uuid.UUID, ids []uuid.UUID, now time.Time) error {
	for _, scope := range []order.ExpiryScope{order.UnitScope(ids), order.OwnerScope(ownerID)} {
		expired, err := tx.Orders().ExpireStale(ctx, tx.DB(), scope, now)
		if err != nil {
			return err
		}
		if err := enqueueExpired(ctx, tx, expired, now); err != nil {
			return err
		}
	}
	return nil
}

func mapReserveErr(err error) error {
	switch {
	case errors.Is(err, resource.ErrUnitInactive):
		return errs.Mark(err, ErrUnitUnavailable)
	case errors.Is(err, resource.ErrCapacityExceeded):
		return errs.Mark(err, ErrCapacityExceeded)
	default:
		return err
	}
}

func commitLines(ctx context.Context, tx shared.Tx, o *order.Order) error {
	for _, l := range o.Lines() {
		if err := tx.Units().AddCommitted(ctx, tx.DB(), l.UnitID(), l.Quantity()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrCapacityExceeded)
			}
			return err
		}
	}
	return nil
}

// ConfirmPayment settles a pending order with an external payment proof.
// Verification happens outside the transaction; the proof claim inside it is
// what makes a proof single-use.
func (uc *orderCommandsImpl) ConfirmPayment(ctx context.Context, actor order.Actor, req ConfirmPaymentRequest) (*OrderStateResult, error) {
	proof, err := order.NewProofRef(req.ProofRef)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if req.ClaimedAmount.IsNegative() {
		return nil, errs.Mark(order.ErrNegativeAmount, ErrValidation)
	}

	current, err := uc.loadOwnedOrder(ctx, actor, req.OrderID)
	if err != nil {
		return nil, err
	}
	if current.IsStale(uc.clock.Now()) {
		if _, err := uc.ExpireStale(ctx, order.OrderScope(req.OrderID)); err != nil {
			return nil, err
		}
		return nil, ErrOrderExpired
	}
	switch current.Status() {
	case order.StatusPending:
	case order.StatusExpired:
		return nil, ErrOrderExpired
	default:
		return nil, ErrAlreadyTerminal
	}
	if !current.Total().Matches(req.ClaimedAmount, uc.settings.AmountEpsilon) {
		return nil, ErrAmountMismatch
	}

	if err := uc.verifier.Verify(ctx, proof, current.Total()); err != nil {
		slog.Warn("payment verification failed",
			slog.String("order_id", req.OrderID.String()),
			slog.String("error", err.Error()))
		return nil, errs.Mark(err, ErrVerificationFailed)
	}

	// Fast reject before taking unit locks; the claim below is authoritative.
	used, err := uc.uow.CommandReads().ProofUsed(ctx, proof)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, ErrProofAlreadyUsed
	}

	var (
		paid    *order.Order
		expired bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		paid, expired = nil, false
		now := uc.clock.Now()

		if _, err := tx.Units().LockForUpdate(ctx, tx.DB(), current.UnitIDs()); err != nil {
			return err
		}
		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), req.OrderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOrderNotFound)
			}
			return err
		}

		if o.IsStale(now) {
			if err := uc.expireLocked(ctx, tx, o, now); err != nil {
				return err
			}
			expired = true
			return nil
		}

		if err := o.ConfirmPayment(proof, req.SlipURL, now); err != nil {
			return mapTransitionErr(err)
		}
		if err := tx.PaymentProofs().Claim(ctx, tx.DB(), proof, o.ID(), shared.ProofPurposeOrderPayment, o.Total()); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrProofAlreadyUsed)
			}
			return err
		}
		if err := tx.Orders().Save(ctx, tx.DB(), o); err != nil {
			return err
		}
		if err := commitLines(ctx, tx, o); err != nil {
			return err
		}
		if err := enqueueEvent(ctx, tx, paidEvent(o, now)); err != nil {
			return err
		}

		paid = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, ErrOrderExpired
	}

	slog.Info("order paid",
		slog.String("order_id", paid.ID().String()),
		slog.String("proof_ref", proof.String()))
	return stateOf(paid), nil
}

func (uc *orderCommandsImpl) Cancel(ctx context.Context, actor order.Actor, orderID uuid.UUID) (*OrderStateResult, error) {
	var (
		cancelled *order.Order
		expired   bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cancelled, expired = nil, false
		now := uc.clock.Now()

		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOrderNotFound)
			}
			return err
		}
		if err := o.Authorize(actor); err != nil {
			return errs.Mark(err, ErrForbidden)
		}

		if o.IsStale(now) {
			if err := uc.expireLocked(ctx, tx, o, now); err != nil {
				return err
			}
			expired = true
			return nil
		}

		if err := o.Cancel(actor, now); err != nil {
			return mapTransitionErr(err)
		}
		if err := tx.Orders().Save(ctx, tx.DB(), o); err != nil {
			return err
		}
		if err := enqueueEvent(ctx, tx, cancelledEvent(o, now)); err != nil {
			return err
		}

		cancelled = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, ErrOrderExpired
	}

	slog.Info("order cancelled",
		slog.String("order_id", orderID.String()),
		slog.String("actor_id", actor.UserID.String()),
		slog.String("actor_role", actor.Role.String()))
	return stateOf(cancelled), nil
}

// Transfer hands a paid order to another user. When a transfer fee is
// configured the caller must present a proof for it, which is claimed under
// the same uniqueness rule as order payments.
func (uc *orderCommandsImpl) Transfer(ctx context.Context, actor order.Actor, req TransferRequest) (*OrderStateResult, error) {
	if req.NewOwnerID == uuid.Nil {
		return nil, errs.Mark(errs.New("new owner id is required"), ErrValidation)
	}

	var feeProof *order.ProofRef
	if !uc.settings.TransferFee.IsZero() {
		if req.FeeProofRef == nil {
			return nil, errs.Mark(errs.New("transfer fee proof is required"), ErrValidation)
		}
		p, err := order.NewProofRef(*req.FeeProofRef)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
		feeProof = &p
	}

	current, err := uc.loadOwnedOrder(ctx, actor, req.OrderID)
	if err != nil {
		return nil, err
	}
	if current.Status() != order.StatusPaid {
		return nil, ErrNotTransferable
	}

	if feeProof != nil {
		if err := uc.verifier.Verify(ctx, *feeProof, uc.settings.TransferFee); err != nil {
			slog.Warn("transfer fee verification failed",
				slog.String("order_id", req.OrderID.String()),
				slog.String("error", err.Error()))
			return nil, errs.Mark(err, ErrVerificationFailed)
		}
	}

	var transferred *order.Order
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		transferred = nil
		now := uc.clock.Now()

		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), req.OrderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOrderNotFound)
			}
			return err
		}

		from := actor.UserID
		if actor.IsAdmin() {
			from = o.OwnerID()
		}
		t, err := o.TransferTo(from, req.NewOwnerID, feeProof, req.SlipURL, now)
		if err != nil {
			return mapTransitionErr(err)
		}

		if feeProof != nil {
			if err := tx.PaymentProofs().Claim(ctx, tx.DB(), *feeProof, o.ID(), shared.ProofPurposeTransferFee, uc.settings.TransferFee); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return errs.Mark(err, ErrProofAlreadyUsed)
				}
				return err
			}
		}
		if err := tx.Orders().Save(ctx, tx.DB(), o); err != nil {
			return err
		}
		if err := tx.Orders().RecordTransfer(ctx, tx.DB(), t); err != nil {
			return err
		}
		if err := enqueueEvent(ctx, tx, transferredEvent(o, now)); err != nil {
			return err
		}

		transferred = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order transferred",
		slog.String("order_id", req.OrderID.String()),
		slog.String("from", current.OwnerID().String()),
		slog.String("to", req.NewOwnerID.String()))
	return stateOf(transferred), nil
}

// ExpireStale moves every lapsed hold in scope to expired. Running it again
// over the same orders changes nothing.
func (uc *orderCommandsImpl) ExpireStale(ctx context.Context, scope order.ExpiryScope) (int, error) {
	var count int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count = 0
		now := uc.clock.Now()

		expired, err := tx.Orders().ExpireStale(ctx, tx.DB(), scope, now)
		if err != nil {
			return err
		}
		if err := enqueueExpired(ctx, tx, expired, now); err != nil {
			return err
		}
		count = len(expired)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if count > 0 {
		slog.Info("expired stale orders", slog.Int("expired", count), slog.Bool("global", scope.IsGlobal()))
	}
	return count, nil
}

// ReconcileLedger recomputes each unit's committed quantity from its paid
// order lines and returns how many units were corrected.
func (uc *orderCommandsImpl) ReconcileLedger(ctx context.Context) (int, error) {
	var ids []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Units().ListIDs(ctx, tx.DB())
		return err
	})
	if err != nil {
		return 0, err
	}

	adjusted := 0
	for _, id := range ids {
		var changed bool
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			changed = false
			units, err := tx.Units().LockForUpdate(ctx, tx.DB(), []uuid.UUID{id})
			if err != nil {
				return err
			}
			paid, err := tx.Units().PaidQuantity(ctx, tx.DB(), id)
			if err != nil {
				return err
			}
			if units[0].Committed() == paid {
				return nil
			}

			slog.Warn("committed quantity drifted",
				slog.String("unit_id", id.String()),
				slog.Int("committed", units[0].Committed()),
				slog.Int("paid", paid))
			changed = true
			return tx.Units().SetCommitted(ctx, tx.DB(), id, paid)
		})
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return adjusted, err
		}
		if changed {
			adjusted++
		}
	}
	return adjusted, nil
}

func (uc *orderCommandsImpl) loadOwnedOrder(ctx context.Context, actor order.Actor, id uuid.UUID) (*order.Order, error) {
	o, err := uc.uow.CommandReads().OrderByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, err
	}
	if err := o.Authorize(actor); err != nil {
		return nil, errs.Mark(err, ErrForbidden)
	}
	return o, nil
}

func (uc *orderCommandsImpl) expireLocked(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) error {
	if err := o.Expire(now); err != nil {
		return err
	}
	if err := tx.Orders().Save(ctx, tx.DB(), o); err != nil {
		return err
	}
	return enqueueEvent(ctx, tx, expiredEvent(shared.ExpiredOrder{ID: o.ID(), OwnerID: o.OwnerID()}, now))
}

func mapTransitionErr(err error) error {
	switch {
	case errors.Is(err, order.ErrOrderExpired):
		return errs.Mark(err, ErrOrderExpired)
	case errors.Is(err, order.ErrAlreadyTerminal):
		return errs.Mark(err, ErrAlreadyTerminal)
	case errors.Is(err, order.ErrForbidden):
		return errs.Mark(err, ErrForbidden)
	case errors.Is(err, order.ErrNotTransferable):
		return errs.Mark(err, ErrNotTransferable)
	case errors.Is(err, order.ErrSameOwner), errors.Is(err, order.ErrInvalidProofRef):
		return errs.Mark(err, ErrValidation)
	default:
		return err
	}
}
