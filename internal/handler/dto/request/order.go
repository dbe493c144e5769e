package request

import (
	"strings"

	"booking-core/internal/pkg/patch"
	"booking-core/internal/pkg/ptr"
	"booking-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HoldLineRequest struct {
	UnitID   uuid.UUID `json:"unit_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Lines []HoldLineRequest `json:"lines" binding:"required,min=1,dive"`
}

func (r CreateOrderRequest) ToCommand() commands.CreateHoldRequest {
	lines := make([]commands.HoldLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = commands.HoldLine{UnitID: l.UnitID, Quantity: l.Quantity}
	}
	return commands.CreateHoldRequest{Lines: lines}
}

// ConfirmPaymentRequest carries the amount as a decimal string or number in
// major units, e.g. "250.00".
type ConfirmPaymentRequest struct {
	ProofRef string           `json:"proof_ref" binding:"required,max=128"`
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	SlipURL  *string          `json:"slip_url,omitempty" binding:"omitempty,url,max=2048"`
}

func (r ConfirmPaymentRequest) ToCommand(orderID uuid.UUID) commands.ConfirmPaymentRequest {
	return commands.ConfirmPaymentRequest{
		OrderID:       orderID,
		ProofRef:      strings.TrimSpace(r.ProofRef),
		ClaimedAmount: *r.Amount,
		SlipURL:       r.SlipURL,
	}
}

type TransferOrderRequest struct {
	NewOwnerID  uuid.UUID `json:"new_owner_id" binding:"required"`
	FeeProofRef *string   `json:"fee_proof_ref,omitempty" binding:"omitempty,max=128"`
	SlipURL     *string   `json:"slip_url,omitempty" binding:"omitempty,url,max=2048"`
}

func (r TransferOrderRequest) ToCommand(orderID uuid.UUID) commands.TransferRequest {
	return commands.TransferRequest{
		OrderID:     orderID,
		NewOwnerID:  r.NewOwnerID,
		FeeProofRef: trimmed(r.FeeProofRef),
		SlipURL:     r.SlipURL,
	}
}

// ListOrdersQuery lets admins read another user's orders via
// owner_id. Everyone else reads their own.
type ListOrdersQuery struct {
	OwnerID *string `form:"owner_id" binding:"omitempty,uuid"`
	Limit   int     `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q ListOrdersQuery) Owner(fallback uuid.UUID) uuid.UUID {
	id, err := uuid.Parse(patch.Coalesce(q.OwnerID, ""))
	if err != nil {
		return fallback
	}
	return id
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return ptr.Of(t)
}
