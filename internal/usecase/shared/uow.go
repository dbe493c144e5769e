package shared

import (
	"context"
	"time"

	"booking-core/internal/domain/order"
	"booking-core/internal/domain/resource"
	sqlc "booking-core/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Units() UnitRepository
	PaymentProofs() PaymentProofRepository
	Notifications() NotificationRepository
	DB() sqlc.DBTX
}

type CommandReads interface {
	OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	ProofUsed(ctx context.Context, proof order.ProofRef) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error)
	Save(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	ExpireStale(ctx context.Context, tx sqlc.DBTX, scope order.ExpiryScope, now time.Time) ([]ExpiredOrder, error)
	RecordTransfer(ctx context.Context, tx sqlc.DBTX, t *order.Transfer) error
}

// UnitRepository is the inventory ledger. LockForUpdate must be called before
// any availability decision on the returned units.
type UnitRepository interface {
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) ([]*resource.Unit, error)
	ReservedQuantities(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID, now time.Time) (map[uuid.UUID]int, error)
	AddCommitted(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, qty int) error
	ListIDs(ctx context.Context, tx sqlc.DBTX) ([]uuid.UUID, error)
	PaidQuantity(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int, error)
	SetCommitted(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, qty int) error
}

type PaymentProofRepository interface {
	// Claim records proof as used. A proof that is already recorded yields a
	// DUPLICATE_KEY repository error.
	Claim(ctx context.Context, tx sqlc.DBTX, proof order.ProofRef, orderID uuid.UUID, purpose ProofPurpose, amount order.Money) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error
	RequeueStale(ctx context.Context, tx sqlc.DBTX, staleBefore time.Time) (int64, error)
}
