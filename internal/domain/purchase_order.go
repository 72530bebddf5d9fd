package domain

import (
	"context"
	"time"
)

// Purchase order statuses. Approved and rejected are terminal:
// re-applying the same terminal status is a no-op, flipping between
// terminal statuses is a conflict.
const (
	POStatusPending  = "pending"
	POStatusApproved = "approved"
	POStatusRejected = "rejected"
)

type PurchaseOrder struct {
	ID          int64     `json:"id"`
	PONumber    string    `json:"po_number"`
	Vendor      string    `json:"vendor" validate:"required,max=100"`
	Description string    `json:"description" validate:"max=1000"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *PurchaseOrder) IsTerminal() bool {
	return p.Status == POStatusApproved || p.Status == POStatusRejected
}

type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *PurchaseOrder) error
	GetByID(ctx context.Context, id int64) (*PurchaseOrder, error)
	ListByOwner(ctx context.Context, ownerID string) ([]PurchaseOrder, error)
	List(ctx context.Context) ([]PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type PurchaseOrderUsecase interface {
	Create(ctx context.Context, actor Principal, po *PurchaseOrder) error
	List(ctx context.Context, actor Principal) ([]PurchaseOrder, error)
	SetStatus(ctx context.Context, actor Principal, id int64, status string) (*PurchaseOrder, error)
}
