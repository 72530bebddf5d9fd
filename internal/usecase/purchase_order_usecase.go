package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-hiring-pipeline/internal/domain"
	"go-hiring-pipeline/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type purchaseOrderUsecase struct {
	poRepo   domain.PurchaseOrderRepository
	validate *validator.Validate
}

// NewPurchaseOrderUsecase creates the purchase order approval gate
func NewPurchaseOrderUsecase(poRepo domain.PurchaseOrderRepository, validate *validator.Validate) domain.PurchaseOrderUsecase {
	return &purchaseOrderUsecase{poRepo: poRepo, validate: validate}
}

// Create registers a pending purchase order with a generated,
// human-readable PO number.
func (uc *purchaseOrderUsecase) Create(ctx context.Context, actor domain.Principal, po *domain.PurchaseOrder) error {
	if !actor.Role.Can(domain.CapManagePurchaseOrders) {
		return apperror.Forbidden("You are not allowed to create purchase orders")
	}
	if err := uc.validate.Struct(po); err != nil {
		return validationError(err)
	}

	po.PONumber = generatePONumber()
	po.Status = domain.POStatusPending
	po.CreatedBy = actor.ID

	if err := uc.poRepo.Create(ctx, po); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *purchaseOrderUsecase) List(ctx context.Context, actor domain.Principal) ([]domain.PurchaseOrder, error) {
	if !actor.Role.Can(domain.CapManagePurchaseOrders) {
		return nil, apperror.Forbidden("You are not allowed to view purchase orders")
	}
	if actor.Role == domain.RoleAdmin {
		return uc.poRepo.List(ctx)
	}
	return uc.poRepo.ListByOwner(ctx, actor.ID)
}

// SetStatus approves or rejects a pending purchase order. Re-applying
// the terminal status a PO already holds is a no-op returning the
// unchanged record; flipping between terminal statuses is a conflict.
func (uc *purchaseOrderUsecase) SetStatus(ctx context.Context, actor domain.Principal, id int64, status string) (*domain.PurchaseOrder, error) {
	if !actor.Role.Can(domain.CapManagePurchaseOrders) {
		return nil, apperror.Forbidden("You are not allowed to approve purchase orders")
	}
	if status != domain.POStatusApproved && status != domain.POStatusRejected {
		return nil, apperror.BadRequest("Status must be approved or rejected")
	}

	po, err := uc.poRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Purchase order not found")
	}

	if po.IsTerminal() {
		if po.Status == status {
			return po, nil
		}
		return nil, apperror.Conflict(fmt.Sprintf("cannot mark a %s purchase order as %s", po.Status, status))
	}

	if err := uc.poRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, apperror.Internal(err)
	}
	po.Status = status
	return po, nil
}

func generatePONumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("PO-%s-%s", time.Now().Format("20060102"), suffix)
}
