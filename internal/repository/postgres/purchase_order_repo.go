package postgres

import (
	"context"
	"time"

	"go-hiring-pipeline/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type purchaseOrderRepo struct {
	db *pgxpool.Pool
}

// NewPurchaseOrderRepository creates a new purchase order repository
func NewPurchaseOrderRepository(db *pgxpool.Pool) domain.PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

const poColumns = `id, po_number, vendor, description, amount, status, created_by, created_at, updated_at`

func (r *purchaseOrderRepo) Create(ctx context.Context, po *domain.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (po_number, vendor, description, amount, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	now := time.Now()
	po.CreatedAt = now
	po.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		po.PONumber, po.Vendor, po.Description, po.Amount, po.Status, po.CreatedBy, po.CreatedAt, po.UpdatedAt,
	).Scan(&po.ID)
}

func scanPurchaseOrder(row pgx.Row) (*domain.PurchaseOrder, error) {
	var po domain.PurchaseOrder
	if err := row.Scan(
		&po.ID, &po.PONumber, &po.Vendor, &po.Description, &po.Amount,
		&po.Status, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &po, nil
}

func (r *purchaseOrderRepo) GetByID(ctx context.Context, id int64) (*domain.PurchaseOrder, error) {
	po, err := scanPurchaseOrder(r.db.QueryRow(ctx, `SELECT `+poColumns+` FROM purchase_orders WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return po, nil
}

func (r *purchaseOrderRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.PurchaseOrder, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+poColumns+` FROM purchase_orders WHERE created_by = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPurchaseOrders(rows)
}

func (r *purchaseOrderRepo) List(ctx context.Context) ([]domain.PurchaseOrder, error) {
	rows, err := r.db.Query(ctx, `SELECT `+poColumns+` FROM purchase_orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPurchaseOrders(rows)
}

func collectPurchaseOrders(rows pgx.Rows) ([]domain.PurchaseOrder, error) {
	var orders []domain.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *po)
	}
	return orders, rows.Err()
}

func (r *purchaseOrderRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE purchase_orders SET status = $2, updated_at = $3 WHERE id = $1`, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
