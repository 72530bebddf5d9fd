package postgres

import (
	"context"
	"time"

	"go-hiring-pipeline/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type positionRepo struct {
	db *pgxpool.Pool
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *pgxpool.Pool) domain.PositionRepository {
	return &positionRepo{db: db}
}

const positionColumns = `id, title, department, tags, status, created_by, created_at, updated_at`

func (r *positionRepo) Create(ctx context.Context, pos *domain.Position) error {
	query := `
		INSERT INTO positions (title, department, tags, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	now := time.Now()
	pos.CreatedAt = now
	pos.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		pos.Title, pos.Department, pq.Array(pos.Tags), pos.Status, pos.CreatedBy, pos.CreatedAt, pos.UpdatedAt,
	).Scan(&pos.ID)
}

func scanPosition(row pgx.Row) (*domain.Position, error) {
	var pos domain.Position
	if err := row.Scan(
		&pos.ID, &pos.Title, &pos.Department, pq.Array(&pos.Tags),
		&pos.Status, &pos.CreatedBy, &pos.CreatedAt, &pos.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &pos, nil
}

func (r *positionRepo) GetByID(ctx context.Context, id int64) (*domain.Position, error) {
	pos, err := scanPosition(r.db.QueryRow(ctx, `SELECT `+positionColumns+` FROM positions WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return pos, nil
}

// GetByTitle resolves a position by exact title match. When several
// positions share a title the most recent wins; callers treat this as
// a legacy lookup.
func (r *positionRepo) GetByTitle(ctx context.Context, title string) (*domain.Position, error) {
	pos, err := scanPosition(r.db.QueryRow(ctx,
		`SELECT `+positionColumns+` FROM positions WHERE title = $1 ORDER BY created_at DESC LIMIT 1`, title))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return pos, nil
}

func (r *positionRepo) List(ctx context.Context, limit, offset int) ([]domain.Position, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+positionColumns+` FROM positions ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []domain.Position
	for rows.Next() {
		pos, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, *pos)
	}
	return positions, rows.Err()
}
