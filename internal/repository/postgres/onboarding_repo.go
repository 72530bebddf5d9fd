package postgres

import (
	"context"
	"time"

	"go-hiring-pipeline/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type onboardingRepo struct {
	db *pgxpool.Pool
}

// NewOnboardingRepository creates a new onboarding repository
func NewOnboardingRepository(db *pgxpool.Pool) domain.OnboardingRepository {
	return &onboardingRepo{db: db}
}

// CreateIfAbsent seeds the onboarding record for a hired candidate.
// The unique index on candidate_id makes re-hiring attempts and
// retries idempotent: an existing record is returned untouched.
func (r *onboardingRepo) CreateIfAbsent(ctx context.Context, ob *domain.Onboarding) (*domain.Onboarding, error) {
	query := `
		INSERT INTO onboardings (candidate_id, owner_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (candidate_id) DO NOTHING
		RETURNING id, created_at, updated_at`

	now := time.Now()
	err := r.db.QueryRow(ctx, query, ob.CandidateID, ob.OwnerID, ob.Status, now, now).
		Scan(&ob.ID, &ob.CreatedAt, &ob.UpdatedAt)
	if err == nil {
		return ob, nil
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}

	// Conflict path: the record already exists, fetch it.
	existing := &domain.Onboarding{}
	err = r.db.QueryRow(ctx,
		`SELECT id, candidate_id, owner_id, status, created_at, updated_at FROM onboardings WHERE candidate_id = $1`,
		ob.CandidateID,
	).Scan(&existing.ID, &existing.CandidateID, &existing.OwnerID, &existing.Status, &existing.CreatedAt, &existing.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *onboardingRepo) GetByID(ctx context.Context, id int64) (*domain.Onboarding, error) {
	var ob domain.Onboarding
	err := r.db.QueryRow(ctx,
		`SELECT id, candidate_id, owner_id, status, created_at, updated_at FROM onboardings WHERE id = $1`, id,
	).Scan(&ob.ID, &ob.CandidateID, &ob.OwnerID, &ob.Status, &ob.CreatedAt, &ob.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ob, nil
}

func (r *onboardingRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Onboarding, error) {
	query := `
		SELECT o.id, o.candidate_id, o.owner_id, o.status, o.created_at, o.updated_at,
			c.name as candidate_name
		FROM onboardings o
		LEFT JOIN candidates c ON o.candidate_id = c.id
		WHERE o.owner_id = $1
		ORDER BY o.created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Onboarding
	for rows.Next() {
		var ob domain.Onboarding
		if err := rows.Scan(
			&ob.ID, &ob.CandidateID, &ob.OwnerID, &ob.Status, &ob.CreatedAt, &ob.UpdatedAt,
			&ob.CandidateName,
		); err != nil {
			return nil, err
		}
		records = append(records, ob)
	}
	return records, rows.Err()
}

// UpdateStatus is owner-scoped: rows belonging to another manager are
// reported as not found.
func (r *onboardingRepo) UpdateStatus(ctx context.Context, id int64, ownerID string, status domain.OnboardingStatus) (*domain.Onboarding, error) {
	query := `
		UPDATE onboardings
		SET status = $3, updated_at = $4
		WHERE id = $1 AND owner_id = $2
		RETURNING id, candidate_id, owner_id, status, created_at, updated_at`

	var ob domain.Onboarding
	err := r.db.QueryRow(ctx, query, id, ownerID, status, time.Now()).
		Scan(&ob.ID, &ob.CandidateID, &ob.OwnerID, &ob.Status, &ob.CreatedAt, &ob.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ob, nil
}
