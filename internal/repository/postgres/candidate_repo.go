package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-hiring-pipeline/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

// Create inserts a new candidate with an empty notes history
func (r *candidateRepo) Create(ctx context.Context, cand *domain.Candidate) error {
	query := `
		INSERT INTO candidates (name, email, phone, skills, status, submitted_by, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, '[]'::jsonb, $7, $8)
		RETURNING id`

	now := time.Now()
	cand.CreatedAt = now
	cand.UpdatedAt = now
	if cand.Status == "" {
		cand.Status = domain.CandidateStatusSubmitted
	}

	return r.db.QueryRow(ctx, query,
		cand.Name,
		cand.Email,
		cand.Phone,
		pq.Array(cand.Skills),
		cand.Status,
		cand.SubmittedBy,
		cand.CreatedAt,
		cand.UpdatedAt,
	).Scan(&cand.ID)
}

const candidateColumns = `id, name, email, phone, skills, status, active_resume_id, submitted_by, notes, created_at, updated_at`

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var cand domain.Candidate
	var notes []byte
	if err := row.Scan(
		&cand.ID, &cand.Name, &cand.Email, &cand.Phone, pq.Array(&cand.Skills),
		&cand.Status, &cand.ActiveResumeID, &cand.SubmittedBy, &notes,
		&cand.CreatedAt, &cand.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(notes, &cand.Notes); err != nil {
		return nil, fmt.Errorf("failed to decode candidate notes: %w", err)
	}
	return &cand, nil
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	cand, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cand, nil
}

func (r *candidateRepo) ListBySubmitter(ctx context.Context, userID string) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE submitted_by = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCandidates(rows)
}

func (r *candidateRepo) List(ctx context.Context, limit, offset int) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCandidates(rows)
}

func collectCandidates(rows pgx.Rows) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	for rows.Next() {
		cand, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *cand)
	}
	return candidates, rows.Err()
}

// UpdateStatus applies a transition and appends an optional note to
// the history in the same statement. The JSONB concat keeps the notes
// list append-only and order-preserving under concurrent writers.
func (r *candidateRepo) UpdateStatus(ctx context.Context, id int64, status string, note *domain.Note) (*domain.Candidate, error) {
	appended := "[]"
	if note != nil {
		b, err := json.Marshal([]domain.Note{*note})
		if err != nil {
			return nil, fmt.Errorf("failed to encode note: %w", err)
		}
		appended = string(b)
	}

	query := `
		UPDATE candidates
		SET status = $2, notes = notes || $3::jsonb, updated_at = $4
		WHERE id = $1
		RETURNING ` + candidateColumns

	cand, err := scanCandidate(r.db.QueryRow(ctx, query, id, status, appended, time.Now()))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cand, nil
}

func (r *candidateRepo) SetActiveResume(ctx context.Context, id int64, resumeID *int64) error {
	query := `UPDATE candidates SET active_resume_id = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, resumeID, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
