package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-hiring-pipeline/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (candidate_id, position_id, employer_id, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, '[]'::jsonb, $5, $6)
		RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	return r.db.QueryRow(ctx, query,
		app.CandidateID,
		app.PositionID,
		app.EmployerID,
		app.Status,
		app.CreatedAt,
		app.UpdatedAt,
	).Scan(&app.ID)
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	var notes []byte
	if err := row.Scan(
		&app.ID, &app.CandidateID, &app.PositionID, &app.EmployerID,
		&app.Status, &app.OnboardingStatus, &notes,
		&app.CreatedAt, &app.UpdatedAt,
		&app.CandidateName, &app.PositionTitle,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(notes, &app.Notes); err != nil {
		return nil, fmt.Errorf("failed to decode application notes: %w", err)
	}
	return &app, nil
}

const applicationSelect = `
	SELECT
		a.id, a.candidate_id, a.position_id, a.employer_id,
		a.status, a.onboarding_status, a.notes,
		a.created_at, a.updated_at,
		c.name as candidate_name,
		p.title as position_title
	FROM applications a
	LEFT JOIN candidates c ON a.candidate_id = c.id
	LEFT JOIN positions p ON a.position_id = p.id`

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	app, err := scanApplication(r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *applicationRepo) GetByCandidateID(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, applicationSelect+` WHERE a.candidate_id = $1 ORDER BY a.created_at DESC`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *app)
	}
	return applications, rows.Err()
}

// UpdateStatus applies a transition, appending an optional note to the
// history in the same statement.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string, note *domain.Note) (*domain.Application, error) {
	appended := "[]"
	if note != nil {
		b, err := json.Marshal([]domain.Note{*note})
		if err != nil {
			return nil, fmt.Errorf("failed to encode note: %w", err)
		}
		appended = string(b)
	}

	query := `
		UPDATE applications
		SET status = $2, notes = notes || $3::jsonb, updated_at = $4
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status, appended, time.Now())
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *applicationRepo) SetOnboardingStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET onboarding_status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
