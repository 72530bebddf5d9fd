package postgres

import (
	"context"
	"time"

	"go-hiring-pipeline/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

// NewResumeRepository creates a new resume repository
func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

// Create deactivates the user's prior resumes and inserts the new row
// within one transaction, so an upload always leaves the user with no
// active resume until SetActive is called.
func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE resumes SET is_active = false WHERE user_id = $1 AND is_active`, resume.UserID); err != nil {
		return err
	}

	query := `
		INSERT INTO resumes (user_id, title, file_path, is_active, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	resume.UploadedAt = time.Now()
	err = tx.QueryRow(ctx, query,
		resume.UserID,
		resume.Title,
		resume.FilePath,
		resume.IsActive,
		resume.UploadedAt,
	).Scan(&resume.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *resumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	query := `SELECT id, user_id, title, file_path, is_active, uploaded_at FROM resumes WHERE id = $1`

	var resume domain.Resume
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resume.ID, &resume.UserID, &resume.Title, &resume.FilePath, &resume.IsActive, &resume.UploadedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepo) GetActive(ctx context.Context, userID string) (*domain.Resume, error) {
	query := `SELECT id, user_id, title, file_path, is_active, uploaded_at FROM resumes WHERE user_id = $1 AND is_active`

	var resume domain.Resume
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&resume.ID, &resume.UserID, &resume.Title, &resume.FilePath, &resume.IsActive, &resume.UploadedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepo) ListByUser(ctx context.Context, userID string) ([]domain.Resume, error) {
	query := `SELECT id, user_id, title, file_path, is_active, uploaded_at FROM resumes WHERE user_id = $1 ORDER BY uploaded_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []domain.Resume
	for rows.Next() {
		var resume domain.Resume
		if err := rows.Scan(
			&resume.ID, &resume.UserID, &resume.Title, &resume.FilePath, &resume.IsActive, &resume.UploadedAt,
		); err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}

// SetActive deactivates all of the user's resumes and activates the
// chosen one within one transaction. No reader ever observes zero or
// two active resumes for the user.
func (r *resumeRepo) SetActive(ctx context.Context, userID string, resumeID int64) (*domain.Resume, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE resumes SET is_active = false WHERE user_id = $1 AND is_active`, userID); err != nil {
		return nil, err
	}

	var resume domain.Resume
	err = tx.QueryRow(ctx, `
		UPDATE resumes SET is_active = true
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, file_path, is_active, uploaded_at`,
		resumeID, userID,
	).Scan(&resume.ID, &resume.UserID, &resume.Title, &resume.FilePath, &resume.IsActive, &resume.UploadedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepo) Delete(ctx context.Context, userID string, resumeID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1 AND user_id = $2`, resumeID, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
