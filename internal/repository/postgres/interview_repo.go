package postgres

import (
	"context"
	"time"

	"go-hiring-pipeline/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

const interviewColumns = `id, candidate_id, position_id, job_position, interviewer, schedule_at, status, result, rating, feedback, created_by, created_at, updated_at`

func (r *interviewRepo) Create(ctx context.Context, iv *domain.Interview) error {
	query := `
		INSERT INTO interviews (candidate_id, position_id, job_position, interviewer, schedule_at, status, result, rating, feedback, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	now := time.Now()
	iv.CreatedAt = now
	iv.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		iv.CandidateID,
		iv.PositionID,
		iv.JobPosition,
		iv.Interviewer,
		iv.ScheduleAt,
		iv.Status,
		iv.Result,
		iv.Rating,
		iv.Feedback,
		iv.CreatedBy,
		iv.CreatedAt,
		iv.UpdatedAt,
	).Scan(&iv.ID)
}

func scanInterview(row pgx.Row) (*domain.Interview, error) {
	var iv domain.Interview
	if err := row.Scan(
		&iv.ID, &iv.CandidateID, &iv.PositionID, &iv.JobPosition, &iv.Interviewer,
		&iv.ScheduleAt, &iv.Status, &iv.Result, &iv.Rating, &iv.Feedback,
		&iv.CreatedBy, &iv.CreatedAt, &iv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *interviewRepo) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	iv, err := scanInterview(r.db.QueryRow(ctx, `SELECT `+interviewColumns+` FROM interviews WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return iv, nil
}

func (r *interviewRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Interview, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE candidate_id = $1 ORDER BY created_at DESC`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []domain.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	return interviews, rows.Err()
}

func (r *interviewRepo) Update(ctx context.Context, iv *domain.Interview) error {
	query := `
		UPDATE interviews
		SET position_id = $2, job_position = $3, interviewer = $4, schedule_at = $5,
			status = $6, result = $7, rating = $8, feedback = $9, updated_at = $10
		WHERE id = $1`

	iv.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		iv.ID, iv.PositionID, iv.JobPosition, iv.Interviewer, iv.ScheduleAt,
		iv.Status, iv.Result, iv.Rating, iv.Feedback, iv.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
