package domain

import (
	"context"
	"time"
)

// Resume is an uploaded resume record. At most one resume per user is
// active at any time; activation is invariant-protected in the
// repository.
type Resume struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title" validate:"required,max=100"`
	FilePath   string    `json:"file_path"` // Opaque blob store key
	IsActive   bool      `json:"is_active"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, id int64) (*Resume, error)
	GetActive(ctx context.Context, userID string) (*Resume, error)
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	// SetActive deactivates every resume of the user and activates the
	// chosen one inside a single transaction, so no reader ever
	// observes zero or two active resumes.
	SetActive(ctx context.Context, userID string, resumeID int64) (*Resume, error)
	Delete(ctx context.Context, userID string, resumeID int64) error
}

type ResumeUsecase interface {
	Upload(ctx context.Context, actor Principal, filename, title string, content []byte) (*Resume, error)
	SetActive(ctx context.Context, actor Principal, resumeID int64) (*Resume, error)
	Delete(ctx context.Context, actor Principal, resumeID int64) error
	GetActive(ctx context.Context, actor Principal) (*Resume, error)
	List(ctx context.Context, actor Principal) ([]Resume, error)
}
