package domain

import (
	"context"
	"time"
)

// Position is an employer/manager-owned job posting. The pipeline and
// scheduler read it (notification target resolution) but never mutate
// it.
type Position struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title" validate:"required,min=3,max=100"`
	Department string    `json:"department" validate:"max=100"`
	Tags       []string  `json:"tags,omitempty"`
	Status     string    `json:"status"`
	CreatedBy  string    `json:"created_by"` // Hiring manager's user id
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PositionRepository interface {
	Create(ctx context.Context, pos *Position) error
	GetByID(ctx context.Context, id int64) (*Position, error)
	// GetByTitle resolves a position by exact title match. Legacy
	// lookup kept for interview rows without a position id; ambiguous
	// on duplicate titles.
	GetByTitle(ctx context.Context, title string) (*Position, error)
	List(ctx context.Context, limit, offset int) ([]Position, error)
}

type PositionUsecase interface {
	Create(ctx context.Context, actor Principal, pos *Position) error
	GetByID(ctx context.Context, id int64) (*Position, error)
	List(ctx context.Context, page, pageSize int) ([]Position, error)
}
