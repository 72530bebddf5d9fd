package domain

import (
	"context"
	"time"
)

// Application status constants. Hired and rejected are terminal.
const (
	ApplicationStatusApplied   = "applied"
	ApplicationStatusScreening = "screening"
	ApplicationStatusInterview = "interview"
	ApplicationStatusOffer     = "offer"
	ApplicationStatusHired     = "hired"
	ApplicationStatusRejected  = "rejected"
)

// Onboarding progress as tracked on the application row. Only
// meaningful while the application status is hired. Independent of the
// Onboarding record's own status machine.
const (
	AppOnboardingPending    = "pending"
	AppOnboardingInProgress = "in_progress"
	AppOnboardingCompleted  = "completed"
)

// Application joins a candidate to a position within an employer
// context and carries its own status machine.
type Application struct {
	ID               int64     `json:"id"`
	CandidateID      int64     `json:"candidate_id"`
	PositionID       int64     `json:"position_id"`
	EmployerID       string    `json:"employer_id"`
	Status           string    `json:"status"`
	OnboardingStatus *string   `json:"onboarding_status,omitempty"`
	Notes            []Note    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Joined data for list responses
	CandidateName *string `json:"candidate_name,omitempty"`
	PositionTitle *string `json:"position_title,omitempty"`
}

// IsTerminal reports whether the application sits in a terminal status.
func (a *Application) IsTerminal() bool {
	return a.Status == ApplicationStatusHired || a.Status == ApplicationStatusRejected
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByCandidateID(ctx context.Context, candidateID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string, note *Note) (*Application, error)
	SetOnboardingStatus(ctx context.Context, id int64, status string) error
}
