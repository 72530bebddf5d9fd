package domain

import (
	"context"
	"time"
)

// OnboardingStatus values for the standalone onboarding record. No
// ordering is enforced: any status may follow any other.
type OnboardingStatus string

const (
	OnboardingInitiated  OnboardingStatus = "initiated"
	OnboardingPending    OnboardingStatus = "pending"
	OnboardingInProgress OnboardingStatus = "in_progress"
	OnboardingCompleted  OnboardingStatus = "completed"
)

func ValidOnboardingStatuses() []OnboardingStatus {
	return []OnboardingStatus{OnboardingInitiated, OnboardingPending, OnboardingInProgress, OnboardingCompleted}
}

func (s OnboardingStatus) IsValid() bool {
	for _, valid := range ValidOnboardingStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Onboarding is one record per hired candidate, seeded by the hire
// transition and advanced independently of the application's own
// onboarding_status field.
type Onboarding struct {
	ID          int64            `json:"id"`
	CandidateID int64            `json:"candidate_id"`
	OwnerID     string           `json:"owner_id"` // Manager who hired the candidate
	Status      OnboardingStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Joined data for list responses
	CandidateName *string `json:"candidate_name,omitempty"`
}

type OnboardingRepository interface {
	// CreateIfAbsent seeds the record for a hired candidate. Touching
	// an existing record is a no-op that returns it unchanged.
	CreateIfAbsent(ctx context.Context, ob *Onboarding) (*Onboarding, error)
	GetByID(ctx context.Context, id int64) (*Onboarding, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Onboarding, error)
	// UpdateStatus is owner-scoped: it only touches rows whose owner
	// matches, and reports ErrNotFound otherwise.
	UpdateStatus(ctx context.Context, id int64, ownerID string, status OnboardingStatus) (*Onboarding, error)
}

type OnboardingUsecase interface {
	ListHired(ctx context.Context, actor Principal) ([]Onboarding, error)
	SetStatus(ctx context.Context, actor Principal, id int64, status OnboardingStatus) (*Onboarding, error)
}
