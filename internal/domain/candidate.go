package domain

import (
	"context"
	"time"
)

// Candidate status constants. Hired and rejected are terminal: no
// pipeline action may follow them. Rejected candidates are retained
// for audit; status is the deletion substitute.
const (
	CandidateStatusSubmitted   = "submitted"
	CandidateStatusUnderReview = "under_review"
	CandidateStatusPhoneScreen = "phone_screen_scheduled"
	CandidateStatusShortlisted = "shortlisted"
	CandidateStatusOnsite      = "onsite_scheduled"
	CandidateStatusHired       = "hired"
	CandidateStatusRejected    = "rejected"
)

// PipelineAction is a status-changing verb accepted by the pipeline
// engine.
type PipelineAction string

const (
	ActionReview    PipelineAction = "review"
	ActionShortlist PipelineAction = "shortlist"
	ActionSchedule  PipelineAction = "schedule"
	ActionOffer     PipelineAction = "offer"
	ActionHire      PipelineAction = "hire"
	ActionReject    PipelineAction = "reject"
)

// Note is one entry of the append-only status history. Entries are
// never overwritten or reordered.
type Note struct {
	By   string    `json:"by"`
	Text string    `json:"text"`
	At   time.Time `json:"date"`
}

// TransitionPayload carries the optional fields of a transition
// request. ScheduleAt decides the schedule branch: present means
// onsite, absent means phone screen.
type TransitionPayload struct {
	Note       string     `json:"note,omitempty"`
	ScheduleAt *time.Time `json:"schedule_at,omitempty"`
}

type Candidate struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name" validate:"required,valid_name,max=100"`
	Email          string    `json:"email" validate:"required,email"`
	Phone          string    `json:"phone" validate:"omitempty,valid_phone"`
	Skills         []string  `json:"skills,omitempty"`
	Status         string    `json:"status"`
	ActiveResumeID *int64    `json:"active_resume_id,omitempty"`
	SubmittedBy    string    `json:"submitted_by"`
	Notes          []Note    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsTerminal reports whether the candidate sits in a terminal status.
func (c *Candidate) IsTerminal() bool {
	return c.Status == CandidateStatusHired || c.Status == CandidateStatusRejected
}

type CandidateRepository interface {
	Create(ctx context.Context, cand *Candidate) error
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	ListBySubmitter(ctx context.Context, userID string) ([]Candidate, error)
	List(ctx context.Context, limit, offset int) ([]Candidate, error)
	// UpdateStatus persists a transition. A non-nil note is appended to
	// the notes history in the same statement, keeping the history
	// append-only under concurrent writers.
	UpdateStatus(ctx context.Context, id int64, status string, note *Note) (*Candidate, error)
	SetActiveResume(ctx context.Context, id int64, resumeID *int64) error
}

// PipelineUsecase owns the candidate and application status state
// machines, including transition validation and history.
type PipelineUsecase interface {
	SubmitCandidate(ctx context.Context, actor Principal, cand *Candidate) error
	GetCandidate(ctx context.Context, id int64) (*Candidate, error)
	ListCandidates(ctx context.Context, actor Principal, page, pageSize int) ([]Candidate, error)
	Transition(ctx context.Context, actor Principal, id int64, action PipelineAction, payload TransitionPayload) (*Candidate, error)
	CreateApplication(ctx context.Context, actor Principal, app *Application) error
	ListApplicationsByCandidate(ctx context.Context, candidateID int64) ([]Application, error)
	TransitionApplication(ctx context.Context, actor Principal, id int64, action PipelineAction, payload TransitionPayload) (*Application, error)
}
