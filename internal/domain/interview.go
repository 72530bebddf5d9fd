package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Interview scheduling statuses
const (
	InterviewStatusScheduled   = "scheduled"
	InterviewStatusRescheduled = "rescheduled"
	InterviewStatusCompleted   = "completed"
	InterviewStatusCancelled   = "cancelled"
)

// Interview results
const (
	InterviewResultPending = "pending"
	InterviewResultPass    = "pass"
	InterviewResultFail    = "fail"
)

// NotifyFlag accepts JSON true or the string "true" as truthy; any
// other value is falsy. It is an ephemeral instruction on the mutating
// request, never stored.
type NotifyFlag bool

func (f *NotifyFlag) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*f = NotifyFlag(t)
	case string:
		*f = t == "true"
	default:
		*f = false
	}
	return nil
}

func (f NotifyFlag) Bool() bool {
	return bool(f)
}

type Interview struct {
	ID          int64      `json:"id"`
	CandidateID int64      `json:"candidate_id"`
	PositionID  *int64     `json:"position_id,omitempty"` // Nullable: legacy rows resolve by title
	JobPosition string     `json:"job_position"`
	Interviewer string     `json:"interviewer"`
	ScheduleAt  *time.Time `json:"schedule_at,omitempty"`
	Status      string     `json:"status"`
	Result      string     `json:"result"`
	Rating      int        `json:"rating"`
	Feedback    string     `json:"feedback,omitempty"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// InterviewInput is the mutation payload for creating or updating an
// interview. NotifyManager requests the fire-and-forget manager
// notification side effect.
type InterviewInput struct {
	CandidateID int64      `json:"candidate_id" validate:"required"`
	PositionID  *int64     `json:"position_id"`
	JobPosition string     `json:"job_position" validate:"required,max=100"`
	Interviewer string     `json:"interviewer" validate:"omitempty,valid_name,max=100"`
	ScheduleAt  *time.Time `json:"schedule_at"`
	Status      string     `json:"status" validate:"omitempty,oneof=scheduled rescheduled completed cancelled"`
	Result      string     `json:"result" validate:"omitempty,oneof=pending pass fail"`
	Rating      int        `json:"rating" validate:"min=0,max=5"`
	Feedback    string     `json:"feedback" validate:"max=2000"`

	NotifyManager NotifyFlag `json:"notify_manager"`
}

type InterviewRepository interface {
	Create(ctx context.Context, iv *Interview) error
	GetByID(ctx context.Context, id int64) (*Interview, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]Interview, error)
	Update(ctx context.Context, iv *Interview) error
}

type InterviewUsecase interface {
	Schedule(ctx context.Context, actor Principal, input *InterviewInput) (*Interview, error)
	Update(ctx context.Context, actor Principal, id int64, input *InterviewInput) (*Interview, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]Interview, error)
}
