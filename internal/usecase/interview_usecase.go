package usecase

import (
	"context"
	"fmt"

	"go-hiring-pipeline/internal/domain"
	"go-hiring-pipeline/pkg/apperror"
	"go-hiring-pipeline/pkg/email"
	"go-hiring-pipeline/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type interviewUsecase struct {
	interviewRepo    domain.InterviewRepository
	candidateRepo    domain.CandidateRepository
	positionRepo     domain.PositionRepository
	userRepo         domain.UserRepository
	notificationRepo domain.NotificationRepository
	emailService     *email.EmailService
	validate         *validator.Validate
}

// NewInterviewUsecase creates the interview scheduler with its
// notification relay collaborators. emailService may be nil: inbox
// rows are the primary channel, email is a best-effort copy.
func NewInterviewUsecase(
	interviewRepo domain.InterviewRepository,
	candidateRepo domain.CandidateRepository,
	positionRepo domain.PositionRepository,
	userRepo domain.UserRepository,
	notificationRepo domain.NotificationRepository,
	emailService *email.EmailService,
	validate *validator.Validate,
) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo:    interviewRepo,
		candidateRepo:    candidateRepo,
		positionRepo:     positionRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		emailService:     emailService,
		validate:         validate,
	}
}

// Schedule records a new interview session. When the input requests
// it, the hiring manager owning the related position is notified; the
// notification can never fail the interview write.
func (uc *interviewUsecase) Schedule(ctx context.Context, actor domain.Principal, input *domain.InterviewInput) (*domain.Interview, error) {
	if !actor.Role.Can(domain.CapManagePipeline) {
		return nil, apperror.Forbidden("You are not allowed to schedule interviews")
	}
	if err := uc.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	if _, err := uc.candidateRepo.GetByID(ctx, input.CandidateID); err != nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	iv := &domain.Interview{
		CandidateID: input.CandidateID,
		PositionID:  input.PositionID,
		JobPosition: input.JobPosition,
		Interviewer: input.Interviewer,
		ScheduleAt:  input.ScheduleAt,
		Status:      input.Status,
		Result:      input.Result,
		Rating:      input.Rating,
		Feedback:    input.Feedback,
		CreatedBy:   actor.ID,
	}
	if iv.Status == "" {
		iv.Status = domain.InterviewStatusScheduled
	}
	if iv.Result == "" {
		iv.Result = domain.InterviewResultPending
	}

	if err := uc.interviewRepo.Create(ctx, iv); err != nil {
		return nil, apperror.Internal(err)
	}

	if input.NotifyManager.Bool() {
		uc.notifyManager(ctx, iv)
	}

	return iv, nil
}

// Update mutates an existing interview, optionally notifying the
// manager afterwards.
func (uc *interviewUsecase) Update(ctx context.Context, actor domain.Principal, id int64, input *domain.InterviewInput) (*domain.Interview, error) {
	if !actor.Role.Can(domain.CapManagePipeline) {
		return nil, apperror.Forbidden("You are not allowed to update interviews")
	}
	if err := uc.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	iv, err := uc.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}

	iv.PositionID = input.PositionID
	iv.JobPosition = input.JobPosition
	iv.Interviewer = input.Interviewer
	iv.ScheduleAt = input.ScheduleAt
	if input.Status != "" {
		iv.Status = input.Status
	}
	if input.Result != "" {
		iv.Result = input.Result
	}
	iv.Rating = input.Rating
	iv.Feedback = input.Feedback

	if err := uc.interviewRepo.Update(ctx, iv); err != nil {
		return nil, apperror.Internal(err)
	}

	if input.NotifyManager.Bool() {
		uc.notifyManager(ctx, iv)
	}

	return iv, nil
}

func (uc *interviewUsecase) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Interview, error) {
	return uc.interviewRepo.ListByCandidate(ctx, candidateID)
}

// notifyManager resolves the hiring manager who owns the interview's
// position and writes an unread inbox message. Every miss along the
// way (position, creator, email) logs and skips; nothing here is ever
// surfaced to the caller.
func (uc *interviewUsecase) notifyManager(ctx context.Context, iv *domain.Interview) {
	pos := uc.resolvePosition(ctx, iv)
	if pos == nil {
		logger.Log.Warn("Notification skipped: position not resolved",
			"interview_id", iv.ID, "job_position", iv.JobPosition)
		return
	}
	if pos.CreatedBy == "" {
		logger.Log.Warn("Notification skipped: position has no creator", "position_id", pos.ID)
		return
	}

	manager, err := uc.userRepo.GetByID(ctx, pos.CreatedBy)
	if err != nil || manager.Email == "" {
		logger.Log.Warn("Notification skipped: manager email not resolved",
			"position_id", pos.ID, "created_by", pos.CreatedBy)
		return
	}

	candidateName := fmt.Sprintf("candidate #%d", iv.CandidateID)
	if cand, err := uc.candidateRepo.GetByID(ctx, iv.CandidateID); err == nil {
		candidateName = cand.Name
	}

	subject := fmt.Sprintf("Interview update: %s - %s", candidateName, pos.Title)
	message := fmt.Sprintf(
		"Interview update for %s (%s).\nInterviewer: %s\nStatus: %s\nResult: %s\nRating: %d/5\nFeedback: %s",
		candidateName, pos.Title, iv.Interviewer, iv.Status, iv.Result, iv.Rating, iv.Feedback,
	)

	if err := uc.notificationRepo.Create(ctx, &domain.Notification{
		ToEmail: manager.Email,
		Subject: subject,
		Message: message,
		Status:  domain.NotificationUnread,
	}); err != nil {
		logger.Log.Error("Failed to write notification", "to", manager.Email, "error", err)
	}

	if uc.emailService != nil && uc.emailService.IsConfigured() {
		if err := uc.emailService.SendInterviewUpdate(manager.Email, email.InterviewEmailData{
			CandidateName: candidateName,
			Position:      pos.Title,
			Interviewer:   iv.Interviewer,
			Status:        iv.Status,
			Result:        iv.Result,
			Rating:        iv.Rating,
			Feedback:      iv.Feedback,
		}); err != nil {
			logger.Log.Error("Failed to send notification email", "to", manager.Email, "error", err)
		}
	}
}

// resolvePosition prefers the stored position id; interviews without
// one fall back to exact title match (legacy lookup, ambiguous on
// duplicate titles).
func (uc *interviewUsecase) resolvePosition(ctx context.Context, iv *domain.Interview) *domain.Position {
	if iv.PositionID != nil {
		if pos, err := uc.positionRepo.GetByID(ctx, *iv.PositionID); err == nil {
			return pos
		}
		return nil
	}
	pos, err := uc.positionRepo.GetByTitle(ctx, iv.JobPosition)
	if err != nil {
		return nil
	}
	return pos
}
