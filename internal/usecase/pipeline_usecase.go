package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-hiring-pipeline/internal/domain"
	"go-hiring-pipeline/pkg/apperror"
	"go-hiring-pipeline/pkg/logger"
	"go-hiring-pipeline/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type pipelineUsecase struct {
	candidateRepo   domain.CandidateRepository
	applicationRepo domain.ApplicationRepository
	onboardingRepo  domain.OnboardingRepository
	positionRepo    domain.PositionRepository
	validate        *validator.Validate
}

// NewPipelineUsecase creates the candidate/application pipeline engine
func NewPipelineUsecase(
	candidateRepo domain.CandidateRepository,
	applicationRepo domain.ApplicationRepository,
	onboardingRepo domain.OnboardingRepository,
	positionRepo domain.PositionRepository,
	validate *validator.Validate,
) domain.PipelineUsecase {
	return &pipelineUsecase{
		candidateRepo:   candidateRepo,
		applicationRepo: applicationRepo,
		onboardingRepo:  onboardingRepo,
		positionRepo:    positionRepo,
		validate:        validate,
	}
}

// SubmitCandidate creates a candidate in the submitted status. Both
// candidates (self-submission) and recruiters may submit.
func (uc *pipelineUsecase) SubmitCandidate(ctx context.Context, actor domain.Principal, cand *domain.Candidate) error {
	if !actor.Role.Can(domain.CapSubmitCandidate) {
		return apperror.Forbidden("You are not allowed to submit candidates")
	}

	if err := uc.validate.Struct(cand); err != nil {
		return validationError(err)
	}

	cand.Status = domain.CandidateStatusSubmitted
	cand.SubmittedBy = actor.ID
	cand.Notes = nil

	if err := uc.candidateRepo.Create(ctx, cand); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *pipelineUsecase) GetCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	cand, err := uc.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return cand, nil
}

func (uc *pipelineUsecase) ListCandidates(ctx context.Context, actor domain.Principal, page, pageSize int) ([]domain.Candidate, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	// Recruiters only see their own submissions
	if actor.Role == domain.RoleRecruiter {
		return uc.candidateRepo.ListBySubmitter(ctx, actor.ID)
	}
	return uc.candidateRepo.List(ctx, pageSize, (page-1)*pageSize)
}

// Transition validates and applies a pipeline action to a candidate.
// Terminal statuses (hired, rejected) refuse every action regardless
// of what the UI shows. A payload note is appended to the immutable
// history in the same write.
func (uc *pipelineUsecase) Transition(ctx context.Context, actor domain.Principal, id int64, action domain.PipelineAction, payload domain.TransitionPayload) (*domain.Candidate, error) {
	if !actor.Role.Can(domain.CapManagePipeline) {
		return nil, apperror.Forbidden("You are not allowed to manage the pipeline")
	}

	cand, err := uc.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	next, err := nextCandidateStatus(cand, action, payload)
	if err != nil {
		return nil, err
	}

	updated, err := uc.candidateRepo.UpdateStatus(ctx, id, next, noteFrom(actor, payload))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if action == domain.ActionHire {
		if err := uc.seedOnboarding(ctx, actor, updated.ID); err != nil {
			return nil, err
		}
		uc.markApplicationsPending(ctx, updated.ID)
	}

	return updated, nil
}

// CreateApplication joins an existing candidate to an existing
// position under the acting employer's context.
func (uc *pipelineUsecase) CreateApplication(ctx context.Context, actor domain.Principal, app *domain.Application) error {
	if !actor.Role.Can(domain.CapManagePipeline) {
		return apperror.Forbidden("You are not allowed to create applications")
	}

	if _, err := uc.candidateRepo.GetByID(ctx, app.CandidateID); err != nil {
		return apperror.NotFound("Candidate not found")
	}
	if _, err := uc.positionRepo.GetByID(ctx, app.PositionID); err != nil {
		return apperror.NotFound("Position not found")
	}

	app.EmployerID = actor.ID
	app.Status = domain.ApplicationStatusApplied
	app.Notes = nil

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *pipelineUsecase) ListApplicationsByCandidate(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	return uc.applicationRepo.GetByCandidateID(ctx, candidateID)
}

// TransitionApplication mirrors Transition for the application status
// machine. Hiring also flips the application's onboarding progress to
// pending and seeds the candidate's onboarding record.
func (uc *pipelineUsecase) TransitionApplication(ctx context.Context, actor domain.Principal, id int64, action domain.PipelineAction, payload domain.TransitionPayload) (*domain.Application, error) {
	if !actor.Role.Can(domain.CapManagePipeline) {
		return nil, apperror.Forbidden("You are not allowed to manage the pipeline")
	}

	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}

	next, err := nextApplicationStatus(app, action)
	if err != nil {
		return nil, err
	}

	updated, err := uc.applicationRepo.UpdateStatus(ctx, id, next, noteFrom(actor, payload))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if action == domain.ActionHire {
		if err := uc.applicationRepo.SetOnboardingStatus(ctx, id, domain.AppOnboardingPending); err != nil {
			logger.Log.Error("Failed to set application onboarding status", "application_id", id, "error", err)
		}
		if err := uc.seedOnboarding(ctx, actor, updated.CandidateID); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

// seedOnboarding creates the onboarding record for a hired candidate.
// Create-if-absent, so retrying a failed hire request is safe.
func (uc *pipelineUsecase) seedOnboarding(ctx context.Context, actor domain.Principal, candidateID int64) error {
	_, err := uc.onboardingRepo.CreateIfAbsent(ctx, &domain.Onboarding{
		CandidateID: candidateID,
		OwnerID:     actor.ID,
		Status:      domain.OnboardingInitiated,
	})
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// markApplicationsPending flips the onboarding progress field on the
// candidate's application rows after a candidate-level hire. Best
// effort: a hired candidate without application rows is fine.
func (uc *pipelineUsecase) markApplicationsPending(ctx context.Context, candidateID int64) {
	apps, err := uc.applicationRepo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		logger.Log.Error("Failed to list applications for hired candidate", "candidate_id", candidateID, "error", err)
		return
	}
	for _, app := range apps {
		if err := uc.applicationRepo.SetOnboardingStatus(ctx, app.ID, domain.AppOnboardingPending); err != nil {
			logger.Log.Error("Failed to set application onboarding status", "application_id", app.ID, "error", err)
		}
	}
}

func validationError(err error) *apperror.AppError {
	return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
}

func noteFrom(actor domain.Principal, payload domain.TransitionPayload) *domain.Note {
	if payload.Note == "" {
		return nil
	}
	return &domain.Note{By: actor.Email, Text: payload.Note, At: time.Now()}
}

func nextCandidateStatus(cand *domain.Candidate, action domain.PipelineAction, payload domain.TransitionPayload) (string, error) {
	if cand.IsTerminal() {
		return "", apperror.Conflict(fmt.Sprintf("cannot %s a %s candidate", action, cand.Status))
	}

	switch action {
	case domain.ActionReview:
		return domain.CandidateStatusUnderReview, nil
	case domain.ActionShortlist:
		return domain.CandidateStatusShortlisted, nil
	case domain.ActionSchedule:
		// A concrete schedule date means onsite; without one the next
		// step is a phone screen.
		if payload.ScheduleAt != nil {
			return domain.CandidateStatusOnsite, nil
		}
		return domain.CandidateStatusPhoneScreen, nil
	case domain.ActionHire:
		return domain.CandidateStatusHired, nil
	case domain.ActionReject:
		return domain.CandidateStatusRejected, nil
	}
	return "", apperror.BadRequest(fmt.Sprintf("Unknown pipeline action: %s", action))
}

func nextApplicationStatus(app *domain.Application, action domain.PipelineAction) (string, error) {
	if app.IsTerminal() {
		return "", apperror.Conflict(fmt.Sprintf("cannot %s a %s application", action, app.Status))
	}

	switch action {
	case domain.ActionReview:
		return domain.ApplicationStatusScreening, nil
	case domain.ActionSchedule:
		return domain.ApplicationStatusInterview, nil
	case domain.ActionOffer:
		return domain.ApplicationStatusOffer, nil
	case domain.ActionHire:
		return domain.ApplicationStatusHired, nil
	case domain.ActionReject:
		return domain.ApplicationStatusRejected, nil
	}
	return "", apperror.BadRequest(fmt.Sprintf("Unknown pipeline action: %s", action))
}
