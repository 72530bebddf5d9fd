package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-hiring-pipeline/internal/domain"
	"go-hiring-pipeline/pkg/apperror"
)

type onboardingUsecase struct {
	onboardingRepo domain.OnboardingRepository
}

// NewOnboardingUsecase creates the onboarding tracker
func NewOnboardingUsecase(onboardingRepo domain.OnboardingRepository) domain.OnboardingUsecase {
	return &onboardingUsecase{onboardingRepo: onboardingRepo}
}

// ListHired returns the onboarding records the manager owns.
func (uc *onboardingUsecase) ListHired(ctx context.Context, actor domain.Principal) ([]domain.Onboarding, error) {
	if !actor.Role.Can(domain.CapManagePipeline) {
		return nil, apperror.Forbidden("You are not allowed to view onboarding records")
	}
	return uc.onboardingRepo.ListByOwner(ctx, actor.ID)
}

// SetStatus updates an owned onboarding record. Statuses have no
// enforced ordering: any valid value may follow any other.
func (uc *onboardingUsecase) SetStatus(ctx context.Context, actor domain.Principal, id int64, status domain.OnboardingStatus) (*domain.Onboarding, error) {
	if !actor.Role.Can(domain.CapManagePipeline) {
		return nil, apperror.Forbidden("You are not allowed to update onboarding records")
	}
	if !status.IsValid() {
		return nil, apperror.BadRequest(fmt.Sprintf("Invalid onboarding status: %s", status))
	}

	ob, err := uc.onboardingRepo.UpdateStatus(ctx, id, actor.ID, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Onboarding record not found")
		}
		return nil, apperror.Internal(err)
	}
	return ob, nil
}
