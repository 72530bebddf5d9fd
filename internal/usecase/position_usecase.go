package usecase

import (
	"context"

	"go-hiring-pipeline/internal/domain"
	"go-hiring-pipeline/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type positionUsecase struct {
	positionRepo domain.PositionRepository
	validate     *validator.Validate
}

// NewPositionUsecase creates the position registry
func NewPositionUsecase(positionRepo domain.PositionRepository, validate *validator.Validate) domain.PositionUsecase {
	return &positionUsecase{positionRepo: positionRepo, validate: validate}
}

func (uc *positionUsecase) Create(ctx context.Context, actor domain.Principal, pos *domain.Position) error {
	if !actor.Role.Can(domain.CapManagePositions) {
		return apperror.Forbidden("You are not allowed to create positions")
	}
	if err := uc.validate.Struct(pos); err != nil {
		return validationError(err)
	}

	if pos.Status == "" {
		pos.Status = "open"
	}
	pos.CreatedBy = actor.ID

	if err := uc.positionRepo.Create(ctx, pos); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *positionUsecase) GetByID(ctx context.Context, id int64) (*domain.Position, error) {
	pos, err := uc.positionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Position not found")
	}
	return pos, nil
}

func (uc *positionUsecase) List(ctx context.Context, page, pageSize int) ([]domain.Position, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return uc.positionRepo.List(ctx, pageSize, (page-1)*pageSize)
}
