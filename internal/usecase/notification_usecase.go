package usecase

import (
	"context"
	"errors"

	"go-hiring-pipeline/internal/domain"
	"go-hiring-pipeline/pkg/apperror"
)

type notificationUsecase struct {
	notificationRepo domain.NotificationRepository
}

// NewNotificationUsecase creates the inbox read side
func NewNotificationUsecase(notificationRepo domain.NotificationRepository) domain.NotificationUsecase {
	return &notificationUsecase{notificationRepo: notificationRepo}
}

func (uc *notificationUsecase) ListMine(ctx context.Context, actor domain.Principal) ([]domain.Notification, error) {
	return uc.notificationRepo.ListByEmail(ctx, actor.Email)
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, actor domain.Principal, id int64) error {
	if err := uc.notificationRepo.MarkRead(ctx, id, actor.Email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Notification not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
