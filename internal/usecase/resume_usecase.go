package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"go-hiring-pipeline/internal/domain"
	"go-hiring-pipeline/pkg/apperror"
	"go-hiring-pipeline/pkg/logger"
	"go-hiring-pipeline/pkg/storage"
	"go-hiring-pipeline/pkg/validation"

	"github.com/google/uuid"
)

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
	blobs      storage.BlobStore
}

// NewResumeUsecase creates the resume store with its backing blob store
func NewResumeUsecase(resumeRepo domain.ResumeRepository, blobs storage.BlobStore) domain.ResumeUsecase {
	return &resumeUsecase{resumeRepo: resumeRepo, blobs: blobs}
}

// Upload saves the file and creates the metadata record. Any prior
// active resume is deactivated in the same step, and the new resume
// starts inactive: the caller must call SetActive explicitly.
func (uc *resumeUsecase) Upload(ctx context.Context, actor domain.Principal, filename, title string, content []byte) (*domain.Resume, error) {
	if !actor.Role.Can(domain.CapOwnResume) {
		return nil, apperror.Forbidden("Only candidates can upload resumes")
	}
	if len(content) == 0 {
		return nil, apperror.BadRequest("Resume file is empty")
	}
	if err := validation.ValidateResumeFile(filename, content); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if title == "" {
		title = strings.TrimSuffix(filename, path.Ext(filename))
	}

	blobPath := fmt.Sprintf("resumes/%s/%s%s", actor.ID, uuid.NewString(), path.Ext(filename))
	if err := uc.blobs.Save(ctx, blobPath, content); err != nil {
		return nil, apperror.Internal(err)
	}

	resume := &domain.Resume{
		UserID:   actor.ID,
		Title:    title,
		FilePath: blobPath,
		IsActive: false,
	}
	if err := uc.resumeRepo.Create(ctx, resume); err != nil {
		// Orphaned blob cleanup; the metadata write is the source of truth.
		if delErr := uc.blobs.Delete(ctx, blobPath); delErr != nil {
			logger.Log.Error("Failed to clean up orphaned resume file", "path", blobPath, "error", delErr)
		}
		return nil, apperror.Internal(err)
	}

	return resume, nil
}

// SetActive activates the chosen resume. The repository performs
// deactivate-all plus activate-one in a single transaction, so at most
// one resume per user is ever active, even mid-request.
func (uc *resumeUsecase) SetActive(ctx context.Context, actor domain.Principal, resumeID int64) (*domain.Resume, error) {
	resume, err := uc.resumeRepo.SetActive(ctx, actor.ID, resumeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, apperror.Internal(err)
	}
	return resume, nil
}

// Delete removes the metadata record and the backing file. A missing
// file is not an error: metadata deletion proceeds regardless.
func (uc *resumeUsecase) Delete(ctx context.Context, actor domain.Principal, resumeID int64) error {
	resume, err := uc.resumeRepo.GetByID(ctx, resumeID)
	if err != nil || resume.UserID != actor.ID {
		return apperror.NotFound("Resume not found")
	}

	if err := uc.resumeRepo.Delete(ctx, actor.ID, resumeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Resume not found")
		}
		return apperror.Internal(err)
	}

	exists, err := uc.blobs.Exists(ctx, resume.FilePath)
	if err != nil {
		logger.Log.Error("Failed to check resume file", "path", resume.FilePath, "error", err)
		return nil
	}
	if !exists {
		logger.Log.Warn("Resume file already missing, metadata deleted", "path", resume.FilePath)
		return nil
	}
	if err := uc.blobs.Delete(ctx, resume.FilePath); err != nil {
		logger.Log.Error("Failed to delete resume file", "path", resume.FilePath, "error", err)
	}
	return nil
}

func (uc *resumeUsecase) GetActive(ctx context.Context, actor domain.Principal) (*domain.Resume, error) {
	resume, err := uc.resumeRepo.GetActive(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("No active resume")
		}
		return nil, apperror.Internal(err)
	}
	return resume, nil
}

func (uc *resumeUsecase) List(ctx context.Context, actor domain.Principal) ([]domain.Resume, error) {
	return uc.resumeRepo.ListByUser(ctx, actor.ID)
}
