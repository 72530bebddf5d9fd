package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-hiring-pipeline/internal/domain"
	"go-hiring-pipeline/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type interviewMocks struct {
	interviewRepo    *MockInterviewRepo
	candidateRepo    *MockCandidateRepo
	positionRepo     *MockPositionRepo
	userRepo         *MockUserRepo
	notificationRepo *MockNotificationRepo
}

func newInterviewUC() (domain.InterviewUsecase, interviewMocks) {
	m := interviewMocks{
		interviewRepo:    new(MockInterviewRepo),
		candidateRepo:    new(MockCandidateRepo),
		positionRepo:     new(MockPositionRepo),
		userRepo:         new(MockUserRepo),
		notificationRepo: new(MockNotificationRepo),
	}
	uc := usecase.NewInterviewUsecase(
		m.interviewRepo, m.candidateRepo, m.positionRepo,
		m.userRepo, m.notificationRepo, nil, newValidator(),
	)
	return uc, m
}

func positionID(id int64) *int64 { return &id }

func TestScheduleInterview(t *testing.T) {
	t.Run("Should create interview with default status and result", func(t *testing.T) {
		uc, m := newInterviewUC()
		m.candidateRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Candidate{ID: 1, Name: "Jane Smith"}, nil)
		m.interviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)

		iv, err := uc.Schedule(context.Background(), manager(), &domain.InterviewInput{
			CandidateID: 1,
			JobPosition: "Backend Engineer",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusScheduled, iv.Status)
		assert.Equal(t, domain.InterviewResultPending, iv.Result)
		assert.Equal(t, "manager-1", iv.CreatedBy)
	})

	t.Run("Should fail when candidate does not exist", func(t *testing.T) {
		uc, m := newInterviewUC()
		m.candidateRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.Schedule(context.Background(), manager(), &domain.InterviewInput{
			CandidateID: 99,
			JobPosition: "Backend Engineer",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Candidate not found")
	})

	t.Run("Should fail validation without a job position", func(t *testing.T) {
		uc, _ := newInterviewUC()
		_, err := uc.Schedule(context.Background(), manager(), &domain.InterviewInput{CandidateID: 1})
		assert.Error(t, err)
	})
}

func TestManagerNotification(t *testing.T) {
	t.Run("Should write one unread message to the position owner", func(t *testing.T) {
		uc, m := newInterviewUC()
		m.candidateRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Candidate{ID: 1, Name: "Jane Smith"}, nil)
		m.interviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)
		m.positionRepo.On("GetByID", mock.Anything, int64(7)).
			Return(&domain.Position{ID: 7, Title: "Backend Engineer", CreatedBy: "mgr-uid"}, nil)
		m.userRepo.On("GetByID", mock.Anything, "mgr-uid").
			Return(&domain.User{ID: "mgr-uid", Email: "mgr@co.com"}, nil)
		m.notificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).
			Return(nil).Once().
			Run(func(args mock.Arguments) {
				n := args.Get(1).(*domain.Notification)
				assert.Equal(t, "mgr@co.com", n.ToEmail)
				assert.Equal(t, domain.NotificationUnread, n.Status)
				assert.Contains(t, n.Subject, "Jane Smith")
				assert.Contains(t, n.Subject, "Backend Engineer")
			})

		_, err := uc.Schedule(context.Background(), manager(), &domain.InterviewInput{
			CandidateID:   1,
			PositionID:    positionID(7),
			JobPosition:   "Backend Engineer",
			NotifyManager: domain.NotifyFlag(true),
		})
		assert.NoError(t, err)
		m.notificationRepo.AssertExpectations(t)
	})

	t.Run("Should not notify when the flag is absent", func(t *testing.T) {
		uc, m := newInterviewUC()
		m.candidateRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Candidate{ID: 1}, nil)
		m.interviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)

		_, err := uc.Schedule(context.Background(), manager(), &domain.InterviewInput{
			CandidateID: 1,
			JobPosition: "Backend Engineer",
		})
		assert.NoError(t, err)
		m.notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should fall back to title lookup for rows without a position id", func(t *testing.T) {
		uc, m := newInterviewUC()
		m.candidateRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Candidate{ID: 1, Name: "Jane Smith"}, nil)
		m.interviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)
		m.positionRepo.On("GetByTitle", mock.Anything, "Data Engineer").
			Return(&domain.Position{ID: 9, Title: "Data Engineer", CreatedBy: "mgr-uid"}, nil)
		m.userRepo.On("GetByID", mock.Anything, "mgr-uid").
			Return(&domain.User{ID: "mgr-uid", Email: "mgr@co.com"}, nil)
		m.notificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil).Once()

		_, err := uc.Schedule(context.Background(), manager(), &domain.InterviewInput{
			CandidateID:   1,
			JobPosition:   "Data Engineer",
			NotifyManager: domain.NotifyFlag(true),
		})
		assert.NoError(t, err)
		m.notificationRepo.AssertExpectations(t)
	})

	t.Run("Should skip silently when the position cannot be resolved", func(t *testing.T) {
		uc, m := newInterviewUC()
		m.candidateRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Candidate{ID: 1}, nil)
		m.interviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)
		m.positionRepo.On("GetByTitle", mock.Anything, "Ghost Position").Return(nil, domain.ErrNotFound)

		_, err := uc.Schedule(context.Background(), manager(), &domain.InterviewInput{
			CandidateID:   1,
			JobPosition:   "Ghost Position",
			NotifyManager: domain.NotifyFlag(true),
		})
		assert.NoError(t, err)
		m.notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should skip silently when the owner has no email", func(t *testing.T) {
		uc, m := newInterviewUC()
		m.candidateRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Candidate{ID: 1}, nil)
		m.interviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)
		m.positionRepo.On("GetByID", mock.Anything, int64(7)).
			Return(&domain.Position{ID: 7, Title: "Backend Engineer", CreatedBy: "mgr-uid"}, nil)
		m.userRepo.On("GetByID", mock.Anything, "mgr-uid").Return(&domain.User{ID: "mgr-uid"}, nil)

		_, err := uc.Schedule(context.Background(), manager(), &domain.InterviewInput{
			CandidateID:   1,
			PositionID:    positionID(7),
			JobPosition:   "Backend Engineer",
			NotifyManager: domain.NotifyFlag(true),
		})
		assert.NoError(t, err)
		m.notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should not fail the interview write when the inbox write fails", func(t *testing.T) {
		uc, m := newInterviewUC()
		m.candidateRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Candidate{ID: 1, Name: "Jane Smith"}, nil)
		m.interviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)
		m.positionRepo.On("GetByID", mock.Anything, int64(7)).
			Return(&domain.Position{ID: 7, Title: "Backend Engineer", CreatedBy: "mgr-uid"}, nil)
		m.userRepo.On("GetByID", mock.Anything, "mgr-uid").
			Return(&domain.User{ID: "mgr-uid", Email: "mgr@co.com"}, nil)
		m.notificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).
			Return(errors.New("db down"))

		iv, err := uc.Schedule(context.Background(), manager(), &domain.InterviewInput{
			CandidateID:   1,
			PositionID:    positionID(7),
			JobPosition:   "Backend Engineer",
			NotifyManager: domain.NotifyFlag(true),
		})
		assert.NoError(t, err)
		assert.NotNil(t, iv)
	})
}

func TestUpdateInterview(t *testing.T) {
	t.Run("Should record result and notify on completion", func(t *testing.T) {
		uc, m := newInterviewUC()
		m.interviewRepo.On("GetByID", mock.Anything, int64(5)).
			Return(&domain.Interview{ID: 5, CandidateID: 1, Status: domain.InterviewStatusScheduled, Result: domain.InterviewResultPending}, nil)
		m.interviewRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)
		m.candidateRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Candidate{ID: 1, Name: "Jane Smith"}, nil)
		m.positionRepo.On("GetByID", mock.Anything, int64(7)).
			Return(&domain.Position{ID: 7, Title: "Backend Engineer", CreatedBy: "mgr-uid"}, nil)
		m.userRepo.On("GetByID", mock.Anything, "mgr-uid").
			Return(&domain.User{ID: "mgr-uid", Email: "mgr@co.com"}, nil)
		m.notificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil).Once()

		iv, err := uc.Update(context.Background(), manager(), 5, &domain.InterviewInput{
			CandidateID:   1,
			PositionID:    positionID(7),
			JobPosition:   "Backend Engineer",
			Status:        domain.InterviewStatusCompleted,
			Result:        domain.InterviewResultPass,
			Rating:        4,
			NotifyManager: domain.NotifyFlag(true),
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusCompleted, iv.Status)
		assert.Equal(t, domain.InterviewResultPass, iv.Result)
		m.notificationRepo.AssertExpectations(t)
	})

	t.Run("Should fail for unknown interview", func(t *testing.T) {
		uc, m := newInterviewUC()
		m.interviewRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.Update(context.Background(), manager(), 99, &domain.InterviewInput{
			CandidateID: 1,
			JobPosition: "Backend Engineer",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Interview not found")
	})
}
