package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-hiring-pipeline/internal/domain"
	"go-hiring-pipeline/internal/usecase"
	"go-hiring-pipeline/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, cand *domain.Candidate) error {
	return m.Called(ctx, cand).Error(0)
}
func (m *MockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) ListBySubmitter(ctx context.Context, userID string) ([]domain.Candidate, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) List(ctx context.Context, limit, offset int) ([]domain.Candidate, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) UpdateStatus(ctx context.Context, id int64, status string, note *domain.Note) (*domain.Candidate, error) {
	args := m.Called(ctx, id, status, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) SetActiveResume(ctx context.Context, id int64, resumeID *int64) error {
	return m.Called(ctx, id, resumeID).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByCandidateID(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	args := m.Called(ctx, candidateID)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string, note *domain.Note) (*domain.Application, error) {
	args := m.Called(ctx, id, status, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) SetOnboardingStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockOnboardingRepo struct {
	mock.Mock
}

func (m *MockOnboardingRepo) CreateIfAbsent(ctx context.Context, ob *domain.Onboarding) (*domain.Onboarding, error) {
	args := m.Called(ctx, ob)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Onboarding), args.Error(1)
}
func (m *MockOnboardingRepo) GetByID(ctx context.Context, id int64) (*domain.Onboarding, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Onboarding), args.Error(1)
}
func (m *MockOnboardingRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Onboarding, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Onboarding), args.Error(1)
}
func (m *MockOnboardingRepo) UpdateStatus(ctx context.Context, id int64, ownerID string, status domain.OnboardingStatus) (*domain.Onboarding, error) {
	args := m.Called(ctx, id, ownerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Onboarding), args.Error(1)
}

type MockPositionRepo struct {
	mock.Mock
}

func (m *MockPositionRepo) Create(ctx context.Context, pos *domain.Position) error {
	return m.Called(ctx, pos).Error(0)
}
func (m *MockPositionRepo) GetByID(ctx context.Context, id int64) (*domain.Position, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}
func (m *MockPositionRepo) GetByTitle(ctx context.Context, title string) (*domain.Position, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}
func (m *MockPositionRepo) List(ctx context.Context, limit, offset int) ([]domain.Position, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Position), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockNotificationRepo) ListByEmail(ctx context.Context, email string) ([]domain.Notification, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkRead(ctx context.Context, id int64, email string) error {
	return m.Called(ctx, id, email).Error(0)
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Create(ctx context.Context, iv *domain.Interview) error {
	return m.Called(ctx, iv).Error(0)
}
func (m *MockInterviewRepo) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Interview, error) {
	args := m.Called(ctx, candidateID)
	return args.Get(0).([]domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) Update(ctx context.Context, iv *domain.Interview) error {
	return m.Called(ctx, iv).Error(0)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func recruiter() domain.Principal {
	return domain.Principal{ID: "recruiter-1", Role: domain.RoleRecruiter, Email: "recruiter@co.com"}
}

func manager() domain.Principal {
	return domain.Principal{ID: "manager-1", Role: domain.RoleHiringManager, Email: "manager@co.com"}
}

func TestSubmitCandidate(t *testing.T) {
	candRepo := new(MockCandidateRepo)
	uc := usecase.NewPipelineUsecase(candRepo, new(MockApplicationRepo), new(MockOnboardingRepo), new(MockPositionRepo), newValidator())

	t.Run("Should create candidate in submitted status", func(t *testing.T) {
		cand := &domain.Candidate{Name: "Jane Smith", Email: "jane@example.com"}
		candRepo.On("Create", mock.Anything, cand).Return(nil).Once()

		err := uc.SubmitCandidate(context.Background(), recruiter(), cand)
		assert.NoError(t, err)
		assert.Equal(t, domain.CandidateStatusSubmitted, cand.Status)
		assert.Equal(t, "recruiter-1", cand.SubmittedBy)
	})

	t.Run("Should fail validation on missing email", func(t *testing.T) {
		err := uc.SubmitCandidate(context.Background(), recruiter(), &domain.Candidate{Name: "Jane Smith"})
		assert.Error(t, err)
	})

	t.Run("Should forbid roles without submission rights", func(t *testing.T) {
		actor := domain.Principal{ID: "emp-1", Role: domain.RoleEmployer}
		err := uc.SubmitCandidate(context.Background(), actor, &domain.Candidate{Name: "Jane Smith", Email: "jane@example.com"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not allowed")
	})
}

func TestCandidateTransitions(t *testing.T) {
	newUC := func(candRepo *MockCandidateRepo, appRepo *MockApplicationRepo, obRepo *MockOnboardingRepo) domain.PipelineUsecase {
		return usecase.NewPipelineUsecase(candRepo, appRepo, obRepo, new(MockPositionRepo), newValidator())
	}

	t.Run("Should move submitted candidate to under_review", func(t *testing.T) {
		candRepo := new(MockCandidateRepo)
		uc := newUC(candRepo, new(MockApplicationRepo), new(MockOnboardingRepo))

		candRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Candidate{ID: 1, Status: domain.CandidateStatusSubmitted}, nil)
		candRepo.On("UpdateStatus", mock.Anything, int64(1), domain.CandidateStatusUnderReview, (*domain.Note)(nil)).
			Return(&domain.Candidate{ID: 1, Status: domain.CandidateStatusUnderReview}, nil)

		cand, err := uc.Transition(context.Background(), manager(), 1, domain.ActionReview, domain.TransitionPayload{})
		assert.NoError(t, err)
		assert.Equal(t, domain.CandidateStatusUnderReview, cand.Status)
	})

	t.Run("Should schedule onsite when a date is given", func(t *testing.T) {
		candRepo := new(MockCandidateRepo)
		uc := newUC(candRepo, new(MockApplicationRepo), new(MockOnboardingRepo))
		when := time.Now().Add(48 * time.Hour)

		candRepo.On("GetByID", mock.Anything, int64(2)).
			Return(&domain.Candidate{ID: 2, Status: domain.CandidateStatusShortlisted}, nil)
		candRepo.On("UpdateStatus", mock.Anything, int64(2), domain.CandidateStatusOnsite, (*domain.Note)(nil)).
			Return(&domain.Candidate{ID: 2, Status: domain.CandidateStatusOnsite}, nil)

		_, err := uc.Transition(context.Background(), manager(), 2, domain.ActionSchedule, domain.TransitionPayload{ScheduleAt: &when})
		assert.NoError(t, err)
		candRepo.AssertExpectations(t)
	})

	t.Run("Should schedule phone screen without a date", func(t *testing.T) {
		candRepo := new(MockCandidateRepo)
		uc := newUC(candRepo, new(MockApplicationRepo), new(MockOnboardingRepo))

		candRepo.On("GetByID", mock.Anything, int64(3)).
			Return(&domain.Candidate{ID: 3, Status: domain.CandidateStatusUnderReview}, nil)
		candRepo.On("UpdateStatus", mock.Anything, int64(3), domain.CandidateStatusPhoneScreen, (*domain.Note)(nil)).
			Return(&domain.Candidate{ID: 3, Status: domain.CandidateStatusPhoneScreen}, nil)

		_, err := uc.Transition(context.Background(), manager(), 3, domain.ActionSchedule, domain.TransitionPayload{})
		assert.NoError(t, err)
		candRepo.AssertExpectations(t)
	})

	t.Run("Should append transition note attributed to the actor", func(t *testing.T) {
		candRepo := new(MockCandidateRepo)
		uc := newUC(candRepo, new(MockApplicationRepo), new(MockOnboardingRepo))

		candRepo.On("GetByID", mock.Anything, int64(4)).
			Return(&domain.Candidate{ID: 4, Status: domain.CandidateStatusUnderReview}, nil)
		candRepo.On("UpdateStatus", mock.Anything, int64(4), domain.CandidateStatusShortlisted, mock.AnythingOfType("*domain.Note")).
			Return(&domain.Candidate{ID: 4, Status: domain.CandidateStatusShortlisted}, nil).
			Run(func(args mock.Arguments) {
				note := args.Get(3).(*domain.Note)
				assert.Equal(t, "manager@co.com", note.By)
				assert.Equal(t, "strong references", note.Text)
			})

		_, err := uc.Transition(context.Background(), manager(), 4, domain.ActionShortlist, domain.TransitionPayload{Note: "strong references"})
		assert.NoError(t, err)
	})

	t.Run("Should seed onboarding and flag applications when hiring", func(t *testing.T) {
		candRepo := new(MockCandidateRepo)
		appRepo := new(MockApplicationRepo)
		obRepo := new(MockOnboardingRepo)
		uc := newUC(candRepo, appRepo, obRepo)

		candRepo.On("GetByID", mock.Anything, int64(5)).
			Return(&domain.Candidate{ID: 5, Status: domain.CandidateStatusOnsite}, nil)
		candRepo.On("UpdateStatus", mock.Anything, int64(5), domain.CandidateStatusHired, (*domain.Note)(nil)).
			Return(&domain.Candidate{ID: 5, Status: domain.CandidateStatusHired}, nil)
		obRepo.On("CreateIfAbsent", mock.Anything, mock.AnythingOfType("*domain.Onboarding")).
			Return(&domain.Onboarding{ID: 1, CandidateID: 5, Status: domain.OnboardingInitiated}, nil).
			Run(func(args mock.Arguments) {
				ob := args.Get(1).(*domain.Onboarding)
				assert.Equal(t, domain.OnboardingInitiated, ob.Status)
				assert.Equal(t, "manager-1", ob.OwnerID)
			})
		appRepo.On("GetByCandidateID", mock.Anything, int64(5)).
			Return([]domain.Application{{ID: 20, CandidateID: 5}}, nil)
		appRepo.On("SetOnboardingStatus", mock.Anything, int64(20), domain.AppOnboardingPending).Return(nil)

		_, err := uc.Transition(context.Background(), manager(), 5, domain.ActionHire, domain.TransitionPayload{})
		assert.NoError(t, err)
		obRepo.AssertExpectations(t)
		appRepo.AssertExpectations(t)
	})

	t.Run("Should refuse any action on a hired candidate", func(t *testing.T) {
		candRepo := new(MockCandidateRepo)
		uc := newUC(candRepo, new(MockApplicationRepo), new(MockOnboardingRepo))

		candRepo.On("GetByID", mock.Anything, int64(6)).
			Return(&domain.Candidate{ID: 6, Status: domain.CandidateStatusHired}, nil)

		for _, action := range []domain.PipelineAction{domain.ActionReview, domain.ActionReject, domain.ActionHire} {
			_, err := uc.Transition(context.Background(), manager(), 6, action, domain.TransitionPayload{})
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "hired")
		}
		candRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should refuse any action on a rejected candidate", func(t *testing.T) {
		candRepo := new(MockCandidateRepo)
		uc := newUC(candRepo, new(MockApplicationRepo), new(MockOnboardingRepo))

		candRepo.On("GetByID", mock.Anything, int64(7)).
			Return(&domain.Candidate{ID: 7, Status: domain.CandidateStatusRejected}, nil)

		_, err := uc.Transition(context.Background(), manager(), 7, domain.ActionHire, domain.TransitionPayload{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot hire a rejected candidate")
	})

	t.Run("Should forbid candidates from driving the pipeline", func(t *testing.T) {
		uc := newUC(new(MockCandidateRepo), new(MockApplicationRepo), new(MockOnboardingRepo))
		actor := domain.Principal{ID: "cand-1", Role: domain.RoleCandidate}

		_, err := uc.Transition(context.Background(), actor, 1, domain.ActionReview, domain.TransitionPayload{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not allowed")
	})
}

func TestApplicationTransitions(t *testing.T) {
	t.Run("Should mark onboarding pending and seed record on hire", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		obRepo := new(MockOnboardingRepo)
		uc := usecase.NewPipelineUsecase(new(MockCandidateRepo), appRepo, obRepo, new(MockPositionRepo), newValidator())

		appRepo.On("GetByID", mock.Anything, int64(10)).
			Return(&domain.Application{ID: 10, CandidateID: 3, Status: domain.ApplicationStatusOffer}, nil)
		appRepo.On("UpdateStatus", mock.Anything, int64(10), domain.ApplicationStatusHired, (*domain.Note)(nil)).
			Return(&domain.Application{ID: 10, CandidateID: 3, Status: domain.ApplicationStatusHired}, nil)
		appRepo.On("SetOnboardingStatus", mock.Anything, int64(10), domain.AppOnboardingPending).Return(nil)
		obRepo.On("CreateIfAbsent", mock.Anything, mock.AnythingOfType("*domain.Onboarding")).
			Return(&domain.Onboarding{ID: 2, CandidateID: 3, Status: domain.OnboardingInitiated}, nil)

		app, err := uc.TransitionApplication(context.Background(), manager(), 10, domain.ActionHire, domain.TransitionPayload{})
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusHired, app.Status)
		appRepo.AssertExpectations(t)
		obRepo.AssertExpectations(t)
	})

	t.Run("Should refuse transitions on a terminal application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewPipelineUsecase(new(MockCandidateRepo), appRepo, new(MockOnboardingRepo), new(MockPositionRepo), newValidator())

		appRepo.On("GetByID", mock.Anything, int64(11)).
			Return(&domain.Application{ID: 11, Status: domain.ApplicationStatusRejected}, nil)

		_, err := uc.TransitionApplication(context.Background(), manager(), 11, domain.ActionOffer, domain.TransitionPayload{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "rejected")
	})
}

func TestCreateApplication(t *testing.T) {
	t.Run("Should reject applications for unknown candidates", func(t *testing.T) {
		candRepo := new(MockCandidateRepo)
		uc := usecase.NewPipelineUsecase(candRepo, new(MockApplicationRepo), new(MockOnboardingRepo), new(MockPositionRepo), newValidator())

		candRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		err := uc.CreateApplication(context.Background(), manager(), &domain.Application{CandidateID: 99, PositionID: 1})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Candidate not found")
	})

	t.Run("Should stamp the acting employer on the application", func(t *testing.T) {
		candRepo := new(MockCandidateRepo)
		appRepo := new(MockApplicationRepo)
		posRepo := new(MockPositionRepo)
		uc := usecase.NewPipelineUsecase(candRepo, appRepo, new(MockOnboardingRepo), posRepo, newValidator())

		candRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Candidate{ID: 1}, nil)
		posRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Position{ID: 2}, nil)
		appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)

		app := &domain.Application{CandidateID: 1, PositionID: 2}
		err := uc.CreateApplication(context.Background(), manager(), app)
		assert.NoError(t, err)
		assert.Equal(t, "manager-1", app.EmployerID)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
	})
}
