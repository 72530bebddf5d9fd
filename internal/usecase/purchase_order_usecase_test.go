package usecase_test

import (
	"context"
	"regexp"
	"testing"

	"go-hiring-pipeline/internal/domain"
	"go-hiring-pipeline/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPurchaseOrderRepo struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepo) Create(ctx context.Context, po *domain.PurchaseOrder) error {
	return m.Called(ctx, po).Error(0)
}
func (m *MockPurchaseOrderRepo) GetByID(ctx context.Context, id int64) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}
func (m *MockPurchaseOrderRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}
func (m *MockPurchaseOrderRepo) List(ctx context.Context) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}
func (m *MockPurchaseOrderRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

var poNumberPattern = regexp.MustCompile(`^PO-\d{8}-[0-9A-F]{6}$`)

func TestCreatePurchaseOrder(t *testing.T) {
	t.Run("Should create pending order with generated number", func(t *testing.T) {
		repo := new(MockPurchaseOrderRepo)
		uc := usecase.NewPurchaseOrderUsecase(repo, newValidator())
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PurchaseOrder")).Return(nil)

		po := &domain.PurchaseOrder{Vendor: "Acme Staffing", Amount: 1200.50}
		err := uc.Create(context.Background(), manager(), po)
		assert.NoError(t, err)
		assert.Equal(t, domain.POStatusPending, po.Status)
		assert.Equal(t, "manager-1", po.CreatedBy)
		assert.Regexp(t, poNumberPattern, po.PONumber)
	})

	t.Run("Should fail validation on zero amount", func(t *testing.T) {
		uc := usecase.NewPurchaseOrderUsecase(new(MockPurchaseOrderRepo), newValidator())

		err := uc.Create(context.Background(), manager(), &domain.PurchaseOrder{Vendor: "Acme Staffing"})
		assert.Error(t, err)
	})

	t.Run("Should forbid candidates", func(t *testing.T) {
		uc := usecase.NewPurchaseOrderUsecase(new(MockPurchaseOrderRepo), newValidator())
		actor := domain.Principal{ID: "cand-1", Role: domain.RoleCandidate}

		err := uc.Create(context.Background(), actor, &domain.PurchaseOrder{Vendor: "Acme Staffing", Amount: 100})
		assert.Error(t, err)
	})
}

func TestPurchaseOrderDecision(t *testing.T) {
	t.Run("Should approve a pending order", func(t *testing.T) {
		repo := new(MockPurchaseOrderRepo)
		uc := usecase.NewPurchaseOrderUsecase(repo, newValidator())
		repo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.PurchaseOrder{ID: 1, Status: domain.POStatusPending}, nil)
		repo.On("UpdateStatus", mock.Anything, int64(1), domain.POStatusApproved).Return(nil)

		po, err := uc.SetStatus(context.Background(), manager(), 1, domain.POStatusApproved)
		assert.NoError(t, err)
		assert.Equal(t, domain.POStatusApproved, po.Status)
	})

	t.Run("Should treat re-approving an approved order as a no-op", func(t *testing.T) {
		repo := new(MockPurchaseOrderRepo)
		uc := usecase.NewPurchaseOrderUsecase(repo, newValidator())
		repo.On("GetByID", mock.Anything, int64(2)).
			Return(&domain.PurchaseOrder{ID: 2, Status: domain.POStatusApproved}, nil)

		po, err := uc.SetStatus(context.Background(), manager(), 2, domain.POStatusApproved)
		assert.NoError(t, err)
		assert.Equal(t, domain.POStatusApproved, po.Status)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should refuse rejecting an approved order", func(t *testing.T) {
		repo := new(MockPurchaseOrderRepo)
		uc := usecase.NewPurchaseOrderUsecase(repo, newValidator())
		repo.On("GetByID", mock.Anything, int64(3)).
			Return(&domain.PurchaseOrder{ID: 3, Status: domain.POStatusApproved}, nil)

		_, err := uc.SetStatus(context.Background(), manager(), 3, domain.POStatusRejected)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot mark a approved purchase order as rejected")
	})

	t.Run("Should only accept approved or rejected", func(t *testing.T) {
		uc := usecase.NewPurchaseOrderUsecase(new(MockPurchaseOrderRepo), newValidator())

		_, err := uc.SetStatus(context.Background(), manager(), 1, "pending")
		assert.Error(t, err)
	})
}

func TestListPurchaseOrders(t *testing.T) {
	t.Run("Should scope non-admins to their own orders", func(t *testing.T) {
		repo := new(MockPurchaseOrderRepo)
		uc := usecase.NewPurchaseOrderUsecase(repo, newValidator())
		repo.On("ListByOwner", mock.Anything, "manager-1").Return([]domain.PurchaseOrder{}, nil)

		_, err := uc.List(context.Background(), manager())
		assert.NoError(t, err)
		repo.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("Should give admins the full list", func(t *testing.T) {
		repo := new(MockPurchaseOrderRepo)
		uc := usecase.NewPurchaseOrderUsecase(repo, newValidator())
		repo.On("List", mock.Anything).Return([]domain.PurchaseOrder{}, nil)

		admin := domain.Principal{ID: "admin-1", Role: domain.RoleAdmin}
		_, err := uc.List(context.Background(), admin)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestOnboardingTracker(t *testing.T) {
	t.Run("Should allow statuses in any order", func(t *testing.T) {
		repo := new(MockOnboardingRepo)
		uc := usecase.NewOnboardingUsecase(repo)

		for _, status := range []domain.OnboardingStatus{
			domain.OnboardingCompleted, domain.OnboardingPending, domain.OnboardingInProgress,
		} {
			repo.On("UpdateStatus", mock.Anything, int64(1), "manager-1", status).
				Return(&domain.Onboarding{ID: 1, Status: status}, nil).Once()

			ob, err := uc.SetStatus(context.Background(), manager(), 1, status)
			assert.NoError(t, err)
			assert.Equal(t, status, ob.Status)
		}
	})

	t.Run("Should reject unknown statuses", func(t *testing.T) {
		uc := usecase.NewOnboardingUsecase(new(MockOnboardingRepo))

		_, err := uc.SetStatus(context.Background(), manager(), 1, "paused")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid onboarding status")
	})

	t.Run("Should report not found for records owned by someone else", func(t *testing.T) {
		repo := new(MockOnboardingRepo)
		uc := usecase.NewOnboardingUsecase(repo)
		repo.On("UpdateStatus", mock.Anything, int64(7), "manager-1", domain.OnboardingCompleted).
			Return(nil, domain.ErrNotFound)

		_, err := uc.SetStatus(context.Background(), manager(), 7, domain.OnboardingCompleted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Onboarding record not found")
	})

	t.Run("Should list only the manager's own records", func(t *testing.T) {
		repo := new(MockOnboardingRepo)
		uc := usecase.NewOnboardingUsecase(repo)
		repo.On("ListByOwner", mock.Anything, "manager-1").Return([]domain.Onboarding{{ID: 1}}, nil)

		records, err := uc.ListHired(context.Background(), manager())
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		repo.AssertExpectations(t)
	})
}
