package mocks

import (
	"context"
	"encoding/json"

	"dicefit-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of core.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *models.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdatePassword(ctx context.Context, accountID int64, hash string) error {
	return m.Called(ctx, accountID, hash).Error(0)
}

func (m *MockAccountRepository) GetProfile(ctx context.Context, accountID int64) (*models.Profile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockAccountRepository) UpdateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockAccountRepository) GetPlan(ctx context.Context, accountID int64) (*models.UserPlan, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserPlan), args.Error(1)
}

// MockCatalogRepository is a mock implementation of core.CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListPlans(ctx context.Context) ([]models.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Plan), args.Error(1)
}

func (m *MockCatalogRepository) ListExercises(ctx context.Context, exerciseType string) ([]models.Exercise, error) {
	args := m.Called(ctx, exerciseType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Exercise), args.Error(1)
}

// MockTrainingRepository is a mock implementation of core.TrainingRepository
type MockTrainingRepository struct {
	mock.Mock
}

func (m *MockTrainingRepository) Create(ctx context.Context, training *models.Training, exercises []models.TrainingExercise) (*models.Training, error) {
	args := m.Called(ctx, training, exercises)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Training), args.Error(1)
}

func (m *MockTrainingRepository) ListByClient(ctx context.Context, clientID int64) ([]models.TrainingWithExercises, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TrainingWithExercises), args.Error(1)
}

func (m *MockTrainingRepository) UpdateStats(ctx context.Context, trainingID int64, stats json.RawMessage) error {
	return m.Called(ctx, trainingID, stats).Error(0)
}

func (m *MockTrainingRepository) UpdateExercise(ctx context.Context, row *models.TrainingExercise) error {
	return m.Called(ctx, row).Error(0)
}

// MockFeedbackRepository is a mock implementation of core.FeedbackRepository
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Add(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error) {
	args := m.Called(ctx, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}
