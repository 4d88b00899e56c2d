package mocks

import (
	"context"

	"dicefit-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of core.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, accountID int64, req models.ChangePasswordRequest) error {
	return m.Called(ctx, accountID, req).Error(0)
}

func (m *MockAuthService) GetProfile(ctx context.Context, accountID int64) (*models.Profile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, accountID int64, req models.UpdateProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockAuthService) GetPlan(ctx context.Context, accountID int64) (*models.UserPlan, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserPlan), args.Error(1)
}

// MockCatalogService is a mock implementation of core.CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListPlans(ctx context.Context) ([]models.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Plan), args.Error(1)
}

func (m *MockCatalogService) ListExercises(ctx context.Context, exerciseType string) ([]models.Exercise, error) {
	args := m.Called(ctx, exerciseType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Exercise), args.Error(1)
}

func (m *MockCatalogService) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockTrainingService is a mock implementation of core.TrainingService
type MockTrainingService struct {
	mock.Mock
}

func (m *MockTrainingService) CreateTraining(ctx context.Context, req models.CreateTrainingRequest) (*models.Training, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Training), args.Error(1)
}

func (m *MockTrainingService) ListTrainingsForClient(ctx context.Context, clientID int64) ([]models.TrainingWithExercises, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TrainingWithExercises), args.Error(1)
}

func (m *MockTrainingService) UpdateTrainingStats(ctx context.Context, req models.UpdateTrainingStatsRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockTrainingService) UpdateTrainingExercise(ctx context.Context, req models.UpdateTrainingExerciseRequest) error {
	return m.Called(ctx, req).Error(0)
}

// MockFeedbackService is a mock implementation of core.FeedbackService
type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) AddFeedback(ctx context.Context, req models.FeedbackRequest) (*models.Feedback, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}
