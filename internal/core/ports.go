package core

import (
	"context"
	"encoding/json"
	"time"

	"dicefit-api/internal/models"
)

// AccountRepository covers registro, perfil and the plan attached to a profile.
type AccountRepository interface {
	// Create inserts the account and its empty profile in one transaction.
	// A taken email yields ErrDuplicateEmail.
	Create(ctx context.Context, account *models.Account) error
	// GetByEmail returns (nil, nil) when no account has the email.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	UpdatePassword(ctx context.Context, accountID int64, hash string) error

	GetProfile(ctx context.Context, accountID int64) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	GetPlan(ctx context.Context, accountID int64) (*models.UserPlan, error)
}

// CatalogRepository reads the reference data.
type CatalogRepository interface {
	ListPlans(ctx context.Context) ([]models.Plan, error)
	// ListExercises returns every exercise when exerciseType is empty.
	ListExercises(ctx context.Context, exerciseType string) ([]models.Exercise, error)
}

// TrainingRepository covers treino and treino_exercicios.
type TrainingRepository interface {
	// Create inserts the training and all of its exercise rows atomically.
	Create(ctx context.Context, training *models.Training, exercises []models.TrainingExercise) (*models.Training, error)
	ListByClient(ctx context.Context, clientID int64) ([]models.TrainingWithExercises, error)
	UpdateStats(ctx context.Context, trainingID int64, stats json.RawMessage) error
	UpdateExercise(ctx context.Context, row *models.TrainingExercise) error
}

// FeedbackRepository appends post-training feedback.
type FeedbackRepository interface {
	Add(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error)
}

// Notifier delivers messages to users outside the API.
type Notifier interface {
	SendPasswordReset(ctx context.Context, to, name, code string) error
}

// Cache is a best-effort JSON value cache.
type Cache interface {
	// Get decodes the cached value into dest and reports whether it was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// CredentialService hashes passwords and issues bearer tokens.
type CredentialService interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
	IssueToken(accountID int64) (string, time.Time, error)
	VerifyToken(token string) (int64, error)
}

// AuthService orchestrates registration, login, password reset and profiles.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, token string) (int64, error)
	ResetPassword(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, accountID int64, req models.ChangePasswordRequest) error

	GetProfile(ctx context.Context, accountID int64) (*models.Profile, error)
	UpdateProfile(ctx context.Context, accountID int64, req models.UpdateProfileRequest) (*models.Profile, error)
	GetPlan(ctx context.Context, accountID int64) (*models.UserPlan, error)
}

// CatalogService serves plans and exercises.
type CatalogService interface {
	ListPlans(ctx context.Context) ([]models.Plan, error)
	ListExercises(ctx context.Context, exerciseType string) ([]models.Exercise, error)
	// Refresh drops every cached catalog entry, e.g. after reference data is re-seeded.
	Refresh(ctx context.Context) error
}

// TrainingService orchestrates training sessions.
type TrainingService interface {
	CreateTraining(ctx context.Context, req models.CreateTrainingRequest) (*models.Training, error)
	ListTrainingsForClient(ctx context.Context, clientID int64) ([]models.TrainingWithExercises, error)
	UpdateTrainingStats(ctx context.Context, req models.UpdateTrainingStatsRequest) error
	UpdateTrainingExercise(ctx context.Context, req models.UpdateTrainingExerciseRequest) error
}

// FeedbackService records post-training feedback.
type FeedbackService interface {
	AddFeedback(ctx context.Context, req models.FeedbackRequest) (*models.Feedback, error)
}
