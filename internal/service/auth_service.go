package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"dicefit-api/internal/core"
	"dicefit-api/internal/metrics"
	"dicefit-api/internal/models"
	"dicefit-api/internal/validation"

	"github.com/rs/zerolog"
)

// resetCodeDigits is the length of the numeric password mailed on reset.
const resetCodeDigits = 5

type AuthService struct {
	accounts    core.AccountRepository
	credentials core.CredentialService
	notifier    core.Notifier
	logger      zerolog.Logger

	// dummyHash is verified against when a login names no account, so both
	// failures cost one bcrypt comparison.
	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(accounts core.AccountRepository, credentials core.CredentialService, notifier core.Notifier, logger zerolog.Logger) core.AuthService {
	return &AuthService{
		accounts:    accounts,
		credentials: credentials,
		notifier:    notifier,
		logger:      logger.With().Str("component", "auth").Logger(),
	}
}

// --- Auth Methods ---

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	req.FullName = validation.SanitizeString(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.NationalID = validation.SanitizeString(req.NationalID)
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	existing, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		metrics.AuthEvents.WithLabelValues("register", metrics.OutcomeFailure).Inc()
		return nil, core.ErrDuplicateEmail
	}

	hash, err := s.credentials.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	account := &models.Account{
		FullName:     req.FullName,
		Email:        req.Email,
		NationalID:   req.NationalID,
		PasswordHash: hash,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		metrics.AuthEvents.WithLabelValues("register", metrics.OutcomeFailure).Inc()
		if errors.Is(err, core.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.logger.Info().Int64("account_id", account.ID).Msg("Account registered")
	metrics.AuthEvents.WithLabelValues("register", metrics.OutcomeSuccess).Inc()
	return s.issue(account)
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if account == nil {
		s.credentials.Verify(req.Password, s.unknownAccountHash())
		metrics.AuthEvents.WithLabelValues("login", metrics.OutcomeFailure).Inc()
		return nil, core.ErrInvalidCredentials
	}
	if !s.credentials.Verify(req.Password, account.PasswordHash) {
		metrics.AuthEvents.WithLabelValues("login", metrics.OutcomeFailure).Inc()
		return nil, core.ErrInvalidCredentials
	}

	metrics.AuthEvents.WithLabelValues("login", metrics.OutcomeSuccess).Inc()
	return s.issue(account)
}

func (s *AuthService) unknownAccountHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.credentials.Hash("dicefit-unknown-account")
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to prepare login comparison hash")
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

func (s *AuthService) issue(account *models.Account) (*models.AuthResponse, error) {
	token, expiresAt, err := s.credentials.IssueToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &models.AuthResponse{Token: token, ExpiresAt: expiresAt.Unix(), Account: account}, nil
}

// Authenticate resolves a bearer token to its account id.
func (s *AuthService) Authenticate(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, core.ErrUnauthenticated
	}
	id, err := s.credentials.VerifyToken(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", core.ErrUnauthenticated, err)
	}
	return id, nil
}

// ResetPassword replaces the account password with a random numeric code
// and mails the code. The new password is persisted before delivery, so a
// failed send still leaves the old password unusable.
func (s *AuthService) ResetPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := validation.ValidateStruct(models.PasswordResetRequest{Email: email}); err != nil {
		return err
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	if account == nil {
		return core.ErrUserNotFound
	}

	code, err := newResetCode()
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	hash, err := s.credentials.Hash(code)
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	if err := s.accounts.UpdatePassword(ctx, account.ID, hash); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	if err := s.notifier.SendPasswordReset(ctx, account.Email, account.FullName, code); err != nil {
		s.logger.Error().Err(err).Int64("account_id", account.ID).Msg("Password rotated but reset mail was not delivered")
		metrics.AuthEvents.WithLabelValues("password_reset", metrics.OutcomeFailure).Inc()
		return fmt.Errorf("%w: %v", core.ErrDelivery, err)
	}

	s.logger.Info().Int64("account_id", account.ID).Msg("Password reset mailed")
	metrics.AuthEvents.WithLabelValues("password_reset", metrics.OutcomeSuccess).Inc()
	return nil
}

func newResetCode() (string, error) {
	low := int64(1)
	for i := 1; i < resetCodeDigits; i++ {
		low *= 10
	}
	n, err := rand.Int(rand.Reader, big.NewInt(9*low))
	if err != nil {
		return "", fmt.Errorf("generate reset code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+low), nil
}

// ChangePassword sets a new password for the authenticated account. The
// email in the request must be the account's own.
func (s *AuthService) ChangePassword(ctx context.Context, accountID int64, req models.ChangePasswordRequest) error {
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	if !strings.EqualFold(account.Email, req.Email) {
		s.logger.Warn().Int64("account_id", accountID).Msg("Password change attempted for another account")
		return fmt.Errorf("%w: email does not belong to the authenticated account", core.ErrUnauthenticated)
	}

	hash, err := s.credentials.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	if err := s.accounts.UpdatePassword(ctx, account.ID, hash); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	metrics.AuthEvents.WithLabelValues("password_change", metrics.OutcomeSuccess).Inc()
	return nil
}

// --- Profile Methods ---

func (s *AuthService) GetProfile(ctx context.Context, accountID int64) (*models.Profile, error) {
	return s.accounts.GetProfile(ctx, accountID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, accountID int64, req models.UpdateProfileRequest) (*models.Profile, error) {
	req.Goal = validation.SanitizeString(req.Goal)
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	return s.accounts.UpdateProfile(ctx, &models.Profile{
		AccountID:         accountID,
		Height:            req.Height,
		Weight:            req.Weight,
		Goal:              req.Goal,
		TrainingStartTime: req.TrainingStartTime,
		TrainingStartDate: req.TrainingStartDate,
		TrainingEndTime:   req.TrainingEndTime,
		TrainingEndDate:   req.TrainingEndDate,
	})
}

func (s *AuthService) GetPlan(ctx context.Context, accountID int64) (*models.UserPlan, error) {
	return s.accounts.GetPlan(ctx, accountID)
}
