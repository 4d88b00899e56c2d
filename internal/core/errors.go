package core

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation reports missing or malformed input.
	ErrValidation = errors.New("validation failed")

	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidToken       = errors.New("invalid token")

	// ErrNotFound is the parent of every missing-resource error below.
	ErrNotFound                 = errors.New("not found")
	ErrUserNotFound             = fmt.Errorf("user %w", ErrNotFound)
	ErrProfileNotFound          = fmt.Errorf("profile %w", ErrNotFound)
	ErrPlanNotFound             = fmt.Errorf("plan %w", ErrNotFound)
	ErrTrainingNotFound         = fmt.Errorf("training %w", ErrNotFound)
	ErrTrainingExerciseNotFound = fmt.Errorf("training exercise %w", ErrNotFound)

	ErrStorage  = errors.New("storage error")
	ErrDelivery = errors.New("notification delivery failed")
)

// Validationf builds an ErrValidation with a caller-facing detail message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// StorageError tags err as a store failure of op.
func StorageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
