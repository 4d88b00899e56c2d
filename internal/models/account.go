package models

// Account is a registered user (table registro).
type Account struct {
	ID           int64  `json:"id"`
	FullName     string `json:"nome_completo"`
	Email        string `json:"email"`
	NationalID   string `json:"cpf"`
	PasswordHash string `json:"-"` // Never serialize to JSON
}

// Profile holds the body metrics and training window of an account (table perfil).
// Times are "HH:MM[:SS]" and dates "YYYY-MM-DD".
type Profile struct {
	ID                int64   `json:"id"`
	AccountID         int64   `json:"id_registro"`
	Height            float64 `json:"altura"`
	Weight            float64 `json:"peso"`
	Goal              string  `json:"objetivo"`
	TrainingStartTime string  `json:"hora_treino_inicio"`
	TrainingStartDate string  `json:"data_treino_inicio"`
	TrainingEndTime   string  `json:"hora_treino_fim"`
	TrainingEndDate   string  `json:"data_treino_fim"`
	PlanID            *int64  `json:"id_plano,omitempty"`
}

// AuthResponse is returned by registration and login.
type AuthResponse struct {
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expires_at"`
	Account   *Account `json:"account"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	FullName   string `json:"nome_completo" validate:"required,max=150"`
	Email      string `json:"email" validate:"required,email,max=150"`
	NationalID string `json:"cpf" validate:"required,max=20"`
	Password   string `json:"senha" validate:"required,max=72"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=150"`
	Password string `json:"senha" validate:"required,max=72"`
}

// PasswordResetRequest asks for a new password to be mailed.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email,max=150"`
}

// ChangePasswordRequest sets a new password for the authenticated account.
type ChangePasswordRequest struct {
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"senha" validate:"required,max=72"`
}

// UpdateProfileRequest replaces every profile field; partial updates are not supported.
type UpdateProfileRequest struct {
	Height            float64 `json:"altura" validate:"required,gt=0"`
	Weight            float64 `json:"peso" validate:"required,gt=0"`
	Goal              string  `json:"objetivo" validate:"required,max=255"`
	TrainingStartTime string  `json:"hora_treino_inicio" validate:"required,clock"`
	TrainingStartDate string  `json:"data_treino_inicio" validate:"required,isodate"`
	TrainingEndTime   string  `json:"hora_treino_fim" validate:"required,clock"`
	TrainingEndDate   string  `json:"data_treino_fim" validate:"required,isodate"`
}
