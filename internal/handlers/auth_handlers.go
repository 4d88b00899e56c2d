package handlers

import (
	"net/http"

	"dicefit-api/internal/models"
)

// Register creates an account and its empty profile.
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.RegisterRequest  true  "New account"
// @Success      201   {object}  models.AuthResponse
// @Failure      400   {object}  map[string]string
// @Router       /registro [post]
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.auth.Register(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err, "Registration")
		return
	}

	h.app.Logger.Info().
		Str("request_id", getRequestID(r.Context())).
		Int64("account_id", resp.Account.ID).
		Msg("User registered successfully")

	writeJSON(w, h.app, http.StatusCreated, resp)
}

// Login exchanges email and password for a bearer token.
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.LoginRequest  true  "Credentials"
// @Success      200   {object}  models.AuthResponse
// @Failure      400   {object}  map[string]string
// @Router       /login [post]
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.auth.Login(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err, "Login")
		return
	}

	h.app.Logger.Info().
		Str("request_id", getRequestID(r.Context())).
		Int64("account_id", resp.Account.ID).
		Msg("User authenticated successfully")

	writeJSON(w, h.app, http.StatusOK, resp)
}

// SendPasswordReset mails a new random password to the account owner.
// @Summary      Reset password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.PasswordResetRequest  true  "Account email"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /send-email [post]
func (h *Handlers) SendPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.auth.ResetPassword(r.Context(), req.Email); err != nil {
		h.respondError(w, r, err, "Password reset")
		return
	}

	writeMessage(w, h.app, http.StatusOK, "A new password was sent to your email")
}

// ChangePassword sets a new password for the authenticated account.
// @Summary      Change password
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      models.ChangePasswordRequest  true  "Email and new password"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /password/update [put]
func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.requireAccount(w, r)
	if !ok {
		return
	}

	var req models.ChangePasswordRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.auth.ChangePassword(r.Context(), accountID, req); err != nil {
		h.respondError(w, r, err, "Password change")
		return
	}

	writeMessage(w, h.app, http.StatusOK, "Password updated successfully")
}
