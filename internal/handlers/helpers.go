package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"dicefit-api/internal/config"
	"dicefit-api/internal/core"
)

const maxBodyBytes = 1 << 20

// --- Helper Functions ---

func getRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(config.RequestIDKey).(string); ok {
		return requestID
	}
	return "unknown"
}

func getAccountID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(config.AccountIDKey).(int64)
	return id, ok && id > 0
}

func writeJSON(w http.ResponseWriter, app *config.Application, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		app.Logger.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func writeMessage(w http.ResponseWriter, app *config.Application, status int, message string) {
	writeJSON(w, app, status, map[string]string{"message": message})
}

func writeError(w http.ResponseWriter, r *http.Request, app *config.Application, status int, message string) {
	writeJSON(w, app, status, map[string]string{
		"error":      message,
		"request_id": getRequestID(r.Context()),
	})
}

// decodeJSON reads the request body into dst and answers 400 itself when
// the body is not valid JSON.
func (h *Handlers) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		h.app.Logger.Warn().
			Str("request_id", getRequestID(r.Context())).
			Err(err).
			Msg("Invalid JSON in request body")
		writeError(w, r, h.app, http.StatusBadRequest, "Invalid request format")
		return false
	}
	return true
}

// notFoundErrors are checked most specific first to name the missing resource.
var notFoundErrors = []error{
	core.ErrTrainingExerciseNotFound,
	core.ErrTrainingNotFound,
	core.ErrProfileNotFound,
	core.ErrPlanNotFound,
	core.ErrUserNotFound,
}

// errorResponse maps an error chain to a status and a message safe to show
// the caller. Storage and unexpected errors never leak their detail.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, core.ErrDuplicateEmail):
		return http.StatusBadRequest, core.ErrDuplicateEmail.Error()
	case errors.Is(err, core.ErrInvalidCredentials):
		return http.StatusBadRequest, core.ErrInvalidCredentials.Error()
	case errors.Is(err, core.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid or expired token"
	case errors.Is(err, core.ErrUnauthenticated):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, core.ErrNotFound):
		for _, nf := range notFoundErrors {
			if errors.Is(err, nf) {
				return http.StatusNotFound, nf.Error()
			}
		}
		return http.StatusNotFound, core.ErrNotFound.Error()
	case errors.Is(err, core.ErrDelivery):
		return http.StatusInternalServerError, "could not deliver the email, try again later"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// respondError logs err with the failed operation and writes the mapped
// status and message.
func (h *Handlers) respondError(w http.ResponseWriter, r *http.Request, err error, op string) {
	status, message := errorResponse(err)

	event := h.app.Logger.Warn()
	if status >= http.StatusInternalServerError {
		event = h.app.Logger.Error()
	}
	event.
		Str("request_id", getRequestID(r.Context())).
		Int("status", status).
		Err(err).
		Msgf("%s failed", op)

	writeError(w, r, h.app, status, message)
}

// requireAccount returns the authenticated account id or answers 401.
func (h *Handlers) requireAccount(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := getAccountID(r.Context())
	if !ok {
		writeError(w, r, h.app, http.StatusUnauthorized, core.ErrUnauthenticated.Error())
	}
	return id, ok
}
