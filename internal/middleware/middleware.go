// File: internal/middleware/middleware.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"dicefit-api/internal/config"
	"dicefit-api/internal/core"

	"github.com/google/uuid"
)

type Middleware struct {
	app  *config.Application
	auth core.AuthService
}

func New(app *config.Application, auth core.AuthService) *Middleware {
	return &Middleware{app: app, auth: auth}
}

// --- RESPONSE WRITER for logging ---
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// --- REQUEST ID MIDDLEWARE ---
func (mw *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), config.RequestIDKey, requestID)
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// --- LOGGING MIDDLEWARE ---
func (mw *Middleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := getRequestID(r.Context())

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)

		logEvent := mw.app.Logger.Info()
		if wrapped.statusCode >= 400 {
			if wrapped.statusCode >= 500 {
				logEvent = mw.app.Logger.Error()
			} else {
				logEvent = mw.app.Logger.Warn()
			}
		}

		logEvent.
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Int("status", wrapped.statusCode).
			Dur("duration", duration).
			Str("ip", getClientIP(r)).
			Str("user_agent", r.UserAgent()).
			Int64("content_length", r.ContentLength).
			Int("response_size", wrapped.size).
			Msg("HTTP request processed")
	})
}

// --- RECOVERY MIDDLEWARE ---
func (mw *Middleware) Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				requestID := getRequestID(r.Context())

				mw.app.Logger.Error().
					Str("request_id", requestID).
					Str("panic", fmt.Sprintf("%v", err)).
					Bytes("stack", debug.Stack()).
					Str("path", r.URL.Path).
					Str("method", r.Method).
					Msg("Panic recovered")

				writeJSONError(w, http.StatusInternalServerError, "internal server error", requestID)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// --- BEARER AUTH MIDDLEWARE ---

// Authenticate requires "Authorization: Bearer <token>" and stores the
// account id under config.AccountIDKey.
func (mw *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := getRequestID(r.Context())

		token, ok := bearerToken(r)
		if !ok {
			mw.app.Logger.Warn().
				Str("request_id", requestID).
				Msg("Missing bearer token")
			writeJSONError(w, http.StatusUnauthorized, "authorization token required", requestID)
			return
		}

		accountID, err := mw.auth.Authenticate(r.Context(), token)
		if err != nil {
			msg := "invalid or expired token"
			if !errors.Is(err, core.ErrUnauthenticated) && !errors.Is(err, core.ErrInvalidToken) {
				msg = "authentication failed"
			}
			mw.app.Logger.Warn().
				Str("request_id", requestID).
				Err(err).
				Msg("Token validation failed")
			writeJSONError(w, http.StatusUnauthorized, msg, requestID)
			return
		}

		ctx := context.WithValue(r.Context(), config.AccountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// --- SECURITY MIDDLEWARE ---
func Security(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

		// Swagger UI needs inline scripts; everything else is JSON.
		if !strings.HasPrefix(r.URL.Path, "/swagger/") {
			w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		}

		w.Header().Set("Server", "")

		next.ServeHTTP(w, r)
	})
}

// --- HELPER FUNCTIONS ---

func getRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(config.RequestIDKey).(string); ok {
		return requestID
	}
	return "unknown"
}

func getClientIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return strings.TrimSpace(xri)
	}

	ip := r.RemoteAddr
	if colon := strings.LastIndex(ip, ":"); colon != -1 {
		ip = ip[:colon]
	}
	return ip
}

func writeJSONError(w http.ResponseWriter, status int, message, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":      message,
		"request_id": requestID,
	})
}
