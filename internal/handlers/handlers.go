// File: internal/handlers/handlers.go
package handlers

import (
	"time"

	"dicefit-api/internal/config"
	"dicefit-api/internal/core"
	"dicefit-api/internal/database"

	"github.com/go-redis/redis/v8"
)

// Version is reported by the health endpoints.
const Version = "1.0.0"

// Services groups the domain services the handlers call.
type Services struct {
	Auth     core.AuthService
	Catalog  core.CatalogService
	Training core.TrainingService
	Feedback core.FeedbackService
}

type Handlers struct {
	app      *config.Application
	auth     core.AuthService
	catalog  core.CatalogService
	training core.TrainingService
	feedback core.FeedbackService

	// health probes; nil when the dependency is not configured
	db    database.Pinger
	redis *redis.Client
}

func New(app *config.Application, svc Services) *Handlers {
	h := &Handlers{
		app:      app,
		auth:     svc.Auth,
		catalog:  svc.Catalog,
		training: svc.Training,
		feedback: svc.Feedback,
		redis:    app.Redis,
	}
	if app.DB != nil {
		h.db = app.DB
	}
	return h
}

var startTime = time.Now()
