package handlers

import (
	"context"
	"net/http"
	"time"

	"dicefit-api/internal/database"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

// Health handles health check requests with enhanced diagnostics
// @Summary      Health
// @Tags         ops
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health [get]
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	requestID := getRequestID(r.Context())
	healthCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "connected"
	var dbLatency time.Duration
	dbStart := time.Now()
	if h.db == nil {
		dbStatus = "disconnected"
	} else if err := h.db.Ping(healthCtx); err != nil {
		dbStatus = "disconnected"
		h.app.Logger.Error().
			Str("request_id", requestID).
			Err(err).
			Msg("Database health check failed")
	} else {
		dbLatency = time.Since(dbStart)
	}

	redisStatus, redisLatency := h.pingRedis(healthCtx, requestID)

	health := map[string]interface{}{
		"status":      statusHealthy,
		"timestamp":   time.Now().UTC(),
		"uptime":      time.Since(startTime).String(),
		"version":     Version,
		"environment": h.app.Config.App_Env,
		"request_id":  requestID,
		"services": map[string]interface{}{
			"database": map[string]interface{}{
				"status":  dbStatus,
				"latency": dbLatency.String(),
			},
			"redis": map[string]interface{}{
				"status":  redisStatus,
				"latency": redisLatency.String(),
			},
		},
	}

	// Redis only backs the cache, so losing it degrades nothing.
	if dbStatus == "disconnected" {
		health["status"] = statusDegraded
		writeJSON(w, h.app, http.StatusServiceUnavailable, health)
		return
	}

	writeJSON(w, h.app, http.StatusOK, health)
}

func (h *Handlers) pingRedis(ctx context.Context, requestID string) (string, time.Duration) {
	if h.redis == nil {
		return "disabled", 0
	}
	start := time.Now()
	if _, err := h.redis.Ping(ctx).Result(); err != nil {
		h.app.Logger.Warn().
			Str("request_id", requestID).
			Err(err).
			Msg("Redis health check failed")
		return "disconnected", 0
	}
	return "connected", time.Since(start)
}

// HealthDetailed provides detailed health information including database stats
// @Summary      Detailed health
// @Tags         ops
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health/detailed [get]
func (h *Handlers) HealthDetailed(w http.ResponseWriter, r *http.Request) {
	requestID := getRequestID(r.Context())
	healthCtx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := map[string]interface{}{
		"status":      statusHealthy,
		"timestamp":   time.Now().UTC(),
		"uptime":      time.Since(startTime).String(),
		"version":     Version,
		"environment": h.app.Config.App_Env,
		"request_id":  requestID,
	}

	// Database health
	dbHealth := make(map[string]interface{})
	dbStart := time.Now()
	if h.db == nil {
		dbHealth["status"] = "unhealthy"
		dbHealth["error"] = "database not configured"
		health["status"] = statusDegraded
	} else if err := database.HealthCheck(healthCtx, h.db); err != nil {
		dbHealth["status"] = "unhealthy"
		dbHealth["error"] = err.Error()
		health["status"] = statusDegraded
	} else {
		dbHealth["status"] = statusHealthy
		dbHealth["latency"] = time.Since(dbStart).String()
		if h.app.DB != nil {
			dbHealth["stats"] = database.GetConnectionStats(h.app.DB)
		}
	}
	health["database"] = dbHealth

	redisStatus, redisLatency := h.pingRedis(healthCtx, requestID)
	health["redis"] = map[string]interface{}{
		"status":  redisStatus,
		"latency": redisLatency.String(),
	}

	statusCode := http.StatusOK
	if health["status"] == statusDegraded {
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, h.app, statusCode, health)
}
