package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/todo-api/internal/middleware"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth pings the database within the configured timeout and answers
// 200 "healthy" or 503 "unhealthy" with per-check details.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]any)
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.healthTimeout())
	defer cancel()

	dbStart := time.Now()
	if err := h.server.DB.Pool.Ping(ctx); err != nil {
		checks["database"] = map[string]any{
			"status":        "unhealthy",
			"response_time": time.Since(dbStart).String(),
			"error":         err.Error(),
		}
		response["status"] = "unhealthy"

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(dbStart)).
			Msg("database health check failed")

		h.recordHealthCheckError(map[string]any{
			"check_type":        "database",
			"error_message":     err.Error(),
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	checks["database"] = map[string]any{
		"status":        "healthy",
		"response_time": time.Since(dbStart).String(),
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}

func (h *HealthHandler) healthTimeout() time.Duration {
	if obs := h.server.Config.Observability; obs != nil && obs.HealthChecks.Timeout > 0 {
		return obs.HealthChecks.Timeout
	}
	return 5 * time.Second
}

func (h *HealthHandler) recordHealthCheckError(attrs map[string]any) {
	if h.server.LoggerService == nil {
		return
	}
	if app := h.server.LoggerService.GetApplication(); app != nil {
		attrs["operation"] = "health_check"
		app.RecordCustomEvent("HealthCheckError", attrs)
	}
}
