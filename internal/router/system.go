package router

import (
	"github.com/deppfellow/todo-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints outside the todo resource:
// health and API docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	docs := r.Group("/api-docs")
	docs.GET("", h.OpenAPI.ServeOpenAPIUI)
	docs.GET("/openapi.json", h.OpenAPI.ServeOpenAPISpec)
}
