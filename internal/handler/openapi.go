package handler

import (
	"embed"
	"fmt"
	"net/http"

	"github.com/deppfellow/todo-api/internal/server"
	"github.com/labstack/echo/v4"
)

//go:embed static/openapi.html static/openapi.json
var docs embed.FS

type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves the Swagger UI page, which loads ServeOpenAPISpec.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := docs.ReadFile("static/openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTMLBlob(http.StatusOK, page)
}

func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	document, err := docs.ReadFile("static/openapi.json")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI document: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.JSONBlob(http.StatusOK, document)
}
