package handler

import (
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
)

type Handlers struct {
	Health  *HealthHandler  // database liveness at /status
	OpenAPI *OpenAPIHandler // Swagger UI and the OpenAPI document
	Todo    *TodoHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Todo:    NewTodoHandler(s, services.Todo),
	}
}
