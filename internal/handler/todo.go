package handler

import (
	"net/http"

	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
	"github.com/labstack/echo/v4"
)

// Request payloads carry no validation rules: any description, including
// a missing one, is passed to the database, and ids are only typed.
type ListTodosRequest struct{}

func (r *ListTodosRequest) Validate() error {
	return nil
}

type GetTodoRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *GetTodoRequest) Validate() error {
	return nil
}

// CreateTodoRequest accepts a missing or null description; both insert NULL.
type CreateTodoRequest struct {
	Description *string `json:"description"`
}

func (r *CreateTodoRequest) Validate() error {
	return nil
}

type UpdateTodoRequest struct {
	ID          int64   `param:"id" json:"-"`
	Description *string `json:"description"`
}

func (r *UpdateTodoRequest) Validate() error {
	return nil
}

type DeleteTodoRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *DeleteTodoRequest) Validate() error {
	return nil
}

// TodoHandler exposes the todo CRUD routes. Every success is a 200.
type TodoHandler struct {
	Handler
	todoService *service.TodoService
}

func NewTodoHandler(s *server.Server, todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{
		Handler:     NewHandler(s),
		todoService: todoService,
	}
}

func (h *TodoHandler) ListTodos() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *ListTodosRequest) ([]model.Todo, error) {
		return h.todoService.ListTodos(c.Request().Context())
	}, http.StatusOK)
}

// GetTodo answers JSON null when no todo has the id.
func (h *TodoHandler) GetTodo() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *GetTodoRequest) (*model.Todo, error) {
		return h.todoService.GetTodo(c.Request().Context(), req.ID)
	}, http.StatusOK)
}

func (h *TodoHandler) CreateTodo() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *CreateTodoRequest) (*model.Todo, error) {
		return h.todoService.CreateTodo(c.Request().Context(), req.Description)
	}, http.StatusOK)
}

func (h *TodoHandler) UpdateTodo() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UpdateTodoRequest) (string, error) {
		return h.todoService.UpdateTodo(c.Request().Context(), req.ID, req.Description)
	}, http.StatusOK)
}

func (h *TodoHandler) DeleteTodo() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *DeleteTodoRequest) (string, error) {
		return h.todoService.DeleteTodo(c.Request().Context(), req.ID)
	}, http.StatusOK)
}
