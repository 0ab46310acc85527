package router

import (
	"github.com/deppfellow/todo-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerTodoRoutes(r *echo.Echo, h *handler.Handlers) {
	todos := r.Group("/todos")

	todos.GET("", h.Todo.ListTodos())
	todos.POST("", h.Todo.CreateTodo())
	todos.GET("/:id", h.Todo.GetTodo())
	todos.PUT("/:id", h.Todo.UpdateTodo())
	todos.DELETE("/:id", h.Todo.DeleteTodo())
}
