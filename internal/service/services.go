// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// parsed input from the handler, calls the repository, and shapes
// the result the handler writes back.
package service

import (
	"github.com/deppfellow/todo-api/internal/repository"
	"github.com/deppfellow/todo-api/internal/server"
)

type Services struct {
	Todo *TodoService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Todo: NewTodoService(s, repos.Todo),
	}
}
