// Package repository handles all interactions with the database.
//
// It contains the raw SQL statements and the methods that run them,
// keeping SQL out of the service layer.
package repository

import (
	"github.com/deppfellow/todo-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Todo *TodoRepository
}

// NewRepositories builds every repository on top of the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Todo: NewTodoRepository(s.DB.Pool),
	}
}
