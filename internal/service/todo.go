package service

import (
	"context"

	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/rs/zerolog"
)

// Fixed bodies returned by update and delete, whether or not a row matched.
const (
	TodoUpdatedMessage = "Todo was updated"
	TodoDeletedMessage = "Todo was successfully deleted"
)

// TodoStore is the persistence the todo service depends on.
// *repository.TodoRepository implements it.
type TodoStore interface {
	List(ctx context.Context) ([]model.Todo, error)
	Get(ctx context.Context, id int64) (*model.Todo, error)
	Create(ctx context.Context, description *string) (*model.Todo, error)
	Update(ctx context.Context, id int64, description *string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type TodoService struct {
	server *server.Server
	store  TodoStore
}

func NewTodoService(s *server.Server, store TodoStore) *TodoService {
	return &TodoService{
		server: s,
		store:  store,
	}
}

func (s *TodoService) ListTodos(ctx context.Context) ([]model.Todo, error) {
	return s.store.List(ctx)
}

// GetTodo returns nil without error when no todo has the id.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*model.Todo, error) {
	return s.store.Get(ctx, id)
}

func (s *TodoService) CreateTodo(ctx context.Context, description *string) (*model.Todo, error) {
	todo, err := s.store.Create(ctx, description)
	if err != nil {
		return nil, err
	}

	s.logger(ctx).Info().Int64("todo_id", todo.ID).Msg("todo created")
	return todo, nil
}

// UpdateTodo always reports success once the statement ran; an unknown id
// is only logged.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, description *string) (string, error) {
	affected, err := s.store.Update(ctx, id, description)
	if err != nil {
		return "", err
	}

	s.logAffected(ctx, "update", id, affected)
	return TodoUpdatedMessage, nil
}

// DeleteTodo always reports success once the statement ran; an unknown id
// is only logged.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) (string, error) {
	affected, err := s.store.Delete(ctx, id)
	if err != nil {
		return "", err
	}

	s.logAffected(ctx, "delete", id, affected)
	return TodoDeletedMessage, nil
}

func (s *TodoService) logAffected(ctx context.Context, operation string, id, affected int64) {
	logger := s.logger(ctx)

	event := logger.Info()
	if affected == 0 {
		event = logger.Warn()
	}

	event.
		Str("operation", operation).
		Int64("todo_id", id).
		Int64("rows_affected", affected).
		Msg("todo statement executed")
}

// logger prefers the request-scoped logger stored by the context enhancer
// middleware and falls back to the server logger.
func (s *TodoService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.server.Logger
}
