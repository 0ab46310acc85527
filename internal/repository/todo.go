package repository

import (
	"context"

	"github.com/deppfellow/todo-api/internal/database"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// Each operation is exactly one parameterized statement.
const (
	listTodosQuery  = "SELECT * FROM todo"
	getTodoQuery    = "SELECT * FROM todo WHERE todo_id = $1"
	createTodoQuery = "INSERT INTO todo (description) VALUES ($1) RETURNING *"
	updateTodoQuery = "UPDATE todo SET description = $1 WHERE todo_id = $2"
	deleteTodoQuery = "DELETE FROM todo WHERE todo_id = $1"
)

// TodoRepository runs the todo statements against a Querier.
type TodoRepository struct {
	db database.Querier
}

func NewTodoRepository(db database.Querier) *TodoRepository {
	return &TodoRepository{db: db}
}

// scanTodo reads a row in table column order: todo_id, description.
func scanTodo(row pgx.Row) (model.Todo, error) {
	var todo model.Todo
	err := row.Scan(&todo.ID, &todo.Description)
	return todo, err
}

// List returns every row, in whatever order the database yields them.
// The result is never nil so it serializes as [] when the table is empty.
func (r *TodoRepository) List(ctx context.Context) ([]model.Todo, error) {
	rows, err := r.db.Query(ctx, listTodosQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}
	defer rows.Close()

	todos := make([]model.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan todo")
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate todos")
	}

	return todos, nil
}

// Get returns the todo with the given id, or nil when no row matches.
func (r *TodoRepository) Get(ctx context.Context, id int64) (*model.Todo, error) {
	todo, err := scanTodo(r.db.QueryRow(ctx, getTodoQuery, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get todo %d", id)
	}
	return &todo, nil
}

// Create inserts a row and returns it as stored, including the generated id.
func (r *TodoRepository) Create(ctx context.Context, description *string) (*model.Todo, error) {
	todo, err := scanTodo(r.db.QueryRow(ctx, createTodoQuery, description))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create todo")
	}
	return &todo, nil
}

// Update sets the description of the row with the given id and reports
// how many rows were touched (0 when the id does not exist).
func (r *TodoRepository) Update(ctx context.Context, id int64, description *string) (int64, error) {
	tag, err := r.db.Exec(ctx, updateTodoQuery, description, id)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to update todo %d", id)
	}
	return tag.RowsAffected(), nil
}

// Delete removes the row with the given id and reports how many rows were
// removed (0 when the id does not exist).
func (r *TodoRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteTodoQuery, id)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to delete todo %d", id)
	}
	return tag.RowsAffected(), nil
}
