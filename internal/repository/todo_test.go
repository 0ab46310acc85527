package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/todo-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func newMockRepository(t *testing.T) (*TodoRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewTodoRepository(mock), mock
}

func todoColumns() []string {
	return []string{"todo_id", "description"}
}

func TestTodoRepository_List(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT * FROM todo").
		WillReturnRows(pgxmock.NewRows(todoColumns()).
			AddRow(int64(1), strPtr("buy milk")).
			AddRow(int64(2), (*string)(nil)))

	todos, err := repo.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.Todo{
		{ID: 1, Description: strPtr("buy milk")},
		{ID: 2, Description: nil},
	}, todos)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_List_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT * FROM todo").
		WillReturnRows(pgxmock.NewRows(todoColumns()))

	todos, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestTodoRepository_List_Error(t *testing.T) {
	repo, mock := newMockRepository(t)
	dbErr := errors.New("connection refused")

	mock.ExpectQuery("SELECT * FROM todo").WillReturnError(dbErr)

	todos, err := repo.List(context.Background())
	assert.Nil(t, todos)
	assert.ErrorIs(t, err, dbErr)
}

func TestTodoRepository_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery("SELECT * FROM todo WHERE todo_id = $1").
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows(todoColumns()).AddRow(int64(7), strPtr("buy milk")))

		todo, err := repo.Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, &model.Todo{ID: 7, Description: strPtr("buy milk")}, todo)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery("SELECT * FROM todo WHERE todo_id = $1").
			WithArgs(int64(404)).
			WillReturnRows(pgxmock.NewRows(todoColumns()))

		todo, err := repo.Get(context.Background(), 404)
		assert.NoError(t, err)
		assert.Nil(t, todo)
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		dbErr := errors.New("timeout")

		mock.ExpectQuery("SELECT * FROM todo WHERE todo_id = $1").
			WithArgs(int64(1)).
			WillReturnError(dbErr)

		todo, err := repo.Get(context.Background(), 1)
		assert.Nil(t, todo)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestTodoRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("INSERT INTO todo (description) VALUES ($1) RETURNING *").
		WithArgs(strPtr("buy milk")).
		WillReturnRows(pgxmock.NewRows(todoColumns()).AddRow(int64(42), strPtr("buy milk")))

	todo, err := repo.Create(context.Background(), strPtr("buy milk"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), todo.ID)
	assert.Equal(t, "buy milk", *todo.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Create_NilDescription(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("INSERT INTO todo (description) VALUES ($1) RETURNING *").
		WithArgs((*string)(nil)).
		WillReturnRows(pgxmock.NewRows(todoColumns()).AddRow(int64(43), (*string)(nil)))

	todo, err := repo.Create(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(43), todo.ID)
	assert.Nil(t, todo.Description)
}

func TestTodoRepository_Update(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{name: "existing id", affected: 1},
		{name: "missing id", affected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)

			mock.ExpectExec("UPDATE todo SET description = $1 WHERE todo_id = $2").
				WithArgs(strPtr("buy oat milk"), int64(3)).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			affected, err := repo.Update(context.Background(), 3, strPtr("buy oat milk"))
			require.NoError(t, err)
			assert.Equal(t, tt.affected, affected)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTodoRepository_Delete(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("DELETE FROM todo WHERE todo_id = $1").
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	affected, err := repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Delete_Error(t *testing.T) {
	repo, mock := newMockRepository(t)
	dbErr := errors.New("deadlock detected")

	mock.ExpectExec("DELETE FROM todo WHERE todo_id = $1").
		WithArgs(int64(3)).
		WillReturnError(dbErr)

	affected, err := repo.Delete(context.Background(), 3)
	assert.Zero(t, affected)
	assert.ErrorIs(t, err, dbErr)
}
