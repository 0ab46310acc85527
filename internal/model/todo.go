// Package model holds the entities persisted by the API.
package model

// Todo is one row of the todo table.
//
// Description is nullable in the schema; a nil Description is rendered
// as JSON null.
type Todo struct {
	ID          int64   `json:"todo_id"`
	Description *string `json:"description"`
}
