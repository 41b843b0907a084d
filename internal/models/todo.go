package models

import "time"

// Todo is a single task stored by the service.
// swagger:model Todo
type Todo struct {
	// Server generated identifier
	// example: 3f1c8c1e-2a43-4b7e-9d7e-8f0a3c1b2d4e
	ID string `json:"id" db:"id"`

	// example: Buy milk
	Title string `json:"title" db:"title"`

	// example: 2%
	Description string `json:"description" db:"description"`

	// example: false
	Completed bool `json:"completed" db:"completed"`

	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" db:"updated_at"` // nil until the first mutation
}

// TodoPatch holds the fields of a partial update. A nil field keeps the stored value.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Apply merges the patch into todo and stamps UpdatedAt.
func (p TodoPatch) Apply(todo *Todo, now time.Time) {
	if p.Title != nil {
		todo.Title = *p.Title
	}
	if p.Description != nil {
		todo.Description = *p.Description
	}
	if p.Completed != nil {
		todo.Completed = *p.Completed
	}
	todo.UpdatedAt = &now
}
