package models

// CreateTodoRequest represents the JSON body for creating a todo
// swagger:model CreateTodoRequest
type CreateTodoRequest struct {
	// required: true
	// example: Buy milk
	Title *string `json:"title" validate:"required,min=1"`

	// required: true
	// example: 2%
	Description *string `json:"description" validate:"required,min=1"`

	// Accepted for compatibility, a new todo always starts incomplete
	// example: false
	Completed *bool `json:"completed"`
}

// UpdateTodoRequest represents the JSON body for updating a todo.
// Omitted or null fields keep their stored values.
// swagger:model UpdateTodoRequest
type UpdateTodoRequest struct {
	// example: Buy oat milk
	Title *string `json:"title" validate:"omitnil,min=1"`

	// example: 1L
	Description *string `json:"description" validate:"omitnil,min=1"`

	// example: true
	Completed *bool `json:"completed"`
}

// Patch converts the request into a TodoPatch.
func (r UpdateTodoRequest) Patch() TodoPatch {
	return TodoPatch{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// TodoErrorResponse represents an error response for todo endpoints
// swagger:model TodoErrorResponse
type TodoErrorResponse struct {
	// example: To-Do item with id=42 not found
	Error string `json:"error"`
}

// FieldViolation describes one rejected request field.
type FieldViolation struct {
	// example: title
	Field string `json:"field"`

	// example: Title is required
	Message string `json:"message"`
}

// ValidationErrorResponse is returned when the request payload is rejected
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Errors []FieldViolation `json:"errors"`
}
