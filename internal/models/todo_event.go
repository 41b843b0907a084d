package models

// Todo lifecycle operations published to the event stream.
const (
	TodoCreated   = "created"
	TodoUpdated   = "updated"
	TodoCompleted = "completed"
	TodoDeleted   = "deleted"
)

// TodoEvent describes a committed change to a todo.
type TodoEvent struct {
	EventID   string `json:"event_id"`       // Unique identifier of the event
	TodoID    string `json:"todo_id"`        // Identifier of the affected todo
	Operation string `json:"operation"`      // One of created, updated, completed, deleted
	Timestamp int64  `json:"timestamp"`      // Unix timestamp (seconds) of the change
	Todo      *Todo  `json:"todo,omitempty"` // State after the change, or the removed todo for deletes
}
