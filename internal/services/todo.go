package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-todo-service/internal/logger"
	"github.com/sbilibin2017/gw-todo-service/internal/middlewares"
	"github.com/sbilibin2017/gw-todo-service/internal/models"
)

//go:generate mockgen -source=todo.go -destination=mock_todo_test.go -package=services

// ErrTodoNotFound is returned when no todo has the requested id.
var ErrTodoNotFound = errors.New("todo not found")

// TodoReader defines read operations on the todo store.
type TodoReader interface {
	GetByID(ctx context.Context, id string) (*models.Todo, error)          // Returns nil when the id is unknown
	GetByIDForUpdate(ctx context.Context, id string) (*models.Todo, error) // Like GetByID, locking the row for the current transaction
	List(ctx context.Context) ([]models.Todo, error)
}

// TodoWriter defines write operations on the todo store.
type TodoWriter interface {
	Insert(ctx context.Context, todo models.Todo) error
	Update(ctx context.Context, todo models.Todo) (bool, error)  // Reports false when the id is unknown
	Delete(ctx context.Context, id string) (*models.Todo, error) // Returns nil when the id is unknown
}

// TodoEventPublisher publishes todo lifecycle events.
type TodoEventPublisher interface {
	Publish(ctx context.Context, event models.TodoEvent) error
}

// TodoService implements the todo operations on top of an injected store.
type TodoService struct {
	reader    TodoReader
	writer    TodoWriter
	publisher TodoEventPublisher

	now   func() time.Time
	newID func() string
}

// NewTodoService creates a new TodoService. publisher may be nil.
func NewTodoService(reader TodoReader, writer TodoWriter, publisher TodoEventPublisher) *TodoService {
	return &TodoService{
		reader:    reader,
		writer:    writer,
		publisher: publisher,
		now: func() time.Time {
			// microsecond precision survives a PostgreSQL round trip unchanged
			return time.Now().UTC().Truncate(time.Microsecond)
		},
		newID: uuid.NewString,
	}
}

// Create stores a new incomplete todo.
func (svc *TodoService) Create(ctx context.Context, title, description string) (*models.Todo, error) {
	todo := models.Todo{
		ID:          svc.newID(),
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   svc.now(),
	}

	if err := svc.writer.Insert(ctx, todo); err != nil {
		logger.Log.Errorw("failed to insert todo", "id", todo.ID, "err", err)
		return nil, err
	}

	svc.publish(ctx, models.TodoCreated, &todo)
	return &todo, nil
}

// List returns all todos.
func (svc *TodoService) List(ctx context.Context) ([]models.Todo, error) {
	todos, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list todos", "err", err)
		return nil, err
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	return todos, nil
}

// ListCompleted returns the todos marked as completed.
func (svc *TodoService) ListCompleted(ctx context.Context) ([]models.Todo, error) {
	todos, err := svc.List(ctx)
	if err != nil {
		return nil, err
	}

	completed := make([]models.Todo, 0, len(todos))
	for _, todo := range todos {
		if todo.Completed {
			completed = append(completed, todo)
		}
	}
	return completed, nil
}

// Get returns the todo with the given id.
func (svc *TodoService) Get(ctx context.Context, id string) (*models.Todo, error) {
	todo, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get todo", "id", id, "err", err)
		return nil, err
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}

// Update applies a partial update. Fields left nil in patch keep their values.
func (svc *TodoService) Update(ctx context.Context, id string, patch models.TodoPatch) (*models.Todo, error) {
	return svc.modify(ctx, id, models.TodoUpdated, patch)
}

// Complete marks the todo as completed.
func (svc *TodoService) Complete(ctx context.Context, id string) (*models.Todo, error) {
	done := true
	return svc.modify(ctx, id, models.TodoCompleted, models.TodoPatch{Completed: &done})
}

func (svc *TodoService) modify(ctx context.Context, id, operation string, patch models.TodoPatch) (*models.Todo, error) {
	todo, err := svc.reader.GetByIDForUpdate(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get todo", "id", id, "operation", operation, "err", err)
		return nil, err
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}

	patch.Apply(todo, svc.now())

	ok, err := svc.writer.Update(ctx, *todo)
	if err != nil {
		logger.Log.Errorw("failed to update todo", "id", id, "operation", operation, "err", err)
		return nil, err
	}
	if !ok {
		// removed between read and write
		return nil, ErrTodoNotFound
	}

	svc.publish(ctx, operation, todo)
	return todo, nil
}

// Delete removes the todo and returns it.
func (svc *TodoService) Delete(ctx context.Context, id string) (*models.Todo, error) {
	todo, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete todo", "id", id, "err", err)
		return nil, err
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}

	svc.publish(ctx, models.TodoDeleted, todo)
	return todo, nil
}

// publish emits an event once the change is committed. Failures are logged only.
func (svc *TodoService) publish(ctx context.Context, operation string, todo *models.Todo) {
	if svc.publisher == nil {
		logger.Log.Debugw("event publisher not configured, skipping", "todo_id", todo.ID, "operation", operation)
		return
	}

	snapshot := *todo
	event := models.TodoEvent{
		EventID:   uuid.NewString(),
		TodoID:    todo.ID,
		Operation: operation,
		Timestamp: svc.now().Unix(),
		Todo:      &snapshot,
	}
	middlewares.AfterCommit(ctx, func() {
		if err := svc.publisher.Publish(ctx, event); err != nil {
			logger.Log.Warnw("todo event dropped", "todo_id", event.TodoID, "operation", operation, "err", err)
		}
	})
}
