package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-todo-service/internal/logger"
	"github.com/sbilibin2017/gw-todo-service/internal/middlewares"
	"github.com/sbilibin2017/gw-todo-service/internal/models"
	"github.com/sbilibin2017/gw-todo-service/internal/services"
)

//go:generate mockgen -source=todo.go -destination=mock_todo_test.go -package=handlers

// TodoCreator creates todos.
type TodoCreator interface {
	Create(ctx context.Context, title, description string) (*models.Todo, error)
}

// TodoLister lists all todos.
type TodoLister interface {
	List(ctx context.Context) ([]models.Todo, error)
}

// CompletedTodoLister lists completed todos.
type CompletedTodoLister interface {
	ListCompleted(ctx context.Context) ([]models.Todo, error)
}

// TodoGetter reads a single todo.
type TodoGetter interface {
	Get(ctx context.Context, id string) (*models.Todo, error)
}

// TodoUpdater applies partial updates.
type TodoUpdater interface {
	Update(ctx context.Context, id string, patch models.TodoPatch) (*models.Todo, error)
}

// TodoCompleter marks todos as completed.
type TodoCompleter interface {
	Complete(ctx context.Context, id string) (*models.Todo, error)
}

// TodoDeleter removes todos.
type TodoDeleter interface {
	Delete(ctx context.Context, id string) (*models.Todo, error)
}

// writeTodoError maps a service error to the response body.
func writeTodoError(w http.ResponseWriter, r *http.Request, id string, err error) {
	if errors.Is(err, services.ErrTodoNotFound) {
		writeJSON(w, http.StatusNotFound, models.TodoErrorResponse{
			Error: fmt.Sprintf("To-Do item with id=%s not found", id),
		})
		return
	}

	logger.Log.Errorw("internal server error",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middlewares.GetRequestIDFromContext(r.Context()),
		"err", err,
	)
	writeJSON(w, http.StatusInternalServerError, models.TodoErrorResponse{
		Error: "Internal server error",
	})
}

// actor returns the authenticated username, or an empty string on open routes.
func actor(ctx context.Context) string {
	if claims, ok := middlewares.GetClaimsFromContext(ctx); ok {
		return claims.Username
	}
	return ""
}
