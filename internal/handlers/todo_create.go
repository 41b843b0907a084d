package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-todo-service/internal/logger"
	"github.com/sbilibin2017/gw-todo-service/internal/models"
)

// NewCreateTodoHandler returns an HTTP handler for creating a todo.
// @Summary Create a todo
// @Description Creates a new incomplete todo. A supplied completed flag is ignored.
// @Tags todos
// @Accept json
// @Produce json
// @Param createTodoRequest body models.CreateTodoRequest true "Todo to create"
// @Success 201 {object} models.Todo "Created todo"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid payload"
// @Failure 401 {object} models.TodoErrorResponse "Unauthorized: Invalid token"
// @Failure 403 {object} models.TodoErrorResponse "Forbidden: No token provided"
// @Failure 500 {object} models.TodoErrorResponse "Internal server error"
// @Router /todo [post]
// @Security BearerAuth
func NewCreateTodoHandler(svc TodoCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateTodoRequest
		if violations := decodeAndValidate(r, &req); len(violations) > 0 {
			writeValidationError(w, violations)
			return
		}

		todo, err := svc.Create(r.Context(), *req.Title, *req.Description)
		if err != nil {
			writeTodoError(w, r, "", err)
			return
		}

		logger.Log.Infow("todo created", "id", todo.ID, "actor", actor(r.Context()))
		writeJSON(w, http.StatusCreated, todo)
	}
}
