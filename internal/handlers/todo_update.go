package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-todo-service/internal/logger"
	"github.com/sbilibin2017/gw-todo-service/internal/models"
)

// NewUpdateTodoHandler returns an HTTP handler for partial todo updates.
// @Summary Update a todo
// @Description Updates the supplied fields. Omitted fields keep their values.
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo id"
// @Param updateTodoRequest body models.UpdateTodoRequest true "Fields to change"
// @Success 200 {object} models.Todo "Updated todo"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid payload"
// @Failure 401 {object} models.TodoErrorResponse "Unauthorized: Invalid token"
// @Failure 403 {object} models.TodoErrorResponse "Forbidden: No token provided"
// @Failure 404 {object} models.TodoErrorResponse "To-Do item not found"
// @Failure 500 {object} models.TodoErrorResponse "Internal server error"
// @Router /todo/{id} [put]
// @Security BearerAuth
func NewUpdateTodoHandler(svc TodoUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req models.UpdateTodoRequest
		if violations := decodeAndValidate(r, &req); len(violations) > 0 {
			writeValidationError(w, violations)
			return
		}

		todo, err := svc.Update(r.Context(), id, req.Patch())
		if err != nil {
			writeTodoError(w, r, id, err)
			return
		}

		logger.Log.Infow("todo updated", "id", id, "actor", actor(r.Context()))
		writeJSON(w, http.StatusOK, todo)
	}
}

// NewCompleteTodoHandler returns an HTTP handler marking a todo as completed.
// Any request body is ignored.
// @Summary Complete a todo
// @Tags todos
// @Produce json
// @Param id path string true "Todo id"
// @Success 200 {object} models.Todo "Completed todo"
// @Failure 404 {object} models.TodoErrorResponse "To-Do item not found"
// @Failure 500 {object} models.TodoErrorResponse "Internal server error"
// @Router /todo/{id}/complete [put]
func NewCompleteTodoHandler(svc TodoCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		todo, err := svc.Complete(r.Context(), id)
		if err != nil {
			writeTodoError(w, r, id, err)
			return
		}

		logger.Log.Infow("todo completed", "id", id, "actor", actor(r.Context()))
		writeJSON(w, http.StatusOK, todo)
	}
}
