package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-todo-service/internal/logger"
)

// NewDeleteTodoHandler returns an HTTP handler removing a todo.
// The removed todo is echoed back.
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Param id path string true "Todo id"
// @Success 200 {object} models.Todo "Removed todo"
// @Failure 401 {object} models.TodoErrorResponse "Unauthorized: Invalid token"
// @Failure 403 {object} models.TodoErrorResponse "Forbidden: No token provided"
// @Failure 404 {object} models.TodoErrorResponse "To-Do item not found"
// @Failure 500 {object} models.TodoErrorResponse "Internal server error"
// @Router /todo/{id} [delete]
// @Security BearerAuth
func NewDeleteTodoHandler(svc TodoDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		todo, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeTodoError(w, r, id, err)
			return
		}

		logger.Log.Infow("todo deleted", "id", id, "actor", actor(r.Context()))
		writeJSON(w, http.StatusOK, todo)
	}
}
