package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewGetTodoHandler returns an HTTP handler reading one todo.
// @Summary Get a todo
// @Tags todos
// @Produce json
// @Param id path string true "Todo id"
// @Success 200 {object} models.Todo "Todo"
// @Failure 401 {object} models.TodoErrorResponse "Unauthorized: Invalid token"
// @Failure 403 {object} models.TodoErrorResponse "Forbidden: No token provided"
// @Failure 404 {object} models.TodoErrorResponse "To-Do item not found"
// @Failure 500 {object} models.TodoErrorResponse "Internal server error"
// @Router /todo/{id} [get]
// @Security BearerAuth
func NewGetTodoHandler(svc TodoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		todo, err := svc.Get(r.Context(), id)
		if err != nil {
			writeTodoError(w, r, id, err)
			return
		}
		writeJSON(w, http.StatusOK, todo)
	}
}
