package handlers

import (
	"net/http"
)

// NewListTodosHandler returns an HTTP handler listing every todo.
// @Summary List todos
// @Tags todos
// @Produce json
// @Success 200 {array} models.Todo "All todos"
// @Failure 401 {object} models.TodoErrorResponse "Unauthorized: Invalid token"
// @Failure 403 {object} models.TodoErrorResponse "Forbidden: No token provided"
// @Failure 500 {object} models.TodoErrorResponse "Internal server error"
// @Router /todos [get]
// @Security BearerAuth
func NewListTodosHandler(svc TodoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		todos, err := svc.List(r.Context())
		if err != nil {
			writeTodoError(w, r, "", err)
			return
		}
		writeJSON(w, http.StatusOK, todos)
	}
}

// NewListCompletedTodosHandler returns an HTTP handler listing completed todos.
// @Summary List completed todos
// @Tags todos
// @Produce json
// @Success 200 {array} models.Todo "Completed todos"
// @Failure 500 {object} models.TodoErrorResponse "Internal server error"
// @Router /todos/completed [get]
func NewListCompletedTodosHandler(svc CompletedTodoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		todos, err := svc.ListCompleted(r.Context())
		if err != nil {
			writeTodoError(w, r, "", err)
			return
		}
		writeJSON(w, http.StatusOK, todos)
	}
}
