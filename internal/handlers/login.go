package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-todo-service/internal/logger"
	"github.com/sbilibin2017/gw-todo-service/internal/models"
	"github.com/sbilibin2017/gw-todo-service/internal/services"
)

//go:generate mockgen -source=login.go -destination=mock_login_test.go -package=handlers

// Loginer defines the interface for logging in.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates a user and returns a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "User login request"
// @Success 200 {object} models.LoginResponse "JWT token"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request"
// @Failure 401 {object} models.LoginErrorResponse "Invalid username or password"
// @Failure 500 {object} models.LoginErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if violations := decodeAndValidate(r, &req); len(violations) > 0 {
			writeValidationError(w, violations)
			return
		}

		token, err := svc.Login(r.Context(), *req.Username, *req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeJSON(w, http.StatusUnauthorized, models.LoginErrorResponse{
					Error: "Invalid username or password",
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.LoginErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		writeJSON(w, http.StatusOK, models.LoginResponse{Token: token})
	}
}
