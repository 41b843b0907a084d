package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-todo-service/internal/logger"
	"github.com/sbilibin2017/gw-todo-service/internal/models"
	"github.com/sbilibin2017/gw-todo-service/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register_test.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) error
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Ensures a unique username. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.RegisterResponse "User successfully registered"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request"
// @Failure 409 {object} models.RegisterErrorResponse "Username already exists"
// @Failure 500 {object} models.RegisterErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if violations := decodeAndValidate(r, &req); len(violations) > 0 {
			writeValidationError(w, violations)
			return
		}

		err := svc.Register(r.Context(), *req.Username, *req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeJSON(w, http.StatusConflict, models.RegisterErrorResponse{
					Error: "Username already exists",
				})
			case errors.Is(err, services.ErrPasswordTooLong):
				writeValidationError(w, []models.FieldViolation{{
					Field:   "password",
					Message: "Password must be at most 72 bytes",
				}})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, models.RegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.RegisterResponse{
			Message: "User registered successfully",
		})
	}
}
