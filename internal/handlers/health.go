package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo-service/internal/logger"
	"github.com/sbilibin2017/gw-todo-service/internal/models"
)

//go:generate mockgen -source=health.go -destination=mock_health_test.go -package=handlers

// Pinger checks that a backend is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler returns an HTTP handler reporting backend reachability.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse "Backend reachable"
// @Failure 503 {object} models.HealthResponse "Backend unreachable"
// @Router /health [get]
func NewHealthHandler(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := pinger.PingContext(r.Context()); err != nil {
			logger.Log.Warnw("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, models.HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
	}
}
