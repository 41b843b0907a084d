package models

// HealthResponse reports whether the persistence backend is reachable
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`
}
