package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/paymind/paymind-server/internal/service"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status                 string    `json:"status"`
	Timestamp              time.Time `json:"timestamp"`
	DatabaseStatus         string    `json:"database_status"`
	RedisStatus            string    `json:"redis_status"`
	WorkflowStatus         string    `json:"workflow_status"`
	CircuitBreakerState    string    `json:"circuit_breaker_state"`
	CircuitBreakerRequests uint32    `json:"circuit_breaker_requests"`
	CircuitBreakerFailures uint32    `json:"circuit_breaker_failures"`
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth(r.Context())

	response := HealthResponse{
		Status:                 health.Status,
		Timestamp:              time.Now(),
		DatabaseStatus:         health.DatabaseStatus,
		RedisStatus:            health.RedisStatus,
		WorkflowStatus:         health.WorkflowStatus,
		CircuitBreakerState:    string(health.BreakerState),
		CircuitBreakerRequests: health.BreakerRequests,
		CircuitBreakerFailures: health.BreakerFailures,
	}

	// Degraded still answers 200 so the service stays reachable while
	// monitoring picks the state up from the body.
	if health.Status == service.StatusUnhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}
