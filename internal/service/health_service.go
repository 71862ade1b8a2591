package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/paymind/paymind-server/internal/ai"
	"github.com/paymind/paymind-server/internal/repository"
)

// Overall health values reported by GetHealth.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"

	componentConnected    = "connected"
	componentDisconnected = "disconnected"
)

// workflowStatusReporter is the slice of the workflow runner health needs.
type workflowStatusReporter interface {
	IsRunning() bool
}

// breakerStatusReporter is the slice of the AI gateway health needs.
type breakerStatusReporter interface {
	BreakerState() (state ai.BreakerState, requests, failures uint32)
}

type healthService struct {
	repo        repository.Repository
	redisClient *redis.Client
	workflow    workflowStatusReporter
	gateway     breakerStatusReporter
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	workflow workflowStatusReporter,
	gateway breakerStatusReporter,
) HealthService {
	return &healthService{
		repo:        repo,
		redisClient: redisClient,
		workflow:    workflow,
		gateway:     gateway,
	}
}

func (s *healthService) GetHealth(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status: StatusHealthy,
	}

	if s.workflow != nil && s.workflow.IsRunning() {
		status.WorkflowStatus = "running"
	} else {
		status.WorkflowStatus = "idle"
	}

	status.DatabaseStatus = s.checkDatabaseHealth()
	status.RedisStatus = s.checkRedisHealth(ctx)

	state, requests, failures := s.gateway.BreakerState()
	status.BreakerState = state
	status.BreakerRequests = requests
	status.BreakerFailures = failures

	// Redis is a best-effort cache, so only the database gates health.
	if status.DatabaseStatus != componentConnected {
		status.Status = StatusUnhealthy
	} else if status.RedisStatus != componentConnected || state == ai.BreakerOpen {
		status.Status = StatusDegraded
	}

	return status
}

func (s *healthService) checkDatabaseHealth() string {
	if err := s.repo.Ping(); err != nil {
		return componentDisconnected
	}
	return componentConnected
}

func (s *healthService) checkRedisHealth(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return componentDisconnected
	}
	return componentConnected
}
