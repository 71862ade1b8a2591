package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/paymind/paymind-server/internal/ai"
	"github.com/paymind/paymind-server/internal/config"
	"github.com/paymind/paymind-server/internal/repository"
)

type Service struct {
	Invoice  InvoiceService
	Agent    AgentService
	Workflow WorkflowService
	History  WorkflowHistoryService
	Settings SettingsService
	Health   HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	gateway *ai.Gateway,
	logger *zap.Logger,
) *Service {
	invoiceService := NewInvoiceService(cfg, repo, logger)
	agentService := NewAgentService(cfg, repo, redisClient, gateway, logger)
	workflowService := NewWorkflowService(cfg, invoiceService, agentService, logger)
	historyService := NewWorkflowHistoryService(repo, logger)
	settingsService := NewSettingsService(cfg, gateway, logger)
	healthService := NewHealthService(repo, redisClient, workflowService, gateway)

	return &Service{
		Invoice:  invoiceService,
		Agent:    agentService,
		Workflow: workflowService,
		History:  historyService,
		Settings: settingsService,
		Health:   healthService,
	}
}
