package service

import (
	"context"
	"io"

	"github.com/paymind/paymind-server/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// InvoiceService ingests, lists, and resets invoices.
type InvoiceService interface {
	List(ctx context.Context) ([]*models.Invoice, error)
	ProcessRows(ctx context.Context, rows []models.RawInvoiceRow) ([]*models.Invoice, error)
	ParseCSV(r io.Reader) ([]models.RawInvoiceRow, error)
	ResetAll(ctx context.Context) error
}

// AgentService runs the three LLM-backed workflow stages. Each stage is one
// request/response call against the configured provider.
type AgentService interface {
	RunPaymentMonitor(ctx context.Context, opts AgentOptions) (*MonitorResult, error)
	RunReminderGenerator(ctx context.Context, opts AgentOptions, invoiceIDs []string) ([]*GeneratedMessage, error)
	RunResponseHandler(ctx context.Context, opts AgentOptions, invoiceID, customerMessage string) (*ResponseResult, error)
}

// WorkflowService orchestrates one five-step run at a time in the background.
type WorkflowService interface {
	Start(ctx context.Context, opts AgentOptions) error
	Stop() error
	Status() *WorkflowStatus
	IsRunning() bool
	Snapshot(name string) *RunSnapshot
}

// WorkflowHistoryService persists and restores workflow run snapshots.
type WorkflowHistoryService interface {
	Save(ctx context.Context, snapshot *RunSnapshot) (*models.WorkflowRun, error)
	List(ctx context.Context) ([]*models.WorkflowRun, error)
	Get(ctx context.Context, id string) (*models.WorkflowRun, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// SettingsService exposes the provider catalog and validates API keys.
type SettingsService interface {
	ListProviders(ctx context.Context) []ProviderSettings
	ValidateKey(ctx context.Context, provider, apiKey string) (bool, string)
}

// HealthService reports component health.
type HealthService interface {
	GetHealth(ctx context.Context) *HealthStatus
}
