package service

import (
	"time"

	"github.com/paymind/paymind-server/internal/ai"
	"github.com/paymind/paymind-server/internal/models"
)

// AgentOptions selects the provider, model, key, and output language for one
// agent call. Empty fields fall back to server configuration.
type AgentOptions struct {
	Provider ai.Provider
	Model    string
	APIKey   string
	Language string
}

// PriorityCounts groups invoices by priority tier.
type PriorityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// AggregateStats are the numeric workflow statistics. They are computed by
// the orchestrator from the invoice snapshot, never parsed out of model text.
type AggregateStats struct {
	TotalInvoices    int            `json:"totalInvoices"`
	OverdueInvoices  int            `json:"overdueInvoices"`
	DisputedInvoices int            `json:"disputedInvoices"`
	TotalCredits     float64        `json:"totalCredits"`
	OverdueAmount    float64        `json:"overdueAmount"`
	ByPriority       PriorityCounts `json:"byPriority"`
	AvgDaysOverdue   int            `json:"avgDaysOverdue"`
}

// MonitorResult is the outcome of the payment monitor stage.
type MonitorResult struct {
	Analysis   string         `json:"analysis"`
	Stats      AggregateStats `json:"stats"`
	Provider   ai.Provider    `json:"provider"`
	Model      string         `json:"model"`
	TokensUsed int            `json:"tokensUsed,omitempty"`
}

// GeneratedMessage is one reminder draft returned to the caller.
type GeneratedMessage struct {
	ID           int64          `json:"id"`
	InvoiceID    string         `json:"invoiceId"`
	CustomerName string         `json:"customerName"`
	Channel      models.Channel `json:"channel"`
	Subject      string         `json:"subject,omitempty"`
	Content      string         `json:"content"`
	Priority     string         `json:"priority"`
	Amount       float64        `json:"amount"`
	DaysOverdue  int            `json:"daysOverdue"`
}

// ResponseResult is the outcome of the response handler stage.
type ResponseResult struct {
	InvoiceID       string         `json:"invoiceId,omitempty"`
	CustomerName    string         `json:"customerName"`
	OriginalMessage string         `json:"originalMessage"`
	Analysis        ParsedAnalysis `json:"analysis"`
	Provider        ai.Provider    `json:"provider"`
	Model           string         `json:"model"`
	TokensUsed      int            `json:"tokensUsed,omitempty"`
}

// RunSnapshot is the state frozen when a run is saved to history.
type RunSnapshot struct {
	Name              string              `json:"name"`
	Status            string              `json:"status"`
	Stats             AggregateStats      `json:"stats"`
	MessagesGenerated int                 `json:"messagesGenerated"`
	AIProvider        string              `json:"aiProvider"`
	AIModel           string              `json:"aiModel"`
	AnalysisReport    string              `json:"analysisReport"`
	GeneratedMessages []*GeneratedMessage `json:"generatedMessages"`
	ResponseAnalysis  *ResponseResult     `json:"responseAnalysis"`
	Invoices          []*models.Invoice   `json:"invoicesSnapshot"`
	Logs              []RunLogEntry       `json:"logs"`
}

// RunLogEntry is one live log line of a run.
type RunLogEntry struct {
	Agent     string    `json:"agent"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// ProviderSettings describes one provider on the settings surface.
type ProviderSettings struct {
	ID         ai.Provider    `json:"id"`
	Name       string         `json:"name"`
	Configured bool           `json:"configured"`
	Models     []ai.ModelInfo `json:"models"`
}

// HealthStatus aggregates component health for the health endpoint.
type HealthStatus struct {
	Status          string          `json:"status"`
	DatabaseStatus  string          `json:"database_status"`
	RedisStatus     string          `json:"redis_status"`
	WorkflowStatus  string          `json:"workflow_status"`
	BreakerState    ai.BreakerState `json:"circuit_breaker_state"`
	BreakerRequests uint32          `json:"circuit_breaker_requests"`
	BreakerFailures uint32          `json:"circuit_breaker_failures"`
}
