package repository

import (
	"context"

	"github.com/paymind/paymind-server/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// Invoice returns the invoice repository
	Invoice() InvoiceRepository

	// Message returns the reminder message repository
	Message() MessageRepository

	// Analysis returns the response analysis repository
	Analysis() AnalysisRepository

	// WorkflowRun returns the workflow run repository
	WorkflowRun() WorkflowRunRepository

	// ResetInvoices deletes messages, then analyses, then invoices, in that
	// order, inside one transaction
	ResetInvoices(ctx context.Context) error
}

// InvoiceRepository interface defines invoice operations.
type InvoiceRepository interface {
	List(ctx context.Context) ([]*models.Invoice, error)
	GetByInvoiceID(ctx context.Context, invoiceID string) (*models.Invoice, error)
	ListByInvoiceIDs(ctx context.Context, invoiceIDs []string) ([]*models.Invoice, error)
	ListEligibleForReminder(ctx context.Context, limit int) ([]*models.Invoice, error)
	BulkUpsert(ctx context.Context, invoices []*models.Invoice) ([]*models.Invoice, error)
}

// MessageRepository interface defines reminder message operations.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) (*models.Message, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]*models.Message, error)
}

// AnalysisRepository interface defines response analysis operations.
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *models.ResponseAnalysis) (*models.ResponseAnalysis, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]*models.ResponseAnalysis, error)
}

// WorkflowRunRepository interface defines workflow run history operations.
type WorkflowRunRepository interface {
	Create(ctx context.Context, run *models.WorkflowRun) (*models.WorkflowRun, error)
	List(ctx context.Context) ([]*models.WorkflowRun, error)
	GetByID(ctx context.Context, id string) (*models.WorkflowRun, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
