// Package repository provides data access for invoices, reminder messages,
// response analyses, and workflow run history.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db          *sqlx.DB
	invoice     InvoiceRepository
	message     MessageRepository
	analysis    AnalysisRepository
	workflowRun WorkflowRunRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:          db,
		invoice:     NewInvoiceRepository(db),
		message:     NewMessageRepository(db),
		analysis:    NewAnalysisRepository(db),
		workflowRun: NewWorkflowRunRepository(db),
	}
}

// Invoice returns the invoice repository.
func (r *repositoryImpl) Invoice() InvoiceRepository {
	return r.invoice
}

// Message returns the reminder message repository.
func (r *repositoryImpl) Message() MessageRepository {
	return r.message
}

// Analysis returns the response analysis repository.
func (r *repositoryImpl) Analysis() AnalysisRepository {
	return r.analysis
}

// WorkflowRun returns the workflow run repository.
func (r *repositoryImpl) WorkflowRun() WorkflowRunRepository {
	return r.workflowRun
}

// ResetInvoices deletes all reminder messages, then all response analyses,
// then all invoices. Dependents go first so backends that enforce referential
// integrity never see an orphaned reference.
func (r *repositoryImpl) ResetInvoices(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, query := range []string{
		`DELETE FROM messages`,
		`DELETE FROM response_analyses`,
		`DELETE FROM invoices`,
	} {
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to reset invoices: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}

	return nil
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
