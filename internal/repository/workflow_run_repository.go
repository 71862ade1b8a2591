package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/paymind/paymind-server/internal/models"
)

// ErrWorkflowRunNotFound is returned when no run matches the given id.
var ErrWorkflowRunNotFound = errors.New("workflow run not found")

const workflowRunColumns = `
	id, name, status, total_invoices, overdue_invoices, total_credits,
	overdue_amount, messages_generated, ai_provider, ai_model, analysis_report,
	generated_messages, response_analysis, invoices_snapshot, started_at, completed_at
`

type workflowRunRepository struct {
	db *sqlx.DB
}

func NewWorkflowRunRepository(db *sqlx.DB) WorkflowRunRepository {
	return &workflowRunRepository{
		db: db,
	}
}

// Create stores one run snapshot and its log entries in a single transaction.
func (r *workflowRunRepository) Create(ctx context.Context, run *models.WorkflowRun) (*models.WorkflowRun, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	query := `
		INSERT INTO workflow_runs (
			id, name, status, total_invoices, overdue_invoices, total_credits,
			overdue_amount, messages_generated, ai_provider, ai_model, analysis_report,
			generated_messages, response_analysis, invoices_snapshot, started_at, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), $15)
		RETURNING` + workflowRunColumns

	var row models.WorkflowRun
	err = tx.GetContext(ctx, &row, query,
		run.ID, run.Name, run.Status, run.TotalInvoices, run.OverdueInvoices,
		run.TotalCredits, run.OverdueAmount, run.MessagesGenerated,
		run.AIProvider, run.AIModel, run.AnalysisReport,
		run.GeneratedMessages, run.ResponseAnalysis, run.InvoicesSnapshot,
		run.CompletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create workflow run: %w", err)
	}

	logQuery := `
		INSERT INTO workflow_logs (workflow_id, agent, message, type, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, workflow_id, agent, message, type, timestamp
	`
	for _, entry := range run.Logs {
		var logRow models.WorkflowLog
		if err := tx.GetContext(ctx, &logRow, logQuery, row.ID, entry.Agent, entry.Message, entry.Type, entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to create workflow log: %w", err)
		}
		row.Logs = append(row.Logs, &logRow)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit workflow run: %w", err)
	}

	return &row, nil
}

// List returns all saved runs, newest first, with logs eager-loaded in
// timestamp order.
func (r *workflowRunRepository) List(ctx context.Context) ([]*models.WorkflowRun, error) {
	query := `SELECT` + workflowRunColumns + `FROM workflow_runs ORDER BY started_at DESC`

	var runs []*models.WorkflowRun
	if err := r.db.SelectContext(ctx, &runs, query); err != nil {
		return nil, fmt.Errorf("failed to list workflow runs: %w", err)
	}

	if len(runs) == 0 {
		return runs, nil
	}

	ids := make([]string, 0, len(runs))
	byID := make(map[string]*models.WorkflowRun, len(runs))
	for _, run := range runs {
		ids = append(ids, run.ID)
		byID[run.ID] = run
	}

	logQuery, args, err := sqlx.In(`
		SELECT id, workflow_id, agent, message, type, timestamp
		FROM workflow_logs
		WHERE workflow_id IN (?)
		ORDER BY timestamp ASC
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build workflow log query: %w", err)
	}

	var logs []*models.WorkflowLog
	if err := r.db.SelectContext(ctx, &logs, r.db.Rebind(logQuery), args...); err != nil {
		return nil, fmt.Errorf("failed to list workflow logs: %w", err)
	}

	for _, entry := range logs {
		if run, ok := byID[entry.WorkflowID]; ok {
			run.Logs = append(run.Logs, entry)
		}
	}

	return runs, nil
}

// GetByID returns one saved run with its logs.
func (r *workflowRunRepository) GetByID(ctx context.Context, id string) (*models.WorkflowRun, error) {
	query := `SELECT` + workflowRunColumns + `FROM workflow_runs WHERE id = $1`

	var run models.WorkflowRun
	if err := r.db.GetContext(ctx, &run, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkflowRunNotFound
		}
		return nil, fmt.Errorf("failed to get workflow run %s: %w", id, err)
	}

	logQuery := `
		SELECT id, workflow_id, agent, message, type, timestamp
		FROM workflow_logs
		WHERE workflow_id = $1
		ORDER BY timestamp ASC
	`
	if err := r.db.SelectContext(ctx, &run.Logs, logQuery, id); err != nil {
		return nil, fmt.Errorf("failed to list workflow logs for run %s: %w", id, err)
	}

	return &run, nil
}

// Delete removes one run and its logs.
func (r *workflowRunRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM workflow_logs WHERE workflow_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete workflow logs: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM workflow_runs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workflow run: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrWorkflowRunNotFound
	}

	return tx.Commit()
}

// DeleteAll removes every saved run, logs first.
func (r *workflowRunRepository) DeleteAll(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM workflow_logs`); err != nil {
		return fmt.Errorf("failed to delete workflow logs: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM workflow_runs`); err != nil {
		return fmt.Errorf("failed to delete workflow runs: %w", err)
	}

	return tx.Commit()
}
