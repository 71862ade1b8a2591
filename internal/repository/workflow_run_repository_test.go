package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paymind/paymind-server/internal/models"
	"github.com/paymind/paymind-server/internal/repository"
)

func testRun(name string) *models.WorkflowRun {
	return &models.WorkflowRun{
		Name:              name,
		Status:            "completed",
		TotalInvoices:     5,
		OverdueInvoices:   2,
		TotalCredits:      decimal.RequireFromString("1200.50"),
		OverdueAmount:     decimal.RequireFromString("800.00"),
		MessagesGenerated: 2,
		AIProvider:        sql.NullString{String: "anthropic", Valid: true},
		AIModel:           sql.NullString{String: "claude-sonnet-4-5-20250929", Valid: true},
		AnalysisReport:    sql.NullString{String: "Report text", Valid: true},
		GeneratedMessages: sql.NullString{String: `[{"invoiceId":"INV-001"}]`, Valid: true},
		InvoicesSnapshot:  sql.NullString{String: `[]`, Valid: true},
		StartedAt:         time.Now().UTC(),
		CompletedAt:       sql.NullTime{Time: time.Now().UTC(), Valid: true},
		Logs: []*models.WorkflowLog{
			{Agent: "system", Message: "Workflow run started", Type: "info", Timestamp: time.Now().UTC()},
			{Agent: "payment_monitor", Message: "Analysis completed", Type: "success", Timestamp: time.Now().UTC()},
		},
	}
}

func TestWorkflowRunRepository_CreateAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewWorkflowRunRepository(db)
	ctx := context.Background()

	saved, err := repo.Create(ctx, testRun("Quarterly sweep"))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Quarterly sweep", got.Name)
	assert.Equal(t, 5, got.TotalInvoices)
	assert.True(t, got.TotalCredits.Equal(decimal.RequireFromString("1200.50")))
	require.True(t, got.AnalysisReport.Valid)
	assert.Equal(t, "Report text", got.AnalysisReport.String)
	require.Len(t, got.Logs, 2)
	assert.Equal(t, "payment_monitor", got.Logs[1].Agent)
}

func TestWorkflowRunRepository_List(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewWorkflowRunRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, testRun("First run"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testRun("Second run"))
	require.NoError(t, err)

	runs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first, each with its own logs attached.
	assert.Equal(t, "Second run", runs[0].Name)
	assert.Equal(t, "First run", runs[1].Name)
	assert.Len(t, runs[0].Logs, 2)
	assert.Len(t, runs[1].Logs, 2)
}

func TestWorkflowRunRepository_Delete(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewWorkflowRunRepository(db)
	ctx := context.Background()

	saved, err := repo.Create(ctx, testRun("Doomed run"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))

	_, err = repo.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, repository.ErrWorkflowRunNotFound)

	// Logs go with the run.
	var logCount int
	require.NoError(t, db.Get(&logCount, "SELECT COUNT(*) FROM workflow_logs WHERE workflow_id = $1", saved.ID))
	assert.Zero(t, logCount)
}

func TestWorkflowRunRepository_Delete_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewWorkflowRunRepository(db)

	err := repo.Delete(context.Background(), "4f9c2a18-9f1e-4d7a-8f74-0d2f3a1b5c6d")
	assert.ErrorIs(t, err, repository.ErrWorkflowRunNotFound)
}

func TestWorkflowRunRepository_DeleteAll(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewWorkflowRunRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, testRun("Run A"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testRun("Run B"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteAll(ctx))

	runs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
