package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/paymind/paymind-server/internal/models"
	"github.com/paymind/paymind-server/internal/repository"
)

type workflowHistoryService struct {
	repo   repository.Repository
	logger *zap.Logger
}

func NewWorkflowHistoryService(repo repository.Repository, logger *zap.Logger) WorkflowHistoryService {
	return &workflowHistoryService{
		repo:   repo,
		logger: logger,
	}
}

// Save freezes a run snapshot into history. The snapshot is self-contained:
// the invoice state, generated messages, and analysis are serialized as JSON
// blobs so later invoice edits or resets never rewrite history.
func (s *workflowHistoryService) Save(ctx context.Context, snapshot *RunSnapshot) (*models.WorkflowRun, error) {
	now := time.Now().UTC()

	name := snapshot.Name
	if name == "" {
		name = fmt.Sprintf("Run %s %s", now.Format("2006-01-02"), now.Format("15:04"))
	}

	status := snapshot.Status
	if status == "" {
		status = "completed"
	}

	run := &models.WorkflowRun{
		Name:              name,
		Status:            status,
		TotalInvoices:     snapshot.Stats.TotalInvoices,
		OverdueInvoices:   snapshot.Stats.OverdueInvoices,
		TotalCredits:      decimal.NewFromFloat(snapshot.Stats.TotalCredits),
		OverdueAmount:     decimal.NewFromFloat(snapshot.Stats.OverdueAmount),
		MessagesGenerated: snapshot.MessagesGenerated,
		AIProvider:        nullString(snapshot.AIProvider),
		AIModel:           nullString(snapshot.AIModel),
		AnalysisReport:    nullString(snapshot.AnalysisReport),
		StartedAt:         now,
		CompletedAt:       sql.NullTime{Time: now, Valid: true},
	}

	var err error
	if run.GeneratedMessages, err = nullJSON(snapshot.GeneratedMessages); err != nil {
		return nil, fmt.Errorf("failed to serialize generated messages: %w", err)
	}
	if run.ResponseAnalysis, err = nullJSON(snapshot.ResponseAnalysis); err != nil {
		return nil, fmt.Errorf("failed to serialize response analysis: %w", err)
	}
	if run.InvoicesSnapshot, err = nullJSON(snapshot.Invoices); err != nil {
		return nil, fmt.Errorf("failed to serialize invoice snapshot: %w", err)
	}

	for _, entry := range snapshot.Logs {
		run.Logs = append(run.Logs, &models.WorkflowLog{
			Agent:     entry.Agent,
			Message:   entry.Message,
			Type:      entry.Type,
			Timestamp: entry.Timestamp,
		})
	}

	saved, err := s.repo.WorkflowRun().Create(ctx, run)
	if err != nil {
		return nil, fmt.Errorf("failed to save workflow run: %w", err)
	}

	s.logger.Info("Workflow run saved",
		zap.String("runID", saved.ID),
		zap.String("name", saved.Name),
		zap.Int("logs", len(saved.Logs)))

	return saved, nil
}

func (s *workflowHistoryService) List(ctx context.Context) ([]*models.WorkflowRun, error) {
	runs, err := s.repo.WorkflowRun().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflow runs: %w", err)
	}
	return runs, nil
}

func (s *workflowHistoryService) Get(ctx context.Context, id string) (*models.WorkflowRun, error) {
	run, err := s.repo.WorkflowRun().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return run, nil
}

func (s *workflowHistoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.WorkflowRun().Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Workflow run deleted", zap.String("runID", id))
	return nil
}

func (s *workflowHistoryService) DeleteAll(ctx context.Context) error {
	if err := s.repo.WorkflowRun().DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete workflow runs: %w", err)
	}
	s.logger.Info("All workflow runs deleted")
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullJSON serializes v, mapping nil (or typed-nil pointer) to SQL NULL.
func nullJSON(v interface{}) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	if string(data) == "null" {
		return sql.NullString{}, nil
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
