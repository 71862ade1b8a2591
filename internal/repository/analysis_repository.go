package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/paymind/paymind-server/internal/models"
)

type analysisRepository struct {
	db *sqlx.DB
}

func NewAnalysisRepository(db *sqlx.DB) AnalysisRepository {
	return &analysisRepository{
		db: db,
	}
}

// Create stores the classification of one customer reply.
func (r *analysisRepository) Create(ctx context.Context, analysis *models.ResponseAnalysis) (*models.ResponseAnalysis, error) {
	query := `
		INSERT INTO response_analyses (
			invoice_id, customer_message, intent, intent_confidence, sentiment,
			extracted_info, suggested_actions, draft_response, risk_level, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, invoice_id, customer_message, intent, intent_confidence, sentiment,
			extracted_info, suggested_actions, draft_response, risk_level, created_at
	`

	var row models.ResponseAnalysis
	err := r.db.GetContext(ctx, &row, query,
		analysis.InvoiceID, analysis.CustomerMessage, analysis.Intent, analysis.IntentConfidence,
		analysis.Sentiment, analysis.ExtractedInfo, analysis.SuggestedActions,
		analysis.DraftResponse, analysis.RiskLevel,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create response analysis: %w", err)
	}

	return &row, nil
}

// ListByInvoiceID returns all stored analyses for one invoice, oldest first.
func (r *analysisRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]*models.ResponseAnalysis, error) {
	query := `
		SELECT id, invoice_id, customer_message, intent, intent_confidence, sentiment,
			extracted_info, suggested_actions, draft_response, risk_level, created_at
		FROM response_analyses
		WHERE invoice_id = $1
		ORDER BY created_at ASC
	`

	var analyses []*models.ResponseAnalysis
	if err := r.db.SelectContext(ctx, &analyses, query, invoiceID); err != nil {
		return nil, fmt.Errorf("failed to list analyses for invoice %s: %w", invoiceID, err)
	}

	return analyses, nil
}
