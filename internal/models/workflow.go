package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// WorkflowRun is an audit snapshot of one end-to-end orchestration, saved on
// explicit user request and independent of live invoice state. The three
// Null fields hold JSON blobs frozen at save time.
type WorkflowRun struct {
	ID                string          `db:"id" json:"id"`
	Name              string          `db:"name" json:"name"`
	Status            string          `db:"status" json:"status"`
	TotalInvoices     int             `db:"total_invoices" json:"totalInvoices"`
	OverdueInvoices   int             `db:"overdue_invoices" json:"overdueInvoices"`
	TotalCredits      decimal.Decimal `db:"total_credits" json:"totalCredits"`
	OverdueAmount     decimal.Decimal `db:"overdue_amount" json:"overdueAmount"`
	MessagesGenerated int             `db:"messages_generated" json:"messagesGenerated"`
	AIProvider        sql.NullString  `db:"ai_provider" json:"-"`
	AIModel           sql.NullString  `db:"ai_model" json:"-"`
	AnalysisReport    sql.NullString  `db:"analysis_report" json:"-"`
	GeneratedMessages sql.NullString  `db:"generated_messages" json:"-"`
	ResponseAnalysis  sql.NullString  `db:"response_analysis" json:"-"`
	InvoicesSnapshot  sql.NullString  `db:"invoices_snapshot" json:"-"`
	StartedAt         time.Time       `db:"started_at" json:"startedAt"`
	CompletedAt       sql.NullTime    `db:"completed_at" json:"-"`

	Logs []*WorkflowLog `db:"-" json:"logs"`
}

// WorkflowLog is one timestamped log line belonging to a saved run.
type WorkflowLog struct {
	ID         int64     `db:"id" json:"id"`
	WorkflowID string    `db:"workflow_id" json:"workflowId"`
	Agent      string    `db:"agent" json:"agent"`
	Message    string    `db:"message" json:"message"`
	Type       string    `db:"type" json:"type"`
	Timestamp  time.Time `db:"timestamp" json:"timestamp"`
}
