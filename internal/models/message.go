package models

import (
	"database/sql"
	"time"

	"github.com/paymind/paymind-server/internal/priority"
)

// MessageStatus is the delivery state of a generated reminder.
type MessageStatus string

const (
	MessageStatusDraft MessageStatus = "draft"
)

// Message is a generated payment reminder owned by one invoice. An invoice
// may accumulate several messages over time; messages are never mutated after
// creation and are removed only when all invoices are reset.
type Message struct {
	ID        int64          `db:"id" json:"id"`
	InvoiceID string         `db:"invoice_id" json:"invoiceId"`
	Channel   Channel        `db:"channel" json:"channel"`
	Subject   sql.NullString `db:"subject" json:"-"`
	Content   string         `db:"content" json:"content"`
	Priority  priority.Level `db:"priority" json:"priority"`
	Status    MessageStatus  `db:"status" json:"status"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
}

// Sentiment of a classified customer reply.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// RiskLevel of a classified customer reply.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ResponseAnalysis is the stored classification of one customer reply.
// ExtractedInfo and SuggestedActions are serialized JSON arrays, frozen at
// creation time.
type ResponseAnalysis struct {
	ID               int64     `db:"id" json:"id"`
	InvoiceID        string    `db:"invoice_id" json:"invoiceId"`
	CustomerMessage  string    `db:"customer_message" json:"customerMessage"`
	Intent           string    `db:"intent" json:"intent"`
	IntentConfidence int       `db:"intent_confidence" json:"intentConfidence"`
	Sentiment        Sentiment `db:"sentiment" json:"sentiment"`
	ExtractedInfo    string    `db:"extracted_info" json:"extractedInfo"`
	SuggestedActions string    `db:"suggested_actions" json:"suggestedActions"`
	DraftResponse    string    `db:"draft_response" json:"draftResponse"`
	RiskLevel        RiskLevel `db:"risk_level" json:"riskLevel"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
}
