package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/paymind/paymind-server/internal/models"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create stores a generated reminder message.
func (r *messageRepository) Create(ctx context.Context, msg *models.Message) (*models.Message, error) {
	query := `
		INSERT INTO messages (invoice_id, channel, subject, content, priority, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, invoice_id, channel, subject, content, priority, status, created_at
	`

	var row models.Message
	err := r.db.GetContext(ctx, &row, query,
		msg.InvoiceID, msg.Channel, msg.Subject, msg.Content, msg.Priority, msg.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return &row, nil
}

// ListByInvoiceID returns all messages generated for one invoice, oldest first.
func (r *messageRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]*models.Message, error) {
	query := `
		SELECT id, invoice_id, channel, subject, content, priority, status, created_at
		FROM messages
		WHERE invoice_id = $1
		ORDER BY created_at ASC
	`

	var messages []*models.Message
	if err := r.db.SelectContext(ctx, &messages, query, invoiceID); err != nil {
		return nil, fmt.Errorf("failed to list messages for invoice %s: %w", invoiceID, err)
	}

	return messages, nil
}
