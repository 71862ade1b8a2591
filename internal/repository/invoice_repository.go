package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/paymind/paymind-server/internal/models"
	"github.com/paymind/paymind-server/internal/priority"
)

// ErrInvoiceNotFound is returned when no invoice matches the business key.
var ErrInvoiceNotFound = errors.New("invoice not found")

const invoiceColumns = `
	id, invoice_id, customer_name, customer_email, customer_phone,
	amount_total, amount_paid, due_date, status, preferred_channel,
	days_overdue, priority, created_at, updated_at
`

type invoiceRepository struct {
	db *sqlx.DB
}

func NewInvoiceRepository(db *sqlx.DB) InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// List returns all invoices ordered by due date ascending.
func (r *invoiceRepository) List(ctx context.Context) ([]*models.Invoice, error) {
	query := `SELECT` + invoiceColumns + `FROM invoices ORDER BY due_date ASC`

	var invoices []*models.Invoice
	if err := r.db.SelectContext(ctx, &invoices, query); err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return invoices, nil
}

// GetByInvoiceID returns the invoice with the given business key.
func (r *invoiceRepository) GetByInvoiceID(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	query := `SELECT` + invoiceColumns + `FROM invoices WHERE invoice_id = $1`

	var invoice models.Invoice
	if err := r.db.GetContext(ctx, &invoice, query, invoiceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}

	return &invoice, nil
}

// ListByInvoiceIDs returns the invoices matching the given business keys.
func (r *invoiceRepository) ListByInvoiceIDs(ctx context.Context, invoiceIDs []string) ([]*models.Invoice, error) {
	if len(invoiceIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT`+invoiceColumns+`FROM invoices WHERE invoice_id IN (?) ORDER BY days_overdue DESC`, invoiceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build invoice query: %w", err)
	}

	var invoices []*models.Invoice
	if err := r.db.SelectContext(ctx, &invoices, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list invoices by ids: %w", err)
	}

	return invoices, nil
}

// ListEligibleForReminder returns invoices that should receive a reminder:
// open and overdue, or disputed, most overdue first, capped at limit.
func (r *invoiceRepository) ListEligibleForReminder(ctx context.Context, limit int) ([]*models.Invoice, error) {
	query := `
		SELECT` + invoiceColumns + `
		FROM invoices
		WHERE (status = $1 AND days_overdue > 0) OR status = $2
		ORDER BY days_overdue DESC
		LIMIT $3
	`

	var invoices []*models.Invoice
	err := r.db.SelectContext(ctx, &invoices, query, priority.StatusOpen, priority.StatusDisputed, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminder-eligible invoices: %w", err)
	}

	return invoices, nil
}

// BulkUpsert inserts or updates invoices keyed on invoice_id, one row per
// business key. Derived fields must already be classified by the caller.
func (r *invoiceRepository) BulkUpsert(ctx context.Context, invoices []*models.Invoice) ([]*models.Invoice, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO invoices (
			invoice_id, customer_name, customer_email, customer_phone,
			amount_total, amount_paid, due_date, status, preferred_channel,
			days_overdue, priority, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		ON CONFLICT (invoice_id) DO UPDATE SET
			customer_name = EXCLUDED.customer_name,
			customer_email = EXCLUDED.customer_email,
			customer_phone = EXCLUDED.customer_phone,
			amount_total = EXCLUDED.amount_total,
			amount_paid = EXCLUDED.amount_paid,
			due_date = EXCLUDED.due_date,
			status = EXCLUDED.status,
			preferred_channel = EXCLUDED.preferred_channel,
			days_overdue = EXCLUDED.days_overdue,
			priority = EXCLUDED.priority,
			updated_at = EXCLUDED.updated_at
		RETURNING` + invoiceColumns

	now := time.Now()
	upserted := make([]*models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		var row models.Invoice
		err := tx.GetContext(ctx, &row, query,
			inv.InvoiceID, inv.CustomerName, inv.CustomerEmail, inv.CustomerPhone,
			inv.AmountTotal, inv.AmountPaid, inv.DueDate, inv.Status, inv.PreferredChannel,
			inv.DaysOverdue, inv.Priority, now,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert invoice %s: %w", inv.InvoiceID, err)
		}
		upserted = append(upserted, &row)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit upsert: %w", err)
	}

	return upserted, nil
}
