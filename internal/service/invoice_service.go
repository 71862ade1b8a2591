package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/paymind/paymind-server/internal/config"
	"github.com/paymind/paymind-server/internal/models"
	"github.com/paymind/paymind-server/internal/priority"
	"github.com/paymind/paymind-server/internal/repository"
)

// dueDateLayouts are accepted in upload order of preference.
var dueDateLayouts = []string{"2006-01-02", "02/01/2006", time.RFC3339}

type invoiceService struct {
	cfg    *config.Config
	repo   repository.Repository
	logger *zap.Logger
}

func NewInvoiceService(cfg *config.Config, repo repository.Repository, logger *zap.Logger) InvoiceService {
	return &invoiceService{
		cfg:    cfg,
		repo:   repo,
		logger: logger,
	}
}

func (s *invoiceService) List(ctx context.Context) ([]*models.Invoice, error) {
	invoices, err := s.repo.Invoice().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// ProcessRows classifies every row and upserts the batch keyed by invoice_id.
// Rows without an invoice_id are skipped, not rejected; a partial CSV should
// still load the rows that make sense.
func (s *invoiceService) ProcessRows(ctx context.Context, rows []models.RawInvoiceRow) ([]*models.Invoice, error) {
	today := time.Now().UTC()

	invoices := make([]*models.Invoice, 0, len(rows))
	for _, row := range rows {
		invoiceID := strings.TrimSpace(row.InvoiceID)
		if invoiceID == "" {
			s.logger.Warn("Skipping invoice row without invoice_id",
				zap.String("customerName", row.CustomerName))
			continue
		}

		dueDate, err := parseDueDate(row.DueDate)
		if err != nil {
			s.logger.Warn("Skipping invoice row with unparsable due date",
				zap.String("invoiceID", invoiceID),
				zap.String("dueDate", row.DueDate))
			continue
		}

		status := normalizeStatus(row.Status)
		daysOverdue, level := priority.Classify(status, dueDate, row.AmountTotal.Decimal, row.AmountPaid.Decimal, today)

		invoices = append(invoices, &models.Invoice{
			InvoiceID:        invoiceID,
			CustomerName:     strings.TrimSpace(row.CustomerName),
			CustomerEmail:    strings.TrimSpace(row.CustomerEmail),
			CustomerPhone:    strings.TrimSpace(row.CustomerPhone),
			AmountTotal:      row.AmountTotal.Decimal,
			AmountPaid:       row.AmountPaid.Decimal,
			DueDate:          dueDate,
			Status:           status,
			PreferredChannel: normalizeChannel(row.PreferredChannel),
			DaysOverdue:      daysOverdue,
			Priority:         level,
		})
	}

	if len(invoices) == 0 {
		return []*models.Invoice{}, nil
	}

	saved, err := s.repo.Invoice().BulkUpsert(ctx, invoices)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert invoices: %w", err)
	}

	s.logger.Info("Processed invoice rows",
		zap.Int("received", len(rows)),
		zap.Int("saved", len(saved)))

	return saved, nil
}

// ParseCSV reads an uploaded invoice CSV. The header row maps columns by
// name, so column order does not matter and unknown columns are ignored.
func (s *invoiceService) ParseCSV(r io.Reader) ([]models.RawInvoiceRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[normalizeHeader(name)] = i
	}
	if _, ok := index["invoice_id"]; !ok {
		return nil, fmt.Errorf("csv header is missing the invoice_id column")
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []models.RawInvoiceRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}

		rows = append(rows, models.RawInvoiceRow{
			InvoiceID:        field(record, "invoice_id"),
			CustomerName:     field(record, "customer_name"),
			AmountTotal:      models.ParseCSVAmount(field(record, "amount_total")),
			AmountPaid:       models.ParseCSVAmount(field(record, "amount_paid")),
			DueDate:          field(record, "due_date"),
			Status:           field(record, "status"),
			PreferredChannel: field(record, "preferred_channel"),
			CustomerEmail:    field(record, "customer_email"),
			CustomerPhone:    field(record, "customer_phone"),
		})
	}

	return rows, nil
}

func (s *invoiceService) ResetAll(ctx context.Context) error {
	if err := s.repo.ResetInvoices(ctx); err != nil {
		return fmt.Errorf("failed to reset invoices: %w", err)
	}
	s.logger.Info("All invoices, messages, and analyses deleted")
	return nil
}

func parseDueDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

func normalizeStatus(raw string) priority.Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(priority.StatusPaid):
		return priority.StatusPaid
	case string(priority.StatusDisputed):
		return priority.StatusDisputed
	default:
		return priority.StatusOpen
	}
}

func normalizeChannel(raw string) models.Channel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(models.ChannelSMS):
		return models.ChannelSMS
	case string(models.ChannelWhatsApp):
		return models.ChannelWhatsApp
	default:
		return models.ChannelEmail
	}
}

func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "\uFEFF")
	return strings.ReplaceAll(name, " ", "_")
}
