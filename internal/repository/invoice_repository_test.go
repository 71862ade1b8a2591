package repository_test

import (
	"context"
	"testing"
	"time"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paymind/paymind-server/internal/models"
	"github.com/paymind/paymind-server/internal/priority"
	"github.com/paymind/paymind-server/internal/repository"
)

func levelPtr(l priority.Level) *priority.Level {
	return &l
}

func testInvoice(invoiceID string) *models.Invoice {
	return &models.Invoice{
		InvoiceID:        invoiceID,
		CustomerName:     "Acme Srl",
		CustomerEmail:    "billing@acme.example",
		CustomerPhone:    "+390612345678",
		AmountTotal:      decimal.RequireFromString("1500.00"),
		AmountPaid:       decimal.RequireFromString("500.00"),
		DueDate:          time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:           priority.StatusOpen,
		PreferredChannel: models.ChannelEmail,
		DaysOverdue:      95,
		Priority:         levelPtr(priority.LevelHigh),
	}
}

func TestInvoiceRepository_BulkUpsert_RoundTrip(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewInvoiceRepository(db)
	ctx := context.Background()

	saved, err := repo.BulkUpsert(ctx, []*models.Invoice{testInvoice("INV-001")})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.NotZero(t, saved[0].ID)
	assert.Equal(t, "INV-001", saved[0].InvoiceID)
	assert.True(t, saved[0].AmountTotal.Equal(decimal.RequireFromString("1500.00")))
	require.NotNil(t, saved[0].Priority)
	assert.Equal(t, priority.LevelHigh, *saved[0].Priority)

	// Re-uploading the same business key updates in place, no duplicate row.
	updated := testInvoice("INV-001")
	updated.AmountPaid = decimal.RequireFromString("1500.00")
	updated.Status = priority.StatusPaid
	updated.DaysOverdue = 0
	updated.Priority = nil

	saved, err = repo.BulkUpsert(ctx, []*models.Invoice{updated})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, priority.StatusPaid, saved[0].Status)
	assert.Nil(t, saved[0].Priority)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestInvoiceRepository_GetByInvoiceID_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewInvoiceRepository(db)

	_, err := repo.GetByInvoiceID(context.Background(), "INV-MISSING")
	assert.ErrorIs(t, err, repository.ErrInvoiceNotFound)
}

func TestInvoiceRepository_ListEligibleForReminder(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	defer cleanupTestData(db)

	repo := repository.NewInvoiceRepository(db)
	ctx := context.Background()

	overdue := testInvoice("INV-OVERDUE")
	overdue.DaysOverdue = 30

	veryOverdue := testInvoice("INV-VERY-OVERDUE")
	veryOverdue.DaysOverdue = 120

	disputed := testInvoice("INV-DISPUTED")
	disputed.Status = priority.StatusDisputed
	disputed.DaysOverdue = 0

	paid := testInvoice("INV-PAID")
	paid.Status = priority.StatusPaid
	paid.DaysOverdue = 0
	paid.Priority = nil

	notYetDue := testInvoice("INV-FUTURE")
	notYetDue.DaysOverdue = 0
	notYetDue.Priority = levelPtr(priority.LevelLow)

	_, err := repo.BulkUpsert(ctx, []*models.Invoice{overdue, veryOverdue, disputed, paid, notYetDue})
	require.NoError(t, err)

	eligible, err := repo.ListEligibleForReminder(ctx, 10)
	require.NoError(t, err)
	require.Len(t, eligible, 3)

	// Most overdue first; the paid and not-yet-due invoices are excluded.
	assert.Equal(t, "INV-VERY-OVERDUE", eligible[0].InvoiceID)
	assert.Equal(t, "INV-OVERDUE", eligible[1].InvoiceID)
	assert.Equal(t, "INV-DISPUTED", eligible[2].InvoiceID)

	capped, err := repo.ListEligibleForReminder(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func TestRepository_ResetInvoices_CascadesToMessagesAndAnalyses(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewRepository(db)
	ctx := context.Background()

	_, err := repo.Invoice().BulkUpsert(ctx, []*models.Invoice{testInvoice("INV-001")})
	require.NoError(t, err)

	_, err = repo.Message().Create(ctx, &models.Message{
		InvoiceID: "INV-001",
		Channel:   models.ChannelEmail,
		Content:   "Reminder body",
		Priority:  priority.LevelHigh,
		Status:    models.MessageStatusDraft,
	})
	require.NoError(t, err)

	_, err = repo.Analysis().Create(ctx, &models.ResponseAnalysis{
		InvoiceID:        "INV-001",
		CustomerMessage:  "Pago domani",
		Intent:           "payment_promise",
		IntentConfidence: 80,
		Sentiment:        models.SentimentPositive,
		ExtractedInfo:    `[]`,
		SuggestedActions: `["Follow up"]`,
		DraftResponse:    "Grazie",
		RiskLevel:        models.RiskLow,
	})
	require.NoError(t, err)

	require.NoError(t, repo.ResetInvoices(ctx))

	invoices, err := repo.Invoice().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, invoices)

	messages, err := repo.Message().ListByInvoiceID(ctx, "INV-001")
	require.NoError(t, err)
	assert.Empty(t, messages)

	analyses, err := repo.Analysis().ListByInvoiceID(ctx, "INV-001")
	require.NoError(t, err)
	assert.Empty(t, analyses)
}
