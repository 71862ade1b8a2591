package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/paymind/paymind-server/internal/config"
	"github.com/paymind/paymind-server/internal/models"
	"github.com/paymind/paymind-server/internal/priority"
	"github.com/paymind/paymind-server/internal/repository/mocks"
	"github.com/paymind/paymind-server/internal/service"
)

func TestInvoiceService_ParseCSV(t *testing.T) {
	svc := service.NewInvoiceService(&config.Config{}, nil, zap.NewNop())

	csvData := `invoice_id,customer_name,amount_total,amount_paid,due_date,status,preferred_channel,customer_email,customer_phone
INV-001,Acme Srl,1500.00,500.00,2025-01-15,open,email,billing@acme.example,+390612345678
INV-002,Rossi SpA,200.50,0,2025-03-01,disputed,sms,,+393331112223
`

	rows, err := svc.ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "INV-001", rows[0].InvoiceID)
	assert.Equal(t, "Acme Srl", rows[0].CustomerName)
	assert.True(t, rows[0].AmountTotal.Equal(decimal.RequireFromString("1500.00")))
	assert.True(t, rows[0].AmountPaid.Equal(decimal.RequireFromString("500.00")))
	assert.Equal(t, "open", rows[0].Status)

	assert.Equal(t, "INV-002", rows[1].InvoiceID)
	assert.Equal(t, "disputed", rows[1].Status)
	assert.Equal(t, "sms", rows[1].PreferredChannel)
}

func TestInvoiceService_ParseCSV_ColumnOrderIndependent(t *testing.T) {
	svc := service.NewInvoiceService(&config.Config{}, nil, zap.NewNop())

	csvData := `customer_name,invoice_id,amount_total
Acme Srl,INV-001,99.90
`

	rows, err := svc.ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "INV-001", rows[0].InvoiceID)
	assert.True(t, rows[0].AmountTotal.Equal(decimal.RequireFromString("99.90")))
}

func TestInvoiceService_ParseCSV_ByteOrderMarkHeader(t *testing.T) {
	svc := service.NewInvoiceService(&config.Config{}, nil, zap.NewNop())

	// Excel exports prepend a UTF-8 BOM to the first header cell.
	csvData := "﻿invoice_id,customer_name\nINV-001,Acme Srl\n"

	rows, err := svc.ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "INV-001", rows[0].InvoiceID)
}

func TestInvoiceService_ParseCSV_MissingInvoiceIDColumn(t *testing.T) {
	svc := service.NewInvoiceService(&config.Config{}, nil, zap.NewNop())

	_, err := svc.ParseCSV(strings.NewReader("customer_name,amount_total\nAcme,100\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoice_id")
}

func TestInvoiceService_ProcessRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockRepo.EXPECT().Invoice().Return(mockInvoiceRepo).AnyTimes()

	rows := []models.RawInvoiceRow{
		{
			InvoiceID:        "INV-001",
			CustomerName:     "Acme Srl",
			AmountTotal:      models.ParseCSVAmount("2000"),
			AmountPaid:       models.ParseCSVAmount("0"),
			DueDate:          time.Now().UTC().AddDate(0, 0, -10).Format("2006-01-02"),
			Status:           "open",
			PreferredChannel: "email",
		},
		{
			// No invoice_id, skipped.
			CustomerName: "Nameless",
			DueDate:      "2025-01-01",
		},
		{
			InvoiceID:   "INV-003",
			AmountTotal: models.ParseCSVAmount("50"),
			DueDate:     "not-a-date",
		},
	}

	mockInvoiceRepo.EXPECT().
		BulkUpsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, invoices []*models.Invoice) ([]*models.Invoice, error) {
			require.Len(t, invoices, 1)
			inv := invoices[0]
			assert.Equal(t, "INV-001", inv.InvoiceID)
			assert.Equal(t, priority.StatusOpen, inv.Status)
			// Due 10 days ago at midnight, so the ceil lands on 10 or 11
			// depending on the time of day the test runs.
			assert.GreaterOrEqual(t, inv.DaysOverdue, 10)
			assert.LessOrEqual(t, inv.DaysOverdue, 11)
			// Outstanding 2000 > 1000 puts it in the high tier.
			require.NotNil(t, inv.Priority)
			assert.Equal(t, priority.LevelHigh, *inv.Priority)
			return invoices, nil
		})

	svc := service.NewInvoiceService(&config.Config{}, mockRepo, zap.NewNop())

	saved, err := svc.ProcessRows(context.Background(), rows)
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestInvoiceService_ProcessRows_AllRowsInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)

	svc := service.NewInvoiceService(&config.Config{}, mockRepo, zap.NewNop())

	saved, err := svc.ProcessRows(context.Background(), []models.RawInvoiceRow{
		{CustomerName: "no id"},
	})
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestInvoiceService_ResetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockRepo.EXPECT().ResetInvoices(gomock.Any()).Return(nil)

	svc := service.NewInvoiceService(&config.Config{}, mockRepo, zap.NewNop())
	require.NoError(t, svc.ResetAll(context.Background()))
}
