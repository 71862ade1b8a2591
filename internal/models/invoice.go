// Package models defines data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paymind/paymind-server/internal/priority"
)

// Channel is the customer's preferred reminder channel.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
)

// Invoice represents one business invoice. InvoiceID is the external business
// key; DaysOverdue and Priority are derived and recomputed on every upsert.
type Invoice struct {
	ID               int64            `db:"id" json:"id"`
	InvoiceID        string           `db:"invoice_id" json:"invoiceId"`
	CustomerName     string           `db:"customer_name" json:"customerName"`
	CustomerEmail    string           `db:"customer_email" json:"customerEmail"`
	CustomerPhone    string           `db:"customer_phone" json:"customerPhone"`
	AmountTotal      decimal.Decimal  `db:"amount_total" json:"amountTotal"`
	AmountPaid       decimal.Decimal  `db:"amount_paid" json:"amountPaid"`
	DueDate          time.Time        `db:"due_date" json:"dueDate"`
	Status           priority.Status  `db:"status" json:"status"`
	PreferredChannel Channel          `db:"preferred_channel" json:"preferredChannel"`
	DaysOverdue      int              `db:"days_overdue" json:"daysOverdue"`
	Priority         *priority.Level  `db:"priority" json:"priority,omitempty"`
	CreatedAt        time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time        `db:"updated_at" json:"updatedAt"`
}

// AmountDue is the outstanding amount of the invoice.
func (i *Invoice) AmountDue() decimal.Decimal {
	return i.AmountTotal.Sub(i.AmountPaid)
}

// RawInvoiceRow is one row of an uploaded invoice CSV, before classification.
type RawInvoiceRow struct {
	InvoiceID        string    `json:"invoice_id"`
	CustomerName     string    `json:"customer_name"`
	AmountTotal      CSVAmount `json:"amount_total"`
	AmountPaid       CSVAmount `json:"amount_paid"`
	DueDate          string    `json:"due_date"`
	Status           string    `json:"status"`
	PreferredChannel string    `json:"preferred_channel"`
	CustomerEmail    string    `json:"customer_email"`
	CustomerPhone    string    `json:"customer_phone"`
}

// CSVAmount is a monetary amount from an uploaded CSV. Uploads carry no type
// information, so the value may arrive as a JSON number or a string; anything
// unparsable becomes zero.
type CSVAmount struct {
	decimal.Decimal
}

func (a *CSVAmount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// ParseCSVAmount converts a raw CSV field into a decimal, zero on failure.
func ParseCSVAmount(s string) CSVAmount {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return CSVAmount{decimal.Zero}
	}
	return CSVAmount{d}
}
