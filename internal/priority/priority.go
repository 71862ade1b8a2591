// Package priority derives the overdue duration and collection priority of an
// invoice from its status, due date, and outstanding amount.
package priority

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an invoice.
type Status string

const (
	StatusOpen     Status = "open"
	StatusPaid     Status = "paid"
	StatusDisputed Status = "disputed"
)

// Level is the collection priority tier of an invoice.
type Level string

const (
	LevelHigh   Level = "HIGH"
	LevelMedium Level = "MEDIUM"
	LevelLow    Level = "LOW"
)

// Business thresholds. Fixed constants, no configuration surface.
const (
	highDaysThreshold   = 90
	mediumDaysThreshold = 60
)

var highAmountThreshold = decimal.NewFromInt(1000)

// Classify computes days overdue and priority for an invoice as of today.
// Days overdue is the day difference between today and the due date, rounded
// up and clamped at zero. Priority is nil for paid invoices. A disputed
// status, more than 90 days overdue, or more than 1000 outstanding is HIGH;
// the disputed/90-day/amount check runs before the 60-day MEDIUM check, so a
// disputed invoice a few days overdue is still HIGH.
func Classify(status Status, dueDate time.Time, amountTotal, amountPaid decimal.Decimal, today time.Time) (int, *Level) {
	daysOverdue := int(math.Ceil(today.Sub(dueDate).Hours() / 24))
	if daysOverdue < 0 {
		daysOverdue = 0
	}

	if status == StatusPaid {
		return daysOverdue, nil
	}

	amountDue := amountTotal.Sub(amountPaid)

	level := LevelLow
	switch {
	case status == StatusDisputed || daysOverdue > highDaysThreshold || amountDue.GreaterThan(highAmountThreshold):
		level = LevelHigh
	case daysOverdue > mediumDaysThreshold:
		level = LevelMedium
	}

	return daysOverdue, &level
}
