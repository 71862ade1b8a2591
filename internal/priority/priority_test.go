package priority_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paymind/paymind-server/internal/priority"
)

var today = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return today.AddDate(0, 0, -n)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		status       priority.Status
		dueDate      time.Time
		amountTotal  string
		amountPaid   string
		wantDays     int
		wantPriority *priority.Level
	}{
		{
			name:         "paid invoice has no priority regardless of due date",
			status:       priority.StatusPaid,
			dueDate:      daysAgo(200),
			amountTotal:  "5000",
			amountPaid:   "5000",
			wantDays:     200,
			wantPriority: nil,
		},
		{
			name:         "paid invoice with outstanding amount still has no priority",
			status:       priority.StatusPaid,
			dueDate:      daysAgo(100),
			amountTotal:  "3000",
			amountPaid:   "0",
			wantDays:     100,
			wantPriority: nil,
		},
		{
			name:         "disputed invoice is high even one day overdue",
			status:       priority.StatusDisputed,
			dueDate:      daysAgo(1),
			amountTotal:  "100",
			amountPaid:   "0",
			wantDays:     1,
			wantPriority: levelPtr(priority.LevelHigh),
		},
		{
			name:         "disputed invoice not yet due is high",
			status:       priority.StatusDisputed,
			dueDate:      today.AddDate(0, 0, 30),
			amountTotal:  "100",
			amountPaid:   "0",
			wantDays:     0,
			wantPriority: levelPtr(priority.LevelHigh),
		},
		{
			name:         "amount threshold dominates day threshold",
			status:       priority.StatusOpen,
			dueDate:      daysAgo(30),
			amountTotal:  "2000",
			amountPaid:   "500",
			wantDays:     30,
			wantPriority: levelPtr(priority.LevelHigh),
		},
		{
			name:         "over 90 days overdue is high on days alone",
			status:       priority.StatusOpen,
			dueDate:      daysAgo(95),
			amountTotal:  "500",
			amountPaid:   "0",
			wantDays:     95,
			wantPriority: levelPtr(priority.LevelHigh),
		},
		{
			name:         "between 60 and 90 days with small amount is medium",
			status:       priority.StatusOpen,
			dueDate:      daysAgo(75),
			amountTotal:  "800",
			amountPaid:   "0",
			wantDays:     75,
			wantPriority: levelPtr(priority.LevelMedium),
		},
		{
			name:         "61 days is medium boundary",
			status:       priority.StatusOpen,
			dueDate:      daysAgo(61),
			amountTotal:  "1000",
			amountPaid:   "0",
			wantDays:     61,
			wantPriority: levelPtr(priority.LevelMedium),
		},
		{
			name:         "exactly 90 days with small amount is medium not high",
			status:       priority.StatusOpen,
			dueDate:      daysAgo(90),
			amountTotal:  "500",
			amountPaid:   "0",
			wantDays:     90,
			wantPriority: levelPtr(priority.LevelMedium),
		},
		{
			name:         "exactly 1000 outstanding is not high",
			status:       priority.StatusOpen,
			dueDate:      daysAgo(10),
			amountTotal:  "1000",
			amountPaid:   "0",
			wantDays:     10,
			wantPriority: levelPtr(priority.LevelLow),
		},
		{
			name:         "recently overdue small amount is low",
			status:       priority.StatusOpen,
			dueDate:      daysAgo(5),
			amountTotal:  "300",
			amountPaid:   "100",
			wantDays:     5,
			wantPriority: levelPtr(priority.LevelLow),
		},
		{
			name:         "future due date clamps days overdue at zero",
			status:       priority.StatusOpen,
			dueDate:      today.AddDate(0, 0, 14),
			amountTotal:  "400",
			amountPaid:   "0",
			wantDays:     0,
			wantPriority: levelPtr(priority.LevelLow),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := decimal.NewFromString(tt.amountTotal)
			require.NoError(t, err)
			paid, err := decimal.NewFromString(tt.amountPaid)
			require.NoError(t, err)

			days, level := priority.Classify(tt.status, tt.dueDate, total, paid, today)

			assert.Equal(t, tt.wantDays, days)
			if tt.status == priority.StatusPaid {
				assert.Nil(t, level)
			} else {
				require.NotNil(t, level)
				assert.Equal(t, *tt.wantPriority, *level)
			}
			assert.GreaterOrEqual(t, days, 0)
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	total := decimal.NewFromInt(1500)
	paid := decimal.NewFromInt(200)
	due := daysAgo(45)

	days1, level1 := priority.Classify(priority.StatusOpen, due, total, paid, today)
	days2, level2 := priority.Classify(priority.StatusOpen, due, total, paid, today)

	assert.Equal(t, days1, days2)
	require.NotNil(t, level1)
	require.NotNil(t, level2)
	assert.Equal(t, *level1, *level2)
}

func levelPtr(l priority.Level) *priority.Level {
	return &l
}
