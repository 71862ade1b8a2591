package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/paymind/paymind-server/internal/ai"
	"github.com/paymind/paymind-server/internal/config"
	"github.com/paymind/paymind-server/internal/models"
	"github.com/paymind/paymind-server/internal/priority"
	"github.com/paymind/paymind-server/internal/repository/mocks"
	"github.com/paymind/paymind-server/internal/service"
)

// stubGenerator stands in for the AI gateway.
type stubGenerator struct {
	generate func(ctx context.Context, req ai.Request) (*ai.Response, error)
}

func (s *stubGenerator) Generate(ctx context.Context, req ai.Request) (*ai.Response, error) {
	return s.generate(ctx, req)
}

func testConfig() *config.Config {
	return &config.Config{
		AI: config.AIConfig{
			DefaultProvider: "anthropic",
		},
		Workflow: config.WorkflowConfig{
			ReminderBatchSize: 10,
			Language:          "it",
		},
	}
}

func testRedis() *redis.Client {
	// Nonexistent server, cache writes fail and are ignored.
	return redis.NewClient(&redis.Options{Addr: "localhost:9999"})
}

func levelPtr(l priority.Level) *priority.Level { return &l }

func testInvoices() []*models.Invoice {
	return []*models.Invoice{
		{
			InvoiceID:        "INV-001",
			CustomerName:     "Acme Srl",
			AmountTotal:      decimal.NewFromInt(2000),
			AmountPaid:       decimal.Zero,
			DueDate:          time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			Status:           priority.StatusOpen,
			PreferredChannel: models.ChannelEmail,
			DaysOverdue:      95,
			Priority:         levelPtr(priority.LevelHigh),
		},
		{
			InvoiceID:        "INV-002",
			CustomerName:     "Rossi SpA",
			AmountTotal:      decimal.NewFromInt(300),
			AmountPaid:       decimal.NewFromInt(300),
			DueDate:          time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			Status:           priority.StatusPaid,
			PreferredChannel: models.ChannelSMS,
			DaysOverdue:      0,
		},
		{
			InvoiceID:        "INV-003",
			CustomerName:     "Bianchi Snc",
			AmountTotal:      decimal.NewFromInt(500),
			AmountPaid:       decimal.NewFromInt(100),
			DueDate:          time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			Status:           priority.StatusDisputed,
			PreferredChannel: models.ChannelWhatsApp,
			DaysOverdue:      40,
			Priority:         levelPtr(priority.LevelHigh),
		},
	}
}

func TestAgentService_RunPaymentMonitor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockRepo.EXPECT().Invoice().Return(mockInvoiceRepo).AnyTimes()
	mockInvoiceRepo.EXPECT().List(gomock.Any()).Return(testInvoices(), nil)

	gen := &stubGenerator{generate: func(_ context.Context, req ai.Request) (*ai.Response, error) {
		assert.Equal(t, ai.ProviderAnthropic, req.Provider)
		assert.Contains(t, req.SystemPrompt, "Payment Monitor Agent")
		assert.Contains(t, req.SystemPrompt, "Italian")
		assert.Contains(t, req.UserPrompt, "INV-001")
		return &ai.Response{
			Content:    "Portfolio report",
			Provider:   req.Provider,
			Model:      "claude-sonnet-4-5-20250929",
			TokensUsed: 320,
		}, nil
	}}

	svc := service.NewAgentService(testConfig(), mockRepo, testRedis(), gen, zap.NewNop())

	result, err := svc.RunPaymentMonitor(context.Background(), service.AgentOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Portfolio report", result.Analysis)
	assert.Equal(t, 320, result.TokensUsed)

	// Stats come from the local snapshot, not the model.
	assert.Equal(t, 3, result.Stats.TotalInvoices)
	assert.Equal(t, 1, result.Stats.OverdueInvoices)
	assert.Equal(t, 1, result.Stats.DisputedInvoices)
	assert.InDelta(t, 2400.0, result.Stats.TotalCredits, 0.01)
	assert.InDelta(t, 2000.0, result.Stats.OverdueAmount, 0.01)
	assert.Equal(t, 2, result.Stats.ByPriority.High)
	assert.Equal(t, 95, result.Stats.AvgDaysOverdue)
}

func TestAgentService_RunPaymentMonitor_PaidResidualInTotalCredits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A paid invoice with an open residual still counts toward total credits.
	invoices := testInvoices()
	invoices[1].AmountPaid = decimal.NewFromInt(250)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockRepo.EXPECT().Invoice().Return(mockInvoiceRepo).AnyTimes()
	mockInvoiceRepo.EXPECT().List(gomock.Any()).Return(invoices, nil)

	gen := &stubGenerator{generate: func(_ context.Context, req ai.Request) (*ai.Response, error) {
		return &ai.Response{Content: "Portfolio report", Provider: req.Provider}, nil
	}}

	svc := service.NewAgentService(testConfig(), mockRepo, testRedis(), gen, zap.NewNop())

	result, err := svc.RunPaymentMonitor(context.Background(), service.AgentOptions{})
	require.NoError(t, err)

	assert.InDelta(t, 2450.0, result.Stats.TotalCredits, 0.01)
	assert.Equal(t, 1, result.Stats.OverdueInvoices)
}

func TestAgentService_RunPaymentMonitor_NoInvoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockRepo.EXPECT().Invoice().Return(mockInvoiceRepo)
	mockInvoiceRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

	gen := &stubGenerator{generate: func(_ context.Context, _ ai.Request) (*ai.Response, error) {
		t.Fatal("generator must not be called without invoices")
		return nil, nil
	}}

	svc := service.NewAgentService(testConfig(), mockRepo, testRedis(), gen, zap.NewNop())

	_, err := svc.RunPaymentMonitor(context.Background(), service.AgentOptions{})
	assert.ErrorIs(t, err, service.ErrNoInvoices)
}

func TestAgentService_RunReminderGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockRepo.EXPECT().Invoice().Return(mockInvoiceRepo).AnyTimes()
	mockRepo.EXPECT().Message().Return(mockMessageRepo).AnyTimes()

	eligible := []*models.Invoice{testInvoices()[0]}
	mockInvoiceRepo.EXPECT().ListEligibleForReminder(gomock.Any(), 10).Return(eligible, nil)

	gen := &stubGenerator{generate: func(_ context.Context, req ai.Request) (*ai.Response, error) {
		assert.Contains(t, req.SystemPrompt, "Reminder Generator Agent")
		assert.Contains(t, req.UserPrompt, "INV-001")
		return &ai.Response{
			Content:  "Oggetto: Sollecito di pagamento INV-001\nGentile Acme Srl,\nla fattura risulta scaduta.",
			Provider: req.Provider,
			Model:    "claude-sonnet-4-5-20250929",
		}, nil
	}}

	var nextID int64
	mockMessageRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.Message) (*models.Message, error) {
			assert.Equal(t, "INV-001", msg.InvoiceID)
			assert.Equal(t, models.ChannelEmail, msg.Channel)
			assert.Equal(t, models.MessageStatusDraft, msg.Status)
			require.True(t, msg.Subject.Valid)
			assert.Equal(t, "Sollecito di pagamento INV-001", msg.Subject.String)
			assert.NotContains(t, msg.Content, "Oggetto:")

			nextID++
			saved := *msg
			saved.ID = nextID
			return &saved, nil
		})

	svc := service.NewAgentService(testConfig(), mockRepo, testRedis(), gen, zap.NewNop())

	drafts, err := svc.RunReminderGenerator(context.Background(), service.AgentOptions{}, nil)
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	assert.Equal(t, int64(1), drafts[0].ID)
	assert.Equal(t, "Sollecito di pagamento INV-001", drafts[0].Subject)
	assert.Equal(t, "HIGH", drafts[0].Priority)
	assert.InDelta(t, 2000.0, drafts[0].Amount, 0.01)
	assert.Equal(t, 95, drafts[0].DaysOverdue)
}

func TestAgentService_RunReminderGenerator_NoSubjectForSMS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockRepo.EXPECT().Invoice().Return(mockInvoiceRepo).AnyTimes()
	mockRepo.EXPECT().Message().Return(mockMessageRepo).AnyTimes()

	sms := testInvoices()[1]
	mockInvoiceRepo.EXPECT().ListByInvoiceIDs(gomock.Any(), []string{"INV-002"}).
		Return([]*models.Invoice{sms}, nil)

	content := "Oggetto: Sollecito INV-002\nGentile Rossi SpA, la fattura risulta scaduta."
	gen := &stubGenerator{generate: func(_ context.Context, req ai.Request) (*ai.Response, error) {
		return &ai.Response{Content: content, Provider: req.Provider}, nil
	}}

	mockMessageRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.Message) (*models.Message, error) {
			// SMS drafts keep the model output untouched, subject line included.
			assert.Equal(t, models.ChannelSMS, msg.Channel)
			assert.False(t, msg.Subject.Valid)
			assert.Equal(t, content, msg.Content)

			saved := *msg
			saved.ID = 3
			return &saved, nil
		})

	svc := service.NewAgentService(testConfig(), mockRepo, testRedis(), gen, zap.NewNop())

	drafts, err := svc.RunReminderGenerator(context.Background(), service.AgentOptions{}, []string{"INV-002"})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Empty(t, drafts[0].Subject)
	assert.Equal(t, content, drafts[0].Content)
}

func TestAgentService_RunReminderGenerator_PartialFailureKeepsDrafts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockRepo.EXPECT().Invoice().Return(mockInvoiceRepo).AnyTimes()
	mockRepo.EXPECT().Message().Return(mockMessageRepo).AnyTimes()

	invoices := testInvoices()
	eligible := []*models.Invoice{invoices[0], invoices[2]}
	mockInvoiceRepo.EXPECT().ListByInvoiceIDs(gomock.Any(), []string{"INV-001", "INV-003"}).Return(eligible, nil)

	calls := 0
	gen := &stubGenerator{generate: func(_ context.Context, _ ai.Request) (*ai.Response, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("provider unavailable")
		}
		return &ai.Response{Content: "Reminder body", Provider: ai.ProviderAnthropic}, nil
	}}

	mockMessageRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.Message) (*models.Message, error) {
			saved := *msg
			saved.ID = 7
			return &saved, nil
		})

	svc := service.NewAgentService(testConfig(), mockRepo, testRedis(), gen, zap.NewNop())

	drafts, err := svc.RunReminderGenerator(context.Background(), service.AgentOptions{}, []string{"INV-001", "INV-003"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INV-003")
	// The draft made before the failure survives.
	assert.Len(t, drafts, 1)
}

func TestAgentService_RunResponseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockAnalysisRepo := mocks.NewMockAnalysisRepository(ctrl)
	mockRepo.EXPECT().Invoice().Return(mockInvoiceRepo).AnyTimes()
	mockRepo.EXPECT().Analysis().Return(mockAnalysisRepo).AnyTimes()

	mockInvoiceRepo.EXPECT().GetByInvoiceID(gomock.Any(), "INV-001").Return(testInvoices()[0], nil)

	gen := &stubGenerator{generate: func(_ context.Context, req ai.Request) (*ai.Response, error) {
		assert.Contains(t, req.SystemPrompt, "Response Handler Agent")
		assert.Contains(t, req.UserPrompt, "INV-001")
		return &ai.Response{
			Content: `Here is the analysis:
{"intent": "payment_promise", "intentConfidence": 85, "sentiment": "positive", "extractedInfo": [{"label": "promised date", "value": "next Friday"}], "suggestedActions": ["Schedule follow-up"], "draftResponse": "Grazie", "riskLevel": "low"}`,
			Provider: ai.ProviderAnthropic,
			Model:    "claude-sonnet-4-5-20250929",
		}, nil
	}}

	mockAnalysisRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.ResponseAnalysis) (*models.ResponseAnalysis, error) {
			assert.Equal(t, "INV-001", a.InvoiceID)
			assert.Equal(t, "payment_promise", a.Intent)
			assert.Equal(t, 85, a.IntentConfidence)
			assert.Equal(t, models.SentimentPositive, a.Sentiment)
			assert.Contains(t, a.ExtractedInfo, "promised date")
			assert.Equal(t, models.RiskLow, a.RiskLevel)
			return a, nil
		})

	svc := service.NewAgentService(testConfig(), mockRepo, testRedis(), gen, zap.NewNop())

	result, err := svc.RunResponseHandler(context.Background(), service.AgentOptions{}, "INV-001", "Pagherò venerdì prossimo")
	require.NoError(t, err)

	assert.True(t, result.Analysis.Structured)
	assert.Equal(t, "payment_promise", result.Analysis.Intent)
	assert.Equal(t, "Acme Srl", result.CustomerName)
}

func TestAgentService_RunResponseHandler_EmptyMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	gen := &stubGenerator{generate: func(_ context.Context, _ ai.Request) (*ai.Response, error) {
		t.Fatal("generator must not be called")
		return nil, nil
	}}

	svc := service.NewAgentService(testConfig(), mockRepo, testRedis(), gen, zap.NewNop())

	_, err := svc.RunResponseHandler(context.Background(), service.AgentOptions{}, "", "   ")
	assert.ErrorIs(t, err, service.ErrCustomerMessageRequired)
}

func TestAgentService_RunResponseHandler_NoInvoiceContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)

	gen := &stubGenerator{generate: func(_ context.Context, _ ai.Request) (*ai.Response, error) {
		return &ai.Response{Content: "No JSON here at all", Provider: ai.ProviderAnthropic}, nil
	}}

	svc := service.NewAgentService(testConfig(), mockRepo, testRedis(), gen, zap.NewNop())

	// Without an invoice reference nothing is persisted and the fallback
	// analysis carries the raw text.
	result, err := svc.RunResponseHandler(context.Background(), service.AgentOptions{}, "", "thanks, will pay")
	require.NoError(t, err)
	assert.False(t, result.Analysis.Structured)
	assert.Equal(t, "No JSON here at all", result.Analysis.DraftResponse)
}
