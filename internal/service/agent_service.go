package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/paymind/paymind-server/internal/ai"
	"github.com/paymind/paymind-server/internal/config"
	"github.com/paymind/paymind-server/internal/models"
	"github.com/paymind/paymind-server/internal/priority"
	"github.com/paymind/paymind-server/internal/repository"
)

var (
	// ErrNoInvoices is returned when an agent has nothing to work on.
	ErrNoInvoices = errors.New("no invoices loaded")

	// ErrCustomerMessageRequired is returned when the response handler is
	// called without a customer reply.
	ErrCustomerMessageRequired = errors.New("customerMessage is required")
)

const (
	lastAnalysisCacheKey = "paymind:last_analysis"
	draftIDsCacheKey     = "paymind:draft_message_ids"
)

type agentService struct {
	cfg         *config.Config
	repo        repository.Repository
	redisClient *redis.Client
	gateway     ai.Generator
	logger      *zap.Logger
}

func NewAgentService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	gateway ai.Generator,
	logger *zap.Logger,
) AgentService {
	return &agentService{
		cfg:         cfg,
		repo:        repo,
		redisClient: redisClient,
		gateway:     gateway,
		logger:      logger,
	}
}

// RunPaymentMonitor loads the full invoice portfolio, computes aggregate
// statistics locally, and asks the model for a narrative analysis report.
// The statistics never come from model output.
func (s *agentService) RunPaymentMonitor(ctx context.Context, opts AgentOptions) (*MonitorResult, error) {
	opts = s.withDefaults(opts)

	invoices, err := s.repo.Invoice().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	if len(invoices) == 0 {
		return nil, ErrNoInvoices
	}

	stats := computeStats(invoices)

	userPrompt, err := buildMonitorUserPrompt(invoices, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	resp, err := s.gateway.Generate(ctx, ai.Request{
		Provider:     opts.Provider,
		Model:        opts.Model,
		APIKey:       opts.APIKey,
		SystemPrompt: fmt.Sprintf(paymentMonitorPrompt, promptLanguage(opts.Language)),
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("payment monitor failed: %w", err)
	}

	s.cacheLastAnalysis(resp.Content)

	s.logger.Info("Payment monitor completed",
		zap.String("provider", string(resp.Provider)),
		zap.String("model", resp.Model),
		zap.Int("invoices", stats.TotalInvoices),
		zap.Int("tokensUsed", resp.TokensUsed))

	return &MonitorResult{
		Analysis:   resp.Content,
		Stats:      stats,
		Provider:   resp.Provider,
		Model:      resp.Model,
		TokensUsed: resp.TokensUsed,
	}, nil
}

// RunReminderGenerator drafts one reminder per invoice, sequentially. With no
// explicit invoiceIDs it targets the most overdue eligible invoices, capped
// at the configured batch size. Every draft is persisted before the next
// invoice is attempted, so a mid-batch failure keeps the drafts already made.
func (s *agentService) RunReminderGenerator(ctx context.Context, opts AgentOptions, invoiceIDs []string) ([]*GeneratedMessage, error) {
	opts = s.withDefaults(opts)

	var (
		invoices []*models.Invoice
		err      error
	)
	if len(invoiceIDs) > 0 {
		invoices, err = s.repo.Invoice().ListByInvoiceIDs(ctx, invoiceIDs)
	} else {
		invoices, err = s.repo.Invoice().ListEligibleForReminder(ctx, s.cfg.Workflow.ReminderBatchSize)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	if len(invoices) == 0 {
		return nil, ErrNoInvoices
	}

	systemPrompt := fmt.Sprintf(reminderGeneratorPrompt, promptLanguage(opts.Language))

	generated := make([]*GeneratedMessage, 0, len(invoices))
	for _, inv := range invoices {
		resp, err := s.gateway.Generate(ctx, ai.Request{
			Provider:     opts.Provider,
			Model:        opts.Model,
			APIKey:       opts.APIKey,
			SystemPrompt: systemPrompt,
			UserPrompt:   buildReminderUserPrompt(inv),
		})
		if err != nil {
			return generated, fmt.Errorf("reminder generation failed for invoice %s: %w", inv.InvoiceID, err)
		}

		// Only email drafts carry a subject line; SMS and WhatsApp keep the
		// model output as-is.
		subject, body := "", strings.TrimSpace(resp.Content)
		if inv.PreferredChannel == models.ChannelEmail {
			subject, body = extractSubject(resp.Content)
		}

		level := priority.LevelLow
		if inv.Priority != nil {
			level = *inv.Priority
		}

		msg := &models.Message{
			InvoiceID: inv.InvoiceID,
			Channel:   inv.PreferredChannel,
			Content:   body,
			Priority:  level,
			Status:    models.MessageStatusDraft,
		}
		if subject != "" {
			msg.Subject = sql.NullString{String: subject, Valid: true}
		}

		saved, err := s.repo.Message().Create(ctx, msg)
		if err != nil {
			return generated, fmt.Errorf("failed to save reminder for invoice %s: %w", inv.InvoiceID, err)
		}

		generated = append(generated, &GeneratedMessage{
			ID:           saved.ID,
			InvoiceID:    inv.InvoiceID,
			CustomerName: inv.CustomerName,
			Channel:      inv.PreferredChannel,
			Subject:      subject,
			Content:      body,
			Priority:     string(level),
			Amount:       inv.AmountDue().InexactFloat64(),
			DaysOverdue:  inv.DaysOverdue,
		})
	}

	s.cacheDraftIDs(generated)

	s.logger.Info("Reminder generator completed",
		zap.Int("messages", len(generated)),
		zap.String("provider", string(opts.Provider)))

	return generated, nil
}

// RunResponseHandler classifies one customer reply. The invoice reference is
// optional; when present it enriches the prompt and the resulting analysis is
// persisted against the invoice.
func (s *agentService) RunResponseHandler(ctx context.Context, opts AgentOptions, invoiceID, customerMessage string) (*ResponseResult, error) {
	opts = s.withDefaults(opts)

	if strings.TrimSpace(customerMessage) == "" {
		return nil, ErrCustomerMessageRequired
	}

	var inv *models.Invoice
	if invoiceID != "" {
		var err error
		inv, err = s.repo.Invoice().GetByInvoiceID(ctx, invoiceID)
		if err != nil {
			return nil, fmt.Errorf("failed to load invoice %s: %w", invoiceID, err)
		}
	}

	resp, err := s.gateway.Generate(ctx, ai.Request{
		Provider:     opts.Provider,
		Model:        opts.Model,
		APIKey:       opts.APIKey,
		SystemPrompt: fmt.Sprintf(responseHandlerPrompt, promptLanguage(opts.Language)),
		UserPrompt:   buildResponseUserPrompt(customerMessage, inv),
	})
	if err != nil {
		return nil, fmt.Errorf("response analysis failed: %w", err)
	}

	parsed := ParseAnalysis(resp.Content)
	if !parsed.Structured {
		s.logger.Warn("Model output had no JSON block, using fallback analysis",
			zap.String("provider", string(resp.Provider)))
	}

	result := &ResponseResult{
		InvoiceID:       invoiceID,
		OriginalMessage: customerMessage,
		Analysis:        parsed,
		Provider:        resp.Provider,
		Model:           resp.Model,
		TokensUsed:      resp.TokensUsed,
	}
	if inv != nil {
		result.CustomerName = inv.CustomerName

		if err := s.persistAnalysis(ctx, invoiceID, customerMessage, parsed); err != nil {
			s.logger.Error("Failed to persist response analysis",
				zap.String("invoiceID", invoiceID),
				zap.Error(err))
			return nil, err
		}
	}

	return result, nil
}

func (s *agentService) persistAnalysis(ctx context.Context, invoiceID, customerMessage string, parsed ParsedAnalysis) error {
	extracted, err := json.Marshal(parsed.ExtractedInfo)
	if err != nil {
		return fmt.Errorf("failed to serialize extracted info: %w", err)
	}
	actions, err := json.Marshal(parsed.SuggestedActions)
	if err != nil {
		return fmt.Errorf("failed to serialize suggested actions: %w", err)
	}

	_, err = s.repo.Analysis().Create(ctx, &models.ResponseAnalysis{
		InvoiceID:        invoiceID,
		CustomerMessage:  customerMessage,
		Intent:           parsed.Intent,
		IntentConfidence: parsed.IntentConfidence,
		Sentiment:        parsed.Sentiment,
		ExtractedInfo:    string(extracted),
		SuggestedActions: string(actions),
		DraftResponse:    parsed.DraftResponse,
		RiskLevel:        parsed.RiskLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to save response analysis: %w", err)
	}
	return nil
}

// cacheLastAnalysis keeps the most recent report in Redis. Failures are
// logged and ignored, the cache is an accelerator, not a store.
func (s *agentService) cacheLastAnalysis(content string) {
	if s.redisClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisClient.Set(ctx, lastAnalysisCacheKey, content, 24*time.Hour).Err(); err != nil {
		s.logger.Warn("Failed to cache analysis report in Redis", zap.Error(err))
	}
}

// cacheDraftIDs records the ids of freshly generated drafts so a dashboard
// can highlight them without a table scan. Best effort, like the report cache.
func (s *agentService) cacheDraftIDs(drafts []*GeneratedMessage) {
	if s.redisClient == nil || len(drafts) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ids := make([]interface{}, 0, len(drafts))
	for _, d := range drafts {
		ids = append(ids, d.ID)
	}

	pipe := s.redisClient.Pipeline()
	pipe.Del(ctx, draftIDsCacheKey)
	pipe.RPush(ctx, draftIDsCacheKey, ids...)
	pipe.Expire(ctx, draftIDsCacheKey, 24*time.Hour)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("Failed to cache draft message ids in Redis", zap.Error(err))
	}
}

func (s *agentService) withDefaults(opts AgentOptions) AgentOptions {
	if opts.Provider == "" {
		opts.Provider = ai.Provider(s.cfg.AI.DefaultProvider)
	}
	if opts.Language == "" {
		opts.Language = s.cfg.Workflow.Language
	}
	return opts
}

// computeStats derives all numeric statistics from the invoice snapshot.
func computeStats(invoices []*models.Invoice) AggregateStats {
	var stats AggregateStats
	stats.TotalInvoices = len(invoices)

	var totalCredits, overdueAmount float64
	var overdueDaysSum int

	for _, inv := range invoices {
		due := inv.AmountDue().InexactFloat64()
		totalCredits += due
		if inv.Status == priority.StatusOpen && inv.DaysOverdue > 0 {
			stats.OverdueInvoices++
			overdueAmount += due
			overdueDaysSum += inv.DaysOverdue
		}
		if inv.Status == priority.StatusDisputed {
			stats.DisputedInvoices++
		}
		if inv.Priority != nil {
			switch *inv.Priority {
			case priority.LevelHigh:
				stats.ByPriority.High++
			case priority.LevelMedium:
				stats.ByPriority.Medium++
			case priority.LevelLow:
				stats.ByPriority.Low++
			}
		}
	}

	stats.TotalCredits = totalCredits
	stats.OverdueAmount = overdueAmount
	if stats.OverdueInvoices > 0 {
		stats.AvgDaysOverdue = overdueDaysSum / stats.OverdueInvoices
	}
	return stats
}

// extractSubject splits an email draft into subject and body when the model
// prefixed a subject label. Both the English and Italian labels occur in
// practice, whichever line comes first wins.
func extractSubject(content string) (subject, body string) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		var prefixLen int
		switch {
		case strings.HasPrefix(lower, "subject:"):
			prefixLen = len("subject:")
		case strings.HasPrefix(lower, "oggetto:"):
			prefixLen = len("oggetto:")
		default:
			continue
		}

		subject = strings.TrimSpace(trimmed[prefixLen:])
		rest := append(append([]string{}, lines[:i]...), lines[i+1:]...)
		body = strings.TrimSpace(strings.Join(rest, "\n"))
		return subject, body
	}
	return "", strings.TrimSpace(content)
}
