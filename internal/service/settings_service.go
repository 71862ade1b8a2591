package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/paymind/paymind-server/internal/ai"
	"github.com/paymind/paymind-server/internal/config"
)

// keyValidator is the slice of the AI gateway the settings surface needs.
type keyValidator interface {
	Validate(ctx context.Context, provider ai.Provider, apiKey string) error
}

type settingsService struct {
	cfg       *config.Config
	validator keyValidator
	logger    *zap.Logger
}

func NewSettingsService(cfg *config.Config, validator keyValidator, logger *zap.Logger) SettingsService {
	return &settingsService{
		cfg:       cfg,
		validator: validator,
		logger:    logger,
	}
}

// ListProviders returns the provider catalog with each provider's model list
// and whether a server-side key is configured. The keys themselves are never
// exposed.
func (s *settingsService) ListProviders(_ context.Context) []ProviderSettings {
	out := make([]ProviderSettings, 0, len(ai.Providers))
	for _, p := range ai.Providers {
		out = append(out, ProviderSettings{
			ID:         p.ID,
			Name:       p.Name,
			Configured: s.serverKeyConfigured(p.ID),
			Models:     ai.AvailableModels[p.ID],
		})
	}
	return out
}

// ValidateKey performs one minimal generation call against the provider with
// the submitted key. The returned message is safe to show to the user.
func (s *settingsService) ValidateKey(ctx context.Context, provider, apiKey string) (bool, string) {
	p, err := ai.ParseProvider(provider)
	if err != nil {
		return false, "Unknown provider"
	}

	if err := s.validator.Validate(ctx, p, apiKey); err != nil {
		s.logger.Warn("API key validation failed",
			zap.String("provider", provider),
			zap.Error(err))
		return false, err.Error()
	}

	s.logger.Info("API key validated", zap.String("provider", provider))
	return true, "API key is valid"
}

func (s *settingsService) serverKeyConfigured(p ai.Provider) bool {
	switch p {
	case ai.ProviderAnthropic:
		return s.cfg.AI.AnthropicAPIKey != ""
	case ai.ProviderOpenAI:
		return s.cfg.AI.OpenAIAPIKey != ""
	case ai.ProviderOpenRouter:
		return s.cfg.AI.OpenRouterAPIKey != ""
	case ai.ProviderGemini:
		return s.cfg.AI.GeminiAPIKey != ""
	default:
		return false
	}
}
