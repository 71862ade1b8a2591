package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paymind/paymind-server/internal/ai"
	"github.com/paymind/paymind-server/internal/config"
	"github.com/paymind/paymind-server/internal/service"
)

type stubValidator struct {
	err error
}

func (s *stubValidator) Validate(_ context.Context, _ ai.Provider, _ string) error {
	return s.err
}

func TestSettingsService_ListProviders(t *testing.T) {
	cfg := &config.Config{
		AI: config.AIConfig{
			AnthropicAPIKey: "sk-ant-test",
			GeminiAPIKey:    "key",
		},
	}

	svc := service.NewSettingsService(cfg, &stubValidator{}, zap.NewNop())

	providers := svc.ListProviders(context.Background())
	require.Len(t, providers, 4)

	byID := make(map[ai.Provider]service.ProviderSettings, len(providers))
	for _, p := range providers {
		byID[p.ID] = p
	}

	assert.True(t, byID[ai.ProviderAnthropic].Configured)
	assert.False(t, byID[ai.ProviderOpenAI].Configured)
	assert.False(t, byID[ai.ProviderOpenRouter].Configured)
	assert.True(t, byID[ai.ProviderGemini].Configured)

	assert.NotEmpty(t, byID[ai.ProviderAnthropic].Models)
}

func TestSettingsService_ValidateKey(t *testing.T) {
	svc := service.NewSettingsService(&config.Config{}, &stubValidator{}, zap.NewNop())

	ok, msg := svc.ValidateKey(context.Background(), "anthropic", "sk-ant-test")
	assert.True(t, ok)
	assert.Equal(t, "API key is valid", msg)
}

func TestSettingsService_ValidateKey_Invalid(t *testing.T) {
	svc := service.NewSettingsService(&config.Config{},
		&stubValidator{err: errors.New("invalid x-api-key")}, zap.NewNop())

	ok, msg := svc.ValidateKey(context.Background(), "anthropic", "bad-key")
	assert.False(t, ok)
	assert.Contains(t, msg, "invalid x-api-key")
}

func TestSettingsService_ValidateKey_UnknownProvider(t *testing.T) {
	svc := service.NewSettingsService(&config.Config{}, &stubValidator{}, zap.NewNop())

	ok, msg := svc.ValidateKey(context.Background(), "mystery", "key")
	assert.False(t, ok)
	assert.Equal(t, "Unknown provider", msg)
}
