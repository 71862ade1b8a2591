// Package ai is a uniform gateway over the four supported text-generation
// providers. Given a system prompt and a user prompt it returns generated
// text, token usage, and which provider and model served the call. The
// gateway performs no retry and no response caching; provider errors
// propagate verbatim to the caller.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/paymind/paymind-server/internal/config"
)

// Provider identifies one of the supported LLM backends.
type Provider string

const (
	ProviderAnthropic  Provider = "anthropic"
	ProviderOpenAI     Provider = "openai"
	ProviderOpenRouter Provider = "openrouter"
	ProviderGemini     Provider = "gemini"
)

var (
	// ErrUnknownProvider is returned for a provider outside the supported set.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrMissingAPIKey is returned when neither the request nor the server
	// configuration carries a key for the provider.
	ErrMissingAPIKey = errors.New("no API key configured")

	// ErrEmptyContent is returned when a provider reports success but the
	// generated text is empty. Callers must treat this as a failure, not as
	// an empty result.
	ErrEmptyContent = errors.New("model returned empty content")
)

// ParseProvider validates a provider name from a request.
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(s); p {
	case ProviderAnthropic, ProviderOpenAI, ProviderOpenRouter, ProviderGemini:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, s)
	}
}

// Request is one generation call. Model and APIKey are optional: an empty
// model selects the provider default, an empty key falls back to the
// server-side environment key.
type Request struct {
	Provider     Provider
	Model        string
	APIKey       string
	SystemPrompt string
	UserPrompt   string
}

// Response is the result of one generation call.
type Response struct {
	Content    string   `json:"content"`
	Provider   Provider `json:"provider"`
	Model      string   `json:"model"`
	TokensUsed int      `json:"tokensUsed,omitempty"`
}

// Generator produces text from a system prompt and a user prompt.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// Gateway implements Generator over HTTP for all four providers.
type Gateway struct {
	cfg        *config.AIConfig
	httpClient *http.Client
	breaker    *CircuitBreaker
	logger     *zap.Logger
	baseURLs   map[Provider]string
}

// Option customizes a Gateway.
type Option func(*Gateway)

// WithBaseURL overrides the endpoint of one provider. Used by tests to point
// the gateway at a local fake.
func WithBaseURL(provider Provider, url string) Option {
	return func(g *Gateway) {
		g.baseURLs[provider] = url
	}
}

// NewGateway creates a gateway using the configured call timeout and circuit
// breaker settings.
func NewGateway(cfg *config.AIConfig, logger *zap.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		breaker: NewCircuitBreaker(&cfg.CircuitBreaker, logger),
		logger:  logger,
		baseURLs: map[Provider]string{
			ProviderAnthropic:  anthropicBaseURL,
			ProviderOpenAI:     openAIBaseURL,
			ProviderOpenRouter: openRouterBaseURL,
			ProviderGemini:     geminiBaseURL,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate dispatches one call to the requested provider. The concrete wire
// client is chosen here so no caller ever branches on provider identity.
func (g *Gateway) Generate(ctx context.Context, req Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = DefaultModels[req.Provider]
	}

	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = g.serverKey(req.Provider)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w for provider %s", ErrMissingAPIKey, req.Provider)
	}

	start := time.Now()

	var resp *Response
	err := g.breaker.Execute(ctx, func() error {
		var callErr error
		switch req.Provider {
		case ProviderAnthropic:
			resp, callErr = g.callAnthropic(ctx, model, apiKey, req.SystemPrompt, req.UserPrompt)
		case ProviderOpenAI:
			resp, callErr = g.callOpenAICompatible(ctx, ProviderOpenAI, model, apiKey, req.SystemPrompt, req.UserPrompt)
		case ProviderOpenRouter:
			resp, callErr = g.callOpenAICompatible(ctx, ProviderOpenRouter, model, apiKey, req.SystemPrompt, req.UserPrompt)
		case ProviderGemini:
			resp, callErr = g.callGemini(ctx, model, apiKey, req.SystemPrompt, req.UserPrompt)
		default:
			callErr = fmt.Errorf("%w: %q", ErrUnknownProvider, req.Provider)
		}
		return callErr
	})
	if err != nil {
		return nil, err
	}

	if resp.Content == "" {
		return nil, fmt.Errorf("%w (provider %s, model %s)", ErrEmptyContent, req.Provider, model)
	}

	g.logger.Info("AI generation completed",
		zap.String("provider", string(req.Provider)),
		zap.String("model", model),
		zap.Int("tokensUsed", resp.TokensUsed),
		zap.Duration("duration", time.Since(start)))

	return resp, nil
}

// Validate performs one minimal generation call to check an API key.
func (g *Gateway) Validate(ctx context.Context, provider Provider, apiKey string) error {
	_, err := g.Generate(ctx, Request{
		Provider:   provider,
		Model:      ValidationModels[provider],
		APIKey:     apiKey,
		UserPrompt: "Hi",
	})
	if errors.Is(err, ErrEmptyContent) {
		// The key worked; some models answer a bare greeting with nothing.
		return nil
	}
	return err
}

// BreakerState reports the circuit breaker state and counters for health.
func (g *Gateway) BreakerState() (state BreakerState, requests, failures uint32) {
	state = g.breaker.GetState()
	requests, failures = g.breaker.GetCounts()
	return
}

func (g *Gateway) serverKey(provider Provider) string {
	switch provider {
	case ProviderAnthropic:
		return g.cfg.AnthropicAPIKey
	case ProviderOpenAI:
		return g.cfg.OpenAIAPIKey
	case ProviderOpenRouter:
		return g.cfg.OpenRouterAPIKey
	case ProviderGemini:
		return g.cfg.GeminiAPIKey
	default:
		return ""
	}
}
