package ai

// ModelInfo is one selectable model exposed on the settings surface.
type ModelInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProviderInfo is the display metadata of one provider.
type ProviderInfo struct {
	ID   Provider `json:"id"`
	Name string   `json:"name"`
}

// Providers lists the supported backends in presentation order.
var Providers = []ProviderInfo{
	{ID: ProviderAnthropic, Name: "Anthropic"},
	{ID: ProviderOpenAI, Name: "OpenAI"},
	{ID: ProviderOpenRouter, Name: "OpenRouter"},
	{ID: ProviderGemini, Name: "Google"},
}

// DefaultModels maps each provider to the model used when a request names
// none.
var DefaultModels = map[Provider]string{
	ProviderAnthropic:  "claude-sonnet-4-5-20250929",
	ProviderOpenAI:     "gpt-5.2",
	ProviderOpenRouter: "google/gemini-2.0-flash-exp:free",
	ProviderGemini:     "gemini-2.5-flash",
}

// ValidationModels are cheap models used for the one-shot key check.
var ValidationModels = map[Provider]string{
	ProviderAnthropic:  "claude-3-haiku-20240307",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderOpenRouter: "openai/gpt-4o-mini",
	ProviderGemini:     "gemini-1.5-flash",
}

// AvailableModels is the per-provider model catalog served by the settings
// endpoint.
var AvailableModels = map[Provider][]ModelInfo{
	ProviderAnthropic: {
		{ID: "claude-opus-4-5-20251124", Name: "Claude Opus 4.5"},
		{ID: "claude-sonnet-4-5-20250929", Name: "Claude Sonnet 4.5"},
		{ID: "claude-opus-4-1-20250805", Name: "Claude Opus 4.1"},
		{ID: "claude-sonnet-4-20250514", Name: "Claude Sonnet 4"},
	},
	ProviderOpenAI: {
		{ID: "gpt-5.2", Name: "GPT-5.2"},
		{ID: "gpt-5.1", Name: "GPT-5.1"},
		{ID: "gpt-5", Name: "GPT-5"},
		{ID: "gpt-4.1", Name: "GPT-4.1"},
		{ID: "o4-mini", Name: "o4-mini (Fast Reasoning)"},
	},
	ProviderOpenRouter: {
		{ID: "google/gemini-2.0-flash-exp:free", Name: "Gemini 2.0 Flash (free)"},
		{ID: "deepseek/deepseek-r1-0528:free", Name: "DeepSeek R1 Reasoning (free)"},
		{ID: "meta-llama/llama-3.3-70b-instruct:free", Name: "Llama 3.3 70B (free)"},
		{ID: "google/gemini-2.5-pro", Name: "Gemini 2.5 Pro"},
		{ID: "google/gemini-2.5-flash", Name: "Gemini 2.5 Flash"},
		{ID: "anthropic/claude-sonnet-4", Name: "Claude Sonnet 4"},
		{ID: "anthropic/claude-3.5-haiku", Name: "Claude 3.5 Haiku"},
		{ID: "openai/gpt-4o", Name: "GPT-4o"},
		{ID: "openai/gpt-4o-mini", Name: "GPT-4o Mini"},
		{ID: "deepseek/deepseek-r1", Name: "DeepSeek R1"},
		{ID: "mistralai/mistral-large-2512", Name: "Mistral Large"},
	},
	ProviderGemini: {
		{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash (Recommended)"},
		{ID: "gemini-2.5-pro", Name: "Gemini 2.5 Pro"},
		{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash"},
		{ID: "gemini-2.0-flash-lite", Name: "Gemini 2.0 Flash-Lite"},
	},
}
