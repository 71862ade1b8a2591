// Package config provides configuration management for the application.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	AI         AIConfig         `mapstructure:"ai"`
	Workflow   WorkflowConfig   `mapstructure:"workflow"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AIConfig holds provider credentials and outbound call settings. The four
// key fields are bound to the provider environment variables and act as the
// server-side fallback when a request carries no key of its own.
type AIConfig struct {
	AnthropicAPIKey  string `mapstructure:"anthropic_api_key"`
	OpenAIAPIKey     string `mapstructure:"openai_api_key"`
	OpenRouterAPIKey string `mapstructure:"openrouter_api_key"`
	GeminiAPIKey     string `mapstructure:"gemini_api_key"`

	DefaultProvider string `mapstructure:"default_provider"`
	Timeout         int    `mapstructure:"timeout"`
	MaxTokens       int    `mapstructure:"max_tokens"`

	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

// WorkflowConfig tunes the five-step orchestration.
type WorkflowConfig struct {
	ReminderBatchSize int    `mapstructure:"reminder_batch_size"`
	WaitSeconds       int    `mapstructure:"wait_seconds"`
	SimulatedReply    string `mapstructure:"simulated_reply"`
	Language          string `mapstructure:"language"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(configPath string) (*Config, error) {
	// Provider keys commonly live in a local .env during development.
	_ = godotenv.Load()

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 30)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("ai.default_provider", "anthropic")
	viper.SetDefault("ai.timeout", 120)
	viper.SetDefault("ai.max_tokens", 4096)
	viper.SetDefault("ai.circuit_breaker.max_requests", 3)
	viper.SetDefault("ai.circuit_breaker.interval", 60)
	viper.SetDefault("ai.circuit_breaker.timeout", 60)
	viper.SetDefault("ai.circuit_breaker.failure_ratio", 0.6)
	viper.SetDefault("ai.circuit_breaker.consecutive_fails", 5)
	viper.SetDefault("workflow.reminder_batch_size", 10)
	viper.SetDefault("workflow.wait_seconds", 3)
	viper.SetDefault("workflow.simulated_reply", "Buongiorno, ho ricevuto il vostro sollecito. Il pagamento è stato effettuato ieri con bonifico bancario.")
	viper.SetDefault("workflow.language", "it")
	viper.SetDefault("middleware.rate_limit", 100)
	viper.SetDefault("middleware.rate_limit_burst", 1000)
	viper.SetDefault("middleware.enable_cors", true)
	viper.SetDefault("middleware.allowed_origins", []string{"*"})

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	viper.AutomaticEnv()

	for key, env := range map[string]string{
		"ai.anthropic_api_key":  "ANTHROPIC_API_KEY",
		"ai.openai_api_key":     "OPENAI_API_KEY",
		"ai.openrouter_api_key": "OPENROUTER_API_KEY",
		"ai.gemini_api_key":     "GEMINI_API_KEY",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
