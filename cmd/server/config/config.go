package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Addr           string        `env:"ADDR" envDefault:":5000"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"60s"`
	MarketplaceURL string        `env:"MARKETPLACE_URL" envDefault:"https://www.amazon.in"`
	UserAgent      string        `env:"USER_AGENT"`

	LLM       LLM
	Firecrawl Firecrawl
	RabbitMQ  RabbitMQ
	HTTP      HTTP
}

// LLM holds model service configuration.
type LLM struct {
	APIKey     string `env:"GOOGLE_API_KEY"`
	BaseURL    string `env:"LLM_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai"`
	Model      string `env:"LLM_MODEL" envDefault:"gemini-1.5-flash-latest"`
	JSONMode   bool   `env:"LLM_JSON_MODE" envDefault:"false"`
	MaxReviews int    `env:"LLM_MAX_REVIEWS" envDefault:"50"`
}

// Firecrawl holds crawling service configuration. Empty APIKey disables the service.
type Firecrawl struct {
	APIKey string `env:"FIRECRAWL_API_KEY"`
	URL    string `env:"FIRECRAWL_URL" envDefault:"https://api.firecrawl.dev"`
}

// RabbitMQ holds RabbitMQ configuration. Empty URL disables report notifications.
type RabbitMQ struct {
	URL               string `env:"RABBITMQ_URL"`
	Exchange          string `env:"RABBITMQ_EXCHANGE" envDefault:"review-checker-ex"`
	ReportsRoutingKey string `env:"REPORTS_ROUTING_KEY" envDefault:"review-checker.reports"`
}

// HTTP holds HTTP server configuration.
type HTTP struct {
	AllowedOrigins     []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	RateLimitPerMinute int      `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
}

// Load reads optional .env file and parses env variables into Config.
// Variables already set in environment take precedence over .env file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("can't load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("can't parse env variables: %w", err)
	}

	return &cfg, nil
}
