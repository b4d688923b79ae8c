package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MichalMitros/review-checker/cmd/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, ":5000", cfg.Addr, "should set default address")
	assert.Equal(t, 60*time.Second, cfg.HTTPTimeout, "should set default http timeout")
	assert.Equal(t, "https://www.amazon.in", cfg.MarketplaceURL, "should set default marketplace url")
	assert.Equal(t, "gemini-1.5-flash-latest", cfg.LLM.Model, "should set default model")
	assert.Equal(t, 50, cfg.LLM.MaxReviews, "should set default reviews limit")
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins, "should allow any origin by default")
	assert.Equal(t, "review-checker.reports", cfg.RabbitMQ.ReportsRoutingKey, "should set default routing key")
}

func TestUnitLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "RABBITMQ_EXCHANGE=file-exchange\nLLM_MAX_REVIEWS=20\nCORS_ALLOWED_ORIGINS=https://a.example,https://b.example\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600), "can't write env file")

	t.Setenv("LLM_MAX_REVIEWS", "10")
	t.Cleanup(func() {
		_ = os.Unsetenv("RABBITMQ_EXCHANGE")
		_ = os.Unsetenv("CORS_ALLOWED_ORIGINS")
	})

	cfg, err := config.Load(envFile)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, "file-exchange", cfg.RabbitMQ.Exchange, "should read variables from env file")
	assert.Equal(t, 10, cfg.LLM.MaxReviews, "should prefer environment over env file")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins,
		"should split allowed origins")
}

func TestUnitLoadInvalid(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "sixty seconds")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	require.ErrorContains(t, err, "can't parse env variables", "should return parsing error")
}
