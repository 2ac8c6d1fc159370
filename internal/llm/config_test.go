package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Endpoint)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestLoadConfig_APIKeyEnables(t *testing.T) {
	t.Setenv("ESTATEPATH_LLM_API_KEY", "sk-test")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "sk-test", cfg.APIKey)
}

func TestLoadConfig_ExplicitDisableWins(t *testing.T) {
	t.Setenv("ESTATEPATH_LLM_API_KEY", "sk-test")
	t.Setenv("ESTATEPATH_LLM_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("ESTATEPATH_LLM_ENDPOINT", "http://localhost:8080/v1")
	t.Setenv("ESTATEPATH_LLM_MODEL", "gpt-4o")
	t.Setenv("ESTATEPATH_LLM_TIMEOUT_MS", "5000")
	t.Setenv("ESTATEPATH_LLM_MAX_RETRIES", "3")
	t.Setenv("ESTATEPATH_LLM_TEMPERATURE", "0.7")
	t.Setenv("ESTATEPATH_LLM_MAX_TOKENS", "2048")

	cfg := LoadConfig()
	assert.Equal(t, "http://localhost:8080/v1", cfg.Endpoint)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 0.7, cfg.Temperature)
	assert.Equal(t, 2048, cfg.MaxTokens)
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("ESTATEPATH_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("ESTATEPATH_LLM_MAX_RETRIES", "-2")
	t.Setenv("ESTATEPATH_LLM_TEMPERATURE", "9.5")

	cfg := LoadConfig()
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.Equal(t, 0.3, cfg.Temperature)
}
