package llm

import (
	"os"
	"strconv"
)

// ChatConfig holds all configuration for the chat-completion subsystem.
type ChatConfig struct {
	Enabled     bool
	LogCalls    bool
	Endpoint    string
	APIKey      string
	Model       string
	TimeoutMs   int
	MaxRetries  int
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns a ChatConfig with sensible defaults. The client
// stays disabled until an API key is provided.
func DefaultConfig() ChatConfig {
	return ChatConfig{
		Enabled:     false,
		LogCalls:    false,
		Endpoint:    "https://api.openai.com/v1",
		Model:       "gpt-4o-mini",
		TimeoutMs:   30000,
		MaxRetries:  1,
		Temperature: 0.3,
		MaxTokens:   1024,
	}
}

// LoadConfig reads chat configuration from environment variables, falling
// back to defaults for any unset values. Setting an API key enables the
// client unless ESTATEPATH_LLM_ENABLED says otherwise.
func LoadConfig() ChatConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("ESTATEPATH_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
		cfg.Enabled = true
	}
	if v := os.Getenv("ESTATEPATH_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ESTATEPATH_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ESTATEPATH_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("ESTATEPATH_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ESTATEPATH_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ESTATEPATH_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("ESTATEPATH_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("ESTATEPATH_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}

	return cfg
}
