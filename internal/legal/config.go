package legal

import (
	"os"
	"strconv"
	"time"
)

// Config controls bundle compilation behavior.
type Config struct {
	// CompileDelay simulates document generation latency.
	CompileDelay time.Duration
}

// DefaultConfig returns the demo defaults.
func DefaultConfig() Config {
	return Config{CompileDelay: 2500 * time.Millisecond}
}

// LoadConfig reads configuration from ESTATEPATH_* environment variables,
// falling back to defaults.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("ESTATEPATH_COMPILE_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.CompileDelay = time.Duration(ms) * time.Millisecond
		}
	}
	return cfg
}
