// Package outreach implements the bank-enquiry workflow: broadcasting
// enquiry letters through an external automation webhook and simulating
// the scan of uploaded bank replies.
package outreach

import (
	"os"
	"strconv"
	"time"
)

// DefaultWebhookURL is the demo automation endpoint the letter blast is
// posted to when no override is configured.
const DefaultWebhookURL = "https://webhooks.workato.com/webhooks/rest/0ed6e747-1a90-4d0a-8f7d-861bcad7a6ee/blast_request"

// Config holds outreach tunables.
type Config struct {
	WebhookURL string
	// ScanDelay is the simulated OCR latency for a bank-reply scan.
	ScanDelay time.Duration
	// PostTimeout bounds the webhook POST.
	PostTimeout time.Duration
}

// DefaultConfig returns the demo defaults: the fixed webhook endpoint and
// a two-second scan.
func DefaultConfig() Config {
	return Config{
		WebhookURL:  DefaultWebhookURL,
		ScanDelay:   2 * time.Second,
		PostTimeout: 10 * time.Second,
	}
}

// LoadConfig reads outreach configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ESTATEPATH_WEBHOOK_URL"); v != "" {
		cfg.WebhookURL = v
	}
	if v := os.Getenv("ESTATEPATH_SCAN_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.ScanDelay = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("ESTATEPATH_WEBHOOK_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PostTimeout = time.Duration(n) * time.Millisecond
		}
	}

	return cfg
}
