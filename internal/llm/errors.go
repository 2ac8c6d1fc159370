package llm

import "errors"

var (
	// ErrUnavailable indicates the chat endpoint is unreachable.
	ErrUnavailable = errors.New("chat endpoint unavailable")

	// ErrTimeout indicates the chat request exceeded the configured timeout.
	ErrTimeout = errors.New("chat request timed out")

	// ErrMissingAPIKey indicates the client was invoked without credentials.
	ErrMissingAPIKey = errors.New("chat api key not configured")

	// ErrEmptyResponse indicates the endpoint returned no choices.
	ErrEmptyResponse = errors.New("chat endpoint returned no choices")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("chat retry attempts exhausted")
)
