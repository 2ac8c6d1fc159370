package outreach

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Event captures lightweight telemetry for one outreach operation.
type Event struct {
	Name     string
	Bank     string
	Duration time.Duration
	Success  bool
	Err      error
}

// Observer receives outreach events.
type Observer interface {
	Observe(ctx context.Context, event Event)
}

// NoopObserver ignores all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) Observe(context.Context, Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes outreach events to the provided writer.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) Observe(ctx context.Context, event Event) {
	attrs := []any{
		"op", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	}
	if event.Bank != "" {
		attrs = append(attrs, "bank", event.Bank)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "outreach", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "outreach", attrs...)
}
