package outreach

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ytlim/estatepath/internal/domain"
	"github.com/ytlim/estatepath/internal/state"
)

// ErrScanInFlight is returned when a scan is requested for a bank that is
// already being scanned. Scans for different banks run independently.
var ErrScanInFlight = errors.New("a scan is already running for this bank")

// ReplyScanner simulates OCR ingestion of an uploaded bank reply: it
// waits the configured scan latency, resolves the balance from the static
// catalog table, and records the result against the session store.
type ReplyScanner struct {
	cfg      Config
	store    *state.Store
	observer Observer

	mu       sync.Mutex
	inflight map[string]bool
}

// NewReplyScanner creates a scanner bound to the session store.
func NewReplyScanner(cfg Config, store *state.Store, observer Observer) *ReplyScanner {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ReplyScanner{
		cfg:      cfg,
		store:    store,
		observer: observer,
		inflight: map[string]bool{},
	}
}

// Scanning reports whether a scan is currently in flight for the bank.
func (s *ReplyScanner) Scanning(bankID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight[bankID]
}

// Scan ingests a bank reply and returns the detected balance. Only one
// scan per bank may be in flight at a time. There is no user-facing
// cancellation; the context is honored so tests can bound the wait.
func (s *ReplyScanner) Scan(ctx context.Context, bankID, bankName string) (int64, error) {
	s.mu.Lock()
	if s.inflight[bankID] {
		s.mu.Unlock()
		return 0, ErrScanInFlight
	}
	s.inflight[bankID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, bankID)
		s.mu.Unlock()
	}()

	start := time.Now()
	if err := sleepCtx(ctx, s.cfg.ScanDelay); err != nil {
		s.observer.Observe(ctx, Event{Name: "reply_scan", Bank: bankID, Duration: time.Since(start), Err: err})
		return 0, err
	}

	value := s.store.Catalog().ReplyValue(bankID)
	s.store.UpdateBankStatus(bankID, domain.OutreachReplyFound)
	s.store.RecordBankAsset(bankID, bankName, value)

	s.observer.Observe(ctx, Event{
		Name:     "reply_scan",
		Bank:     bankID,
		Duration: time.Since(start),
		Success:  true,
	})
	return value, nil
}

// MarkNoAssets records a bank reply stating the deceased held no accounts.
func (s *ReplyScanner) MarkNoAssets(bankID string) {
	s.store.UpdateBankStatus(bankID, domain.OutreachReplyNotFound)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
