// Package legal assembles the court application bundle for the session's
// legal path: the document set itself, the schedule of assets derived from
// discovery, and the compile/download lifecycle that feeds module progress.
package legal

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ytlim/estatepath/internal/domain"
	"github.com/ytlim/estatepath/internal/state"
	"github.com/ytlim/estatepath/internal/triage"
)

var (
	// ErrLegalLocked is returned when bundle operations are requested
	// before any asset has been discovered.
	ErrLegalLocked = errors.New("legal application is locked until an asset is discovered")

	// ErrNotCompiled is returned when a download is requested before the
	// bundle has been compiled.
	ErrNotCompiled = errors.New("bundle has not been compiled yet")
)

// BundleDocument is one document in the court bundle with its generation
// status.
type BundleDocument struct {
	ID          string
	Name        string
	Description string
	Status      domain.BundleDocStatus
}

// ScheduleRow is one line of the schedule of assets.
type ScheduleRow struct {
	Institution string
	AccountType string
	Value       int64
}

// BundleService drives the court bundle lifecycle. The document set is
// fixed by the legal path at first use; compiling marks every document
// ready, downloading marks the bundle downloaded and completes the legal
// module.
type BundleService struct {
	cfg   Config
	store *state.Store

	mu         sync.Mutex
	path       domain.LegalPath
	docs       []BundleDocument
	compiled   bool
	downloaded bool
}

// NewBundleService creates a bundle service bound to the session store.
func NewBundleService(cfg Config, store *state.Store) *BundleService {
	return &BundleService{cfg: cfg, store: store}
}

// PathInfo returns the display title and description for the session's
// legal path.
func (s *BundleService) PathInfo() triage.PathInfo {
	return triage.Info(s.store.TriageResult().LegalPath)
}

// Documents returns the bundle document set for the session's legal path.
// The set is seeded from the catalog on first call and re-seeded if the
// triage path has changed since.
func (s *BundleService) Documents() []BundleDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureSeededLocked()
	out := make([]BundleDocument, len(s.docs))
	copy(out, s.docs)
	return out
}

func (s *BundleService) ensureSeededLocked() {
	path := s.store.TriageResult().LegalPath
	if s.docs != nil && path == s.path {
		return
	}
	defs := s.store.Catalog().BundleDocs(string(path))
	docs := make([]BundleDocument, 0, len(defs))
	for _, d := range defs {
		docs = append(docs, BundleDocument{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Status:      domain.BundleDrafting,
		})
	}
	s.path = path
	s.docs = docs
	s.compiled = false
	s.downloaded = false
}

// Compiled reports whether the bundle has been compiled.
func (s *BundleService) Compiled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compiled
}

// Downloaded reports whether the bundle has been downloaded.
func (s *BundleService) Downloaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.downloaded
}

// Compile generates the bundle: after the configured latency every
// document becomes ready and the legal module moves to in-progress.
// Compiling requires at least one discovered asset. Compiling an already
// compiled bundle is a no-op.
func (s *BundleService) Compile(ctx context.Context) error {
	if len(s.store.DiscoveredAssets()) == 0 {
		return ErrLegalLocked
	}

	s.mu.Lock()
	s.ensureSeededLocked()
	if s.compiled {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	if err := sleepCtx(ctx, s.cfg.CompileDelay); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.docs {
		s.docs[i].Status = domain.BundleReady
	}
	s.compiled = true
	s.mu.Unlock()

	s.store.UpdateModuleStatus(state.ModuleLegal, domain.ModuleInProgress, 2)
	return nil
}

// Download marks the compiled bundle downloaded and completes the legal
// module.
func (s *BundleService) Download() error {
	s.mu.Lock()
	if !s.compiled {
		s.mu.Unlock()
		return ErrNotCompiled
	}
	for i := range s.docs {
		s.docs[i].Status = domain.BundleDownloaded
	}
	s.downloaded = true
	s.mu.Unlock()

	s.store.UpdateModuleStatus(state.ModuleLegal, domain.ModuleCompleted, 3)
	return nil
}

// ScheduleOfAssets returns the schedule rows for the court bundle, one per
// discovered asset, plus the estate total.
func (s *BundleService) ScheduleOfAssets() ([]ScheduleRow, int64) {
	assets := s.store.DiscoveredAssets()
	rows := make([]ScheduleRow, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, ScheduleRow{
			Institution: a.Institution,
			AccountType: a.AccountType,
			Value:       a.Value,
		})
	}
	return rows, s.store.TotalEstateValue()
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
