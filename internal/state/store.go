// Package state owns the single mutable application state for a session:
// triage outcome, module progress, per-bank outreach, document uploads,
// and the derived estate-value aggregate. All mutation goes through Store
// methods; views read snapshots. Nothing is persisted — the store lives
// for one session and resets on restart.
package state

import (
	"sync"

	"github.com/ytlim/estatepath/internal/catalog"
	"github.com/ytlim/estatepath/internal/domain"
	"github.com/ytlim/estatepath/internal/triage"
)

// Module ids, in workflow order.
const (
	ModuleDocuments = 1
	ModuleAssets    = 2
	ModuleLegal     = 3
	ModuleClosing   = 4
)

const (
	assetsModuleTotal = 5
	legalModuleTotal  = 3
)

// Store is the central session state. Methods are safe for use from
// bubbletea command goroutines.
type Store struct {
	mu  sync.Mutex
	cat *catalog.Catalog

	triageComplete bool
	triageResult   domain.TriageResult

	modules        []domain.Module
	banks          []domain.BankStatus
	documents      []domain.Document
	assetDocuments []domain.AssetDocument

	// bankAssets maps bank id → recorded balance; discovered holds the
	// normalized rows derived from both sources.
	bankAssets map[string]int64
	discovered []domain.DiscoveredAsset

	closingDone map[string]bool
}

// NewStore seeds a fresh session from the fixed catalogs.
func NewStore(cat *catalog.Catalog) *Store {
	s := &Store{cat: cat}
	s.seed()
	return s
}

func (s *Store) seed() {
	s.triageComplete = false
	s.triageResult = domain.TriageResult{}
	s.banks = seedBanks(s.cat)
	s.documents = seedDocuments(s.cat)
	s.assetDocuments = seedAssetDocuments(s.cat)
	s.bankAssets = map[string]int64{}
	s.discovered = nil
	s.closingDone = map[string]bool{}
	s.modules = s.initialModules(s.triageResult)
}

// initialModules builds the four-module roadmap. Module 1 starts pending,
// modules 2 and 3 locked, module 4 pending. Module 1's total counts only
// documents visible under the given triage result.
func (s *Store) initialModules(result domain.TriageResult) []domain.Module {
	return []domain.Module{
		{
			ID:          ModuleDocuments,
			Title:       "Core Documents",
			Description: "Gather essential legal documents",
			Status:      domain.ModulePending,
			Total:       s.countVisibleDocs(result),
			Route:       "/documents",
		},
		{
			ID:          ModuleAssets,
			Title:       "Asset Discovery",
			Description: "Identify bank accounts and assets",
			Status:      domain.ModuleLocked,
			Total:       assetsModuleTotal,
			Route:       "/assets",
		},
		{
			ID:          ModuleLegal,
			Title:       "Legal Application",
			Description: triage.LegalModuleDescription(result.LegalPath),
			Status:      domain.ModuleLocked,
			Total:       legalModuleTotal,
			Route:       "/legal",
		},
		{
			ID:          ModuleClosing,
			Title:       "Closing Matters",
			Description: "Cancel accounts and subscriptions",
			Status:      domain.ModulePending,
			Total:       s.cat.ClosingItemCount(),
			Route:       "/closing",
		},
	}
}

// Reset discards all session state and reseeds from the catalogs.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed()
}

// ── triage ───────────────────────────────────────────────────────────────────

// SetTriageResult records the triage outcome and reseeds the module
// roadmap with path-specific labels. Bank, document, and asset state is
// preserved; triage runs once at the start of a session.
func (s *Store) SetTriageResult(result domain.TriageResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triageComplete = true
	s.triageResult = result
	s.modules = s.initialModules(result)
}

func (s *Store) TriageComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.triageComplete
}

func (s *Store) TriageResult() domain.TriageResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.triageResult
}

// ── modules ──────────────────────────────────────────────────────────────────

// Modules returns a snapshot of the roadmap in workflow order.
func (s *Store) Modules() []domain.Module {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Module, len(s.modules))
	copy(out, s.modules)
	return out
}

// Module returns the module with the given id.
func (s *Store) Module(id int) (domain.Module, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.modules {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Module{}, false
}

// UpdateModuleStatus overwrites one module's status and, when given,
// its progress. The operation itself does not enforce progress <= total;
// callers respect the invariant.
func (s *Store) UpdateModuleStatus(id int, status domain.ModuleStatus, progress ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.modules {
		if s.modules[i].ID != id {
			continue
		}
		s.modules[i].Status = status
		if len(progress) > 0 {
			s.modules[i].Progress = progress[0]
		}
		return
	}
}

// ── documents ────────────────────────────────────────────────────────────────

// Documents returns the full document catalog snapshot, including entries
// hidden under the current triage result.
func (s *Store) Documents() []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Document, len(s.documents))
	copy(out, s.documents)
	return out
}

// VisibleDocuments returns the documents applicable under the current
// triage result. Visibility is evaluated here at read time, never stored.
func (s *Store) VisibleDocuments() []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibleDocsLocked()
}

func (s *Store) visibleDocsLocked() []domain.Document {
	var out []domain.Document
	for _, d := range s.documents {
		if d.VisibleFor(s.triageResult) {
			out = append(out, d)
		}
	}
	return out
}

func (s *Store) countVisibleDocs(result domain.TriageResult) int {
	n := 0
	for _, d := range seedDocuments(s.cat) {
		if d.VisibleFor(result) {
			n++
		}
	}
	return n
}

// SetDocumentUploaded flips one document's uploaded flag and recomputes
// module-1 progress over the visible catalog. Uploading an already
// uploaded document is a no-op. Completing every visible document unlocks
// the asset-discovery module.
func (s *Store) SetDocumentUploaded(docID string, uploaded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.documents {
		if s.documents[i].ID == docID {
			s.documents[i].Uploaded = uploaded
			break
		}
	}

	visible := s.visibleDocsLocked()
	uploadedCount := 0
	for _, d := range visible {
		if d.Uploaded {
			uploadedCount++
		}
	}

	for i := range s.modules {
		switch s.modules[i].ID {
		case ModuleDocuments:
			s.modules[i].Total = len(visible)
			s.modules[i].Progress = uploadedCount
			if uploadedCount == len(visible) {
				s.modules[i].Status = domain.ModuleCompleted
			} else {
				s.modules[i].Status = domain.ModuleInProgress
			}
		case ModuleAssets:
			if uploadedCount == len(visible) && s.modules[i].Status == domain.ModuleLocked {
				s.modules[i].Status = domain.ModulePending
			}
		}
	}
}

// ── banks ────────────────────────────────────────────────────────────────────

// Banks returns a snapshot of the outreach catalog.
func (s *Store) Banks() []domain.BankStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.BankStatus, len(s.banks))
	copy(out, s.banks)
	return out
}

// SelectedBanks returns the currently selected institutions.
func (s *Store) SelectedBanks() []domain.BankStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.BankStatus
	for _, b := range s.banks {
		if b.Selected {
			out = append(out, b)
		}
	}
	return out
}

// ToggleBankSelection flips one bank's selection, independent of its
// outreach status.
func (s *Store) ToggleBankSelection(bankID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.banks {
		if s.banks[i].ID == bankID {
			s.banks[i].Selected = !s.banks[i].Selected
			return
		}
	}
}

// UpdateBankStatus overwrites one bank's outreach status. No defined
// caller path moves a status backward; the UI only exposes forward
// actions.
func (s *Store) UpdateBankStatus(bankID string, status domain.OutreachStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.banks {
		if s.banks[i].ID == bankID {
			s.banks[i].Status = status
			return
		}
	}
}

// ── asset documents & aggregation ────────────────────────────────────────────

// AssetDocuments returns a snapshot of the asset-document catalog.
func (s *Store) AssetDocuments() []domain.AssetDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AssetDocument, len(s.assetDocuments))
	copy(out, s.assetDocuments)
	return out
}

// SetAssetDocumentUploaded toggles an asset document and adds or removes
// its discovered-asset row. Idempotent: repeating the same toggle leaves
// state unchanged.
func (s *Store) SetAssetDocumentUploaded(docID string, uploaded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc *domain.AssetDocument
	for i := range s.assetDocuments {
		if s.assetDocuments[i].ID == docID {
			s.assetDocuments[i].Uploaded = uploaded
			doc = &s.assetDocuments[i]
			break
		}
	}
	if doc == nil {
		return
	}

	if uploaded {
		if !s.hasDiscoveredLocked(docID) {
			s.discovered = append(s.discovered, domain.DiscoveredAsset{
				ID:          docID,
				Institution: doc.Institution,
				AccountType: doc.AccountType,
				Value:       doc.Value,
			})
		}
	} else {
		s.removeDiscoveredLocked(docID)
	}

	s.propagateAssetsLocked()
}

// RecordBankAsset upserts the discovered-asset row for a bank reply.
// Re-recording the same bank replaces its row rather than duplicating it.
func (s *Store) RecordBankAsset(bankID, bankName string, value int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bankAssets[bankID] = value

	rowID := "bank-" + bankID
	s.removeDiscoveredLocked(rowID)
	s.discovered = append(s.discovered, domain.DiscoveredAsset{
		ID:          rowID,
		Institution: bankName,
		AccountType: "Bank Account",
		Value:       value,
	})

	s.propagateAssetsLocked()
}

// BankAsset returns the recorded balance for a bank, if any.
func (s *Store) BankAsset(bankID string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.bankAssets[bankID]
	return v, ok
}

// DiscoveredAssets returns the normalized asset rows in discovery order.
func (s *Store) DiscoveredAssets() []domain.DiscoveredAsset {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.DiscoveredAsset, len(s.discovered))
	copy(out, s.discovered)
	return out
}

// TotalEstateValue computes the estate aggregate on demand: the sum of
// uploaded asset-document values plus all recorded bank balances. The
// catalogs are small; no caching is needed.
func (s *Store) TotalEstateValue() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docValueLocked() + s.bankValueLocked()
}

// EstateBreakdown returns the document-sourced and bank-sourced components
// of the estate total.
func (s *Store) EstateBreakdown() (docValue, bankValue int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docValueLocked(), s.bankValueLocked()
}

func (s *Store) docValueLocked() int64 {
	var sum int64
	for _, d := range s.assetDocuments {
		if d.Uploaded {
			sum += d.Value
		}
	}
	return sum
}

func (s *Store) bankValueLocked() int64 {
	var sum int64
	for _, v := range s.bankAssets {
		sum += v
	}
	return sum
}

func (s *Store) hasDiscoveredLocked(id string) bool {
	for _, a := range s.discovered {
		if a.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) removeDiscoveredLocked(id string) {
	kept := s.discovered[:0]
	for _, a := range s.discovered {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.discovered = kept
}

// propagateAssetsLocked recomputes module-2 progress from both asset
// sources and unlocks the legal module once any asset exists. Progress is
// clamped to the module total.
func (s *Store) propagateAssetsLocked() {
	uploadedCount := 0
	for _, d := range s.assetDocuments {
		if d.Uploaded {
			uploadedCount++
		}
	}
	bankCount := len(s.bankAssets)
	hasAssets := uploadedCount > 0 || bankCount > 0

	for i := range s.modules {
		switch s.modules[i].ID {
		case ModuleAssets:
			progress := uploadedCount + bankCount
			if progress > s.modules[i].Total {
				progress = s.modules[i].Total
			}
			s.modules[i].Progress = progress
			if hasAssets {
				s.modules[i].Status = domain.ModuleCompleted
			} else {
				s.modules[i].Status = domain.ModuleInProgress
			}
		case ModuleLegal:
			if hasAssets && s.modules[i].Status == domain.ModuleLocked {
				s.modules[i].Status = domain.ModulePending
			}
		}
	}
}

// ── closing matters ──────────────────────────────────────────────────────────

// ClosingDone reports whether a checklist item has been marked complete.
func (s *Store) ClosingDone(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closingDone[itemID]
}

// ClosingProgress returns completed and total checklist item counts.
func (s *Store) ClosingProgress() (done, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closingDoneCountLocked(), s.cat.ClosingItemCount()
}

// SetClosingItemDone marks a closing checklist item and feeds module-4
// progress. Unknown item ids are ignored.
func (s *Store) SetClosingItemDone(itemID string, done bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.knownClosingItemLocked(itemID) {
		return
	}
	if done {
		s.closingDone[itemID] = true
	} else {
		delete(s.closingDone, itemID)
	}

	count := s.closingDoneCountLocked()
	total := s.cat.ClosingItemCount()
	for i := range s.modules {
		if s.modules[i].ID != ModuleClosing {
			continue
		}
		s.modules[i].Progress = count
		switch {
		case count == total:
			s.modules[i].Status = domain.ModuleCompleted
		case count > 0:
			s.modules[i].Status = domain.ModuleInProgress
		default:
			s.modules[i].Status = domain.ModulePending
		}
		return
	}
}

func (s *Store) knownClosingItemLocked(itemID string) bool {
	for _, cat := range s.cat.Closing {
		for _, item := range cat.Items {
			if item.ID == itemID {
				return true
			}
		}
	}
	return false
}

func (s *Store) closingDoneCountLocked() int {
	return len(s.closingDone)
}

// Catalog exposes the read-only catalogs the store was seeded from.
func (s *Store) Catalog() *catalog.Catalog {
	return s.cat
}

// ── seeding ──────────────────────────────────────────────────────────────────

func seedBanks(cat *catalog.Catalog) []domain.BankStatus {
	out := make([]domain.BankStatus, 0, len(cat.Banks))
	for _, b := range cat.Banks {
		out = append(out, domain.BankStatus{
			ID:       b.ID,
			Name:     b.Name,
			Selected: b.Selected,
			Status:   domain.OutreachNotStarted,
		})
	}
	return out
}

func seedDocuments(cat *catalog.Catalog) []domain.Document {
	out := make([]domain.Document, 0, len(cat.Documents))
	for _, d := range cat.Documents {
		doc := domain.Document{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Required:    d.Required,
		}
		if d.Conditional != nil {
			doc.Conditional = &domain.Condition{
				Field: d.Conditional.Field,
				Value: d.Conditional.Value,
			}
		}
		out = append(out, doc)
	}
	return out
}

func seedAssetDocuments(cat *catalog.Catalog) []domain.AssetDocument {
	out := make([]domain.AssetDocument, 0, len(cat.AssetDocuments))
	for _, a := range cat.AssetDocuments {
		out = append(out, domain.AssetDocument{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Value:       a.Value,
			Institution: a.Institution,
			AccountType: a.AccountType,
		})
	}
	return out
}
