package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytlim/estatepath/internal/catalog"
	"github.com/ytlim/estatepath/internal/domain"
	"github.com/ytlim/estatepath/internal/triage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return NewStore(cat)
}

// completeTriage runs a standard non-Muslim, has-Will questionnaire through
// the store, yielding the probate path.
func completeTriage(s *Store) {
	s.SetTriageResult(triage.BuildResult(domain.TriageAnswers{
		triage.QuestionReligion:     "no",
		triage.QuestionWill:         "yes",
		triage.QuestionValue:        "above50k",
		triage.QuestionRelationship: "child",
	}))
}

func TestNewStore_InitialRoadmap(t *testing.T) {
	s := newTestStore(t)

	modules := s.Modules()
	require.Len(t, modules, 4)

	assert.Equal(t, domain.ModulePending, modules[0].Status)
	assert.Equal(t, domain.ModuleLocked, modules[1].Status)
	assert.Equal(t, domain.ModuleLocked, modules[2].Status)
	assert.Equal(t, domain.ModulePending, modules[3].Status)

	// Before triage, only the two unconditional core documents are visible.
	assert.Equal(t, 2, modules[0].Total)
	assert.Equal(t, 12, modules[3].Total)
	assert.False(t, s.TriageComplete())
}

func TestSetTriageResult_ReseedsModuleDescriptions(t *testing.T) {
	s := newTestStore(t)
	completeTriage(s)

	require.True(t, s.TriageComplete())

	legal, ok := s.Module(ModuleLegal)
	require.True(t, ok)
	assert.Equal(t, "Grant of Probate", legal.Description)
	assert.NotContains(t, legal.Description, "Letters of Administration")

	// Probate path reveals the will-copy document, raising module 1's total.
	docs, ok := s.Module(ModuleDocuments)
	require.True(t, ok)
	assert.Equal(t, 3, docs.Total)
}

func TestSetTriageResult_LOADescription(t *testing.T) {
	s := newTestStore(t)
	s.SetTriageResult(triage.BuildResult(domain.TriageAnswers{
		triage.QuestionReligion: "no",
		triage.QuestionWill:     "no",
		triage.QuestionValue:    "above50k",
	}))

	legal, ok := s.Module(ModuleLegal)
	require.True(t, ok)
	assert.Equal(t, "Letters of Administration", legal.Description)
}

func TestSetDocumentUploaded_ProgressAndCompletion(t *testing.T) {
	s := newTestStore(t)
	completeTriage(s) // probate: death-cert, deceased-nric, will-copy visible

	s.SetDocumentUploaded("death-cert", true)
	m, _ := s.Module(ModuleDocuments)
	assert.Equal(t, 1, m.Progress)
	assert.Equal(t, domain.ModuleInProgress, m.Status)

	s.SetDocumentUploaded("deceased-nric", true)
	s.SetDocumentUploaded("will-copy", true)

	m, _ = s.Module(ModuleDocuments)
	assert.Equal(t, 3, m.Progress)
	assert.Equal(t, domain.ModuleCompleted, m.Status)

	// All visible documents uploaded unlocks asset discovery.
	assets, _ := s.Module(ModuleAssets)
	assert.Equal(t, domain.ModulePending, assets.Status)
}

func TestSetDocumentUploaded_Idempotent(t *testing.T) {
	s := newTestStore(t)
	completeTriage(s)

	s.SetDocumentUploaded("death-cert", true)
	first, _ := s.Module(ModuleDocuments)

	s.SetDocumentUploaded("death-cert", true)
	second, _ := s.Module(ModuleDocuments)

	assert.Equal(t, first, second, "re-uploading the same document changes nothing")
}

func TestSetDocumentUploaded_HiddenConditionalDocDoesNotCount(t *testing.T) {
	s := newTestStore(t)
	// LOA path: no will, so will-copy stays hidden.
	s.SetTriageResult(triage.BuildResult(domain.TriageAnswers{
		triage.QuestionReligion: "no",
		triage.QuestionWill:     "no",
		triage.QuestionValue:    "above50k",
	}))

	m, _ := s.Module(ModuleDocuments)
	require.Equal(t, 2, m.Total)

	s.SetDocumentUploaded("death-cert", true)
	s.SetDocumentUploaded("deceased-nric", true)

	m, _ = s.Module(ModuleDocuments)
	assert.Equal(t, 2, m.Progress)
	assert.Equal(t, domain.ModuleCompleted, m.Status)

	assets, _ := s.Module(ModuleAssets)
	assert.Equal(t, domain.ModulePending, assets.Status,
		"hidden conditional documents must not block the unlock")
}

func TestToggleBankSelection_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	var dbs domain.BankStatus
	for _, b := range s.Banks() {
		if b.ID == "dbs" {
			dbs = b
		}
	}
	require.True(t, dbs.Selected, "dbs is selected by default")

	s.ToggleBankSelection("dbs")
	s.ToggleBankSelection("dbs")

	for _, b := range s.Banks() {
		if b.ID == "dbs" {
			assert.True(t, b.Selected, "double toggle restores the default")
		}
	}
}

func TestToggleBankSelection_IndependentOfStatus(t *testing.T) {
	s := newTestStore(t)

	s.UpdateBankStatus("uob", domain.OutreachLetterGenerated)
	s.ToggleBankSelection("uob")

	for _, b := range s.Banks() {
		if b.ID == "uob" {
			assert.False(t, b.Selected)
			assert.Equal(t, domain.OutreachLetterGenerated, b.Status)
		}
	}
}

func TestRecordBankAsset_UpsertReplacesRow(t *testing.T) {
	s := newTestStore(t)

	s.RecordBankAsset("dbs", "DBS Bank", 12500)
	s.RecordBankAsset("dbs", "DBS Bank", 9000)

	rows := 0
	for _, a := range s.DiscoveredAssets() {
		if a.ID == "bank-dbs" {
			rows++
			assert.Equal(t, int64(9000), a.Value)
		}
	}
	assert.Equal(t, 1, rows, "re-recording replaces, never duplicates")
	assert.Equal(t, int64(9000), s.TotalEstateValue())
}

func TestTotalEstateValue_ScenarioB(t *testing.T) {
	s := newTestStore(t)

	s.SetAssetDocumentUploaded("insurance-plan", true)
	assert.Equal(t, int64(150000), s.TotalEstateValue())

	s.RecordBankAsset("dbs", "DBS Bank", 12500)
	assert.Equal(t, int64(162500), s.TotalEstateValue())

	docVal, bankVal := s.EstateBreakdown()
	assert.Equal(t, int64(150000), docVal)
	assert.Equal(t, int64(12500), bankVal)
}

func TestTotalEstateValue_InvariantAfterToggleSequence(t *testing.T) {
	s := newTestStore(t)

	s.SetAssetDocumentUploaded("insurance-plan", true)
	s.SetAssetDocumentUploaded("property-lease", true)
	s.RecordBankAsset("dbs", "DBS Bank", 12500)
	s.SetAssetDocumentUploaded("insurance-plan", false)
	s.RecordBankAsset("uob", "UOB", 5000)
	s.SetAssetDocumentUploaded("vehicle-registration", true)
	s.RecordBankAsset("dbs", "DBS Bank", 8000)
	s.SetAssetDocumentUploaded("vehicle-registration", false)

	// Recompute expectation from the ledgers directly.
	var want int64
	for _, d := range s.AssetDocuments() {
		if d.Uploaded {
			want += d.Value
		}
	}
	for _, id := range []string{"dbs", "uob"} {
		v, ok := s.BankAsset(id)
		require.True(t, ok)
		want += v
	}

	assert.Equal(t, want, s.TotalEstateValue())

	// Bank-sourced discovered rows always mirror the recorded balances.
	var bankRows int64
	for _, a := range s.DiscoveredAssets() {
		if a.ID == "bank-dbs" || a.ID == "bank-uob" {
			bankRows += a.Value
		}
	}
	assert.Equal(t, int64(13000), bankRows)
}

func TestSetAssetDocumentUploaded_DiscoveredRowLifecycle(t *testing.T) {
	s := newTestStore(t)

	s.SetAssetDocumentUploaded("property-lease", true)

	assets := s.DiscoveredAssets()
	require.Len(t, assets, 1)
	assert.Equal(t, "HDB/Private", assets[0].Institution)
	assert.Equal(t, "Property", assets[0].AccountType)
	assert.Equal(t, int64(850000), assets[0].Value)

	s.SetAssetDocumentUploaded("property-lease", false)
	assert.Empty(t, s.DiscoveredAssets())
	assert.Equal(t, int64(0), s.TotalEstateValue())
}

func TestAssetPropagation_UnlocksLegalModule(t *testing.T) {
	s := newTestStore(t)
	completeTriage(s)

	legal, _ := s.Module(ModuleLegal)
	require.Equal(t, domain.ModuleLocked, legal.Status)

	s.SetAssetDocumentUploaded("bank-statement", true)

	assets, _ := s.Module(ModuleAssets)
	assert.Equal(t, domain.ModuleCompleted, assets.Status)
	assert.Equal(t, 1, assets.Progress)

	legal, _ = s.Module(ModuleLegal)
	assert.Equal(t, domain.ModulePending, legal.Status)
}

func TestAssetPropagation_ProgressClampedToTotal(t *testing.T) {
	s := newTestStore(t)

	for _, id := range []string{"bank-statement", "insurance-plan", "property-lease", "vehicle-registration"} {
		s.SetAssetDocumentUploaded(id, true)
	}
	s.RecordBankAsset("dbs", "DBS Bank", 12500)
	s.RecordBankAsset("uob", "UOB", 5000)
	s.RecordBankAsset("ocbc", "OCBC Bank", 5000)

	m, _ := s.Module(ModuleAssets)
	assert.LessOrEqual(t, m.Progress, m.Total)
	assert.Equal(t, m.Total, m.Progress)
}

func TestUpdateModuleStatus_DirectOverwrite(t *testing.T) {
	s := newTestStore(t)

	s.UpdateModuleStatus(ModuleLegal, domain.ModuleInProgress, 2)
	m, ok := s.Module(ModuleLegal)
	require.True(t, ok)
	assert.Equal(t, domain.ModuleInProgress, m.Status)
	assert.Equal(t, 2, m.Progress)

	// Without the progress argument the counter is preserved.
	s.UpdateModuleStatus(ModuleLegal, domain.ModuleCompleted)
	m, _ = s.Module(ModuleLegal)
	assert.Equal(t, domain.ModuleCompleted, m.Status)
	assert.Equal(t, 2, m.Progress)
}

func TestSetClosingItemDone_FeedsModuleFour(t *testing.T) {
	s := newTestStore(t)

	s.SetClosingItemDone("sp-group", true)
	m, _ := s.Module(ModuleClosing)
	assert.Equal(t, 1, m.Progress)
	assert.Equal(t, domain.ModuleInProgress, m.Status)

	// Unknown ids are ignored.
	s.SetClosingItemDone("not-a-real-item", true)
	m, _ = s.Module(ModuleClosing)
	assert.Equal(t, 1, m.Progress)

	s.SetClosingItemDone("sp-group", false)
	m, _ = s.Module(ModuleClosing)
	assert.Equal(t, 0, m.Progress)
	assert.Equal(t, domain.ModulePending, m.Status)
}

func TestSetClosingItemDone_AllItemsCompletesModule(t *testing.T) {
	s := newTestStore(t)

	for _, cat := range s.Catalog().Closing {
		for _, item := range cat.Items {
			s.SetClosingItemDone(item.ID, true)
		}
	}

	m, _ := s.Module(ModuleClosing)
	assert.Equal(t, 12, m.Progress)
	assert.Equal(t, domain.ModuleCompleted, m.Status)
}

func TestReset_RestoresInitialState(t *testing.T) {
	s := newTestStore(t)
	completeTriage(s)
	s.SetDocumentUploaded("death-cert", true)
	s.RecordBankAsset("dbs", "DBS Bank", 12500)
	s.SetClosingItemDone("netflix", true)

	s.Reset()

	assert.False(t, s.TriageComplete())
	assert.Equal(t, int64(0), s.TotalEstateValue())
	assert.Empty(t, s.DiscoveredAssets())

	modules := s.Modules()
	require.Len(t, modules, 4)
	for _, m := range modules {
		assert.Zero(t, m.Progress)
	}
}
