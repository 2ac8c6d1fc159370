package legal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytlim/estatepath/internal/catalog"
	"github.com/ytlim/estatepath/internal/domain"
	"github.com/ytlim/estatepath/internal/state"
	"github.com/ytlim/estatepath/internal/triage"
)

func newTestStore(t *testing.T) *state.Store {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return state.NewStore(cat)
}

func setPath(store *state.Store, answers domain.TriageAnswers) {
	store.SetTriageResult(triage.BuildResult(answers))
}

func probateAnswers() domain.TriageAnswers {
	return domain.TriageAnswers{
		triage.QuestionReligion:     "no",
		triage.QuestionWill:         "yes",
		triage.QuestionValue:        "above50k",
		triage.QuestionRelationship: "spouse",
	}
}

func loaAnswers() domain.TriageAnswers {
	return domain.TriageAnswers{
		triage.QuestionReligion:     "no",
		triage.QuestionWill:         "no",
		triage.QuestionValue:        "above50k",
		triage.QuestionRelationship: "child",
	}
}

func newTestService(t *testing.T) (*BundleService, *state.Store) {
	t.Helper()
	store := newTestStore(t)
	cfg := DefaultConfig()
	cfg.CompileDelay = 0
	return NewBundleService(cfg, store), store
}

func TestDocuments_ProbateBundle(t *testing.T) {
	svc, store := newTestService(t)
	setPath(store, probateAnswers())

	docs := svc.Documents()
	require.Len(t, docs, 4)
	assert.Equal(t, "probate-app", docs[0].ID)
	for _, d := range docs {
		assert.Equal(t, domain.BundleDrafting, d.Status, d.ID)
	}
}

func TestDocuments_LOAAndPublicTrusteeShareDefaultBundle(t *testing.T) {
	svc, store := newTestService(t)

	setPath(store, loaAnswers())
	loaDocs := svc.Documents()

	answers := loaAnswers()
	answers[triage.QuestionValue] = "below50k"
	setPath(store, answers)
	ptDocs := svc.Documents()

	require.Equal(t, len(loaDocs), len(ptDocs))
	for i := range loaDocs {
		assert.Equal(t, loaDocs[i].ID, ptDocs[i].ID)
	}
	assert.Equal(t, "orig-summons", loaDocs[0].ID)
}

func TestDocuments_ReseedsWhenPathChanges(t *testing.T) {
	svc, store := newTestService(t)

	setPath(store, loaAnswers())
	before := svc.Documents()

	setPath(store, probateAnswers())
	after := svc.Documents()

	assert.NotEqual(t, before[0].ID, after[0].ID)
	assert.False(t, svc.Compiled())
}

func TestCompile_RequiresDiscoveredAssets(t *testing.T) {
	svc, store := newTestService(t)
	setPath(store, probateAnswers())

	err := svc.Compile(context.Background())
	assert.ErrorIs(t, err, ErrLegalLocked)
	assert.False(t, svc.Compiled())
}

func TestCompile_ReadiesDocumentsAndAdvancesModule(t *testing.T) {
	svc, store := newTestService(t)
	setPath(store, probateAnswers())
	store.SetAssetDocumentUploaded("bank-statement", true)

	require.NoError(t, svc.Compile(context.Background()))

	assert.True(t, svc.Compiled())
	for _, d := range svc.Documents() {
		assert.Equal(t, domain.BundleReady, d.Status, d.ID)
	}

	m, ok := store.Module(state.ModuleLegal)
	require.True(t, ok)
	assert.Equal(t, domain.ModuleInProgress, m.Status)
	assert.Equal(t, 2, m.Progress)

	// A second compile changes nothing.
	require.NoError(t, svc.Compile(context.Background()))
	m, _ = store.Module(state.ModuleLegal)
	assert.Equal(t, domain.ModuleInProgress, m.Status)
}

func TestCompile_HonorsContext(t *testing.T) {
	store := newTestStore(t)
	setPath(store, probateAnswers())
	store.SetAssetDocumentUploaded("bank-statement", true)

	cfg := DefaultConfig()
	cfg.CompileDelay = 5 * time.Second
	svc := NewBundleService(cfg, store)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := svc.Compile(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, svc.Compiled())
}

func TestDownload_RequiresCompile(t *testing.T) {
	svc, store := newTestService(t)
	setPath(store, probateAnswers())

	assert.ErrorIs(t, svc.Download(), ErrNotCompiled)
}

func TestDownload_CompletesLegalModule(t *testing.T) {
	svc, store := newTestService(t)
	setPath(store, probateAnswers())
	store.SetAssetDocumentUploaded("bank-statement", true)

	require.NoError(t, svc.Compile(context.Background()))
	require.NoError(t, svc.Download())

	assert.True(t, svc.Downloaded())
	for _, d := range svc.Documents() {
		assert.Equal(t, domain.BundleDownloaded, d.Status, d.ID)
	}

	m, ok := store.Module(state.ModuleLegal)
	require.True(t, ok)
	assert.Equal(t, domain.ModuleCompleted, m.Status)
	assert.Equal(t, 3, m.Progress)
}

func TestScheduleOfAssets(t *testing.T) {
	svc, store := newTestService(t)
	setPath(store, probateAnswers())

	store.SetAssetDocumentUploaded("insurance-plan", true)
	store.RecordBankAsset("dbs", "DBS Bank", 12500)

	rows, total := svc.ScheduleOfAssets()
	require.Len(t, rows, 2)
	assert.Equal(t, int64(162500), total)

	assert.Equal(t, "DBS Bank", rows[1].Institution)
	assert.Equal(t, "Bank Account", rows[1].AccountType)
	assert.Equal(t, int64(12500), rows[1].Value)
}

func TestPathInfo(t *testing.T) {
	svc, store := newTestService(t)
	setPath(store, probateAnswers())

	info := svc.PathInfo()
	assert.Equal(t, "Grant of Probate", info.Title)
	assert.NotEmpty(t, info.Description)
}
