package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_EmbeddedCatalogsParseAndValidate loads every embedded catalog
// and verifies it passes structural validation. This prevents a malformed
// data file from breaking startup at runtime.
func TestLoad_EmbeddedCatalogsParseAndValidate(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Empty(t, Validate(c))
}

func TestLoad_BankCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	require.Len(t, c.Banks, 8)

	selected := 0
	for _, b := range c.Banks {
		if b.Selected {
			selected++
		}
	}
	assert.Equal(t, 6, selected, "six institutions are pre-selected")

	// DBS is the designated higher-value institution; everyone else falls
	// back to the common default.
	assert.Equal(t, int64(12500), c.ReplyValue("dbs"))
	assert.Equal(t, int64(5000), c.ReplyValue("uob"))
	assert.Equal(t, int64(5000), c.ReplyValue("no-such-bank"))
}

func TestLoad_DocumentCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	byID := map[string]DocumentDef{}
	for _, d := range c.Documents {
		byID[d.ID] = d
	}

	require.Contains(t, byID, "death-cert")
	require.Contains(t, byID, "deceased-nric")
	assert.Nil(t, byID["death-cert"].Conditional)
	assert.Nil(t, byID["deceased-nric"].Conditional)

	require.Contains(t, byID, "will-copy")
	require.NotNil(t, byID["will-copy"].Conditional)
	assert.Equal(t, "hasWill", byID["will-copy"].Conditional.Field)
}

func TestLoad_AssetDocumentValues(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	want := map[string]int64{
		"bank-statement":       45000,
		"insurance-plan":       150000,
		"property-lease":       850000,
		"vehicle-registration": 35000,
	}
	require.Len(t, c.AssetDocuments, len(want))
	for _, a := range c.AssetDocuments {
		assert.Equal(t, want[a.ID], a.Value, "valuation for %s", a.ID)
	}
}

func TestLoad_ClosingChecklist(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Closing, 4)
	assert.Equal(t, 12, c.ClosingItemCount())
}

func TestCatalog_BundleDocs(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	probate := c.BundleDocs("probate")
	require.Len(t, probate, 4)
	assert.Equal(t, "probate-app", probate[0].ID)

	// Non-probate paths share the letters-of-administration bundle.
	loa := c.BundleDocs("loa")
	pt := c.BundleDocs("public-trustee")
	require.Len(t, loa, 4)
	assert.Equal(t, "orig-summons", loa[0].ID)
	assert.Equal(t, loa, pt)
}

func TestValidate_CatchesDuplicates(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	c.Banks = append(c.Banks, BankDef{ID: "dbs", Name: "DBS Again"})
	errs := Validate(c)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "duplicate")
}
