// Package catalog loads the fixed data catalogs (banks, documents, asset
// documents, closing checklist, court bundles) from embedded YAML and
// validates them at startup. Catalogs are read-only; all mutable state
// lives in the state store.
package catalog

// BankDef defines one financial institution in the outreach catalog.
type BankDef struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Selected   bool   `yaml:"selected"`
	ReplyValue int64  `yaml:"reply_value"` // 0 = use DefaultReplyValue
}

type banksFile struct {
	DefaultReplyValue int64     `yaml:"default_reply_value"`
	Banks             []BankDef `yaml:"banks"`
}

// ConditionDef gates a document on a triage-result field.
type ConditionDef struct {
	Field string `yaml:"field"`
	Value string `yaml:"value"`
}

// DocumentDef defines one core document.
type DocumentDef struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Required    bool          `yaml:"required"`
	Conditional *ConditionDef `yaml:"conditional"`
}

type documentsFile struct {
	Documents []DocumentDef `yaml:"documents"`
}

// AssetDocDef defines one asset document with its fixed valuation and
// discovered-asset presentation labels.
type AssetDocDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Value       int64  `yaml:"value"`
	Institution string `yaml:"institution"`
	AccountType string `yaml:"account_type"`
}

type assetDocsFile struct {
	AssetDocuments []AssetDocDef `yaml:"asset_documents"`
}

// ClosingItemDef defines one closing-matters checklist entry.
type ClosingItemDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
}

// ClosingCategoryDef groups closing items under a heading.
type ClosingCategoryDef struct {
	ID    string           `yaml:"id"`
	Title string           `yaml:"title"`
	Items []ClosingItemDef `yaml:"items"`
}

type closingFile struct {
	Categories []ClosingCategoryDef `yaml:"categories"`
}

// BundleDocDef defines one document in a court bundle.
type BundleDocDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type bundlesFile struct {
	Bundles map[string][]BundleDocDef `yaml:"bundles"`
}

// Catalog is the full set of loaded, validated catalogs.
type Catalog struct {
	Banks             []BankDef
	DefaultReplyValue int64
	Documents         []DocumentDef
	AssetDocuments    []AssetDocDef
	Closing           []ClosingCategoryDef
	Bundles           map[string][]BundleDocDef
}

// ClosingItemCount returns the total number of closing checklist items
// across all categories.
func (c *Catalog) ClosingItemCount() int {
	n := 0
	for _, cat := range c.Closing {
		n += len(cat.Items)
	}
	return n
}

// ReplyValue resolves the simulated scan value for a bank id.
func (c *Catalog) ReplyValue(bankID string) int64 {
	for _, b := range c.Banks {
		if b.ID == bankID && b.ReplyValue > 0 {
			return b.ReplyValue
		}
	}
	return c.DefaultReplyValue
}

// BundleDocs returns the court bundle document set for a legal path,
// falling back to the default set when the path has no dedicated bundle.
func (c *Catalog) BundleDocs(path string) []BundleDocDef {
	if docs, ok := c.Bundles[path]; ok {
		return docs
	}
	return c.Bundles["default"]
}
