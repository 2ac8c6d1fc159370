package domain

// AssetDocument is an uploadable document with a hardcoded valuation per
// asset class. Fixed catalog at startup; only Uploaded mutates.
type AssetDocument struct {
	ID          string
	Name        string
	Description string
	Uploaded    bool
	Value       int64

	// Presentation labels for the discovered-asset row synthesized when
	// the document is uploaded.
	Institution string
	AccountType string
}

// DiscoveredAsset is a normalized estate-value row, synthesized either from
// an uploaded AssetDocument or from a recorded bank reply. Rows are
// recomputed whenever the underlying source flips.
type DiscoveredAsset struct {
	ID          string
	Institution string
	AccountType string
	Value       int64
}
