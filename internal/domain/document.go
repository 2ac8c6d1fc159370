package domain

// Condition gates a document's visibility on a TriageResult field.
// Visibility is evaluated at read time, never persisted.
type Condition struct {
	Field string
	Value string
}

// Document is a required core document tracked by the upload ledger.
// Fixed catalog at startup; only Uploaded mutates.
type Document struct {
	ID          string
	Name        string
	Description string
	Required    bool
	Uploaded    bool
	Conditional *Condition
}

// VisibleFor reports whether the document applies under the given triage
// result. Unconditional documents are always visible.
func (d Document) VisibleFor(r TriageResult) bool {
	if d.Conditional == nil {
		return true
	}
	return r.Field(d.Conditional.Field) == d.Conditional.Value
}
