package domain

// TriageAnswers maps question id → chosen option id. Immutable once the
// questionnaire is submitted for the session.
type TriageAnswers map[string]string

// TriageResult is derived once from TriageAnswers and drives module labels
// and conditional document visibility.
type TriageResult struct {
	IsMuslim     *bool
	HasWill      *bool
	EstateValue  EstateBand
	Relationship Relationship
	LegalPath    LegalPath
}

// Field returns the named result field as a comparable string, for
// conditional-document predicates. Boolean fields render as "true"/"false"
// and nil as "".
func (r TriageResult) Field(name string) string {
	switch name {
	case "isMuslim":
		return boolField(r.IsMuslim)
	case "hasWill":
		return boolField(r.HasWill)
	case "estateValue":
		return string(r.EstateValue)
	case "relationship":
		return string(r.Relationship)
	case "legalPath":
		return string(r.LegalPath)
	default:
		return ""
	}
}

func boolField(b *bool) string {
	if b == nil {
		return ""
	}
	if *b {
		return "true"
	}
	return "false"
}
