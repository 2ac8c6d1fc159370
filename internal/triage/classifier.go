package triage

import "github.com/ytlim/estatepath/internal/domain"

// Classify maps questionnaire answers to a legal path. Rules apply in
// priority order, first match wins:
//
//  1. deceased was Muslim            → syariah
//  2. a valid Will exists            → probate
//  3. estate below $50,000, no Will  → public-trustee
//  4. everything else                → loa
//
// Missing answers fall through to the final branch; an incomplete
// questionnaire therefore resolves to letters of administration rather
// than erroring.
func Classify(answers domain.TriageAnswers) domain.LegalPath {
	if answers[QuestionReligion] == "yes" {
		return domain.PathSyariah
	}
	if answers[QuestionWill] == "yes" {
		return domain.PathProbate
	}
	if answers[QuestionValue] == "below50k" {
		return domain.PathPublicTrustee
	}
	return domain.PathLOA
}

// BuildResult derives the full TriageResult from submitted answers.
func BuildResult(answers domain.TriageAnswers) domain.TriageResult {
	isMuslim := answers[QuestionReligion] == "yes"
	hasWill := answers[QuestionWill] == "yes"

	return domain.TriageResult{
		IsMuslim:     &isMuslim,
		HasWill:      &hasWill,
		EstateValue:  domain.EstateBand(answers[QuestionValue]),
		Relationship: domain.Relationship(answers[QuestionRelationship]),
		LegalPath:    Classify(answers),
	}
}
