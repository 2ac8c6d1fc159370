// Package triage classifies a completed questionnaire into one of four
// legal pathways for estate administration. Classification is a pure
// function over the answers; completeness is guarded at the form boundary
// (the wizard requires a selection before advancing), not re-validated here.
package triage

// Option is one selectable answer for a question.
type Option struct {
	Value string
	Label string
}

// Question is one step of the fixed triage questionnaire.
type Question struct {
	ID          string
	Title       string
	Prompt      string
	Description string
	Options     []Option
}

// Question ids referenced by the classifier.
const (
	QuestionReligion     = "religion"
	QuestionWill         = "will"
	QuestionValue        = "value"
	QuestionRelationship = "relationship"
)

// Questions is the fixed questionnaire, in presentation order.
var Questions = []Question{
	{
		ID:     QuestionReligion,
		Title:  "Religious Status",
		Prompt: "Was the deceased Muslim?",
		Options: []Option{
			{Value: "yes", Label: "Yes, the deceased was Muslim"},
			{Value: "no", Label: "No, the deceased was not Muslim"},
		},
	},
	{
		ID:     QuestionWill,
		Title:  "Will Status",
		Prompt: "Is there a valid Will?",
		Options: []Option{
			{Value: "yes", Label: "Yes, there is a valid Will"},
			{Value: "no", Label: "No Will exists"},
			{Value: "unsure", Label: "I am not sure"},
		},
	},
	{
		ID:          QuestionValue,
		Title:       "Estate Value",
		Prompt:      "What is the estimated value of the estate?",
		Description: "Include property, bank accounts, CPF, and investments",
		Options: []Option{
			{Value: "below50k", Label: "Below $50,000"},
			{Value: "above50k", Label: "$50,000 or more"},
			{Value: "unsure", Label: "I am not sure"},
		},
	},
	{
		ID:     QuestionRelationship,
		Title:  "Your Relationship",
		Prompt: "What is your relationship to the deceased?",
		Options: []Option{
			{Value: "spouse", Label: "Spouse"},
			{Value: "child", Label: "Child"},
			{Value: "parent", Label: "Parent"},
			{Value: "sibling", Label: "Sibling"},
			{Value: "other", Label: "Other relative or friend"},
		},
	},
}
