package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytlim/estatepath/internal/cli/formatter"
	"github.com/ytlim/estatepath/internal/domain"
	"github.com/ytlim/estatepath/internal/triage"
)

// estatepathHuhTheme returns a custom huh theme using the Gruvbox palette.
func estatepathHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// triageForm builds the questionnaire as a themed huh form, one group per
// question. The returned value map is populated as the user selects; read
// it only after the form reaches huh.StateCompleted.
func triageForm() (*huh.Form, map[string]*string) {
	values := make(map[string]*string, len(triage.Questions))
	groups := make([]*huh.Group, 0, len(triage.Questions))

	for _, q := range triage.Questions {
		opts := make([]huh.Option[string], 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, huh.NewOption(o.Label, o.Value))
		}

		value := new(string)
		values[q.ID] = value

		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title(q.Prompt).
				Description(q.Description).
				Options(opts...).
				Value(value),
		))
	}

	form := huh.NewForm(groups...).
		WithTheme(estatepathHuhTheme()).
		WithShowHelp(false)
	return form, values
}

// collectAnswers converts the form's value map into triage answers.
func collectAnswers(values map[string]*string) domain.TriageAnswers {
	answers := make(domain.TriageAnswers, len(values))
	for id, v := range values {
		if *v != "" {
			answers[id] = *v
		}
	}
	return answers
}
