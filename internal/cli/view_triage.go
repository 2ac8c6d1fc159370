package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ytlim/estatepath/internal/cli/formatter"
	"github.com/ytlim/estatepath/internal/triage"
)

// triageView runs the four-question questionnaire inside the TUI and
// records the resulting legal pathway.
type triageView struct {
	state  *SharedState
	form   *huh.Form
	values map[string]*string
	done   bool
}

func newTriageView(s *SharedState) *triageView {
	form, values := triageForm()
	return &triageView{state: s, form: form, values: values}
}

func (v *triageView) ID() ViewID    { return ViewTriage }
func (v *triageView) Title() string { return "Triage" }

func (v *triageView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *triageView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *triageView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.done {
		// Result screen: any key returns to the roadmap.
		if _, ok := msg.(tea.KeyMsg); ok {
			return v, popView()
		}
		return v, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, popView()
	}

	updated, cmd := v.form.Update(msg)
	if form, ok := updated.(*huh.Form); ok {
		v.form = form
	}

	if v.form.State == huh.StateCompleted {
		result := triage.BuildResult(collectAnswers(v.values))
		v.state.App.Store.SetTriageResult(result)
		v.done = true
		return v, refreshViews()
	}
	if v.form.State == huh.StateAborted {
		return v, popView()
	}

	return v, cmd
}

func (v *triageView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	if v.done {
		info := triage.Info(v.state.App.Store.TriageResult().LegalPath)
		b.WriteString(formatter.RenderBox("Your Legal Pathway: "+info.Title, info.Description))
		b.WriteString("\n\n  " + formatter.Dim("Press any key to return to the roadmap."))
		return b.String()
	}

	b.WriteString(v.form.View())
	return b.String()
}
