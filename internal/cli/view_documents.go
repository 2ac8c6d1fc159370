package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytlim/estatepath/internal/cli/formatter"
	"github.com/ytlim/estatepath/internal/domain"
	"github.com/ytlim/estatepath/internal/state"
)

// documentsView lists the core documents applicable under the triage
// result and toggles their upload state.
type documentsView struct {
	state  *SharedState
	docs   []domain.Document
	cursor int
}

func newDocumentsView(s *SharedState) *documentsView {
	v := &documentsView{state: s}
	v.reload()
	return v
}

func (v *documentsView) ID() ViewID    { return ViewDocuments }
func (v *documentsView) Title() string { return "Core Documents" }

func (v *documentsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle upload")),
	}
}

func (v *documentsView) Init() tea.Cmd { return nil }

func (v *documentsView) reload() {
	v.docs = v.state.App.Store.VisibleDocuments()
	if v.cursor >= len(v.docs) {
		v.cursor = 0
	}
}

func (v *documentsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.docs)-1 {
				v.cursor++
			}
		case " ", "enter":
			if v.cursor < len(v.docs) {
				doc := v.docs[v.cursor]
				v.state.App.Store.SetDocumentUploaded(doc.ID, !doc.Uploaded)
				v.reload()
				return v, refreshViews()
			}
		}
	}
	return v, nil
}

func (v *documentsView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	uploaded := 0
	for _, d := range v.docs {
		if d.Uploaded {
			uploaded++
		}
	}
	b.WriteString(fmt.Sprintf("  %s %s\n\n",
		formatter.Dim("Uploaded:"),
		formatter.RenderCount(uploaded, len(v.docs)),
	))

	for i, d := range v.docs {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n", cursor, formatter.UploadMark(d.Uploaded), nameStyle.Render(d.Name)))
		b.WriteString("       " + formatter.Dim(d.Description) + "\n")
	}

	if uploaded == len(v.docs) && len(v.docs) > 0 {
		b.WriteString("\n  " + formatter.StyleGreen.Render("All documents uploaded.") +
			formatter.Dim(" Asset Discovery is now available from the roadmap."))
	}
	b.WriteString("\n")

	// Hidden conditional documents never count against progress.
	if m, ok := v.state.App.Store.Module(state.ModuleDocuments); ok {
		b.WriteString("  " + formatter.Dim("Module status: ") + formatter.ModulePill(m.Status) + "\n")
	}

	return b.String()
}
