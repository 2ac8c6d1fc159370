package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytlim/estatepath/internal/cli/formatter"
)

// compileDoneMsg signals bundle compilation finished.
type compileDoneMsg struct {
	err error
}

// legalView presents the court application bundle for the session's
// legal path: path summary, bundle documents, schedule of assets, and
// the compile/download actions.
type legalView struct {
	state     *SharedState
	compiling bool
	spin      spinner.Model
}

func newLegalView(s *SharedState) *legalView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return &legalView{state: s, spin: sp}
}

func (v *legalView) ID() ViewID    { return ViewLegal }
func (v *legalView) Title() string { return "Legal Application" }

func (v *legalView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate bundle")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download")),
	}
}

func (v *legalView) Init() tea.Cmd { return nil }

func (v *legalView) compileCmd() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		return compileDoneMsg{err: app.Bundle.Compile(context.Background())}
	}
}

func (v *legalView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		return v, nil

	case spinner.TickMsg:
		if !v.compiling {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case compileDoneMsg:
		v.compiling = false
		if msg.err != nil {
			return v, flash("Cannot generate yet: discover at least one asset first.")
		}
		return v, tea.Batch(refreshViews(), flash("Bundle generated. All documents are ready."))

	case tea.KeyMsg:
		switch msg.String() {
		case "g":
			if v.compiling || v.state.App.Bundle.Compiled() {
				return v, nil
			}
			v.compiling = true
			return v, tea.Batch(v.spin.Tick, v.compileCmd())
		case "d":
			if err := v.state.App.Bundle.Download(); err != nil {
				return v, flash("Generate the bundle before downloading.")
			}
			return v, tea.Batch(refreshViews(), flash("Bundle downloaded. Legal Application completed."))
		}
	}
	return v, nil
}

func (v *legalView) View() string {
	app := v.state.App
	var b strings.Builder
	b.WriteString("\n")

	info := app.Bundle.PathInfo()
	b.WriteString(formatter.RenderBox(info.Title, info.Description))
	b.WriteString("\n\n")

	b.WriteString("  " + formatter.StyleHeader.Render("BUNDLE DOCUMENTS") + "\n\n")
	for _, d := range app.Bundle.Documents() {
		b.WriteString("    " + formatter.BundlePill(d.Status) + "  " + formatter.StyleFg.Render(d.Name) + "\n")
		b.WriteString("       " + formatter.Dim(d.Description) + "\n")
	}

	if v.compiling {
		b.WriteString("\n  " + v.spin.View() + " " + formatter.Dim("Generating court documents..."))
	}

	b.WriteString("\n  " + formatter.StyleHeader.Render("SCHEDULE OF ASSETS") + "\n\n")
	rows, total := app.Bundle.ScheduleOfAssets()
	if len(rows) == 0 {
		b.WriteString("  " + formatter.Dim("No assets discovered yet.") + "\n")
	} else {
		tableRows := make([][]string, 0, len(rows))
		for _, r := range rows {
			tableRows = append(tableRows, []string{r.Institution, r.AccountType, formatter.Money(r.Value)})
		}
		table := formatter.RenderTable([]string{"Institution", "Type", "Value"}, tableRows)
		for _, line := range strings.Split(table, "\n") {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("  " + formatter.Bold("Total: ") + formatter.MoneyStyled(total) + "\n")
	}

	return b.String()
}
