package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytlim/estatepath/internal/cli/formatter"
	"github.com/ytlim/estatepath/internal/domain"
	"github.com/ytlim/estatepath/internal/state"
	"github.com/ytlim/estatepath/internal/triage"
)

// dashboardView is the home screen: the four-module roadmap with the
// triage summary and discovered estate value.
type dashboardView struct {
	state   *SharedState
	modules []domain.Module
	cursor  int
}

func newDashboardView(s *SharedState) *dashboardView {
	v := &dashboardView{state: s}
	v.reload()
	return v
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Roadmap" }

func (v *dashboardView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
	if !v.state.App.Store.TriageComplete() {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "start triage")))
	}
	bindings = append(bindings,
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "assistant")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	)
	return bindings
}

func (v *dashboardView) Init() tea.Cmd { return nil }

func (v *dashboardView) reload() {
	v.modules = v.state.App.Store.Modules()
	if v.cursor >= len(v.modules) {
		v.cursor = 0
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if v.cursor < len(v.modules)-1 {
				v.cursor++
			}
		case "1", "2", "3", "4":
			v.cursor = int(msg.String()[0] - '1')
			return v, v.openSelected()
		case "enter":
			return v, v.openSelected()
		case "t":
			if !v.state.App.Store.TriageComplete() {
				return v, pushView(newTriageView(v.state))
			}
		case "a":
			return v, pushView(newChatView(v.state))
		}
	}
	return v, nil
}

// openSelected pushes the view for the module under the cursor. Locked
// modules flash a notice instead of opening.
func (v *dashboardView) openSelected() tea.Cmd {
	if v.cursor >= len(v.modules) {
		return nil
	}
	m := v.modules[v.cursor]
	if m.Status == domain.ModuleLocked {
		return flash(lockedNotice(m.ID))
	}

	switch m.ID {
	case state.ModuleDocuments:
		return pushView(newDocumentsView(v.state))
	case state.ModuleAssets:
		return pushView(newAssetsView(v.state))
	case state.ModuleLegal:
		return pushView(newLegalView(v.state))
	case state.ModuleClosing:
		return pushView(newClosingView(v.state))
	}
	return nil
}

func lockedNotice(moduleID int) string {
	switch moduleID {
	case state.ModuleAssets:
		return "Asset Discovery unlocks once every core document is uploaded."
	case state.ModuleLegal:
		return "Legal Application unlocks once an asset has been discovered."
	default:
		return "This module is locked."
	}
}

func (v *dashboardView) View() string {
	store := v.state.App.Store
	var b strings.Builder

	b.WriteString("\n")
	if store.TriageComplete() {
		info := triage.Info(store.TriageResult().LegalPath)
		b.WriteString("  " + formatter.Dim("Legal pathway: ") + formatter.PathBadge(info.Title))
	} else {
		b.WriteString("  " + formatter.StyleYellow.Render("Triage not done.") +
			formatter.Dim(" Press 't' to answer four questions and find your legal pathway."))
	}
	b.WriteString("\n\n")

	for i, m := range v.modules {
		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}

		progress := formatter.RenderProgress(m.PercentDone(), 10)
		if m.Status == domain.ModuleLocked {
			progress = formatter.Dim("[" + strings.Repeat("░", 10) + "]     ")
		}

		b.WriteString(fmt.Sprintf("  %s%d. %-22s %s  %s  %s\n",
			cursor,
			m.ID,
			titleStyle.Render(m.Title),
			progress,
			formatter.RenderCount(m.Progress, m.Total),
			formatter.ModulePill(m.Status),
		))
		b.WriteString("     " + formatter.Dim(m.Description) + "\n\n")
	}

	b.WriteString("  " + formatter.Dim("Estate value discovered: ") +
		formatter.MoneyStyled(store.TotalEstateValue()) + "\n")

	return b.String()
}
