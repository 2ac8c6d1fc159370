package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytlim/estatepath/internal/cli/formatter"
	"github.com/ytlim/estatepath/internal/closing"
)

// closingView renders the closing-matters checklist grouped by category.
type closingView struct {
	state  *SharedState
	cats   []closing.Category
	flat   []closing.Item
	cursor int
}

func newClosingView(s *SharedState) *closingView {
	v := &closingView{state: s}
	v.reload()
	return v
}

func (v *closingView) ID() ViewID    { return ViewClosing }
func (v *closingView) Title() string { return "Closing Matters" }

func (v *closingView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle done")),
	}
}

func (v *closingView) Init() tea.Cmd { return nil }

func (v *closingView) reload() {
	v.cats = v.state.App.Checklist.Categories()
	v.flat = v.flat[:0]
	for _, c := range v.cats {
		v.flat = append(v.flat, c.Items...)
	}
	if v.cursor >= len(v.flat) {
		v.cursor = 0
	}
}

func (v *closingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if v.cursor < len(v.flat)-1 {
				v.cursor++
			}
		case " ", "enter":
			if v.cursor < len(v.flat) {
				v.state.App.Checklist.Toggle(v.flat[v.cursor].ID)
				v.reload()
				return v, refreshViews()
			}
		}
	}
	return v, nil
}

func (v *closingView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	done, total := v.state.App.Checklist.Progress()
	b.WriteString(fmt.Sprintf("  %s %s\n",
		formatter.Dim("Completed:"),
		formatter.RenderCount(done, total),
	))

	row := 0
	for _, c := range v.cats {
		b.WriteString("\n  " + formatter.StyleHeader.Render(strings.ToUpper(c.Title)) + "\n")
		for _, it := range c.Items {
			cursor := "  "
			nameStyle := formatter.StyleFg
			if row == v.cursor {
				cursor = formatter.StyleGreen.Render("▸ ")
				nameStyle = formatter.StyleBold
			}
			b.WriteString(fmt.Sprintf("  %s%s %s\n", cursor, formatter.UploadMark(it.Done), nameStyle.Render(it.Name)))
			b.WriteString("       " + formatter.Dim(it.Description) + "  " + formatter.StyleBlue.Render(it.Link) + "\n")
			row++
		}
	}

	return b.String()
}
