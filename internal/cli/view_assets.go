package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytlim/estatepath/internal/cli/formatter"
	"github.com/ytlim/estatepath/internal/domain"
	"github.com/ytlim/estatepath/internal/outreach"
)

// ── messages ─────────────────────────────────────────────────────────────────

// broadcastDoneMsg signals the enquiry blast finished.
type broadcastDoneMsg struct {
	result outreach.BroadcastResult
	err    error
}

// scanDoneMsg signals a bank-reply scan finished.
type scanDoneMsg struct {
	bankID string
	value  int64
	err    error
}

// ── view ─────────────────────────────────────────────────────────────────────

// assetsView drives asset discovery: uploading asset documents, selecting
// banks, blasting enquiry letters, and scanning simulated replies.
type assetsView struct {
	state *SharedState

	assetDocs []domain.AssetDocument
	banks     []domain.BankStatus
	cursor    int

	scanning map[string]bool
	spin     spinner.Model
	blasting bool
}

func newAssetsView(s *SharedState) *assetsView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)

	v := &assetsView{
		state:    s,
		scanning: map[string]bool{},
		spin:     sp,
	}
	v.reload()
	return v
}

func (v *assetsView) ID() ViewID    { return ViewAssets }
func (v *assetsView) Title() string { return "Asset Discovery" }

func (v *assetsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "send letters")),
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "download letter")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mark posted")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scan reply")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no assets")),
	}
}

func (v *assetsView) Init() tea.Cmd { return nil }

func (v *assetsView) reload() {
	v.assetDocs = v.state.App.Store.AssetDocuments()
	v.banks = v.state.App.Store.Banks()
	if v.cursor >= v.rowCount() {
		v.cursor = 0
	}
}

// Rows are asset documents first, banks after.
func (v *assetsView) rowCount() int { return len(v.assetDocs) + len(v.banks) }

func (v *assetsView) selectedBank() (domain.BankStatus, bool) {
	i := v.cursor - len(v.assetDocs)
	if i < 0 || i >= len(v.banks) {
		return domain.BankStatus{}, false
	}
	return v.banks[i], true
}

// ── commands ─────────────────────────────────────────────────────────────────

func (v *assetsView) broadcastCmd() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		result, err := app.Letters.Broadcast(context.Background())
		return broadcastDoneMsg{result: result, err: err}
	}
}

func (v *assetsView) scanCmd(bankID, bankName string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		value, err := app.Scanner.Scan(context.Background(), bankID, bankName)
		return scanDoneMsg{bankID: bankID, value: value, err: err}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *assetsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
		return v, nil

	case spinner.TickMsg:
		if len(v.scanning) == 0 && !v.blasting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case broadcastDoneMsg:
		v.blasting = false
		v.reload()
		if msg.err != nil {
			return v, flash("Select at least one bank first.")
		}
		return v, tea.Batch(refreshViews(),
			flash(fmt.Sprintf("Enquiry letters generated for %d banks.", msg.result.Banks)))

	case scanDoneMsg:
		delete(v.scanning, msg.bankID)
		v.reload()
		if msg.err != nil {
			if errors.Is(msg.err, outreach.ErrScanInFlight) {
				return v, flash("That reply is already being scanned.")
			}
			return v, flash("Scan failed: " + msg.err.Error())
		}
		return v, tea.Batch(refreshViews(),
			flash("Reply scanned: "+formatter.Money(msg.value)+" found."))

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *assetsView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < v.rowCount()-1 {
			v.cursor++
		}
	case " ", "enter":
		if v.cursor < len(v.assetDocs) {
			doc := v.assetDocs[v.cursor]
			v.state.App.Store.SetAssetDocumentUploaded(doc.ID, !doc.Uploaded)
			v.reload()
			return v, refreshViews()
		}
		if b, ok := v.selectedBank(); ok {
			v.state.App.Store.ToggleBankSelection(b.ID)
			v.reload()
		}
	case "b":
		if v.blasting {
			return v, nil
		}
		v.blasting = true
		return v, tea.Batch(v.spin.Tick, v.broadcastCmd())
	case "l":
		if b, ok := v.selectedBank(); ok {
			v.state.App.Letters.DownloadLetter(b.ID)
			v.reload()
			return v, flash("Enquiry letter for " + b.Name + " downloaded.")
		}
	case "m":
		n := v.state.App.Letters.MarkLettersSent()
		if n == 0 {
			return v, flash("No generated letters to mark as posted.")
		}
		v.reload()
		return v, flash(fmt.Sprintf("%d letters marked as posted.", n))
	case "s":
		b, ok := v.selectedBank()
		if !ok {
			return v, flash("Move the cursor onto a bank to scan its reply.")
		}
		if v.scanning[b.ID] {
			return v, flash("That reply is already being scanned.")
		}
		v.scanning[b.ID] = true
		return v, tea.Batch(v.spin.Tick, v.scanCmd(b.ID, b.Name))
	case "n":
		if b, ok := v.selectedBank(); ok {
			v.state.App.Scanner.MarkNoAssets(b.ID)
			v.reload()
			return v, refreshViews()
		}
	}
	return v, nil
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *assetsView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString("  " + formatter.StyleHeader.Render("ASSET DOCUMENTS") + "\n\n")
	for i, d := range v.assetDocs {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("  %s%s %-28s %s\n",
			cursor,
			formatter.UploadMark(d.Uploaded),
			nameStyle.Render(d.Name),
			formatter.Dim(formatter.Money(d.Value)),
		))
	}

	b.WriteString("\n  " + formatter.StyleHeader.Render("BANK OUTREACH") + "\n\n")
	for i, bank := range v.banks {
		row := len(v.assetDocs) + i
		cursor := "  "
		nameStyle := formatter.StyleFg
		if row == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		mark := formatter.UploadMark(bank.Selected)
		status := formatter.OutreachPill(bank.Status)
		if v.scanning[bank.ID] {
			status = v.spin.View() + " " + formatter.Dim("Scanning reply...")
		}

		b.WriteString(fmt.Sprintf("  %s%s %-24s %s\n", cursor, mark, nameStyle.Render(bank.Name), status))
	}

	if v.blasting {
		b.WriteString("\n  " + v.spin.View() + " " + formatter.Dim("Sending enquiry letters..."))
	}

	b.WriteString("\n  " + formatter.StyleHeader.Render("DISCOVERED ASSETS") + "\n\n")
	assets := v.state.App.Store.DiscoveredAssets()
	content := formatter.FormatDiscoveredAssets(assets, v.state.App.Store.TotalEstateValue())
	for _, line := range strings.Split(content, "\n") {
		b.WriteString("  " + line + "\n")
	}

	return b.String()
}
