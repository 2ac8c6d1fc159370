package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ytlim/estatepath/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// ModulePill returns a colored status indicator for a roadmap module.
func ModulePill(status domain.ModuleStatus) string {
	switch status {
	case domain.ModuleCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.ModuleInProgress:
		return StyleYellow.Render("● In Progress")
	case domain.ModulePending:
		return StyleBlue.Render("○ Pending")
	case domain.ModuleLocked:
		return StyleDim.Render("🔒 Locked")
	default:
		return StyleDim.Render(string(status))
	}
}

// OutreachPill returns a colored status indicator for a bank's enquiry loop.
func OutreachPill(status domain.OutreachStatus) string {
	switch status {
	case domain.OutreachNotStarted:
		return StyleDim.Render("○ Not Started")
	case domain.OutreachLetterGenerated:
		return StyleBlue.Render("● Letter Ready")
	case domain.OutreachSent:
		return StyleYellow.Render("➤ Sent")
	case domain.OutreachReplyFound:
		return StyleGreen.Render("✔ Assets Found")
	case domain.OutreachReplyNotFound:
		return StyleDim.Render("✖ No Assets")
	default:
		return StyleDim.Render(string(status))
	}
}

// BundlePill returns a colored status indicator for a bundle document.
func BundlePill(status domain.BundleDocStatus) string {
	switch status {
	case domain.BundleDownloaded:
		return StyleGreen.Render("✔ Downloaded")
	case domain.BundleReady:
		return StyleBlue.Render("● Ready")
	case domain.BundleDrafting:
		return StyleDim.Render("○ Drafting")
	default:
		return StyleDim.Render(string(status))
	}
}

// UploadMark returns a checkbox-style marker for an upload flag.
func UploadMark(uploaded bool) string {
	if uploaded {
		return StyleGreen.Render("[✔]")
	}
	return StyleDim.Render("[ ]")
}

// Money renders a dollar amount with thousands separators, like $162,500.
func Money(value int64) string {
	neg := value < 0
	if neg {
		value = -value
	}

	digits := fmt.Sprintf("%d", value)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := "$" + b.String()
	if neg {
		out = "-" + out
	}
	return out
}

// MoneyStyled renders Money in the foreground bold style.
func MoneyStyled(value int64) string {
	return StyleBold.Render(Money(value))
}

// PathBadge returns a purple-styled legal path label.
func PathBadge(title string) string {
	if title == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(title)
}
