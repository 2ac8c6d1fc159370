package formatter

import (
	"fmt"
	"strings"

	"github.com/ytlim/estatepath/internal/domain"
)

// FormatRoadmap renders the module roadmap as plain styled text for the
// status command.
func FormatRoadmap(modules []domain.Module, pathTitle string, estateTotal int64) string {
	var b strings.Builder

	b.WriteString(Header("Estate Roadmap"))
	b.WriteString("\n\n")

	if pathTitle != "" {
		b.WriteString(Dim("Legal pathway: ") + PathBadge(pathTitle) + "\n\n")
	}

	rows := make([][]string, 0, len(modules))
	for _, m := range modules {
		progress := RenderCount(m.Progress, m.Total)
		if m.Status == domain.ModuleLocked {
			progress = Dim("--")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.ID),
			m.Title,
			m.Description,
			ModulePill(m.Status),
			progress,
		})
	}
	b.WriteString(RenderTable([]string{"#", "Module", "Description", "Status", "Progress"}, rows))

	b.WriteString("\n")
	b.WriteString(Dim("Estate value discovered: ") + MoneyStyled(estateTotal))
	b.WriteString("\n")

	return b.String()
}

// FormatDiscoveredAssets renders the discovered asset rows and total.
func FormatDiscoveredAssets(assets []domain.DiscoveredAsset, total int64) string {
	if len(assets) == 0 {
		return Dim("No assets discovered yet.")
	}

	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, []string{a.Institution, a.AccountType, Money(a.Value)})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"Institution", "Type", "Value"}, rows))
	b.WriteString("\n")
	b.WriteString(Bold("Total: ") + MoneyStyled(total))
	return b.String()
}
