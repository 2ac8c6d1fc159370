package cli

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ytlim/estatepath/internal/agent"
	"github.com/ytlim/estatepath/internal/catalog"
	"github.com/ytlim/estatepath/internal/closing"
	"github.com/ytlim/estatepath/internal/legal"
	"github.com/ytlim/estatepath/internal/outreach"
	"github.com/ytlim/estatepath/internal/state"
)

// App holds references to all services used by CLI commands and views.
type App struct {
	Catalog   *catalog.Catalog
	Store     *state.Store
	Letters   *outreach.LetterService
	Scanner   *outreach.ReplyScanner
	Bundle    *legal.BundleService
	Checklist *closing.Checklist
	Chat      *agent.ChatService

	// Out receives plain command output. Defaults to stdout.
	Out io.Writer

	// Interactive enables the TUI when the root command runs bare.
	Interactive bool
}

func (a *App) out() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

// NewRootCmd creates the top-level "estatepath" command and registers all
// subcommands against the provided App. Running it bare starts the TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "estatepath",
		Short: "Guided estate administration for Singapore",
		Long: "estatepath walks you through administering a deceased family member's estate:\n" +
			"triage of the legal pathway, document gathering, bank outreach, asset\n" +
			"discovery, the court application bundle, and closing matters.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return cmd.Help()
			}
			p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	root.AddCommand(
		newTriageCmd(app),
		newStatusCmd(app),
		newAskCmd(app),
	)

	return root
}
