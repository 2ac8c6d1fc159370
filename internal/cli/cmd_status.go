package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytlim/estatepath/internal/cli/formatter"
	"github.com/ytlim/estatepath/internal/triage"
)

func newStatusCmd(app *App) *cobra.Command {
	var showAssets bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the module roadmap and discovered estate value",
		RunE: func(cmd *cobra.Command, args []string) error {
			pathTitle := ""
			if app.Store.TriageComplete() {
				pathTitle = triage.Info(app.Store.TriageResult().LegalPath).Title
			}

			fmt.Fprint(app.out(), formatter.FormatRoadmap(
				app.Store.Modules(),
				pathTitle,
				app.Store.TotalEstateValue(),
			))

			if showAssets {
				fmt.Fprint(app.out(), "\n"+formatter.Header("Discovered Assets")+"\n\n")
				fmt.Fprintln(app.out(), formatter.FormatDiscoveredAssets(
					app.Store.DiscoveredAssets(),
					app.Store.TotalEstateValue(),
				))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAssets, "assets", false, "include the discovered asset schedule")
	return cmd
}
