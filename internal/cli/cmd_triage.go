package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytlim/estatepath/internal/cli/formatter"
	"github.com/ytlim/estatepath/internal/triage"
)

func newTriageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "triage",
		Short: "Answer the triage questionnaire and determine the legal pathway",
		RunE: func(cmd *cobra.Command, args []string) error {
			form, values := triageForm()
			if err := form.Run(); err != nil {
				return err
			}

			result := triage.BuildResult(collectAnswers(values))
			app.Store.SetTriageResult(result)

			info := triage.Info(result.LegalPath)
			fmt.Fprintln(app.out(), formatter.RenderBox(info.Title, info.Description))
			return nil
		},
	}
}
