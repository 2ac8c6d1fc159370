package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ytlim/estatepath/internal/cli/formatter"
)

// askOptions holds flags for the ask command.
type askOptions struct {
	showSources bool
}

func registerAskFlags(fs *pflag.FlagSet, opts *askOptions) {
	fs.BoolVar(&opts.showSources, "sources", false, "show whether a web search was used and for what query")
}

func newAskCmd(app *App) *cobra.Command {
	opts := &askOptions{}

	cmd := &cobra.Command{
		Use:   `ask "<question>"`,
		Short: "Ask the estate assistant a question",
		Long: "Ask a free-form question about estate administration. The assistant may\n" +
			"search the web for current fees and procedures. General information only,\n" +
			"not legal advice.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply := app.Chat.Query(context.Background(), args[0])

			fmt.Fprintln(app.out(), reply.Response)
			if opts.showSources && reply.UsedSearch {
				fmt.Fprintln(app.out(), formatter.Dim("Searched the web for: "+reply.Query))
			}
			return nil
		},
	}

	registerAskFlags(cmd.Flags(), opts)
	return cmd
}
