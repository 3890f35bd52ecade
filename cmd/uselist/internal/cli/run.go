package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/uselist/cmd/uselist/internal/config"
	"github.com/go-drift/uselist/cmd/uselist/internal/runner"
	"github.com/go-drift/uselist/cmd/uselist/internal/todo"
)

// newRunCommand creates the "run" subcommand that replays the configured script.
func newRunCommand(opts *Options) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay the script from uselist.yaml and print the rendered list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			resolved, err := config.Resolve(opts.ConfigPath)
			if err != nil {
				return err
			}
			logger.Info("replaying script",
				"app", resolved.AppName,
				"items", len(resolved.Items),
				"steps", len(resolved.Script),
			)

			r := runner.New(todo.App{Title: resolved.AppName, Initial: resolved.Items}, logger)
			defer r.Close()

			out := cmd.OutOrStdout()
			results, err := r.Run(cmd.Context(), resolved.Script)
			if !quiet {
				for _, res := range results {
					fmt.Fprintf(out, "%d %s: %s\n", res.Index, res.Op, res.Summary)
				}
			}
			if err != nil {
				return err
			}

			rows := r.Rows()
			fmt.Fprintf(out, "%s: %d todos\n", resolved.AppName, len(rows))
			if len(rows) > 0 {
				fmt.Fprintln(out, strings.Join(rows, "\n"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the final list")

	return cmd
}
