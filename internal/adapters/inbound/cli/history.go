package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/history"
	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		jsonOutput bool
		path       string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs",
		Long:  "List the runs recorded with check --record, oldest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := history.New().Load(path)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&path, "path", ".", "Project path")

	return cmd
}
