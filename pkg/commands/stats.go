package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nudge/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the live schedule",
		Example: `
nudge stats
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			tk, err := newToolkit()
			if err != nil {
				return err
			}

			s := stats.Stats{Manager: tk.Manager}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
