package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nudge/pkg/commands/options"
	"tableflip.dev/nudge/pkg/runner/renew"
)

func addRenew(topLevel *cobra.Command) {
	ro := &options.RenewOptions{}

	cmd := &cobra.Command{
		Use:   "renew",
		Short: "Re-register recurring alarms that have fallen behind",
		Long: "Walks every recurring reminder and re-registers any whose next " +
			"occurrence has passed, for example after the machine slept through " +
			"its triggers. Runs at most once per day unless --force is given.",
		Example: `
nudge renew
nudge renew --force
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			tk, err := newToolkit()
			if err != nil {
				return err
			}

			s := renew.Renew{
				Force:   ro.Force,
				Engine:  tk.Engine,
				Manager: tk.Manager,
				Records: tk.Store.Records(),
				Meta:    tk.Store.Meta(),
			}
			return s.Do(context.Background())
		},
	}

	options.AddRenewArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
