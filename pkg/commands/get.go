package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nudge/pkg/commands/options"
	"tableflip.dev/nudge/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	so := &options.StateOptions{}
	ko := &options.KeyOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List reminders",
		Example: `
nudge get
nudge get --state active
nudge get --watch
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			tk, err := newToolkit()
			if err != nil {
				return err
			}

			s := get.Get{
				ShowKey: ko.ShowKey,
				State:   so.State,
				Watch:   so.Watch,
				Store:   tk.Store,
			}
			return s.Do(context.Background())
		},
	}

	options.AddStateArgs(cmd, so)
	options.AddShowKeyArgs(cmd, ko)

	topLevel.AddCommand(cmd)
}
