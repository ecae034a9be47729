package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/nudge/pkg/commands/options"
	"tableflip.dev/nudge/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	ko := &options.KeyOptions{}
	var key string

	cmd := &cobra.Command{
		Use:     "complete <key>",
		Aliases: []string{"done"},
		Short:   "Mark a reminder done",
		Example: `
nudge complete 171dff69-f8b9-9dca-0000-171dff69f8b9
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires exactly one reminder key")
			}
			key = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			tk, err := newToolkit()
			if err != nil {
				return err
			}

			s := complete.Complete{
				Key:     key,
				ShowKey: ko.ShowKey,
				Manager: tk.Manager,
				Records: tk.Store.Records(),
			}
			return s.Do(context.Background())
		},
	}

	options.AddShowKeyArgs(cmd, ko)

	topLevel.AddCommand(cmd)
}
