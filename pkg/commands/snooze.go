package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/nudge/pkg/commands/options"
	"tableflip.dev/nudge/pkg/runner/snooze"
	"tableflip.dev/nudge/pkg/timeutil"
)

func addSnooze(topLevel *cobra.Command) {
	so := &options.SnoozeOptions{}
	ko := &options.KeyOptions{}
	var key string

	cmd := &cobra.Command{
		Use:   "snooze <key>",
		Short: "Push a reminder's next trigger into the future",
		Example: `
nudge snooze 171dff69-f8b9-9dca-0000-171dff69f8b9
nudge snooze 171dff69-f8b9-9dca-0000-171dff69f8b9 --for 1h
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
			delay, _, err := timeutil.ParseDelay(so.For)
			if err != nil {
				return err
			}
			tk, err := newToolkit()
			if err != nil {
				return err
			}

			s := snooze.Snooze{
				Key:     key,
				For:     delay,
				ShowKey: ko.ShowKey,
				Manager: tk.Manager,
				Records: tk.Store.Records(),
			}
			return s.Do(context.Background())
		},
	}

	options.AddSnoozeArgs(cmd, so)
	options.AddShowKeyArgs(cmd, ko)

	topLevel.AddCommand(cmd)
}
