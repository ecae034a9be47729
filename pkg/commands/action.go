package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/nudge/pkg/commands/options"
	"tableflip.dev/nudge/pkg/lifecycle"
	"tableflip.dev/nudge/pkg/runner/action"
)

func addAction(topLevel *cobra.Command) {
	ko := &options.KeyOptions{}
	var key, act string

	cmd := &cobra.Command{
		Use:   "action <key> <action>",
		Short: "Apply a notification button press to a reminder",
		Example: `
nudge action 171dff69-f8b9-9dca-0000-171dff69f8b9 snooze_15
nudge action 171dff69-f8b9-9dca-0000-171dff69f8b9 done
`,
		ValidArgs: []string{
			lifecycle.ActionSnooze5, lifecycle.ActionSnooze15, lifecycle.ActionSnooze60,
			lifecycle.ActionDismiss, lifecycle.ActionDone, lifecycle.ActionCancel,
		},
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 2 {
				return errors.New("requires a reminder key and an action")
			}
			key, act = args[0], args[1]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			tk, err := newToolkit()
			if err != nil {
				return err
			}

			s := action.Action{
				Key:     key,
				Action:  act,
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
