package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/nudge/pkg/commands/options"
	"tableflip.dev/nudge/pkg/runner/add"
	"tableflip.dev/nudge/pkg/timeutil"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	ko := &options.KeyOptions{}

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Interpret a phrase and schedule the reminder",
		Example: `
nudge add remind me to call mom in 30 minutes
nudge add take medicine at 7 PM
nudge add exercise at 8 AM daily
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires text to interpret")
			}
			ao.Text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			var in time.Duration
			if ao.In != "" {
				var err error
				if in, _, err = timeutil.ParseDelay(ao.In); err != nil {
					return err
				}
			}
			tk, err := newToolkit()
			if err != nil {
				return err
			}

			s := add.Add{
				Text:     ao.Text,
				Category: ao.Category,
				Priority: ao.Priority,
				In:       in,
				Yes:      ao.Yes,
				ShowKey:  ko.ShowKey,
				Engine:   tk.Engine,
			}
			return s.Do(context.Background())
		},
	}

	options.AddAddArgs(cmd, ao)
	options.AddShowKeyArgs(cmd, ko)

	topLevel.AddCommand(cmd)
}
