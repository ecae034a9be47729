package options

import (
	"github.com/spf13/cobra"
)

// SnoozeOptions carries the snooze delay, e.g. "10m" or "1h".
type SnoozeOptions struct {
	For string
}

func AddSnoozeArgs(cmd *cobra.Command, o *SnoozeOptions) {
	cmd.Flags().StringVar(&o.For, "for", "",
		"How long to snooze, e.g. 10m, 1h, 45s. Defaults to 10m.")
}
