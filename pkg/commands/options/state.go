package options

import (
	"github.com/spf13/cobra"
)

// StateOptions filters listings and optionally follows live changes.
type StateOptions struct {
	State string
	Watch bool
}

func AddStateArgs(cmd *cobra.Command, o *StateOptions) {
	cmd.Flags().StringVarP(&o.State, "state", "s", "",
		"Filter by state: active, snoozed, completed, cancelled.")
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep watching the store and re-render on change.")
}
