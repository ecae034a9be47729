// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// KeyOptions controls whether record keys are shown alongside output.
type KeyOptions struct {
	ShowKey bool
}

func AddShowKeyArgs(cmd *cobra.Command, o *KeyOptions) {
	cmd.Flags().BoolVarP(&o.ShowKey, "show-key", "k", false,
		"Show the key of each reminder.")
}
