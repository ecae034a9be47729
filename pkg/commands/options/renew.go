package options

import (
	"github.com/spf13/cobra"
)

// RenewOptions controls the renewal debounce.
type RenewOptions struct {
	Force bool
}

func AddRenewArgs(cmd *cobra.Command, o *RenewOptions) {
	cmd.Flags().BoolVarP(&o.Force, "force", "f", false,
		"Renew even if already renewed today.")
}
