package options

import (
	"github.com/spf13/cobra"
)

// AddOptions captures overrides applied after parsing.
type AddOptions struct {
	Text     string
	Category string
	Priority string
	In       string
	Yes      bool
}

func AddAddArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVar(&o.Category, "category", "",
		"Override the detected category.")
	cmd.Flags().StringVar(&o.Priority, "priority", "",
		"Override the detected priority.")
	cmd.Flags().StringVar(&o.In, "in", "",
		"Override the trigger with a delay from now, e.g. 45m, 2h.")
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Schedule even when parse confidence is low.")
}
