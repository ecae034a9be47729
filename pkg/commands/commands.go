package commands

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "nudge",
		Short: "Natural language reminders on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addKey(topLevel)
	addParse(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addSnooze(topLevel)
	addCancel(topLevel)
	addComplete(topLevel)
	addAction(topLevel)
	addRenew(topLevel)
	addStats(topLevel)
	addVersion(topLevel)
}
