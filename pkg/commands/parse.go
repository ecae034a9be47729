package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/nudge/pkg/runner/parse"
)

func addParse(topLevel *cobra.Command) {
	var text string

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Preview how a phrase would be interpreted",
		Example: `
nudge parse "remind me to call mom in 30 minutes"
nudge parse "urgent meeting prep tomorrow at 9 AM"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires text to parse")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := parse.Parse{Text: text}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
