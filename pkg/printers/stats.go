package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/nudge/pkg/lifecycle"
	"tableflip.dev/nudge/pkg/reminder"
)

// Stats renders the aggregate schedule counts.
func (pp *PrettyPrint) Stats(st lifecycle.Stats) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("active", fmt.Sprintf("%d", st.Active))
	tbl.AddRow("snoozed", fmt.Sprintf("%d", st.Snoozed))
	tbl.AddRow("live alarms", fmt.Sprintf("%d", st.LiveAlarms))
	_, _ = fmt.Fprintln(color.Output, tbl)

	if len(st.ByKind) == 0 {
		return
	}
	f := color.New(color.Faint)
	_, _ = f.Println("  active by kind:")
	for _, kind := range []reminder.Kind{reminder.Once, reminder.Daily, reminder.Weekly, reminder.Interval} {
		if n, ok := st.ByKind[kind]; ok {
			_, _ = f.Printf("    %-9s %d\n", kind, n)
		}
	}
}
