package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/nudge/pkg/glyph"
	"tableflip.dev/nudge/pkg/reminder"
)

type PrettyPrint struct {
	ShowKey bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-0000-171dff69f8b9  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowKey {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Draft renders a parsed draft with its confidence, diagnostics note, and
// review warnings.
func (pp *PrettyPrint) Draft(d *reminder.Draft, warnings []string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("action", d.ActionText)
	tbl.AddRow("when", d.TimeDescription)
	tbl.AddRow("category", string(d.Category))
	tbl.AddRow("priority", string(d.Priority))
	if rec := d.Recurrence; rec != nil {
		tbl.AddRow("repeats", describeRecurrence(rec))
	}
	tbl.AddRow("confidence", fmt.Sprintf("%d/100", d.Confidence))
	_, _ = fmt.Fprintln(color.Output, tbl)

	f := color.New(color.Faint)
	_, _ = f.Printf("  found: %s\n", diagnosticsNote(d.Diagnostics))

	if len(warnings) > 0 {
		y := color.New(color.FgHiYellow)
		for _, w := range warnings {
			_, _ = y.Printf("  ! %s\n", w)
		}
	}
}

// Records renders one line per record: mark, signifier, action, schedule.
func (pp *PrettyPrint) Records(records ...*reminder.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowKey {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, r := range records {
		if pp.ShowKey {
			_, _ = y.Print(r.Key)
			_, _ = y.Print(strings.Repeat(" ", max(1, len(spacing)-len(r.Key))))
		}
		line := fmt.Sprintf("%s %s %s  %s",
			glyph.Mark(r.State), glyph.Signifier(r.Priority), r.Action, describeSchedule(r))
		if r.State.Terminal() {
			line = glyph.Strike(line)
		}
		_, _ = t.Println(line)
	}
	_, _ = t.Println("")
}

func describeSchedule(r *reminder.Record) string {
	f := color.New(color.Faint)
	switch r.Kind {
	case reminder.Daily:
		return f.Sprintf("(daily %02d:%02d)", r.Schedule.Hour, r.Schedule.Minute)
	case reminder.Weekly:
		return f.Sprintf("(weekly %s %02d:%02d)",
			weekdayName(r.Schedule.Weekday), r.Schedule.Hour, r.Schedule.Minute)
	case reminder.Interval:
		return f.Sprintf("(every %ds)", r.Schedule.EverySeconds)
	default:
		if r.Schedule.At != nil {
			return f.Sprintf("(%s)", r.Schedule.At.Local().Format("Jan 2 3:04 PM"))
		}
		return ""
	}
}

func describeRecurrence(rec *reminder.Recurrence) string {
	if rec.Kind == reminder.Weekly {
		return fmt.Sprintf("weekly on %s at %02d:%02d", weekdayName(rec.Weekday), rec.Hour, rec.Minute)
	}
	return fmt.Sprintf("daily at %02d:%02d", rec.Hour, rec.Minute)
}

func weekdayName(weekday int) string {
	names := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if weekday < 1 || weekday > 7 {
		return "?"
	}
	return names[weekday-1]
}

func diagnosticsNote(d reminder.Diagnostics) string {
	parts := make([]string, 0, 5)
	add := func(found bool, label string) {
		if found {
			parts = append(parts, label)
		}
	}
	add(d.ActionFound, "action")
	add(d.TimeFound, "time")
	add(d.CategoryDetected, "category")
	add(d.PriorityDetected, "priority")
	add(d.RecurringDetected, "recurrence")
	if len(parts) == 0 {
		return "nothing; defaults applied"
	}
	return strings.Join(parts, ", ")
}
