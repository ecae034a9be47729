package glyph

import (
	"fmt"

	"tableflip.dev/nudge/pkg/reminder"
)

type Glyph struct {
	Key       string
	Symbol    string
	Meaning   string
	Signifier bool
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// DefaultGlyphs is the legend shown by `nudge key`: lifecycle marks first,
// then priority signifiers.
func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 8)

	g = append(g, Glyph{
		Key:     "o",
		Symbol:  "●",
		Meaning: "active reminder",
	}, Glyph{
		Key:     "z",
		Symbol:  "◦",
		Meaning: "snoozed reminder",
	}, Glyph{
		Key:     "x",
		Symbol:  "✘",
		Meaning: "completed",
	}, Glyph{
		Key:     "~",
		Symbol:  "⦵",
		Meaning: "cancelled",
	}, Glyph{
		Key:       "!!",
		Symbol:    "‼",
		Meaning:   "urgent",
		Signifier: true,
	}, Glyph{
		Key:       "!",
		Symbol:    "!",
		Meaning:   "high priority",
		Signifier: true,
	}, Glyph{
		Key:       "v",
		Symbol:    "˅",
		Meaning:   "low priority",
		Signifier: true,
	}, Glyph{
		Key:       " ",
		Symbol:    " ",
		Meaning:   "medium priority",
		Signifier: true,
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// Mark returns the lifecycle symbol for a record state.
func Mark(s reminder.State) string {
	switch s {
	case reminder.Active:
		return "●"
	case reminder.Snoozed:
		return "◦"
	case reminder.Completed:
		return "✘"
	case reminder.Cancelled:
		return "⦵"
	}
	return " "
}

// Signifier returns the priority symbol, blank for medium.
func Signifier(p reminder.Priority) string {
	switch p {
	case reminder.Urgent:
		return "‼"
	case reminder.High:
		return "!"
	case reminder.Low:
		return "˅"
	}
	return " "
}
