// Package key prints the mark and signifier legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/nudge/pkg/glyph"
)

// Key prints the legend describing state marks and priority signifiers.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	all := glyph.DefaultGlyphs()
	k.table(ctx, all, false)
	_, _ = fmt.Fprintln(color.Output, "")
	k.table(ctx, all, true)

	fmt.Println("")
	return nil
}

func (k *Key) table(_ context.Context, glyfs []glyph.Glyph, sig bool) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if sig {
		tbl.AddRow(bold.Sprint("Signifiers"), bold.Sprint("Meaning"))
	} else {
		tbl.AddRow(bold.Sprint("     Marks"), bold.Sprint("Meaning"))
	}
	for _, v := range glyfs {
		if sig == v.Signifier {
			tbl.AddRow(v.Symbol, v.Meaning)
		}
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
}
