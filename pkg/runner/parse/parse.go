// Package parse previews how a phrase would be interpreted without
// persisting anything.
package parse

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/nudge/pkg/parse"
	"tableflip.dev/nudge/pkg/printers"
)

type Parse struct {
	Text string
}

func (n *Parse) Do(ctx context.Context) error {
	if n.Text == "" {
		return errors.New("can not parse, no text")
	}

	now := time.Now()
	d := parse.New().Parse(n.Text, now)
	warnings := parse.Validate(d, now)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(n.Text)
	pp.Draft(d, warnings)

	return nil
}
