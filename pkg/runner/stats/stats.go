// Package stats summarizes the live schedule.
package stats

import (
	"context"
	"errors"

	"tableflip.dev/nudge/pkg/lifecycle"
	"tableflip.dev/nudge/pkg/printers"
)

type Stats struct {
	Manager *lifecycle.Manager
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Manager == nil {
		return errors.New("can not report, no manager")
	}

	st, err := n.Manager.Stats(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("schedule")
	pp.Stats(st)
	return nil
}
