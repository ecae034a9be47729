// Package get lists stored reminders, optionally following live changes.
package get

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/nudge/pkg/printers"
	"tableflip.dev/nudge/pkg/reminder"
	"tableflip.dev/nudge/pkg/store"
)

type Get struct {
	ShowKey bool
	State   string
	Watch   bool

	Store *store.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}

	state, err := n.stateFilter()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowKey: n.ShowKey}
	n.render(ctx, pp, state)

	if !n.Watch {
		return nil
	}

	events, err := n.Store.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			n.render(ctx, pp, state)
		}
	}
}

func (n *Get) render(ctx context.Context, pp printers.PrettyPrint, state reminder.State) {
	all := n.Store.Records().List(ctx)
	if state != "" {
		kept := make([]*reminder.Record, 0, len(all))
		for _, r := range all {
			if r.State == state {
				kept = append(kept, r)
			}
		}
		all = kept
	}

	pp.NewLine()
	pp.Title("reminders")
	pp.Records(all...)
}

func (n *Get) stateFilter() (reminder.State, error) {
	if n.State == "" {
		return "", nil
	}
	for _, s := range []reminder.State{reminder.Active, reminder.Snoozed, reminder.Completed, reminder.Cancelled} {
		if strings.EqualFold(n.State, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown state %q", n.State)
}
