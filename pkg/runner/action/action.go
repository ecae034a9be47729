// Package action applies a notification button press to a reminder.
package action

import (
	"context"
	"errors"

	"tableflip.dev/nudge/pkg/lifecycle"
	"tableflip.dev/nudge/pkg/printers"
	"tableflip.dev/nudge/pkg/store"
)

type Action struct {
	Key     string
	Action  string
	ShowKey bool

	Manager *lifecycle.Manager
	Records *store.Records
}

func (n *Action) Do(ctx context.Context) error {
	if n.Key == "" {
		return errors.New("can not act, no key")
	}
	if n.Manager == nil {
		return errors.New("can not act, no manager")
	}

	if err := n.Manager.HandleAction(ctx, n.Key, n.Action); err != nil {
		return err
	}

	rec, ok, err := n.Records.Get(n.Key)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowKey: n.ShowKey}
	pp.NewLine()
	if ok {
		pp.Records(rec)
	}
	return nil
}
