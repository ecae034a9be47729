// Package complete marks a reminder done and releases its alarms.
package complete

import (
	"context"
	"errors"

	"tableflip.dev/nudge/pkg/lifecycle"
	"tableflip.dev/nudge/pkg/printers"
	"tableflip.dev/nudge/pkg/store"
)

type Complete struct {
	Key     string
	ShowKey bool

	Manager *lifecycle.Manager
	Records *store.Records
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Key == "" {
		return errors.New("can not complete, no key")
	}
	if n.Manager == nil {
		return errors.New("can not complete, no manager")
	}

	if err := n.Manager.Complete(ctx, n.Key); err != nil {
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
