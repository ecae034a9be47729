// Package cancel retires a reminder and releases its alarms.
package cancel

import (
	"context"
	"errors"

	"tableflip.dev/nudge/pkg/lifecycle"
	"tableflip.dev/nudge/pkg/printers"
	"tableflip.dev/nudge/pkg/store"
)

type Cancel struct {
	Key     string
	ShowKey bool

	Manager *lifecycle.Manager
	Records *store.Records
}

func (n *Cancel) Do(ctx context.Context) error {
	if n.Key == "" {
		return errors.New("can not cancel, no key")
	}
	if n.Manager == nil {
		return errors.New("can not cancel, no manager")
	}

	if err := n.Manager.Cancel(ctx, n.Key); err != nil {
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
