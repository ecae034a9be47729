// Package snooze pushes a reminder's next trigger into the future.
package snooze

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/nudge/pkg/lifecycle"
	"tableflip.dev/nudge/pkg/printers"
	"tableflip.dev/nudge/pkg/store"
)

type Snooze struct {
	Key     string
	For     time.Duration
	ShowKey bool

	Manager *lifecycle.Manager
	Records *store.Records
}

func (n *Snooze) Do(ctx context.Context) error {
	if n.Key == "" {
		return errors.New("can not snooze, no key")
	}
	if n.Manager == nil {
		return errors.New("can not snooze, no manager")
	}

	if err := n.Manager.Snooze(ctx, n.Key, n.For); err != nil {
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
