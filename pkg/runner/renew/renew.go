// Package renew re-registers recurring alarms that have fallen behind.
//
// Renewal is pull-based: it runs when asked, debounced to once per calendar
// day through the store's meta namespace, so a machine that slept through
// its triggers catches up the next time any command runs with --renew or
// the verb is invoked directly.
package renew

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/nudge/pkg/lifecycle"
	"tableflip.dev/nudge/pkg/schedule"
	"tableflip.dev/nudge/pkg/store"
)

type Renew struct {
	// Force skips the once-per-day debounce.
	Force bool

	Engine  *schedule.Engine
	Manager *lifecycle.Manager
	Records *store.Records
	Meta    *store.Meta
}

func (n *Renew) Do(ctx context.Context) error {
	if n.Engine == nil || n.Records == nil || n.Meta == nil {
		return errors.New("can not renew, missing collaborators")
	}

	now := time.Now()
	day := store.Day(now)

	last, err := n.Meta.LastRenewDay()
	if err != nil {
		return err
	}
	f := color.New(color.Faint)
	if last == day && !n.Force {
		_, _ = f.Println("already renewed today")
		return nil
	}

	renewed := 0
	for _, rec := range n.Records.List(ctx) {
		ok, err := n.Engine.RenewIfDue(ctx, rec, now)
		if err != nil {
			return fmt.Errorf("renew %s: %w", rec.Key, err)
		}
		if ok {
			renewed++
		}
	}

	removed := 0
	if n.Manager != nil {
		removed = n.Manager.CleanupExpired(ctx, now)
	}

	if err := n.Meta.SetLastRenewDay(day); err != nil {
		return err
	}

	_, _ = f.Printf("renewed %d, cleaned %d expired snoozes\n", renewed, removed)
	return nil
}
