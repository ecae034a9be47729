// Package add interprets a phrase and schedules the resulting reminder.
package add

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/nudge/pkg/parse"
	"tableflip.dev/nudge/pkg/printers"
	"tableflip.dev/nudge/pkg/reminder"
	"tableflip.dev/nudge/pkg/schedule"
)

type Add struct {
	Text string

	// Overrides; empty/zero means keep what the parser decided.
	Category string
	Priority string
	In       time.Duration

	// Yes skips the low-confidence refusal.
	Yes     bool
	ShowKey bool

	Engine *schedule.Engine
}

func (n *Add) Do(ctx context.Context) error {
	if n.Text == "" {
		return errors.New("can not add, no text")
	}
	if n.Engine == nil {
		return errors.New("can not add, no engine")
	}

	now := time.Now()
	d := parse.New().Parse(n.Text, now)
	warnings := parse.Validate(d, now)

	pp := printers.PrettyPrint{ShowKey: n.ShowKey}
	pp.NewLine()
	pp.Title(n.Text)
	pp.Draft(d, warnings)

	if !d.Success && !n.Yes {
		return fmt.Errorf("confidence %d too low, rephrase or pass --yes", d.Confidence)
	}

	if n.In > 0 {
		d.Recurrence = nil
		d.TriggerInstant = reminder.At(now.Add(n.In))
		d.TriggerSeconds = int64(n.In / time.Second)
		d.TimeDescription = parse.Describe(now, d.TriggerInstant.Time)
	}

	rec, err := reminder.FromDraft(d, now)
	if err != nil {
		return err
	}
	if err := n.override(rec); err != nil {
		return err
	}

	if err := n.Engine.Schedule(ctx, rec); err != nil {
		return err
	}

	pp.NewLine()
	pp.Records(rec)
	return nil
}

func (n *Add) override(rec *reminder.Record) error {
	if n.Category != "" {
		c, err := reminder.ParseCategory(n.Category)
		if err != nil {
			return err
		}
		rec.Category = c
	}
	if n.Priority != "" {
		p, err := reminder.ParsePriority(n.Priority)
		if err != nil {
			return err
		}
		rec.Priority = p
	}
	return nil
}
