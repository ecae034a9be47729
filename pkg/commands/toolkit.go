package commands

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/nudge/pkg/alarm"
	"tableflip.dev/nudge/pkg/lifecycle"
	"tableflip.dev/nudge/pkg/logger"
	"tableflip.dev/nudge/pkg/schedule"
	"tableflip.dev/nudge/pkg/store"
)

// toolkit wires the store, the scheduling engine, and the lifecycle manager
// the same way for every verb. Alarms registered by a CLI invocation live on
// the in-process timer backend and only ring while the process runs; `get
// --watch` keeps a session alive for them.
type toolkit struct {
	Store   *store.Store
	Engine  *schedule.Engine
	Manager *lifecycle.Manager
}

func newToolkit() (*toolkit, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	s, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}

	log := logger.New("nudge")

	timer := alarm.NewTimer(log, func(p alarm.Payload) {
		y := color.New(color.FgHiYellow, color.Bold)
		_, _ = y.Fprintf(color.Output, "\n⏰ %s\n", p.Title)
		_, _ = fmt.Fprintf(color.Output, "   nudge snooze %s | nudge complete %s\n", p.Key, p.Key)
	})

	engine := &schedule.Engine{
		Backend: timer,
		Records: s.Records(),
		Log:     log,
	}
	manager := &lifecycle.Manager{
		Records: s.Records(),
		Snoozes: s.Snoozes(),
		Backend: timer,
		Engine:  engine,
		Log:     log,
	}

	return &toolkit{Store: s, Engine: engine, Manager: manager}, nil
}
