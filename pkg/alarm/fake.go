package alarm

import (
	"context"
	"fmt"
	"sync"
)

// Fake is an in-memory Backend test double shared by the scheduling and
// lifecycle tests. FailKinds makes Register reject specific trigger kinds
// so strategy fallback can be exercised.
type Fake struct {
	FailKinds map[TriggerKind]bool
	FailAll   bool

	mu        sync.Mutex
	next      int
	alarms    map[string]Registration
	Cancelled []string
}

func NewFake() *Fake {
	return &Fake{alarms: make(map[string]Registration)}
}

func (f *Fake) Register(ctx context.Context, t Trigger, p Payload) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailAll || f.FailKinds[t.Kind()] {
		return "", fmt.Errorf("fake backend: %s trigger rejected", t.Kind())
	}
	f.next++
	id := fmt.Sprintf("alarm-%d", f.next)
	f.alarms[id] = Registration{ID: id, Trigger: t}
	return id, nil
}

func (f *Fake) Cancel(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.alarms, id)
	f.Cancelled = append(f.Cancelled, id)
	return nil
}

func (f *Fake) List(ctx context.Context) ([]Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	regs := make([]Registration, 0, len(f.alarms))
	for _, r := range f.alarms {
		regs = append(regs, r)
	}
	return regs, nil
}

// Live reports the number of registered alarms.
func (f *Fake) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.alarms)
}

// Has reports whether the identifier is still registered.
func (f *Fake) Has(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.alarms[id]
	return ok
}
