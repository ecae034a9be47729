package reminder

import "time"

// Recurrence is the parser's view of a repeating trigger. Weekday follows
// the 1=Sunday .. 7=Saturday convention and is only set for weekly.
type Recurrence struct {
	Kind    Kind `json:"kind"`
	Weekday int  `json:"weekday,omitempty"`
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
}

// Diagnostics records which semantic fields the parser actually found in
// the input, as opposed to defaulted.
type Diagnostics struct {
	ActionFound       bool `json:"actionFound"`
	TimeFound         bool `json:"timeFound"`
	CategoryDetected  bool `json:"categoryDetected"`
	PriorityDetected  bool `json:"priorityDetected"`
	RecurringDetected bool `json:"recurringDetected"`
}

// Draft is an unconfirmed, parser-produced reminder candidate. It is owned
// by the caller until confirmed into a Record and never touches durable
// state.
type Draft struct {
	OriginalText    string      `json:"originalText"`
	ActionText      string      `json:"actionText"`
	TriggerSeconds  int64       `json:"triggerSeconds"`
	TriggerInstant  *Timestamp  `json:"triggerInstant,omitempty"`
	TimeDescription string      `json:"timeDescription"`
	Category        Category    `json:"category"`
	Priority        Priority    `json:"priority"`
	Recurrence      *Recurrence `json:"recurrence,omitempty"`
	Confidence      int         `json:"confidence"`
	Success         bool        `json:"success"`
	Diagnostics     Diagnostics `json:"diagnostics"`
}

// FromDraft turns a confirmed draft into an unscheduled record, deriving
// the kind and schedule union from the recurrence descriptor. The schedule
// is validated; recurrence fields out of range surface as
// ErrInvalidRecurrence.
func FromDraft(d *Draft, now time.Time) (*Record, error) {
	kind := Once
	var sched Schedule

	if rec := d.Recurrence; rec != nil {
		kind = rec.Kind
		sched = Schedule{Hour: rec.Hour, Minute: rec.Minute, Weekday: rec.Weekday}
	} else if d.TriggerInstant != nil && !d.TriggerInstant.IsZero() {
		sched = Schedule{At: d.TriggerInstant}
	} else {
		secs := d.TriggerSeconds
		if secs < MinIntervalSeconds {
			secs = MinIntervalSeconds
		}
		sched = Schedule{At: At(now.Add(time.Duration(secs) * time.Second))}
	}

	if err := sched.Validate(kind); err != nil {
		return nil, err
	}

	r := New(d.ActionText, kind, sched)
	r.Category = d.Category
	r.Priority = d.Priority
	return r, nil
}
