// Package parse turns free-form reminder phrases into structured drafts.
//
// Each semantic field (action, time, category, priority, recurrence) is
// resolved independently so a missing or ambiguous field degrades the
// aggregate confidence instead of failing the parse. Parsing is pure given
// (text, now) and never returns an error for malformed input.
package parse

import (
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"tableflip.dev/nudge/pkg/reminder"
)

// Confidence share caps per field. The shares sum past 100, so the total
// is clamped.
const (
	capAction     = 30
	capTime       = 40
	capCategory   = 15
	capPriority   = 10
	capRecurrence = 15
)

const (
	actionPatternShare  = capAction
	actionFallbackShare = 10
	categoryDefaultShare = 5
	priorityDefaultShare = 5
)

// successThreshold: a draft is usable when confidence exceeds it.
const successThreshold = 40

// Parser resolves reminder drafts from raw text. Construct with New; the
// zero value is not usable.
type Parser struct {
	when *when.Parser
}

// New builds a parser with the English and common date/time rules loaded.
func New() *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Parser{when: w}
}

// Parse resolves text against the reference instant now and assembles a
// draft with an aggregate confidence score and per-field diagnostics.
func (p *Parser) Parse(text string, now time.Time) *reminder.Draft {
	lower := strings.ToLower(text)

	tr := p.resolveTime(text, now)
	action, actionFound := extractAction(text)
	action = cleanAction(action, tr.matched)
	category, categoryFound := detectCategory(lower)
	priority, priorityFound := detectPriority(lower)
	recurrence, recurring := detectRecurrence(lower, tr)

	d := &reminder.Draft{
		OriginalText:    text,
		ActionText:      action,
		TriggerSeconds:  tr.seconds,
		TimeDescription: Describe(now, tr.instant),
		Category:        category,
		Priority:        priority,
		Recurrence:      recurrence,
		Diagnostics: reminder.Diagnostics{
			ActionFound:       actionFound,
			TimeFound:         tr.found,
			CategoryDetected:  categoryFound,
			PriorityDetected:  priorityFound,
			RecurringDetected: recurring,
		},
	}
	if tr.hasInstant {
		d.TriggerInstant = reminder.At(tr.instant)
	}

	confidence := actionShare(action, actionFound) +
		timeShare(tr.score) +
		fieldShare(categoryFound, capCategory, categoryDefaultShare) +
		fieldShare(priorityFound, capPriority, priorityDefaultShare) +
		fieldShare(recurring, capRecurrence, 0)
	if confidence > 100 {
		confidence = 100
	}
	if confidence < 0 {
		confidence = 0
	}
	d.Confidence = confidence
	d.Success = confidence > successThreshold

	return d
}

func actionShare(action string, found bool) int {
	switch {
	case found:
		return actionPatternShare
	case action != "":
		return actionFallbackShare
	default:
		return 0
	}
}

// timeShare maps the resolver's 0..90 sub-score onto the time field's
// share; a fully certain calendar match takes the whole share.
func timeShare(score int) int {
	return score * capTime / timeScoreMax
}

func fieldShare(detected bool, full, fallback int) int {
	if detected {
		return full
	}
	return fallback
}
