package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/nudge/pkg/reminder"
)

// Sub-scores for the time resolution paths, on a 0..90 scale where 90 is a
// fully certain calendar match. The assembler maps the scale onto the time
// field's confidence share.
const (
	timeScoreCertain   = 90
	timeScoreUncertain = 60
	timeScoreRelative  = 85
	timeScoreBareInt   = 70
	timeScoreDefault   = 5
	timeScoreMax       = 90
)

// defaultTriggerSeconds is used when no time phrase is found at all.
const defaultTriggerSeconds = 5 * 60

type timeResult struct {
	seconds    int64
	instant    time.Time
	hasInstant bool
	matched    string
	score      int
	found      bool
}

var relativePatterns = []struct {
	re   *regexp.Regexp
	unit time.Duration
}{
	{regexp.MustCompile(`(?i)\bin\s+(\d+)\s*(?:minutes|minute|mins|min|m)\b`), time.Minute},
	{regexp.MustCompile(`(?i)\bin\s+(\d+)\s*(?:hours|hour|hrs|hr|h)\b`), time.Hour},
	{regexp.MustCompile(`(?i)\bin\s+(\d+)\s*(?:days|day|d)\b`), 24 * time.Hour},
	{regexp.MustCompile(`(?i)\b(\d+)\s*(?:minutes|minute|mins|min)\b`), time.Minute},
	{regexp.MustCompile(`(?i)\b(\d+)\s*(?:hours|hour|hrs|hr)\b`), time.Hour},
	{regexp.MustCompile(`(?i)\b(\d+)m\b`), time.Minute},
	{regexp.MustCompile(`(?i)\b(\d+)h\b`), time.Hour},
	{regexp.MustCompile(`(?i)\b(\d+)\s+from\s+now\b`), time.Minute},
}

var bareInteger = regexp.MustCompile(`\b(\d{1,3})\b`)

// resolveTime attempts the general date/time grammar first, then the
// explicit relative-offset patterns, then the bare-integer-as-minutes
// heuristic. It never fails: absent any match it reports a five-minute
// default with a token score.
func (p *Parser) resolveTime(text string, now time.Time) timeResult {
	if res, ok := p.resolveCalendar(text, now); ok {
		return res
	}

	lower := strings.ToLower(text)
	for _, rp := range relativePatterns {
		m := rp.re.FindStringSubmatch(lower)
		if len(m) < 2 {
			continue
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil || n <= 0 {
			continue
		}
		secs := floorSeconds(int64(time.Duration(n) * rp.unit / time.Second))
		return timeResult{
			seconds: secs,
			instant: now.Add(time.Duration(secs) * time.Second),
			matched: m[0],
			score:   timeScoreRelative,
			found:   true,
		}
	}

	// Bare integer 1..480 read as minutes. A known false-positive source
	// (day-of-month, quantities); kept as documented behavior.
	if m := bareInteger.FindStringSubmatch(lower); len(m) > 1 {
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil && n >= 1 && n <= 480 {
			secs := floorSeconds(n * 60)
			return timeResult{
				seconds: secs,
				instant: now.Add(time.Duration(secs) * time.Second),
				matched: m[0],
				score:   timeScoreBareInt,
				found:   true,
			}
		}
	}

	return timeResult{
		seconds: defaultTriggerSeconds,
		instant: now.Add(defaultTriggerSeconds * time.Second),
		score:   timeScoreDefault,
	}
}

// resolveCalendar runs the natural-language date/time sub-resolver. Errors
// and non-matches both fall through to the regex fallbacks.
func (p *Parser) resolveCalendar(text string, now time.Time) (timeResult, bool) {
	r, err := p.when.Parse(text, now)
	if err != nil || r == nil {
		return timeResult{}, false
	}

	instant := rollForward(r.Time, now)
	secs := floorSeconds(int64(instant.Sub(now) / time.Second))

	score := timeScoreUncertain
	if strings.ContainsAny(r.Text, "0123456789") {
		score = timeScoreCertain
	}

	return timeResult{
		seconds:    secs,
		instant:    instant,
		hasInstant: true,
		matched:    r.Text,
		score:      score,
		found:      true,
	}, true
}

// rollForward makes a resolved instant strictly future: a past instant on
// today's date moves forward a day; an older date has its clock time
// reinterpreted as today, rolling one more day if still not future.
func rollForward(instant, now time.Time) time.Time {
	if instant.After(now) {
		return instant
	}
	if sameDay(instant, now) {
		return instant.Add(24 * time.Hour)
	}
	instant = time.Date(now.Year(), now.Month(), now.Day(),
		instant.Hour(), instant.Minute(), 0, 0, now.Location())
	if !instant.After(now) {
		instant = instant.AddDate(0, 0, 1)
	}
	return instant
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func floorSeconds(secs int64) int64 {
	if secs < reminder.MinIntervalSeconds {
		return reminder.MinIntervalSeconds
	}
	return secs
}
