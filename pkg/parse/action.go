package parse

import (
	"regexp"
	"strings"
)

// Lead-in patterns tried in order; the first non-empty capture wins.
// "reminder to X" must come before "X reminder" or the latter would
// capture the word preceding "reminder".
var actionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bremind me to\s+(.+)$`),
	regexp.MustCompile(`(?i)\bdon'?t forget to\s+(.+)$`),
	regexp.MustCompile(`(?i)\bremember to\s+(.+)$`),
	regexp.MustCompile(`(?i)\breminder to\s+(.+)$`),
	regexp.MustCompile(`(?i)^(.+?)\s+reminder\b`),
	regexp.MustCompile(`(?i)\bi need to\s+(.+)$`),
}

var (
	trailingConnector  = regexp.MustCompile(`(?i)[\s,]+(at|in|on|by|for|from)$`)
	leadingRecurrence  = regexp.MustCompile(`(?i)^(every\s+\w+|each\s+(day|week)|daily|everyday|weekly)[\s,]+`)
	trailingRecurrence = regexp.MustCompile(`(?i)[\s,]+(every\s+\w+|each\s+(day|week)|daily|everyday|weekly)$`)
	multiSpace         = regexp.MustCompile(`\s{2,}`)
)

// extractAction pulls the task description out of the raw text. When no
// lead-in pattern matches, the whole input is the action and found is
// false; the assembler weighs that fallback lower.
func extractAction(text string) (action string, found bool) {
	for _, p := range actionPatterns {
		m := p.FindStringSubmatch(text)
		if len(m) > 1 && strings.TrimSpace(m[1]) != "" {
			return strings.TrimSpace(m[1]), true
		}
	}
	return strings.TrimSpace(text), false
}

// cleanAction strips the matched time phrase and any leading or trailing
// recurrence keyword from the captured action.
func cleanAction(action, timePhrase string) string {
	if timePhrase != "" {
		lower := strings.ToLower(action)
		phrase := strings.ToLower(strings.TrimSpace(timePhrase))
		if idx := strings.LastIndex(lower, phrase); idx >= 0 {
			action = action[:idx] + action[idx+len(phrase):]
		}
	}
	action = strings.TrimSpace(action)
	for {
		next := trailingConnector.ReplaceAllString(action, "")
		next = leadingRecurrence.ReplaceAllString(next, "")
		next = trailingRecurrence.ReplaceAllString(next, "")
		next = strings.TrimSpace(next)
		if next == action {
			break
		}
		action = next
	}
	action = multiSpace.ReplaceAllString(action, " ")
	return strings.Trim(action, " ,.!")
}
