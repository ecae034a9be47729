package parse

import (
	"regexp"
	"strings"

	"tableflip.dev/nudge/pkg/reminder"
)

// Keyword tables are fixed and deliberately heuristic; first hit wins in
// the listed order.
var categoryKeywords = []struct {
	category reminder.Category
	words    []string
}{
	{reminder.Work, []string{"meeting", "boss", "office", "project", "deadline", "email", "client", "presentation", "interview", "work"}},
	{reminder.Health, []string{"medicine", "medication", "doctor", "pill", "workout", "exercise", "gym", "dentist", "vitamin", "appointment"}},
	{reminder.Personal, []string{"mom", "dad", "family", "friend", "call", "birthday", "home", "dinner", "kids"}},
	{reminder.Shopping, []string{"buy", "shop", "grocery", "groceries", "store", "order", "pick up", "milk"}},
	{reminder.Finance, []string{"pay", "bill", "bank", "rent", "invoice", "tax", "budget", "transfer", "loan"}},
	{reminder.Travel, []string{"flight", "airport", "hotel", "pack", "trip", "train", "taxi", "visa", "booking"}},
	{reminder.Study, []string{"study", "exam", "homework", "class", "lecture", "course", "assignment", "practice"}},
	{reminder.Social, []string{"party", "concert", "wedding", "hangout", "meet up", "lunch", "coffee"}},
}

var priorityKeywords = []struct {
	priority reminder.Priority
	words    []string
}{
	{reminder.Urgent, []string{"urgent", "asap", "emergency", "critical", "immediately", "right away"}},
	{reminder.High, []string{"important", "must", "priority", "crucial"}},
	{reminder.Low, []string{"whenever", "sometime", "eventually", "no rush", "someday"}},
}

var (
	dailyWords  = []string{"every day", "everyday", "each day", "daily", "every morning", "every night"}
	weeklyWords = []string{"every week", "each week", "weekly"}

	// 1=Sunday .. 7=Saturday.
	weekdayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

	everyWeekday = regexp.MustCompile(`(?i)\bevery\s+(sunday|monday|tuesday|wednesday|thursday|friday|saturday)s?\b`)
)

const (
	defaultRecurrenceHour = 9
	defaultWeekday        = 2 // Monday
)

func detectCategory(lower string) (reminder.Category, bool) {
	for _, set := range categoryKeywords {
		for _, w := range set.words {
			if strings.Contains(lower, w) {
				return set.category, true
			}
		}
	}
	return reminder.Personal, false
}

func detectPriority(lower string) (reminder.Priority, bool) {
	for _, set := range priorityKeywords {
		for _, w := range set.words {
			if strings.Contains(lower, w) {
				return set.priority, true
			}
		}
	}
	return reminder.Medium, false
}

// detectRecurrence tests daily keywords first, then weekly keywords and an
// "every <weekday>" form. The firing clock comes from the resolved
// calendar instant when one was recognized, else 9:00.
func detectRecurrence(lower string, tr timeResult) (*reminder.Recurrence, bool) {
	hour, minute := defaultRecurrenceHour, 0
	if tr.hasInstant {
		hour, minute = tr.instant.Hour(), tr.instant.Minute()
	}

	for _, w := range dailyWords {
		if strings.Contains(lower, w) {
			return &reminder.Recurrence{Kind: reminder.Daily, Hour: hour, Minute: minute}, true
		}
	}

	weekly := false
	for _, w := range weeklyWords {
		if strings.Contains(lower, w) {
			weekly = true
			break
		}
	}
	if !weekly && everyWeekday.MatchString(lower) {
		weekly = true
	}
	if !weekly {
		return nil, false
	}

	weekday := defaultWeekday
	for i, name := range weekdayNames {
		if strings.Contains(lower, name) {
			weekday = i + 1
			break
		}
	}
	return &reminder.Recurrence{Kind: reminder.Weekly, Weekday: weekday, Hour: hour, Minute: minute}, true
}
