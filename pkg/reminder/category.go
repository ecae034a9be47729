package reminder

import (
	"fmt"
	"strings"
)

// Category buckets a reminder for display and filtering.
type Category string

const (
	Personal Category = "Personal"
	Work     Category = "Work"
	Health   Category = "Health"
	Shopping Category = "Shopping"
	Finance  Category = "Finance"
	Travel   Category = "Travel"
	Study    Category = "Study"
	Social   Category = "Social"
)

// Categories is the detection order used by the parser; the first keyword
// hit wins.
func Categories() []Category {
	return []Category{Work, Health, Personal, Shopping, Finance, Travel, Study, Social}
}

// ParseCategory matches a user-supplied name against the known categories,
// case-insensitively.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(name, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", name)
}

// Priority is the urgency attached to a reminder.
type Priority string

const (
	Low    Priority = "low"
	Medium Priority = "medium"
	High   Priority = "high"
	Urgent Priority = "urgent"
)

// ParsePriority matches a user-supplied name against the known priorities.
func ParsePriority(name string) (Priority, error) {
	for _, p := range []Priority{Low, Medium, High, Urgent} {
		if strings.EqualFold(name, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q", name)
}
