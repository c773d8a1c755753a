// Package query filters snapshots of reminders.
//
// Every function is pure: inputs are never modified, results keep the input
// order, and an empty result is not an error.
package query

import (
	"strings"

	"github.com/r3/todo/internal/reminder"
)

// Predicate reports whether a reminder should be kept.
type Predicate func(reminder.Record) bool

// Filter returns the records for which keep is true.
func Filter(records []reminder.Record, keep Predicate) []reminder.Record {
	out := make([]reminder.Record, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByCategory keeps records whose category equals category exactly.
func FilterByCategory(records []reminder.Record, category string) []reminder.Record {
	return Filter(records, func(r reminder.Record) bool {
		return r.Category == category
	})
}

// FilterByDue keeps records due exactly on the given date.
// Records without a due date never match.
func FilterByDue(records []reminder.Record, due reminder.Date) []reminder.Record {
	return Filter(records, func(r reminder.Record) bool {
		return r.Due != nil && *r.Due == due
	})
}

// FilterDueBy keeps records due on or before the given date.
func FilterDueBy(records []reminder.Record, date reminder.Date) []reminder.Record {
	return Filter(records, func(r reminder.Record) bool {
		return r.Due != nil && !r.Due.After(date)
	})
}

// Search keeps records whose content contains text (case-sensitive).
func Search(records []reminder.Record, text string) []reminder.Record {
	return Filter(records, func(r reminder.Record) bool {
		return strings.Contains(r.Content, text)
	})
}

// Limit returns at most the first n records.
func Limit(records []reminder.Record, n int) []reminder.Record {
	if n <= 0 {
		return []reminder.Record{}
	}
	if n >= len(records) {
		n = len(records)
	}
	out := make([]reminder.Record, n)
	copy(out, records[:n])
	return out
}
