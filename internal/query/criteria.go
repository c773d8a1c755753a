package query

import (
	"slices"

	"github.com/r3/todo/internal/reminder"
)

// Criteria combines the filters supplied on the command line.
// Unset fields do not constrain the result.
type Criteria struct {
	Category *string
	Text     *string
	Due      *reminder.Date // Exact match
	DueBy    *reminder.Date // On or before
	Limit    int            // 0 means no limit
}

// IsEmpty reports whether no filter is set (the limit is not a filter).
func (c Criteria) IsEmpty() bool {
	return c.Category == nil && c.Text == nil && c.Due == nil && c.DueBy == nil
}

// Apply evaluates each filter independently over the whole snapshot,
// intersects the results by id in ascending id order, then applies the limit.
func (c Criteria) Apply(snapshot []reminder.Record) []reminder.Record {
	var sets [][]reminder.Record
	if c.Category != nil {
		sets = append(sets, FilterByCategory(snapshot, *c.Category))
	}
	if c.Text != nil {
		sets = append(sets, Search(snapshot, *c.Text))
	}
	if c.Due != nil {
		sets = append(sets, FilterByDue(snapshot, *c.Due))
	}
	if c.DueBy != nil {
		sets = append(sets, FilterDueBy(snapshot, *c.DueBy))
	}

	var result []reminder.Record
	if len(sets) == 0 {
		result = sortByID(snapshot)
	} else {
		result = Intersect(sets...)
	}

	if c.Limit > 0 {
		result = Limit(result, c.Limit)
	}
	return result
}

// Intersect returns the records present (by id) in every set, in ascending
// id order. With no sets it returns an empty slice.
func Intersect(sets ...[]reminder.Record) []reminder.Record {
	if len(sets) == 0 {
		return []reminder.Record{}
	}

	counts := make(map[int]int)
	for _, set := range sets {
		seen := make(map[int]bool, len(set))
		for _, r := range set {
			if !seen[r.ID] {
				seen[r.ID] = true
				counts[r.ID]++
			}
		}
	}

	out := make([]reminder.Record, 0, len(sets[0]))
	added := make(map[int]bool)
	for _, r := range sets[0] {
		if counts[r.ID] == len(sets) && !added[r.ID] {
			added[r.ID] = true
			out = append(out, r)
		}
	}
	return sortByID(out)
}

// sortByID returns a copy of records ordered by ascending id.
func sortByID(records []reminder.Record) []reminder.Record {
	out := slices.Clone(records)
	if out == nil {
		out = []reminder.Record{}
	}
	slices.SortStableFunc(out, func(a, b reminder.Record) int {
		return a.ID - b.ID
	})
	return out
}
