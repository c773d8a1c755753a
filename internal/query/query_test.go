package query

import (
	"testing"
	"time"

	"github.com/r3/todo/internal/reminder"
)

func date(month time.Month, day int) *reminder.Date {
	d := reminder.NewDate(2026, month, day)
	return &d
}

func strPtr(s string) *string { return &s }

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// expectIDs fails the test unless records carry exactly the want ids, in order.
func expectIDs(t *testing.T, name string, records []reminder.Record, want ...int) {
	t.Helper()
	if got := idsOf(records); !equalInts(got, want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func snapshot() []reminder.Record {
	return []reminder.Record{
		{ID: 1, Content: "Buy milk", Category: "errands", Due: date(time.October, 20)},
		{ID: 2, Content: "Call Bob"},
		{ID: 4, Content: "a note here", Category: "Errands"},
		{ID: 5, Content: "NOTE to self", Category: "errands", Due: date(time.October, 19)},
		{ID: 7, Content: "pick up notebook", Category: "errands", Due: date(time.October, 20)},
		{ID: 9, Content: "not this one", Due: date(time.November, 2)},
	}
}

func idsOf(records []reminder.Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	records := snapshot()

	got := FilterByCategory(records, "errands")
	expectIDs(t, "FilterByCategory(errands)", got, 1, 5, 7)
	for _, r := range got {
		if r.Category != "errands" {
			t.Errorf("record %d has category %q", r.ID, r.Category)
		}
	}

	// Every record with the category is included
	var want int
	for _, r := range records {
		if r.Category == "errands" {
			want++
		}
	}
	if len(got) != want {
		t.Errorf("FilterByCategory returned %d records, want %d", len(got), want)
	}

	expectIDs(t, "FilterByCategory(Errands)", FilterByCategory(records, "Errands"), 4)
	expectIDs(t, "FilterByCategory(err*)", FilterByCategory(records, "err*"))
	expectIDs(t, "FilterByCategory(\"\")", FilterByCategory(records, ""), 2, 9)
}

func TestFilterByDue(t *testing.T) {
	records := snapshot()

	expectIDs(t, "FilterByDue(Oct 20)", FilterByDue(records, *date(time.October, 20)), 1, 7)
	expectIDs(t, "FilterByDue(Oct 19)", FilterByDue(records, *date(time.October, 19)), 5)
	expectIDs(t, "FilterByDue(Dec 25)", FilterByDue(records, *date(time.December, 25)))
}

func TestFilterDueBy(t *testing.T) {
	records := snapshot()

	expectIDs(t, "FilterDueBy(Oct 20)", FilterDueBy(records, *date(time.October, 20)), 1, 5, 7)
	expectIDs(t, "FilterDueBy(Oct 19)", FilterDueBy(records, *date(time.October, 19)), 5)
	expectIDs(t, "FilterDueBy(Oct 1)", FilterDueBy(records, *date(time.October, 1)))
}

func TestSearch(t *testing.T) {
	records := snapshot()

	tests := []struct {
		text string
		want []int
	}{
		{"note", []int{4, 7}},
		{"NOTE", []int{5}},
		{"not", []int{4, 7, 9}},
		{"Bob", []int{2}},
		{"bob", nil},
		{"", []int{1, 2, 4, 5, 7, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			expectIDs(t, "Search", Search(records, tt.text), tt.want...)
		})
	}
}

func TestSearchIsSubstringNotWord(t *testing.T) {
	records := []reminder.Record{
		{ID: 1, Content: "a note here"},
		{ID: 2, Content: "NOTE"},
		{ID: 3, Content: "not"},
	}
	expectIDs(t, "Search(note)", Search(records, "note"), 1)
}

func TestLimit(t *testing.T) {
	records := snapshot()

	expectIDs(t, "Limit(2)", Limit(records, 2), 1, 2)
	expectIDs(t, "Limit(100)", Limit(records, 100), idsOf(records)...)
	expectIDs(t, "Limit(0)", Limit(records, 0))
	expectIDs(t, "Limit(-3)", Limit(records, -3))
	expectIDs(t, "Limit(nil, 3)", Limit(nil, 3))
}

func TestFiltersDoNotMutateInput(t *testing.T) {
	records := snapshot()
	before := idsOf(records)

	out := Limit(records, 2)
	out[0].Content = "changed"
	_ = FilterByCategory(records, "errands")
	_ = Search(records, "note")

	expectIDs(t, "records", records, before...)
	if records[0].Content != "Buy milk" {
		t.Errorf("input content changed to %q", records[0].Content)
	}
}

func TestIntersect(t *testing.T) {
	a := []reminder.Record{{ID: 7}, {ID: 1}, {ID: 4}}
	b := []reminder.Record{{ID: 4}, {ID: 9}, {ID: 1}}
	c := []reminder.Record{{ID: 1}, {ID: 4}, {ID: 4}}

	expectIDs(t, "Intersect(a, b)", Intersect(a, b), 1, 4)
	expectIDs(t, "Intersect(a, b, c)", Intersect(a, b, c), 1, 4)
	expectIDs(t, "Intersect(a)", Intersect(a), 1, 4, 7)
	expectIDs(t, "Intersect(a, nil)", Intersect(a, nil))
	expectIDs(t, "Intersect()", Intersect())
}

func TestCriteriaApply(t *testing.T) {
	records := snapshot()

	tests := []struct {
		name     string
		criteria Criteria
		want     []int
	}{
		{"empty returns snapshot", Criteria{}, []int{1, 2, 4, 5, 7, 9}},
		{"limit only", Criteria{Limit: 3}, []int{1, 2, 4}},
		{"category", Criteria{Category: strPtr("errands")}, []int{1, 5, 7}},
		{"category with limit", Criteria{Category: strPtr("errands"), Limit: 2}, []int{1, 5}},
		{"text and due", Criteria{Text: strPtr("note"), Due: date(time.October, 20)}, []int{7}},
		{"text and due, no overlap", Criteria{Text: strPtr("Bob"), Due: date(time.October, 20)}, nil},
		{"due only", Criteria{Due: date(time.October, 20)}, []int{1, 7}},
		{"due by and category", Criteria{DueBy: date(time.October, 19), Category: strPtr("errands")}, []int{5}},
		{"all filters", Criteria{
			Category: strPtr("errands"),
			Text:     strPtr("n"),
			Due:      date(time.October, 20),
			DueBy:    date(time.October, 31),
			Limit:    1,
		}, []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectIDs(t, "Apply", tt.criteria.Apply(records), tt.want...)
		})
	}
}

func TestCriteriaApply_AscendingIDForUnorderedInput(t *testing.T) {
	records := []reminder.Record{
		{ID: 9, Content: "x", Category: "c"},
		{ID: 3, Content: "x", Category: "c"},
		{ID: 5, Content: "y", Category: "c"},
	}

	expectIDs(t, "Apply(text, category)", Criteria{Text: strPtr("x"), Category: strPtr("c")}.Apply(records), 3, 9)
	expectIDs(t, "Apply(empty)", Criteria{}.Apply(records), 3, 5, 9)
}

func TestCriteriaIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{"zero", Criteria{}, true},
		{"limit is not a filter", Criteria{Limit: 5}, true},
		{"empty text is a filter", Criteria{Text: strPtr("")}, false},
		{"due by", Criteria{DueBy: date(time.May, 1)}, false},
	}

	for _, tt := range tests {
		if got := tt.criteria.IsEmpty(); got != tt.want {
			t.Errorf("%s: IsEmpty() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
