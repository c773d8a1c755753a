package reminder

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"plain", "Buy milk", false},
		{"empty", "", true},
		{"whitespace only", "  \t\n", true},
		{"leading space kept", "  call Bob", false},
		{"unicode", "café ☕", false},
		{"invalid UTF-8", "caf\xe9", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContent(tt.content)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("ValidateContent(%q) error = %v, want ErrValidation", tt.content, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateContent(%q) unexpected error: %v", tt.content, err)
			}
		})
	}
}

func TestRecordValidate(t *testing.T) {
	far := NewDate(10239, time.November, 26)

	tests := []struct {
		name    string
		rec     Record
		wantErr bool
	}{
		{"valid", Record{ID: 1, Content: "x"}, false},
		{"zero id", Record{ID: 0, Content: "x"}, true},
		{"empty content", Record{ID: 3, Content: ""}, true},
		{"invalid category", Record{ID: 1, Content: "x", Category: "\xff"}, true},
		{"due out of range", Record{ID: 1, Content: "x", Due: &far}, true},
		{"added out of range", Record{ID: 1, Content: "x", Added: &far}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if tt.wantErr && !errors.Is(err, ErrValidation) {
				t.Errorf("Validate() error = %v, want ErrValidation", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestRecordString(t *testing.T) {
	due := NewDate(2026, time.March, 8)

	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{"uncategorized", Record{ID: 2, Content: "Call Bob"}, "general: #2 - Call Bob"},
		{"category", Record{ID: 1, Content: "Buy milk", Category: "errands"}, "errands: #1 - Buy milk"},
		{"due", Record{ID: 7, Content: "Taxes", Category: "home", Due: &due}, "home: #7 - Taxes (Due: 2026-03-08)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordJSONOmitsAbsentFields(t *testing.T) {
	data, err := json.Marshal(Record{ID: 2, Content: "Call Bob"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `{"id":2,"content":"Call Bob"}`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	due := NewDate(2026, time.January, 5)
	data, err = json.Marshal(Record{ID: 1, Content: "a", Category: "c", Due: &due})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `{"id":1,"content":"a","category":"c","due":"2026-01-05"}`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var back Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Due == nil || *back.Due != due {
		t.Errorf("Due after round trip = %v, want %v", back.Due, due)
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2026, time.February, 28)
	b := NewDate(2026, time.March, 1)

	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before(%v, %v) ordering wrong", a, b)
	}
	if !b.After(a) {
		t.Errorf("%v.After(%v) = false", b, a)
	}
	if a.Before(a) {
		t.Error("a date is not before itself")
	}
	if got := a.AddDays(1); got != b {
		t.Errorf("AddDays(1) = %v, want %v", got, b)
	}
}

func TestNewDateNormalizes(t *testing.T) {
	if got, want := NewDate(2026, time.February, 30), NewDate(2026, time.March, 2); got != want {
		t.Errorf("NewDate(Feb 30) = %v, want %v", got, want)
	}
	if got := NewDate(2026, time.December, 32).String(); got != "2027-01-01" {
		t.Errorf("NewDate(Dec 32) = %s, want 2027-01-01", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-19")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if want := (Date{Year: 2026, Month: time.October, Day: 19}); d != want {
		t.Errorf("ParseDate = %v, want %v", d, want)
	}

	for _, bad := range []string{"19/10/2026", "0000-01-01", "10239-11-26"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) expected error", bad)
		}
	}
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		date Date
		want bool
	}{
		{NewDate(1, time.January, 1), true},
		{NewDate(9999, time.December, 31), true},
		{NewDate(10000, time.January, 1), false},
		{NewDate(0, time.December, 31), false},
	}

	for _, tt := range tests {
		if got := tt.date.InRange(); got != tt.want {
			t.Errorf("%v.InRange() = %v, want %v", tt.date, got, tt.want)
		}
		_, err := tt.date.MarshalText()
		if tt.want && err != nil {
			t.Errorf("MarshalText(%v) unexpected error: %v", tt.date, err)
		}
		if !tt.want && err == nil {
			t.Errorf("MarshalText(%v) expected error", tt.date)
		}
	}
}

func TestDateTextRoundTrip(t *testing.T) {
	for _, d := range []Date{NewDate(1, time.January, 1), NewDate(9999, time.December, 31), NewDate(2026, time.March, 8)} {
		text, err := d.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", d, err)
		}
		var back Date
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if back != d {
			t.Errorf("round trip of %v = %v", d, back)
		}
	}
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"tomorrow"`), &d); err == nil {
		t.Error("Unmarshal(tomorrow) expected error")
	}
	if err := json.Unmarshal([]byte(`12`), &d); err == nil {
		t.Error("Unmarshal(12) expected error")
	}
}

func TestDateOfUsesLocation(t *testing.T) {
	loc := time.FixedZone("east", 10*60*60)
	utc := time.Date(2026, time.May, 1, 20, 0, 0, 0, time.UTC)

	if got, want := DateOf(utc), NewDate(2026, time.May, 1); got != want {
		t.Errorf("DateOf(utc) = %v, want %v", got, want)
	}
	if got, want := DateOf(utc.In(loc)), NewDate(2026, time.May, 2); got != want {
		t.Errorf("DateOf(east) = %v, want %v", got, want)
	}
}
