// Package due parses the due-date strings accepted on the command line.
package due

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/r3/todo/internal/reminder"
)

// ErrInvalidDate is returned for strings that are not a recognized date.
var ErrInvalidDate = errors.New("cannot parse date")

// Named dates relative to today, in days.
var named = map[string]int{
	"yesterday": -1,
	"today":     0,
	"tomorrow":  1,
}

// Relative units, in days. Singular and plural forms are both accepted.
var units = map[string]int{
	"d":     1,
	"day":   1,
	"days":  1,
	"w":     7,
	"week":  7,
	"weeks": 7,
}

// maxDays bounds a relative offset so it cannot overflow and always lands
// past reminder.MaxYear, where the range check rejects it.
const maxDays = (reminder.MaxYear - reminder.MinYear + 1) * 366

// Parse converts s to a calendar date. Relative forms ("tomorrow", "3 days",
// "2w") are resolved against now; anything else is handed to dateparse and
// interpreted in now's location.
func Parse(s string, now time.Time) (reminder.Date, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	if input == "" {
		return reminder.Date{}, fmt.Errorf("%w: empty date", ErrInvalidDate)
	}

	d, err := parse(s, input, now)
	if err != nil {
		return reminder.Date{}, err
	}
	if !d.InRange() {
		return reminder.Date{}, fmt.Errorf("%w: %s: year must be between %d and %d",
			ErrInvalidDate, s, reminder.MinYear, reminder.MaxYear)
	}
	return d, nil
}

func parse(s, input string, now time.Time) (reminder.Date, error) {
	today := reminder.DateOf(now)

	if offset, ok := named[input]; ok {
		return today.AddDays(offset), nil
	}

	if days, ok, err := parseRelative(input); ok {
		if err != nil {
			return reminder.Date{}, fmt.Errorf("%w: %s: %v", ErrInvalidDate, s, err)
		}
		return today.AddDays(days), nil
	}

	t, err := dateparse.ParseIn(strings.TrimSpace(s), now.Location())
	if err != nil {
		return reminder.Date{}, fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}
	return reminder.DateOf(t), nil
}

// parseRelative handles "<n> <unit>" and "<n><unit>" forms.
// The second return value reports whether s looked like a relative date at all.
func parseRelative(s string) (int, bool, error) {
	var numStr, unit string

	if fields := strings.Fields(s); len(fields) == 2 {
		numStr, unit = fields[0], fields[1]
	} else if len(fields) == 1 && len(s) >= 2 {
		i := len(s)
		for i > 0 && (s[i-1] < '0' || s[i-1] > '9') {
			i--
		}
		numStr, unit = s[:i], s[i:]
	} else {
		return 0, false, nil
	}

	perUnit, ok := units[unit]
	if !ok || numStr == "" {
		return 0, false, nil
	}

	n, err := strconv.Atoi(numStr)
	if err != nil {
		return 0, true, fmt.Errorf("invalid count %q", numStr)
	}
	if n < 0 {
		return 0, true, fmt.Errorf("count must not be negative")
	}
	if n > maxDays/perUnit {
		return 0, true, fmt.Errorf("count %d is too large", n)
	}
	return n * perUnit, true, nil
}
