package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/r3/todo/internal/due"
	"github.com/r3/todo/internal/reminder"
)

// parseID parses a reminder number given on the command line.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid reminder number %q", reminder.ErrValidation, s)
	}
	return id, nil
}

// parseDueFlag parses a --due style flag; an empty value means no date.
func parseDueFlag(s string) (*reminder.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := due.Parse(s, nowFunc())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", reminder.ErrValidation, err)
	}
	return &d, nil
}

// parseLimit validates a --number flag; 0 means no limit.
func parseLimit(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: --number must not be negative", reminder.ErrValidation)
	}
	return n, nil
}
