package main

import (
	"errors"

	"github.com/r3/todo/internal/reminder"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, storage failure)
	ExitConfigError = 2 // Configuration error (unusable store path, bad config file)
	ExitDataError   = 3 // Validation failure (empty content, bad id or date)
	ExitNotFound    = 4 // No reminder with the given number
)

// errConfig marks configuration problems.
var errConfig = errors.New("configuration error")

// exitCodeFor maps an error to the process exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errConfig):
		return ExitConfigError
	case errors.Is(err, reminder.ErrStorage):
		return ExitError
	case errors.Is(err, reminder.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, reminder.ErrValidation):
		return ExitDataError
	default:
		return ExitError
	}
}
