package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/r3/todo/internal/reminder"
)

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string.
func outputHuman(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}

// reportError writes err to w in the selected format and returns the exit code.
func reportError(w io.Writer, err error) int {
	if humanOutput {
		fmt.Fprintf(w, "error: %s\n", err)
	} else {
		outputJSON(w, ErrorResponse{Error: err.Error()})
	}
	return exitCodeFor(err)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RemoveResponse is the response for the remove command.
type RemoveResponse struct {
	Status   string           `json:"status"`
	Reminder *reminder.Record `json:"reminder"`
}

// RebuildResponse is the response for the rebuild command.
type RebuildResponse struct {
	Status    string `json:"status"`
	Reminders int       `json:"reminders"`
	Path      string    `json:"path"`
	LastSync  time.Time `json:"last_sync"`
}

// ConfigResponse is the response for config commands.
type ConfigResponse struct {
	StorePath  string `json:"store_path"`
	Configured string `json:"configured,omitempty"`
	ConfigFile string `json:"config_file"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// outputRecords writes a list of reminders: a JSON array, or one line per
// reminder in human mode.
func outputRecords(w io.Writer, records []reminder.Record) error {
	if !humanOutput {
		if records == nil {
			records = []reminder.Record{}
		}
		return outputJSON(w, records)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No reminders")
		return nil
	}
	for _, r := range records {
		fmt.Fprintln(w, r.String())
	}
	return nil
}
