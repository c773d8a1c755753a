package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/r3/todo/internal/reminder"
)

// formatVersion is written to every store file and required on load.
const formatVersion = 1

// document is the on-disk layout: a mapping from string-encoded id to the
// reminder's fields, plus the highest id ever assigned.
type document struct {
	Version   int              `json:"version"`
	Serial    int              `json:"serial"`
	Reminders map[string]entry `json:"reminders"`
}

// entry holds a reminder's fields; the id is the map key.
type entry struct {
	Content  string         `json:"content"`
	Category string         `json:"category,omitempty"`
	Due      *reminder.Date `json:"due,omitempty"`
	Added    *reminder.Date `json:"added,omitempty"`
}

// encode serializes records and serial into the store file format.
func encode(serial int, records map[int]reminder.Record) ([]byte, error) {
	doc := document{
		Version:   formatVersion,
		Serial:    serial,
		Reminders: make(map[string]entry, len(records)),
	}
	for id, r := range records {
		doc.Reminders[strconv.Itoa(id)] = entry{
			Content:  r.Content,
			Category: r.Category,
			Due:      r.Due,
			Added:    r.Added,
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding store: %w", err)
	}
	return append(data, '\n'), nil
}

// decode parses a store file. A zero-length file is an empty store.
func decode(data []byte) (int, map[int]reminder.Record, error) {
	records := make(map[int]reminder.Record)
	if len(bytes.TrimSpace(data)) == 0 {
		return 0, records, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return 0, nil, fmt.Errorf("parsing store: %w", err)
	}
	if dec.More() {
		return 0, nil, fmt.Errorf("parsing store: trailing data after document")
	}

	if doc.Version != formatVersion {
		return 0, nil, fmt.Errorf("unsupported store version %d (want %d)", doc.Version, formatVersion)
	}
	if doc.Serial < 0 {
		return 0, nil, fmt.Errorf("negative serial %d", doc.Serial)
	}

	for key, e := range doc.Reminders {
		id, err := strconv.Atoi(key)
		if err != nil || strconv.Itoa(id) != key {
			return 0, nil, fmt.Errorf("invalid reminder id %q", key)
		}
		if id > doc.Serial {
			return 0, nil, fmt.Errorf("reminder id %d exceeds serial %d", id, doc.Serial)
		}

		r := reminder.Record{
			ID:       id,
			Content:  e.Content,
			Category: e.Category,
			Due:      e.Due,
			Added:    e.Added,
		}
		if err := r.Validate(); err != nil {
			return 0, nil, fmt.Errorf("reminder %s: %v", key, err)
		}
		records[id] = r
	}

	return doc.Serial, records, nil
}
