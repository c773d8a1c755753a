// Package store persists reminders in a single local file.
//
// The file is a JSON mapping from string-encoded id to reminder fields. Every
// mutation rewrites the whole file through a temp file and rename, so a crash
// mid-write leaves the previous contents intact.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/r3/todo/internal/reminder"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

// Store is the durable id -> reminder mapping backed by one file.
// A Store is not safe for concurrent use.
type Store struct {
	path    string
	serial  int // Highest id ever assigned; ids are never reused
	records map[int]reminder.Record
	now     func() time.Time
	log     *slog.Logger
	closed  bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp new reminders.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger for store events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Open opens the store file at path, creating it (and its directory) if absent.
// It fails with reminder.ErrStorage if the file is not a valid store file or
// the directory is not writable.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path: path,
		now:  time.Now,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, storageError("creating store directory", err)
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		s.records = make(map[int]reminder.Record)
		if err := s.persist(0, s.records); err != nil {
			return nil, err
		}
		s.log.Debug("created store", "path", path)
		return s, nil
	case err != nil:
		return nil, storageError("reading store", err)
	}

	s.serial, s.records, err = decode(data)
	if err != nil {
		return nil, storageError(path, err)
	}

	if err := checkWritable(dir); err != nil {
		return nil, storageError("store directory is not writable", err)
	}

	s.log.Debug("opened store", "path", path, "reminders", len(s.records), "serial", s.serial)
	return s, nil
}

// Path returns the path of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of live reminders.
func (s *Store) Len() int {
	return len(s.records)
}

// Add validates the new reminder, assigns the next id and persists it.
// An empty category means uncategorized; a nil due means no due date.
func (s *Store) Add(content, category string, due *reminder.Date) (reminder.Record, error) {
	if s.closed {
		return reminder.Record{}, storageError("add", ErrClosed)
	}

	rec := reminder.Record{
		ID:       s.serial + 1,
		Content:  content,
		Category: category,
		Added:    reminder.DateOf(s.now()).Ptr(),
	}
	if due != nil {
		rec.Due = due.Ptr()
	}
	if err := rec.Validate(); err != nil {
		return reminder.Record{}, err
	}

	next := s.cloneRecords()
	next[rec.ID] = rec
	if err := s.persist(rec.ID, next); err != nil {
		return reminder.Record{}, err
	}

	s.serial = rec.ID
	s.records = next
	s.log.Debug("added reminder", "id", rec.ID, "category", rec.Category)
	return rec.Clone(), nil
}

// Get returns the reminder with the given id.
func (s *Store) Get(id int) (reminder.Record, error) {
	if s.closed {
		return reminder.Record{}, storageError("get", ErrClosed)
	}
	rec, ok := s.records[id]
	if !ok {
		return reminder.Record{}, fmt.Errorf("%w: #%d", reminder.ErrNotFound, id)
	}
	return rec.Clone(), nil
}

// Remove deletes the reminder with the given id and returns it.
func (s *Store) Remove(id int) (reminder.Record, error) {
	if s.closed {
		return reminder.Record{}, storageError("remove", ErrClosed)
	}
	rec, ok := s.records[id]
	if !ok {
		return reminder.Record{}, fmt.Errorf("%w: #%d", reminder.ErrNotFound, id)
	}

	next := s.cloneRecords()
	delete(next, id)
	if err := s.persist(s.serial, next); err != nil {
		return reminder.Record{}, err
	}

	s.records = next
	s.log.Debug("removed reminder", "id", id)
	return rec.Clone(), nil
}

// All returns every live reminder in ascending id order.
func (s *Store) All() []reminder.Record {
	ids := make([]int, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]reminder.Record, len(ids))
	for i, id := range ids {
		out[i] = s.records[id].Clone()
	}
	return out
}

// Close releases the store. Every successful mutation is already on disk, so
// there is nothing left to flush. Close is idempotent.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.records = nil
	s.log.Debug("closed store", "path", s.path)
	return nil
}

// persist writes serial and records to disk atomically.
func (s *Store) persist(serial int, records map[int]reminder.Record) error {
	data, err := encode(serial, records)
	if err != nil {
		return storageError("encoding store", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return storageError("writing store", err)
	}
	return nil
}

func (s *Store) cloneRecords() map[int]reminder.Record {
	next := make(map[int]reminder.Record, len(s.records)+1)
	for id, r := range s.records {
		next[id] = r
	}
	return next
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", reminder.ErrStorage, op, err)
}
