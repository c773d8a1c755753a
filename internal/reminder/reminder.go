// Package reminder defines the reminder record and the errors shared by the
// store, query and CLI layers.
package reminder

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error categories. Callers wrap these with context and test with errors.Is.
var (
	// ErrValidation reports bad input such as empty content.
	ErrValidation = errors.New("validation error")
	// ErrNotFound reports an unknown reminder id.
	ErrNotFound = errors.New("reminder not found")
	// ErrStorage reports an unreadable, unwritable or corrupt store file.
	ErrStorage = errors.New("storage error")
)

// DefaultCategory is displayed for reminders without a category.
const DefaultCategory = "general"

// Record is a single reminder.
type Record struct {
	ID       int    `json:"id"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"` // Empty means uncategorized
	Due      *Date  `json:"due,omitempty"`
	Added    *Date  `json:"added,omitempty"`
}

// Validate checks the invariants a record must satisfy before it is stored.
func (r Record) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrValidation, r.ID)
	}
	if err := ValidateContent(r.Content); err != nil {
		return err
	}
	if err := ValidateCategory(r.Category); err != nil {
		return err
	}
	if err := ValidateDate("due", r.Due); err != nil {
		return err
	}
	return ValidateDate("added", r.Added)
}

// ValidateContent rejects empty, whitespace-only or non-UTF-8 content.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content must not be empty", ErrValidation)
	}
	if !utf8.ValidString(content) {
		return fmt.Errorf("%w: content is not valid UTF-8", ErrValidation)
	}
	return nil
}

// ValidateCategory rejects categories that are not valid UTF-8.
func ValidateCategory(category string) error {
	if !utf8.ValidString(category) {
		return fmt.Errorf("%w: category is not valid UTF-8", ErrValidation)
	}
	return nil
}

// ValidateDate rejects a date that cannot be stored. A nil date is valid.
func ValidateDate(field string, d *Date) error {
	if d == nil {
		return nil
	}
	if !d.InRange() {
		return fmt.Errorf("%w: %s date %s is outside years %d-%d", ErrValidation, field, d, MinYear, MaxYear)
	}
	return nil
}

// HasCategory reports whether the record is categorized.
func (r Record) HasCategory() bool {
	return r.Category != ""
}

// DisplayCategory returns the category, or DefaultCategory when uncategorized.
func (r Record) DisplayCategory() string {
	if !r.HasCategory() {
		return DefaultCategory
	}
	return r.Category
}

// String formats the record as "<category>: #<id> - <content> (Due: <date>)".
func (r Record) String() string {
	s := fmt.Sprintf("%s: #%d - %s", r.DisplayCategory(), r.ID, r.Content)
	if r.Due != nil {
		s += fmt.Sprintf(" (Due: %s)", r.Due)
	}
	return s
}

// Clone returns a copy of r that shares no memory with it.
func (r Record) Clone() Record {
	if r.Due != nil {
		r.Due = r.Due.Ptr()
	}
	if r.Added != nil {
		r.Added = r.Added.Ptr()
	}
	return r
}
