// Package index maintains an ephemeral SQLite full-text index of reminders.
//
// The store file is the source of truth. The index records the hash of the
// store file it was built from and is rebuilt whenever that hash changes.
package index

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/r3/todo/internal/reminder"
	_ "modernc.org/sqlite"
)

// Index wraps the SQLite database holding the full-text index.
type Index struct {
	db *sql.DB
}

// Open opens or creates the index database at path.
func Open(path string) (*Index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating index schema: %w", err)
	}

	return &Index{db: db}, nil
}

// Close closes the database connection.
func (x *Index) Close() error {
	return x.db.Close()
}

// createSchema creates the tables if they don't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS reminders (
			id INTEGER PRIMARY KEY,
			content TEXT NOT NULL,
			category TEXT,
			due TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_reminders_category ON reminders(category);

		CREATE VIRTUAL TABLE IF NOT EXISTS reminders_fts USING fts5(
			content,
			category
		);

		CREATE TABLE IF NOT EXISTS _meta (
			key TEXT PRIMARY KEY,
			value TEXT
		);
	`

	_, err := db.Exec(schema)
	return err
}

// Sync clears the index and rebuilds it from records, remembering sourceHash.
// Returns the number of indexed reminders.
func (x *Index) Sync(records []reminder.Record, sourceHash string) (int, error) {
	tx, err := x.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning sync: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM reminders"); err != nil {
		return 0, fmt.Errorf("clearing reminders table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM reminders_fts"); err != nil {
		return 0, fmt.Errorf("clearing reminders_fts table: %w", err)
	}

	remStmt, err := tx.Prepare(`INSERT INTO reminders (id, content, category, due) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing reminders insert: %w", err)
	}
	defer remStmt.Close()

	// The FTS rowid doubles as the reminder id
	ftsStmt, err := tx.Prepare(`INSERT INTO reminders_fts (rowid, content, category) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for _, r := range records {
		var due sql.NullString
		if r.Due != nil {
			due = sql.NullString{String: r.Due.String(), Valid: true}
		}

		if _, err := remStmt.Exec(r.ID, r.Content, nullableString(r.Category), due); err != nil {
			return 0, fmt.Errorf("inserting reminder %d: %w", r.ID, err)
		}
		if _, err := ftsStmt.Exec(r.ID, r.Content, r.Category); err != nil {
			return 0, fmt.Errorf("inserting fts for %d: %w", r.ID, err)
		}
	}

	if err := setMeta(tx, "source_hash", sourceHash); err != nil {
		return 0, fmt.Errorf("updating hash: %w", err)
	}
	if err := setMeta(tx, "last_sync", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return 0, fmt.Errorf("updating sync time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing sync: %w", err)
	}
	return len(records), nil
}

// NeedsSync reports whether the index was built from a different source.
func (x *Index) NeedsSync(sourceHash string) (bool, error) {
	stored, err := x.getMeta("source_hash")
	if err != nil {
		return true, err
	}
	return stored != sourceHash, nil
}

// LastSync returns when the index was last rebuilt (zero if never).
func (x *Index) LastSync() (time.Time, error) {
	v, err := x.getMeta("last_sync")
	if err != nil || v == "" {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, v)
}

// Count returns the number of indexed reminders.
func (x *Index) Count() (int, error) {
	var n int
	if err := x.db.QueryRow("SELECT COUNT(*) FROM reminders").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Find runs a full-text query over content and category and returns matching
// ids, best match first. A limit <= 0 means no limit.
func (x *Index) Find(query string, limit int) ([]int, error) {
	ftsQuery := PrepareFTSQuery(query)
	if ftsQuery == "" {
		return []int{}, nil
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := x.db.Query(`
		SELECT rowid FROM reminders_fts
		WHERE reminders_fts MATCH ?
		ORDER BY rank, rowid
		LIMIT ?
	`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// PrepareFTSQuery turns free text into an FTS5 query that matches every word
// literally. Each word becomes a quoted string, so operators such as AND, NOT
// or * lose their meaning. Words without a letter or digit are dropped since
// the tokenizer would ignore them anyway.
func PrepareFTSQuery(query string) string {
	var terms []string
	for _, word := range strings.Fields(query) {
		if !strings.ContainsFunc(word, isTokenRune) {
			continue
		}
		terms = append(terms, `"`+strings.ReplaceAll(word, `"`, `""`)+`"`)
	}
	return strings.Join(terms, " ")
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func setMeta(db execer, key, value string) error {
	_, err := db.Exec(`INSERT OR REPLACE INTO _meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

func (x *Index) getMeta(key string) (string, error) {
	var v sql.NullString
	err := x.db.QueryRow("SELECT value FROM _meta WHERE key = ?", key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v.String, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
