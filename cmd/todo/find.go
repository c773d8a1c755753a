package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/r3/todo/internal/config"
	"github.com/r3/todo/internal/index"
	"github.com/r3/todo/internal/reminder"
	"github.com/r3/todo/internal/store"
)

var findNumber int

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().IntVarP(&findNumber, "number", "n", 0, "Show at most N reminders")
}

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Full-text search over content and category, best match first",
	Long: `Full-text search using the SQLite index next to the store.

Unlike 'search', matching is by word and case-insensitive, covers categories
too, and results are ranked. The index is rebuilt automatically when the
store has changed.

Examples:
  todo find milk
  todo find "renew passport" --number 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	limit, err := parseLimit(findNumber)
	if err != nil {
		return err
	}
	q := strings.Join(args, " ")

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	if s.Len() == 0 {
		return outputRecords(out, nil)
	}

	idx, err := openIndex(s)
	if err != nil {
		return err
	}
	defer idx.Close()

	if _, err := syncIndex(idx, s, false); err != nil {
		return err
	}

	ids, err := idx.Find(q, limit)
	if err != nil {
		return fmt.Errorf("%w: %w", reminder.ErrStorage, err)
	}

	results := make([]reminder.Record, 0, len(ids))
	for _, id := range ids {
		rec, err := s.Get(id)
		if err != nil {
			continue // Index can only lag behind the store, never lead it
		}
		results = append(results, rec)
	}

	return outputRecords(out, results)
}

// openIndex opens the search index that belongs to s.
// The caller is responsible for calling Close() on the returned index.
func openIndex(s *store.Store) (*index.Index, error) {
	idx, err := index.Open(config.IndexPath(s.Path()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", reminder.ErrStorage, err)
	}
	return idx, nil
}

// syncIndex rebuilds idx from s when the store file has changed, or always
// when force is set. Returns the number of indexed reminders (0 if skipped).
func syncIndex(idx *index.Index, s *store.Store, force bool) (int, error) {
	hash, err := store.ComputeHash(s.Path())
	if err != nil {
		return 0, fmt.Errorf("%w: hashing store: %w", reminder.ErrStorage, err)
	}

	if !force {
		stale, err := idx.NeedsSync(hash)
		if err != nil {
			return 0, fmt.Errorf("%w: checking index: %w", reminder.ErrStorage, err)
		}
		if !stale {
			return 0, nil
		}
	}

	n, err := idx.Sync(s.All(), hash)
	if err != nil {
		return 0, fmt.Errorf("%w: rebuilding index: %w", reminder.ErrStorage, err)
	}
	slog.Debug("rebuilt index", "reminders", n)
	return n, nil
}
