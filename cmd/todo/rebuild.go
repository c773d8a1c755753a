package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/r3/todo/internal/config"
	"github.com/r3/todo/internal/reminder"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the full-text search index from the store",
	Long: `Rebuild the SQLite search index used by 'todo find'.

The store file is the source of truth; the index can be deleted at any time
and is rebuilt on the next 'todo find' or by this command.`,
	Args: cobra.NoArgs,
	RunE: runRebuild,
}

func runRebuild(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	idx, err := openIndex(s)
	if err != nil {
		return err
	}
	defer idx.Close()

	if _, err := syncIndex(idx, s, true); err != nil {
		return err
	}

	n, err := idx.Count()
	if err != nil {
		return fmt.Errorf("%w: counting index: %w", reminder.ErrStorage, err)
	}
	synced, err := idx.LastSync()
	if err != nil {
		return fmt.Errorf("%w: reading index sync time: %w", reminder.ErrStorage, err)
	}

	out := cmd.OutOrStdout()
	if humanOutput {
		outputHuman(out, "Indexed %d reminders\n", n)
		return nil
	}
	return outputJSON(out, RebuildResponse{
		Status:    "rebuilt",
		Reminders: n,
		Path:      config.IndexPath(s.Path()),
		LastSync:  synced,
	})
}
