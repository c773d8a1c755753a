package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/r3/todo/internal/query"
	"github.com/r3/todo/internal/reminder"
)

var searchDue string

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchDue, "due", "d", "", "Only reminders due exactly on this date")
}

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search reminders by content and due date",
	Long: `Search reminders whose content contains the text (case-sensitive).

With --due, only reminders due exactly on that date are returned. When both
are given a reminder must match both.

Examples:
  todo search milk
  todo search --due tomorrow
  todo search report --due 2026-03-08`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	var criteria query.Criteria
	if len(args) == 1 {
		criteria.Text = &args[0]
	}

	dueDate, err := parseDueFlag(strings.TrimSpace(searchDue))
	if err != nil {
		return err
	}
	criteria.Due = dueDate

	if criteria.IsEmpty() {
		return fmt.Errorf("%w: provide search text, --due, or both", reminder.ErrValidation)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	return outputRecords(cmd.OutOrStdout(), criteria.Apply(s.All()))
}
