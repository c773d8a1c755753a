package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/r3/todo/internal/query"
)

var (
	showCategory string
	showNumber   int
	showDueBy    string
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showCategory, "category", "c", "", "Only reminders in this category")
	showCmd.Flags().IntVarP(&showNumber, "number", "n", 0, "Show at most N reminders")
	showCmd.Flags().StringVar(&showDueBy, "due-by", "", "Only reminders due on or before this date")
}

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"list", "ls"},
	Short:   "Show reminders",
	Long: `Show reminders in ascending number order.

Filters are combined: a reminder is shown only if it matches all of them.
Category matching is exact and case-sensitive.

Examples:
  todo show
  todo show --category errands
  todo show --number 5
  todo show --due-by tomorrow --human`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	limit, err := parseLimit(showNumber)
	if err != nil {
		return err
	}
	dueBy, err := parseDueFlag(showDueBy)
	if err != nil {
		return err
	}

	criteria := query.Criteria{DueBy: dueBy, Limit: limit}
	if c := strings.TrimSpace(showCategory); c != "" {
		criteria.Category = &c
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	return outputRecords(cmd.OutOrStdout(), criteria.Apply(s.All()))
}
