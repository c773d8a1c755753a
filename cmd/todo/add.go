package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	addCategory string
	addDue      string
)

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category of the reminder")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "Due date (today, tomorrow, '3 days', '2 weeks', 2026-03-08)")
}

var addCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Add a reminder",
	Long: `Add a reminder and print its number.

Examples:
  todo add "Buy milk" --category errands
  todo add "Renew passport" --due "2 weeks"
  todo add "Call Bob" --due tomorrow --human`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	content := strings.Join(args, " ")

	dueDate, err := parseDueFlag(addDue)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	rec, err := s.Add(content, strings.TrimSpace(addCategory), dueDate)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if humanOutput {
		outputHuman(out, "Added reminder #%d\n", rec.ID)
		return nil
	}
	return outputJSON(out, rec)
}
