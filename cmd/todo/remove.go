package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var removeYes bool

// isInteractive reports whether stdin is a terminal; confirmation is only
// requested when it is.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Remove without asking for confirmation")
}

var removeCmd = &cobra.Command{
	Use:     "remove <number>",
	Aliases: []string{"rm", "done"},
	Short:   "Remove a reminder",
	Long: `Remove a reminder by its number.

On a terminal you are asked to confirm unless --yes is given. Removal is
permanent and the number is never reused.

Examples:
  todo remove 3
  todo remove 3 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	rec, err := s.Get(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !removeYes && isInteractive() {
		if !confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf("Remove %s?", rec)) {
			if humanOutput {
				outputHuman(out, "Reminder #%d kept\n", id)
				return nil
			}
			return outputJSON(out, RemoveResponse{Status: "cancelled", Reminder: &rec})
		}
	}

	removed, err := s.Remove(id)
	if err != nil {
		return err
	}

	if humanOutput {
		outputHuman(out, "Removed reminder #%d\n", removed.ID)
		return nil
	}
	return outputJSON(out, RemoveResponse{Status: "removed", Reminder: &removed})
}

// confirm asks a yes/no question; anything but y or yes is a no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s (y/N) ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
