package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(completionCmd)
	removeCmd.ValidArgsFunction = completeReminderIDs
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate completion scripts for your shell.

Bash:
  $ source <(todo completion bash)

Zsh:
  $ todo completion zsh > "${fpath[1]}/_todo"

Fish:
  $ todo completion fish > ~/.config/fish/completions/todo.fish

PowerShell:
  PS> todo completion powershell | Out-String | Invoke-Expression

'todo remove <TAB>' completes reminder numbers from the current store.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		default:
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
	},
}

// completeReminderIDs offers "<id>\t<content>" for every stored reminder.
func completeReminderIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	s, err := openStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer s.Close()

	var ids []string
	for _, r := range s.All() {
		ids = append(ids, fmt.Sprintf("%d\t%s", r.ID, r.Content))
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
