// Package main provides the todo CLI entry point.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/r3/todo/internal/config"
	"github.com/r3/todo/internal/store"
)

// Version is set at build time via ldflags
var Version = "dev"

// Global flags
var (
	humanOutput bool
	storeFlag   string
	verbose     bool
)

// nowFunc is the clock used for due dates and new reminders.
var nowFunc = time.Now

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		return reportError(stderr, err)
	}
	return ExitSuccess
}

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "Keep track of your reminders",
	Long: `todo is a command line reminder manager.

Reminders have a number, content, an optional category and an optional due
date. They are stored in a single local file (default ~/.todo.json); the
location can be changed with --store, the TODO_STORE environment variable, or
'todo config store-path'.

All commands output JSON by default; use --human for readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))
		return nil
	},
}

func init() {
	// A .env file in the working directory may set TODO_STORE
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Path to the reminder store file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log store activity to stderr")
	rootCmd.Version = Version
}

// resolveStorePath returns the store path from flag, environment or config.
func resolveStorePath() (string, error) {
	path, err := config.ResolveStorePath(storeFlag)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errConfig, err)
	}
	if err := config.ValidateStorePath(path); err != nil {
		return "", fmt.Errorf("%w: %w", errConfig, err)
	}
	return path, nil
}

// openStore opens the configured store.
// The caller is responsible for calling Close() on the returned store.
func openStore() (*store.Store, error) {
	path, err := resolveStorePath()
	if err != nil {
		return nil, err
	}
	slog.Debug("using store", "path", path)

	return store.Open(path,
		store.WithClock(nowFunc),
		store.WithLogger(slog.Default()),
	)
}
