package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/r3/todo/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values in ~/.config/todo/config.yml.

Usage:
  todo config                              # Show all config
  todo config store-path                   # Get the configured store path
  todo config store-path ~/sync/todo.json  # Set the store path

Keys:
  store-path   Path to the reminder store file (default ~/.todo.json)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	out := cmd.OutOrStdout()

	// No args: show all config
	if len(args) == 0 {
		effective, err := resolveStorePath()
		if err != nil {
			return err
		}
		if humanOutput {
			outputHuman(out, "store-path:  %s\n", effective)
			outputHuman(out, "configured:  %s\n", cfg.StorePath)
			outputHuman(out, "config-file: %s\n", config.GlobalConfigPath())
			return nil
		}
		return outputJSON(out, ConfigResponse{
			StorePath:  effective,
			Configured: cfg.StorePath,
			ConfigFile: config.GlobalConfigPath(),
		})
	}

	key := args[0]
	normalizedKey := normalizeKey(key)
	if normalizedKey != "store-path" {
		return fmt.Errorf("%w: unknown configuration key: %s", errConfig, key)
	}

	// One arg: get specific value
	if len(args) == 1 {
		if humanOutput {
			fmt.Fprintln(out, cfg.StorePath)
			return nil
		}
		return outputJSON(out, map[string]string{"store_path": cfg.StorePath})
	}

	// Two args: set value
	value := config.ExpandPath(args[1])
	if err := config.ValidateStorePath(value); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	cfg.StorePath = value

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("%w: saving config: %w", errConfig, err)
	}

	if humanOutput {
		outputHuman(out, "Updated %s to %s\n", key, value)
		return nil
	}
	return outputJSON(out, UpdateResponse{
		Status: "updated",
		Key:    normalizedKey,
		Value:  value,
	})
}

// normalizeKey converts key formats (store-path, store_path, STORE_PATH) to consistent format
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
