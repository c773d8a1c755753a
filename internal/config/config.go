// Package config resolves where the reminder store lives.
//
// The store path comes from, in order: the --store flag, the TODO_STORE
// environment variable, store_path in the global config, and finally
// ~/.todo.json.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvStorePath overrides the configured store path.
	EnvStorePath = "TODO_STORE"
	// DefaultStoreFile is the store file name in the home directory.
	DefaultStoreFile = ".todo.json"
	// IndexSuffix is appended to the store path to name the search index.
	IndexSuffix = ".db"
)

// DefaultStorePath returns ~/.todo.json.
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, DefaultStoreFile), nil
}

// ResolveStorePath returns the store path to use. flagValue is the --store
// flag and wins when non-empty.
func ResolveStorePath(flagValue string) (string, error) {
	if flagValue != "" {
		return ExpandPath(flagValue), nil
	}

	cfg, err := LoadGlobalConfig()
	if err != nil {
		return "", err
	}

	if p := GetConfigValue(EnvStorePath, cfg.StorePath); p != "" {
		return ExpandPath(p), nil
	}

	return DefaultStorePath()
}

// IndexPath returns the path of the search index for a store.
func IndexPath(storePath string) string {
	return storePath + IndexSuffix
}

// ValidateStorePath checks that path can name a store file: it must not be a
// directory, and its parent, if it exists, must be a directory.
func ValidateStorePath(path string) error {
	if path == "" {
		return fmt.Errorf("store path must not be empty")
	}

	expandedPath := ExpandPath(path)

	if info, err := os.Stat(expandedPath); err == nil && info.IsDir() {
		return fmt.Errorf("path is a directory: %s", expandedPath)
	}

	parent := filepath.Dir(expandedPath)
	if info, err := os.Stat(parent); err == nil && !info.IsDir() {
		return fmt.Errorf("parent is not a directory: %s", parent)
	}

	return nil
}

// ExpandPath expands a leading ~ or ~/ to the user's home directory.
// Other paths, including ~user forms, are returned unchanged.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
