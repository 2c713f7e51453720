// Package cmd implements the hustle CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hustle/internal/config"
	"hustle/internal/repo"
	"hustle/internal/store"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "hustle",
	Short: "Personal business manager for independent entertainers",
	Long:  "Track clients, appointments, shifts, money, and habits, and get insights from your own numbers. Everything stays on this machine.",
	RunE:  runInsights,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (overrides config)")
}

// openRepos is the shared data access path used by all commands. The
// returned cleanup closes the underlying database.
func openRepos() (*repo.Repos, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	if err := os.MkdirAll(cfg.DataDir(), 0o750); err != nil {
		return nil, nil, fmt.Errorf("creating data directory: %w", err)
	}

	kv, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, nil, err
	}

	return repo.New(kv), func() { _ = kv.Close() }, nil
}

// shortID truncates a uuid for display. Commands accept the short form
// back as a prefix.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// loadConfig resolves the effective config, honoring the --data-dir flag.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return cfg, nil
}
