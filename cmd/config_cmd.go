package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hustle/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if _, err := os.Stat(config.ConfigPath()); err == nil {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", cfg.DataDir())
	fmt.Printf("    Database:       %s\n", cfg.DBPath())
	fmt.Println()

	fmt.Println("  [Daemon]")
	fmt.Printf("    Address:       %s\n", cfg.Daemon.Addr)
	fmt.Printf("    Poll interval: %s\n", cfg.PollInterval())
	fmt.Println()

	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	fmt.Println("  [Preferences]")
	fmt.Printf("    Theme:          %s\n", repos.Theme())
	fmt.Printf("    Privacy notice: acknowledged=%v\n", repos.PrivacyAcknowledged())
	fmt.Println()

	fmt.Println("  Run `hustle setup` to reconfigure.")
	return nil
}
