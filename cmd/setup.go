package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"hustle/internal/config"
	"hustle/internal/repo"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	theme := repos.Theme()
	acknowledged := repos.PrivacyAcknowledged()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to hustle!").
				Description("Your clients, money, and habits, tracked privately on this machine."),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Dark", repo.ThemeDark),
					huh.NewOption("Light", repo.ThemeLight),
				).
				Value(&theme),

			huh.NewConfirm().
				Title("Privacy").
				Description("All data stays in a local database. Financial records are obfuscated on disk, which deters casual snooping but is not encryption. Anyone with full access to this machine can read them.").
				Affirmative("I understand").
				Negative("Cancel").
				Value(&acknowledged),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	if !acknowledged {
		fmt.Println("  Setup canceled. Run `hustle setup` when ready.")
		return nil
	}

	if err := repos.SetTheme(theme); err != nil {
		return err
	}
	repos.AcknowledgePrivacy()

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Printf("  Data lives in %s\n", cfg.DataDir())
	fmt.Println("  Run `hustle setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
