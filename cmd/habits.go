package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hustle/internal/cli"
	"hustle/internal/model"
	"hustle/internal/repo"
)

var (
	flagHabitName     string
	flagHabitCategory string
	flagHabitTimes    int
	flagHabitDate     string
	flagHabitAll      bool
)

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "Show weekly habit progress",
	RunE:  runHabits,
}

var habitsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a habit with a weekly target",
	RunE:  runHabitsAdd,
}

var habitsToggleCmd = &cobra.Command{
	Use:   "toggle <habit-id>",
	Short: "Toggle a habit's completion for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitsToggle,
}

var habitsArchiveCmd = &cobra.Command{
	Use:   "archive <habit-id>",
	Short: "Archive or unarchive a habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitsArchive,
}

var habitsRmCmd = &cobra.Command{
	Use:   "rm <habit-id>",
	Short: "Delete a habit and its logs",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitsRm,
}

func init() {
	habitsCmd.Flags().BoolVar(&flagHabitAll, "all", false, "Include archived habits")

	habitsAddCmd.Flags().StringVar(&flagHabitName, "name", "", "Habit name (required)")
	habitsAddCmd.Flags().StringVar(&flagHabitCategory, "category", "", "Category (Self-care, Career, Skill-building, Money, Health, Custom)")
	habitsAddCmd.Flags().IntVar(&flagHabitTimes, "times", 7, "Target completions per week (1-7)")
	_ = habitsAddCmd.MarkFlagRequired("name")

	habitsToggleCmd.Flags().StringVar(&flagHabitDate, "date", "", "Day to toggle YYYY-MM-DD (default today)")

	habitsCmd.AddCommand(habitsAddCmd)
	habitsCmd.AddCommand(habitsToggleCmd)
	habitsCmd.AddCommand(habitsArchiveCmd)
	habitsCmd.AddCommand(habitsRmCmd)
	rootCmd.AddCommand(habitsCmd)
}

func runHabits(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	habits := repos.Habits()
	logs := repos.HabitLogs()
	now := time.Now()

	shown := 0
	fmt.Println()
	fmt.Println(cli.RenderTitle("HABITS THIS WEEK"))
	fmt.Println()
	for _, h := range habits {
		if h.IsArchived && !flagHabitAll {
			continue
		}
		shown++

		pct := repo.WeeklyCompletionPercent(h, logs, now)
		streak := repo.WeeklyStreak(h, logs, now)
		label := h.Name
		if h.IsArchived {
			label += " (archived)"
		}
		fmt.Println(cli.RenderHabitBar(label, pct, 20))
		fmt.Printf("    %s · %s · %dx/week · %d week streak\n",
			shortID(h.ID), h.Category, h.TimesPerWeek, streak)
	}
	if shown == 0 {
		fmt.Println("  No habits yet. Add one with `hustle habits add --name ...`")
	}
	return nil
}

func runHabitsAdd(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	h, err := repos.AddHabit(model.Habit{
		Name:         flagHabitName,
		Category:     flagHabitCategory,
		TimesPerWeek: flagHabitTimes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Added habit %s, %dx per week (%s)\n", h.Name, h.TimesPerWeek, shortID(h.ID))
	return nil
}

func runHabitsToggle(_ *cobra.Command, args []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := resolveHabitID(repos.Habits(), args[0])
	if err != nil {
		return err
	}

	date := flagHabitDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	done, err := repos.ToggleHabitLog(id, date)
	if err != nil {
		return err
	}
	if done {
		fmt.Printf("  Marked done for %s\n", date)
	} else {
		fmt.Printf("  Unmarked for %s\n", date)
	}
	return nil
}

func runHabitsArchive(_ *cobra.Command, args []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := resolveHabitID(repos.Habits(), args[0])
	if err != nil {
		return err
	}
	if err := repos.ToggleArchive(id); err != nil {
		return err
	}
	fmt.Println("  Habit archive flag toggled.")
	return nil
}

func runHabitsRm(_ *cobra.Command, args []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := resolveHabitID(repos.Habits(), args[0])
	if err != nil {
		return err
	}
	if err := repos.DeleteHabit(id); err != nil {
		return err
	}
	fmt.Println("  Habit and its logs deleted.")
	return nil
}

func resolveHabitID(habits []model.Habit, ref string) (string, error) {
	var matches []string
	for _, h := range habits {
		if h.ID == ref || h.Name == ref {
			return h.ID, nil
		}
		if len(ref) >= 4 && len(h.ID) >= len(ref) && h.ID[:len(ref)] == ref {
			matches = append(matches, h.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no habit matches %q", ref)
	default:
		return "", fmt.Errorf("%q matches %d habits, use a longer id", ref, len(matches))
	}
}
