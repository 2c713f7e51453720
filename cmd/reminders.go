package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hustle/internal/cli"
	"hustle/internal/model"
)

var (
	flagReminderDate    string
	flagReminderTime    string
	flagReminderRepeats string
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "List scheduled reminders",
	RunE:  runReminders,
}

var remindersAddCmd = &cobra.Command{
	Use:   "add <message>",
	Short: "Schedule a reminder",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRemindersAdd,
}

var remindersToggleCmd = &cobra.Command{
	Use:   "toggle <reminder-id>",
	Short: "Enable or disable a reminder",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemindersToggle,
}

var remindersRmCmd = &cobra.Command{
	Use:   "rm <reminder-id>",
	Short: "Delete a reminder",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemindersRm,
}

func init() {
	remindersAddCmd.Flags().StringVar(&flagReminderDate, "date", "", "Date YYYY-MM-DD (required)")
	remindersAddCmd.Flags().StringVar(&flagReminderTime, "time", "", "Time HH:MM (required)")
	remindersAddCmd.Flags().StringVar(&flagReminderRepeats, "repeats", "none", "Repeat: none, daily, weekly")
	_ = remindersAddCmd.MarkFlagRequired("date")
	_ = remindersAddCmd.MarkFlagRequired("time")

	remindersCmd.AddCommand(remindersAddCmd)
	remindersCmd.AddCommand(remindersToggleCmd)
	remindersCmd.AddCommand(remindersRmCmd)
	rootCmd.AddCommand(remindersCmd)
}

func runReminders(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	reminders := repos.Reminders()
	if len(reminders) == 0 {
		fmt.Println("\n  No reminders set.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("REMINDERS"))
	fmt.Println()

	rows := make([][]string, 0, len(reminders))
	for _, r := range reminders {
		state := "on"
		if !r.Enabled {
			state = "off"
		}
		rows = append(rows, []string{
			shortID(r.ID),
			r.Date,
			cli.FormatClock(r.Time),
			string(r.Repeats),
			state,
			r.Message,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Time", "Repeats", "State", "Message"},
		Rows:    rows,
	}))
	return nil
}

func runRemindersAdd(_ *cobra.Command, args []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	r, err := repos.AddReminder(model.Reminder{
		Message: strings.Join(args, " "),
		Date:    flagReminderDate,
		Time:    flagReminderTime,
		Repeats: model.RepeatKind(flagReminderRepeats),
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Reminder set for %s at %s (%s)\n", r.Date, cli.FormatClock(r.Time), shortID(r.ID))
	return nil
}

func runRemindersToggle(_ *cobra.Command, args []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := resolveReminderID(repos.Reminders(), args[0])
	if err != nil {
		return err
	}
	if err := repos.ToggleReminder(id); err != nil {
		return err
	}
	fmt.Println("  Reminder toggled.")
	return nil
}

func runRemindersRm(_ *cobra.Command, args []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := resolveReminderID(repos.Reminders(), args[0])
	if err != nil {
		return err
	}
	if err := repos.DeleteReminder(id); err != nil {
		return err
	}
	fmt.Println("  Reminder deleted.")
	return nil
}

func resolveReminderID(reminders []model.Reminder, ref string) (string, error) {
	var matches []string
	for _, r := range reminders {
		if r.ID == ref {
			return r.ID, nil
		}
		if len(ref) >= 4 && len(r.ID) >= len(ref) && strings.HasPrefix(r.ID, ref) {
			matches = append(matches, r.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no reminder matches %q", ref)
	default:
		return "", fmt.Errorf("%q matches %d reminders, use a longer id", ref, len(matches))
	}
}
