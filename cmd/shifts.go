package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hustle/internal/cli"
	"hustle/internal/model"
)

var (
	flagShiftDate  string
	flagShiftStart string
	flagShiftEnd   string
)

var shiftsCmd = &cobra.Command{
	Use:   "shifts",
	Short: "List worked shifts",
	RunE:  runShifts,
}

var shiftsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a worked shift",
	RunE:  runShiftsAdd,
}

func init() {
	shiftsAddCmd.Flags().StringVar(&flagShiftDate, "date", "", "Date YYYY-MM-DD (default today)")
	shiftsAddCmd.Flags().StringVar(&flagShiftStart, "start", "", "Start time HH:MM (required)")
	shiftsAddCmd.Flags().StringVar(&flagShiftEnd, "end", "", "End time HH:MM (required)")
	_ = shiftsAddCmd.MarkFlagRequired("start")
	_ = shiftsAddCmd.MarkFlagRequired("end")

	shiftsCmd.AddCommand(shiftsAddCmd)
	rootCmd.AddCommand(shiftsCmd)
}

func runShifts(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	shifts := repos.Shifts()
	if len(shifts) == 0 {
		fmt.Println("\n  No shifts recorded.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SHIFTS"))
	fmt.Println()

	rows := make([][]string, 0, len(shifts))
	for _, s := range shifts {
		rows = append(rows, []string{
			s.Date,
			cli.FormatClock(s.StartTime),
			cli.FormatClock(s.EndTime),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Start", "End"},
		Rows:    rows,
	}))
	return nil
}

func runShiftsAdd(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	s, err := repos.AddShift(model.Shift{
		Date:      flagShiftDate,
		StartTime: flagShiftStart,
		EndTime:   flagShiftEnd,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Recorded shift %s %s-%s\n", s.Date, cli.FormatClock(s.StartTime), cli.FormatClock(s.EndTime))
	return nil
}
