package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"hustle/internal/cli"
	"hustle/internal/model"
)

var (
	flagApptDate    string
	flagApptClient  string
	flagApptService string
	flagApptTime    string
	flagApptNotes   string
	flagApptWhen    string
)

var appointmentsCmd = &cobra.Command{
	Use:     "appointments",
	Aliases: []string{"appts"},
	Short:   "List upcoming appointments",
	RunE:    runAppointments,
}

var appointmentsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Book an appointment",
	RunE:  runAppointmentsAdd,
}

var appointmentsRmCmd = &cobra.Command{
	Use:   "rm <appointment-id>",
	Short: "Cancel an appointment",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppointmentsRm,
}

func init() {
	appointmentsCmd.Flags().StringVar(&flagApptWhen, "date", "", "Show a single day YYYY-MM-DD")

	appointmentsAddCmd.Flags().StringVar(&flagApptClient, "client", "", "Client name")
	appointmentsAddCmd.Flags().StringVar(&flagApptService, "service", "", "Service type")
	appointmentsAddCmd.Flags().StringVar(&flagApptDate, "date", "", "Date YYYY-MM-DD (required)")
	appointmentsAddCmd.Flags().StringVar(&flagApptTime, "time", "", "Time HH:MM (required)")
	appointmentsAddCmd.Flags().StringVar(&flagApptNotes, "notes", "", "Notes")
	_ = appointmentsAddCmd.MarkFlagRequired("date")
	_ = appointmentsAddCmd.MarkFlagRequired("time")

	appointmentsCmd.AddCommand(appointmentsAddCmd)
	appointmentsCmd.AddCommand(appointmentsRmCmd)
	rootCmd.AddCommand(appointmentsCmd)
}

func runAppointments(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	var appts []model.Appointment
	if flagApptWhen != "" {
		appts = repos.AppointmentsOn(flagApptWhen)
	} else {
		appts = repos.Appointments()
	}
	if len(appts) == 0 {
		fmt.Println("\n  Nothing booked.")
		return nil
	}

	sort.SliceStable(appts, func(i, j int) bool {
		if appts[i].Date != appts[j].Date {
			return appts[i].Date < appts[j].Date
		}
		return appts[i].Time < appts[j].Time
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle("APPOINTMENTS"))
	fmt.Println()

	now := time.Now()
	rows := make([][]string, 0, len(appts))
	for _, a := range appts {
		rows = append(rows, []string{
			shortID(a.ID),
			cli.FormatDay(a.Date, now),
			cli.FormatClock(a.Time),
			a.ClientName,
			a.ServiceType,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Day", "Time", "Client", "Service"},
		Rows:    rows,
	}))
	return nil
}

func runAppointmentsAdd(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	a, err := repos.AddAppointment(model.Appointment{
		ClientName:  flagApptClient,
		ServiceType: flagApptService,
		Date:        flagApptDate,
		Time:        flagApptTime,
		Notes:       flagApptNotes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Booked %s at %s (%s)\n", a.Date, cli.FormatClock(a.Time), shortID(a.ID))
	return nil
}

func runAppointmentsRm(_ *cobra.Command, args []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	for _, a := range repos.Appointments() {
		if a.ID == args[0] || shortID(a.ID) == args[0] {
			if err := repos.DeleteAppointment(a.ID); err != nil {
				return err
			}
			fmt.Println("  Appointment canceled.")
			return nil
		}
	}
	return fmt.Errorf("no appointment matches %q", args[0])
}
