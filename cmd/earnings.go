package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hustle/internal/cli"
	"hustle/internal/model"
	"hustle/internal/repo"
)

var (
	flagEarningsTips       float64
	flagEarningsVIP        float64
	flagEarningsAfterDates float64
	flagEarningsDate       string
)

var earningsCmd = &cobra.Command{
	Use:   "earnings",
	Short: "List daily earnings",
	RunE:  runEarnings,
}

var earningsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a day's earnings by source",
	RunE:  runEarningsAdd,
}

var earningsRmCmd = &cobra.Command{
	Use:   "rm <earnings-id>",
	Short: "Delete an earnings entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEarningsRm,
}

func init() {
	earningsAddCmd.Flags().Float64Var(&flagEarningsTips, "tips", 0, "Tips earned")
	earningsAddCmd.Flags().Float64Var(&flagEarningsVIP, "vip", 0, "VIP dances earned")
	earningsAddCmd.Flags().Float64Var(&flagEarningsAfterDates, "dates", 0, "After-dates earned")
	earningsAddCmd.Flags().StringVar(&flagEarningsDate, "date", "", "Date YYYY-MM-DD (default today)")

	earningsCmd.AddCommand(earningsAddCmd)
	earningsCmd.AddCommand(earningsRmCmd)
	rootCmd.AddCommand(earningsCmd)
}

func runEarnings(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	earnings := repos.Earnings()
	if len(earnings) == 0 {
		fmt.Println("\n  No earnings logged.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("EARNINGS"))
	fmt.Println()

	rows := make([][]string, 0, len(earnings)+2)
	for _, e := range earnings {
		rows = append(rows, []string{
			shortID(e.ID),
			e.Date,
			cli.FormatMoney(e.Tips),
			cli.FormatMoney(e.VIPDances),
			cli.FormatMoney(e.AfterDates),
			cli.FormatMoney(e.Total),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "", "", "Total", cli.FormatMoney(repo.TotalEarnings(earnings))})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Tips", "VIP", "Dates", "Total"},
		Rows:    rows,
	}))
	return nil
}

func runEarningsAdd(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	e, err := repos.AddEarnings(model.Earnings{
		Tips:       flagEarningsTips,
		VIPDances:  flagEarningsVIP,
		AfterDates: flagEarningsAfterDates,
		Date:       flagEarningsDate,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Logged %s for %s\n", cli.FormatMoney(e.Total), e.Date)
	return nil
}

func runEarningsRm(_ *cobra.Command, args []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	for _, e := range repos.Earnings() {
		if e.ID == args[0] || shortID(e.ID) == args[0] {
			if err := repos.DeleteEarnings(e.ID); err != nil {
				return err
			}
			fmt.Println("  Earnings entry deleted.")
			return nil
		}
	}
	return fmt.Errorf("no earnings entry matches %q", args[0])
}
