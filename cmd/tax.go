package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hustle/internal/cli"
	"hustle/internal/finance"
	"hustle/internal/repo"
)

var flagTaxBudget bool

var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Estimate taxes from logged earnings and expenses",
	RunE:  runTax,
}

func init() {
	taxCmd.Flags().BoolVar(&flagTaxBudget, "budget", false, "Include a monthly budget plan")
	rootCmd.AddCommand(taxCmd)
}

func runTax(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	totalEarnings := repo.TotalEarnings(repos.Earnings())
	totalExpenses := repo.TotalExpenses(repos.Expenses())
	est := finance.EstimateTaxes(totalEarnings, totalExpenses)

	fmt.Println()
	fmt.Println(cli.RenderTitle("TAX ESTIMATE"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Total earnings", cli.FormatMoney(totalEarnings)},
			{"Total expenses", cli.FormatMoney(totalExpenses)},
			{"Net income", cli.FormatMoney(est.NetIncome)},
			{"---"},
			{"Self-employment tax", cli.FormatMoney(est.SelfEmploymentTax)},
			{"Federal tax", cli.FormatMoney(est.FederalTax)},
			{"State tax", cli.FormatMoney(est.StateTax)},
			{"Total liability", cli.FormatMoney(est.TotalTaxLiability)},
			{"---"},
			{"Quarterly payment", cli.FormatMoney(est.QuarterlyPayment)},
			{"Recommended savings", cli.FormatMoney(est.RecommendedSavings)},
		},
	}))

	fmt.Println("\n  Estimates only. Talk to a tax professional for filing.")

	if !flagTaxBudget {
		return nil
	}

	plan := finance.PlanBudget(est)
	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY BUDGET PLAN"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Monthly income", cli.FormatMoney(plan.MonthlyIncome)},
			{"Tax savings", cli.FormatMoney(plan.MonthlyTaxSavings)},
			{"Personal savings", cli.FormatMoney(plan.MonthlySavings)},
			{"Left for spending", cli.FormatMoney(plan.MonthlySpending)},
			{"---"},
			{"Emergency fund target", cli.FormatMoney(plan.EmergencyFundTarget)},
		},
	}))
	return nil
}
