package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hustle/internal/cli"
	"hustle/internal/model"
	"hustle/internal/repo"
)

var (
	flagExpenseCategory    string
	flagExpenseAmount      float64
	flagExpenseDate        string
	flagExpenseDescription string
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "List work expenses",
	RunE:  runExpenses,
}

var expensesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a work expense",
	RunE:  runExpensesAdd,
}

var expensesRmCmd = &cobra.Command{
	Use:   "rm <expense-id>",
	Short: "Delete an expense entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesRm,
}

var expensesCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the expense categories",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println()
		for _, c := range model.ExpenseCategories {
			fmt.Printf("  %s\n", c)
		}
	},
}

func init() {
	expensesAddCmd.Flags().StringVar(&flagExpenseCategory, "category", "", "Expense category (required)")
	expensesAddCmd.Flags().Float64Var(&flagExpenseAmount, "amount", 0, "Amount (required)")
	expensesAddCmd.Flags().StringVar(&flagExpenseDate, "date", "", "Date YYYY-MM-DD (default today)")
	expensesAddCmd.Flags().StringVar(&flagExpenseDescription, "desc", "", "Description")
	_ = expensesAddCmd.MarkFlagRequired("category")
	_ = expensesAddCmd.MarkFlagRequired("amount")

	expensesCmd.AddCommand(expensesAddCmd)
	expensesCmd.AddCommand(expensesRmCmd)
	expensesCmd.AddCommand(expensesCategoriesCmd)
	rootCmd.AddCommand(expensesCmd)
}

func runExpenses(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	expenses := repos.Expenses()
	if len(expenses) == 0 {
		fmt.Println("\n  No expenses logged.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("WORK EXPENSES"))
	fmt.Println()

	rows := make([][]string, 0, len(expenses)+2)
	for _, e := range expenses {
		rows = append(rows, []string{
			shortID(e.ID),
			e.Date,
			e.Category,
			e.Description,
			cli.FormatMoney(e.Amount),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "", "Total", cli.FormatMoney(repo.TotalExpenses(expenses))})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Category", "Description", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func runExpensesAdd(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	e, err := repos.AddExpense(model.Expense{
		Category:    flagExpenseCategory,
		Amount:      flagExpenseAmount,
		Date:        flagExpenseDate,
		Description: flagExpenseDescription,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Logged %s for %s on %s\n", cli.FormatMoney(e.Amount), e.Category, e.Date)
	return nil
}

func runExpensesRm(_ *cobra.Command, args []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	for _, e := range repos.Expenses() {
		if e.ID == args[0] || shortID(e.ID) == args[0] {
			if err := repos.DeleteExpense(e.ID); err != nil {
				return err
			}
			fmt.Println("  Expense deleted.")
			return nil
		}
	}
	return fmt.Errorf("no expense matches %q", args[0])
}
