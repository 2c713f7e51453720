package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hustle/internal/cli"
	"hustle/internal/insight"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Analyze your data for patterns and opportunities",
	RunE:  runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	insights := insight.Generate(insight.Snapshot{
		Clients:       repos.Clients(),
		Earnings:      repos.Earnings(),
		Expenses:      repos.Expenses(),
		Opportunities: repos.Opportunities(),
		Shifts:        repos.Shifts(),
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle("INSIGHTS"))
	fmt.Println()

	if len(insights) == 0 {
		fmt.Println("  Nothing stands out yet. Keep logging earnings, visits, and shifts.")
		return nil
	}

	for _, in := range insights {
		fmt.Println(cli.RenderInsight(in))
		fmt.Println()
	}
	return nil
}
