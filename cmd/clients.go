package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hustle/internal/cli"
	"hustle/internal/model"
)

var (
	flagClientName        string
	flagClientNotes       string
	flagClientPreferences string
	flagVisitAmount       float64
	flagVisitDate         string
	flagVisitNotes        string
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List tracked clients",
	RunE:  runClients,
}

var clientsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new client",
	RunE:  runClientsAdd,
}

var clientsRmCmd = &cobra.Command{
	Use:   "rm <client-id>",
	Short: "Delete a client and their visit history",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientsRm,
}

var clientsVisitCmd = &cobra.Command{
	Use:   "visit <client-id>",
	Short: "Record a visit",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientsVisit,
}

var clientsShowCmd = &cobra.Command{
	Use:   "show <client-id>",
	Short: "Show one client with their visits",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientsShow,
}

func init() {
	clientsAddCmd.Flags().StringVar(&flagClientName, "name", "", "Client name (required)")
	clientsAddCmd.Flags().StringVar(&flagClientNotes, "notes", "", "Free-form notes")
	clientsAddCmd.Flags().StringVar(&flagClientPreferences, "preferences", "", "What they like")
	_ = clientsAddCmd.MarkFlagRequired("name")

	clientsVisitCmd.Flags().Float64Var(&flagVisitAmount, "amount", 0, "Amount spent this visit")
	clientsVisitCmd.Flags().StringVar(&flagVisitDate, "date", "", "Visit date YYYY-MM-DD (default today)")
	clientsVisitCmd.Flags().StringVar(&flagVisitNotes, "notes", "", "Visit notes")

	clientsCmd.AddCommand(clientsAddCmd)
	clientsCmd.AddCommand(clientsRmCmd)
	clientsCmd.AddCommand(clientsVisitCmd)
	clientsCmd.AddCommand(clientsShowCmd)
	rootCmd.AddCommand(clientsCmd)
}

func runClients(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	clients := repos.Clients()
	if len(clients) == 0 {
		fmt.Println("\n  No clients yet. Add one with `hustle clients add --name ...`")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CLIENTS"))
	fmt.Println()

	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		lastVisit := c.LastVisit
		if lastVisit == "" {
			lastVisit = "never"
		}
		rows = append(rows, []string{
			shortID(c.ID),
			c.Name,
			fmt.Sprintf("%d", len(c.Visits)),
			cli.FormatMoney(c.TotalSpent),
			lastVisit,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Visits", "Total Spent", "Last Visit"},
		Rows:    rows,
	}))
	return nil
}

func runClientsAdd(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	c, err := repos.AddClient(model.Client{
		Name:        flagClientName,
		Notes:       flagClientNotes,
		Preferences: flagClientPreferences,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Added client %s (%s)\n", c.Name, shortID(c.ID))
	return nil
}

func runClientsRm(_ *cobra.Command, args []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := resolveClientID(repos.Clients(), args[0])
	if err != nil {
		return err
	}
	if err := repos.DeleteClient(id); err != nil {
		return err
	}
	fmt.Println("  Client deleted.")
	return nil
}

func runClientsVisit(_ *cobra.Command, args []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := resolveClientID(repos.Clients(), args[0])
	if err != nil {
		return err
	}
	v, err := repos.AddVisit(id, flagVisitDate, flagVisitAmount, flagVisitNotes)
	if err != nil {
		return err
	}

	fmt.Printf("  Recorded %s visit on %s\n", cli.FormatMoney(v.Amount), v.Date)
	return nil
}

func runClientsShow(_ *cobra.Command, args []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	clients := repos.Clients()
	id, err := resolveClientID(clients, args[0])
	if err != nil {
		return err
	}

	var c model.Client
	for _, cl := range clients {
		if cl.ID == id {
			c = cl
			break
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(c.Name))
	fmt.Println()
	if c.Preferences != "" {
		fmt.Printf("  Preferences: %s\n", c.Preferences)
	}
	if c.Notes != "" {
		fmt.Printf("  Notes: %s\n", c.Notes)
	}
	fmt.Printf("  Total spent: %s across %d visits\n", cli.FormatMoney(c.TotalSpent), len(c.Visits))
	fmt.Println()

	if len(c.Visits) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(c.Visits))
	for _, v := range c.Visits {
		rows = append(rows, []string{v.Date, cli.FormatMoney(v.Amount), v.Notes})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Amount", "Notes"},
		Rows:    rows,
	}))
	return nil
}

// resolveClientID accepts a full id, a short id prefix, or an exact name.
func resolveClientID(clients []model.Client, ref string) (string, error) {
	var matches []string
	for _, c := range clients {
		if c.ID == ref || c.Name == ref {
			return c.ID, nil
		}
		if len(ref) >= 4 && len(c.ID) >= len(ref) && c.ID[:len(ref)] == ref {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no client matches %q", ref)
	default:
		return "", fmt.Errorf("%q matches %d clients, use a longer id", ref, len(matches))
	}
}
