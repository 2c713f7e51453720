package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hustle/internal/cli"
	"hustle/internal/model"
	"hustle/internal/repo"
)

var (
	flagOppClient   string
	flagOppType     string
	flagOppTitle    string
	flagOppDesc     string
	flagOppValue    float64
	flagOppPriority string
	flagOppFollowUp string
	flagOppNote     string
	flagOppAll      bool
)

var oppsCmd = &cobra.Command{
	Use:     "opps",
	Aliases: []string{"opportunities"},
	Short:   "List client opportunities",
	RunE:    runOpps,
}

var oppsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Track a new opportunity",
	RunE:  runOppsAdd,
}

var oppsStatusCmd = &cobra.Command{
	Use:   "status <opportunity-id> <new|in_progress|completed|missed>",
	Short: "Move an opportunity through its lifecycle",
	Args:  cobra.ExactArgs(2),
	RunE:  runOppsStatus,
}

var oppsNoteCmd = &cobra.Command{
	Use:   "note <opportunity-id> <text>",
	Short: "Append a dated note",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runOppsNote,
}

var oppsTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List opportunity types and their defaults",
	Run:   runOppsTypes,
}

func init() {
	oppsCmd.Flags().BoolVar(&flagOppAll, "all", false, "Include completed and missed opportunities")

	oppsAddCmd.Flags().StringVar(&flagOppClient, "client", "", "Client id or name (required)")
	oppsAddCmd.Flags().StringVar(&flagOppType, "type", string(model.TypeOther), "Opportunity type")
	oppsAddCmd.Flags().StringVar(&flagOppTitle, "title", "", "Title (required)")
	oppsAddCmd.Flags().StringVar(&flagOppDesc, "desc", "", "Description")
	oppsAddCmd.Flags().Float64Var(&flagOppValue, "value", 0, "Potential value (default from type)")
	oppsAddCmd.Flags().StringVar(&flagOppPriority, "priority", "", "Priority (default from type)")
	oppsAddCmd.Flags().StringVar(&flagOppFollowUp, "follow-up", "", "Follow-up date YYYY-MM-DD (default tomorrow)")
	_ = oppsAddCmd.MarkFlagRequired("client")
	_ = oppsAddCmd.MarkFlagRequired("title")

	oppsStatusCmd.Flags().StringVar(&flagOppNote, "note", "", "Note to attach to the status change")

	oppsCmd.AddCommand(oppsAddCmd)
	oppsCmd.AddCommand(oppsStatusCmd)
	oppsCmd.AddCommand(oppsNoteCmd)
	oppsCmd.AddCommand(oppsTypesCmd)
	rootCmd.AddCommand(oppsCmd)
}

func runOpps(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	opps := repos.Opportunities()
	clients := repos.Clients()

	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}

	shown := make([]model.Opportunity, 0, len(opps))
	for _, o := range opps {
		if o.Status.Active() || flagOppAll {
			shown = append(shown, o)
		}
	}
	if len(shown) == 0 {
		fmt.Println("\n  No opportunities in play.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("OPPORTUNITIES"))
	fmt.Println()

	rows := make([][]string, 0, len(shown)+2)
	for _, o := range shown {
		name := names[o.ClientID]
		if name == "" {
			name = shortID(o.ClientID)
		}
		rows = append(rows, []string{
			shortID(o.ID),
			name,
			o.Title,
			string(o.Priority),
			string(o.Status),
			o.FollowUpDate,
			cli.FormatMoneyWhole(o.PotentialValue),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "", "", "", "Active pipeline",
		cli.FormatMoneyWhole(repo.ActiveOpportunityValue(opps))})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Client", "Title", "Priority", "Status", "Follow-up", "Value"},
		Rows:    rows,
	}))
	return nil
}

func runOppsAdd(_ *cobra.Command, _ []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	clientID, err := resolveClientID(repos.Clients(), flagOppClient)
	if err != nil {
		return err
	}

	o, err := repos.AddOpportunity(model.Opportunity{
		ClientID:       clientID,
		Type:           model.OpportunityType(flagOppType),
		Title:          flagOppTitle,
		Description:    flagOppDesc,
		PotentialValue: flagOppValue,
		Priority:       model.Priority(flagOppPriority),
		FollowUpDate:   flagOppFollowUp,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Tracking %s worth %s, follow up %s (%s)\n",
		o.Title, cli.FormatMoneyWhole(o.PotentialValue), o.FollowUpDate, shortID(o.ID))
	return nil
}

func runOppsStatus(_ *cobra.Command, args []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := resolveOppID(repos.Opportunities(), args[0])
	if err != nil {
		return err
	}

	status := model.OpportunityStatus(args[1])
	if err := repos.UpdateOpportunityStatus(id, status, flagOppNote); err != nil {
		return err
	}
	fmt.Printf("  Opportunity moved to %s\n", status)
	return nil
}

func runOppsNote(_ *cobra.Command, args []string) error {
	repos, closeFn, err := openRepos()
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := resolveOppID(repos.Opportunities(), args[0])
	if err != nil {
		return err
	}
	if err := repos.AppendOpportunityNote(id, strings.Join(args[1:], " ")); err != nil {
		return err
	}
	fmt.Println("  Note added.")
	return nil
}

func runOppsTypes(_ *cobra.Command, _ []string) {
	fmt.Println()
	rows := make([][]string, 0, len(model.OpportunityTypeDefaults))
	for _, t := range []model.OpportunityType{
		model.TypeBusinessPartnership,
		model.TypeInvestment,
		model.TypeMentorship,
		model.TypeShopping,
		model.TypeTravel,
		model.TypeNetworking,
		model.TypeOther,
	} {
		d := model.OpportunityTypeDefaults[t]
		rows = append(rows, []string{
			string(t), d.Label, string(d.Priority), cli.FormatMoneyWhole(d.Value),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Type", "Label", "Priority", "Default Value"},
		Rows:    rows,
	}))
}

func resolveOppID(opps []model.Opportunity, ref string) (string, error) {
	var matches []string
	for _, o := range opps {
		if o.ID == ref {
			return o.ID, nil
		}
		if len(ref) >= 4 && len(o.ID) >= len(ref) && o.ID[:len(ref)] == ref {
			matches = append(matches, o.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no opportunity matches %q", ref)
	default:
		return "", fmt.Errorf("%q matches %d opportunities, use a longer id", ref, len(matches))
	}
}
