package repo

import (
	"strings"
	"testing"

	"hustle/internal/model"
)

func TestAddOpportunityAppliesTypeDefaults(t *testing.T) {
	r := newTestRepos(t)
	c, _ := r.AddClient(model.Client{Name: "Vi"})

	o, err := r.AddOpportunity(model.Opportunity{
		ClientID: c.ID,
		Type:     model.TypeBusinessPartnership,
		Title:    "Club co-ownership",
	})
	if err != nil {
		t.Fatalf("AddOpportunity: %v", err)
	}
	if o.PotentialValue != 10000 {
		t.Fatalf("PotentialValue = %v, want 10000", o.PotentialValue)
	}
	if o.Priority != model.PriorityCritical {
		t.Fatalf("Priority = %s, want critical", o.Priority)
	}
	if o.Status != model.StatusNew {
		t.Fatalf("Status = %s, want new", o.Status)
	}
	if o.FollowUpDate == "" {
		t.Fatal("FollowUpDate not defaulted")
	}
}

func TestAddOpportunityExplicitValuesWin(t *testing.T) {
	r := newTestRepos(t)
	c, _ := r.AddClient(model.Client{Name: "Vi"})

	o, err := r.AddOpportunity(model.Opportunity{
		ClientID:       c.ID,
		Type:           model.TypeShopping,
		Title:          "Designer haul",
		PotentialValue: 1200,
		Priority:       model.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("AddOpportunity: %v", err)
	}
	if o.PotentialValue != 1200 || o.Priority != model.PriorityHigh {
		t.Fatalf("defaults overrode explicit values: %+v", o)
	}
}

func TestAddOpportunityRejectsUnknownType(t *testing.T) {
	r := newTestRepos(t)
	c, _ := r.AddClient(model.Client{Name: "Vi"})

	_, err := r.AddOpportunity(model.Opportunity{
		ClientID: c.ID,
		Type:     "lottery",
		Title:    "nope",
	})
	if err == nil {
		t.Fatal("unknown type accepted")
	}
}

func TestAddOpportunityCreatesFollowUpReminders(t *testing.T) {
	r := newTestRepos(t)
	c, _ := r.AddClient(model.Client{Name: "Vi"})

	o, _ := r.AddOpportunity(model.Opportunity{
		ClientID: c.ID,
		Type:     model.TypeInvestment, // critical, gets the weekly check too
		Title:    "Stock tip",
	})

	reminders := r.Reminders()
	if len(reminders) != 2 {
		t.Fatalf("reminders = %d, want 2", len(reminders))
	}

	var followUp, weekly bool
	for _, rem := range reminders {
		if rem.OpportunityID != o.ID {
			t.Fatalf("reminder not linked to opportunity: %+v", rem)
		}
		switch {
		case strings.HasSuffix(rem.ID, "-followup"):
			followUp = true
			if rem.Repeats != model.RepeatNone || rem.Time != "10:00" {
				t.Fatalf("follow-up reminder misconfigured: %+v", rem)
			}
		case strings.HasSuffix(rem.ID, "-weekly"):
			weekly = true
			if rem.Repeats != model.RepeatWeekly || rem.Time != "09:00" {
				t.Fatalf("weekly reminder misconfigured: %+v", rem)
			}
		}
	}
	if !followUp || !weekly {
		t.Fatalf("missing reminders: followUp=%v weekly=%v", followUp, weekly)
	}
}

func TestLowPriorityOpportunityGetsOnlyFollowUp(t *testing.T) {
	r := newTestRepos(t)
	c, _ := r.AddClient(model.Client{Name: "Vi"})

	_, _ = r.AddOpportunity(model.Opportunity{
		ClientID: c.ID,
		Type:     model.TypeOther, // low priority
		Title:    "Something small",
	})

	if got := len(r.Reminders()); got != 1 {
		t.Fatalf("reminders = %d, want 1", got)
	}
}

func TestOpportunityStatusMachine(t *testing.T) {
	r := newTestRepos(t)
	c, _ := r.AddClient(model.Client{Name: "Vi"})
	o, _ := r.AddOpportunity(model.Opportunity{
		ClientID: c.ID,
		Type:     model.TypeMentorship,
		Title:    "Coaching deal",
	})

	if err := r.UpdateOpportunityStatus(o.ID, model.StatusInProgress, "first call"); err != nil {
		t.Fatalf("new -> in_progress: %v", err)
	}
	if err := r.UpdateOpportunityStatus(o.ID, model.StatusCompleted, ""); err != nil {
		t.Fatalf("in_progress -> completed: %v", err)
	}

	// Completed is terminal.
	if err := r.UpdateOpportunityStatus(o.ID, model.StatusInProgress, ""); err == nil {
		t.Fatal("completed -> in_progress accepted")
	}

	stored := r.Opportunities()[0]
	if len(stored.Notes) != 1 || !strings.Contains(stored.Notes[0], "first call") {
		t.Fatalf("notes = %v", stored.Notes)
	}
}

func TestAppendOpportunityNote(t *testing.T) {
	r := newTestRepos(t)
	c, _ := r.AddClient(model.Client{Name: "Vi"})
	o, _ := r.AddOpportunity(model.Opportunity{
		ClientID: c.ID,
		Type:     model.TypeNetworking,
		Title:    "Gallery opening",
	})

	if err := r.AppendOpportunityNote(o.ID, ""); err == nil {
		t.Fatal("empty note accepted")
	}
	if err := r.AppendOpportunityNote(o.ID, "brought a friend"); err != nil {
		t.Fatalf("AppendOpportunityNote: %v", err)
	}
	if err := r.AppendOpportunityNote(o.ID, "second note"); err != nil {
		t.Fatalf("AppendOpportunityNote: %v", err)
	}

	stored := r.Opportunities()[0]
	if len(stored.Notes) != 2 {
		t.Fatalf("notes = %v", stored.Notes)
	}
}

func TestActiveOpportunityValue(t *testing.T) {
	opps := []model.Opportunity{
		{Status: model.StatusNew, PotentialValue: 5000},
		{Status: model.StatusInProgress, PotentialValue: 3000},
		{Status: model.StatusCompleted, PotentialValue: 10000},
		{Status: model.StatusMissed, PotentialValue: 2000},
	}
	if got := ActiveOpportunityValue(opps); got != 8000 {
		t.Fatalf("ActiveOpportunityValue = %v, want 8000", got)
	}
}
