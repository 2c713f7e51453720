package repo

import (
	"testing"

	"hustle/internal/model"
)

func TestAddClientResetsDerivedFields(t *testing.T) {
	r := newTestRepos(t)

	c, err := r.AddClient(model.Client{
		Name:       "Mika",
		TotalSpent: 9999,
		Visits:     []model.Visit{{ID: "sneaky", Amount: 100}},
	})
	if err != nil {
		t.Fatalf("AddClient: %v", err)
	}
	if c.ID == "" {
		t.Fatal("no id assigned")
	}
	if c.TotalSpent != 0 || len(c.Visits) != 0 {
		t.Fatalf("derived fields not reset: spent=%v visits=%d", c.TotalSpent, len(c.Visits))
	}
}

func TestAddClientRequiresName(t *testing.T) {
	r := newTestRepos(t)

	if _, err := r.AddClient(model.Client{}); err == nil {
		t.Fatal("nameless client accepted")
	}
}

func TestVisitsDriveTotalSpent(t *testing.T) {
	r := newTestRepos(t)

	c, _ := r.AddClient(model.Client{Name: "Dee"})

	v1, err := r.AddVisit(c.ID, "2026-08-01", 300, "")
	if err != nil {
		t.Fatalf("AddVisit: %v", err)
	}
	if _, err := r.AddVisit(c.ID, "2026-08-15", 200, ""); err != nil {
		t.Fatalf("AddVisit: %v", err)
	}

	stored := r.Clients()[0]
	if stored.TotalSpent != 500 {
		t.Fatalf("TotalSpent = %v, want 500", stored.TotalSpent)
	}
	if stored.LastVisit != "2026-08-15" {
		t.Fatalf("LastVisit = %q, want 2026-08-15", stored.LastVisit)
	}

	if err := r.DeleteVisit(c.ID, v1.ID); err != nil {
		t.Fatalf("DeleteVisit: %v", err)
	}
	stored = r.Clients()[0]
	if stored.TotalSpent != 200 {
		t.Fatalf("TotalSpent after delete = %v, want 200", stored.TotalSpent)
	}
}

func TestAddVisitRejectsNegativeAmount(t *testing.T) {
	r := newTestRepos(t)
	c, _ := r.AddClient(model.Client{Name: "Dee"})

	if _, err := r.AddVisit(c.ID, "", -5, ""); err == nil {
		t.Fatal("negative visit accepted")
	}
}

func TestUpdateClientKeepsStoredVisits(t *testing.T) {
	r := newTestRepos(t)

	c, _ := r.AddClient(model.Client{Name: "Dee"})
	if _, err := r.AddVisit(c.ID, "2026-08-01", 300, ""); err != nil {
		t.Fatalf("AddVisit: %v", err)
	}

	// An update that tries to smuggle in a fake visit history and total.
	err := r.UpdateClient(model.Client{
		ID:         c.ID,
		Name:       "Dee Renamed",
		TotalSpent: 1,
		Visits:     nil,
	})
	if err != nil {
		t.Fatalf("UpdateClient: %v", err)
	}

	stored := r.Clients()[0]
	if stored.Name != "Dee Renamed" {
		t.Fatalf("Name = %q", stored.Name)
	}
	if len(stored.Visits) != 1 || stored.TotalSpent != 300 {
		t.Fatalf("visits overwritten: %d visits, spent %v", len(stored.Visits), stored.TotalSpent)
	}
}

func TestDeleteClientRemovesVisitsWithIt(t *testing.T) {
	r := newTestRepos(t)

	c, _ := r.AddClient(model.Client{Name: "Dee"})
	if _, err := r.AddVisit(c.ID, "", 100, ""); err != nil {
		t.Fatalf("AddVisit: %v", err)
	}

	if err := r.DeleteClient(c.ID); err != nil {
		t.Fatalf("DeleteClient: %v", err)
	}
	if len(r.Clients()) != 0 {
		t.Fatal("client survived deletion")
	}
	if err := r.DeleteClient(c.ID); err == nil {
		t.Fatal("double delete did not error")
	}
}
