package repo

import (
	"testing"

	"hustle/internal/model"
)

func TestAddEarningsRederivesTotal(t *testing.T) {
	r := newTestRepos(t)

	e, err := r.AddEarnings(model.Earnings{
		Tips:       200,
		VIPDances:  150,
		AfterDates: 100,
		Total:      1, // caller-supplied totals are discarded
	})
	if err != nil {
		t.Fatalf("AddEarnings: %v", err)
	}
	if e.Total != 450 {
		t.Fatalf("Total = %v, want 450", e.Total)
	}

	stored := r.Earnings()
	if len(stored) != 1 || stored[0].Total != 450 {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestAddEarningsRejectsNegativeComponents(t *testing.T) {
	r := newTestRepos(t)

	if _, err := r.AddEarnings(model.Earnings{Tips: -1}); err == nil {
		t.Fatal("negative tips accepted")
	}
	if _, err := r.AddEarnings(model.Earnings{VIPDances: -1}); err == nil {
		t.Fatal("negative vip dances accepted")
	}
	if _, err := r.AddEarnings(model.Earnings{AfterDates: -1}); err == nil {
		t.Fatal("negative after dates accepted")
	}
}

func TestAddExpenseValidation(t *testing.T) {
	r := newTestRepos(t)

	if _, err := r.AddExpense(model.Expense{Amount: 10}); err == nil {
		t.Fatal("missing category accepted")
	}
	if _, err := r.AddExpense(model.Expense{Category: "Club Fees", Amount: 0}); err == nil {
		t.Fatal("zero amount accepted")
	}

	e, err := r.AddExpense(model.Expense{Category: "Club Fees", Amount: 80})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if e.Date == "" {
		t.Fatal("date not defaulted")
	}
}

func TestFinancialRecordsSurviveRoundTrip(t *testing.T) {
	r := newTestRepos(t)

	if _, err := r.AddExpense(model.Expense{Category: "Makeup & Beauty", Amount: 60}); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if _, err := r.AddEarnings(model.Earnings{Tips: 300}); err != nil {
		t.Fatalf("AddEarnings: %v", err)
	}

	if got := TotalExpenses(r.Expenses()); got != 60 {
		t.Fatalf("TotalExpenses = %v, want 60", got)
	}
	if got := TotalEarnings(r.Earnings()); got != 300 {
		t.Fatalf("TotalEarnings = %v, want 300", got)
	}
}

func TestDeleteEarnings(t *testing.T) {
	r := newTestRepos(t)

	e, _ := r.AddEarnings(model.Earnings{Tips: 100})
	if err := r.DeleteEarnings(e.ID); err != nil {
		t.Fatalf("DeleteEarnings: %v", err)
	}
	if len(r.Earnings()) != 0 {
		t.Fatal("entry survived deletion")
	}
	if err := r.DeleteEarnings(e.ID); err == nil {
		t.Fatal("double delete did not error")
	}
}
