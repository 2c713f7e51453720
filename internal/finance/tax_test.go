package finance

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimateTaxes(t *testing.T) {
	est := EstimateTaxes(100000, 20000)

	if est.NetIncome != 80000 {
		t.Fatalf("NetIncome = %v, want 80000", est.NetIncome)
	}
	if !near(est.SelfEmploymentTax, 80000*0.1413) {
		t.Fatalf("SelfEmploymentTax = %v", est.SelfEmploymentTax)
	}
	if !near(est.FederalTax, 80000*0.22) {
		t.Fatalf("FederalTax = %v", est.FederalTax)
	}
	if !near(est.StateTax, 80000*0.05) {
		t.Fatalf("StateTax = %v", est.StateTax)
	}

	wantTotal := est.SelfEmploymentTax + est.FederalTax + est.StateTax
	if !near(est.TotalTaxLiability, wantTotal) {
		t.Fatalf("TotalTaxLiability = %v, want %v", est.TotalTaxLiability, wantTotal)
	}
	if !near(est.QuarterlyPayment, wantTotal/4) {
		t.Fatalf("QuarterlyPayment = %v, want %v", est.QuarterlyPayment, wantTotal/4)
	}
	if !near(est.RecommendedSavings, wantTotal*1.10) {
		t.Fatalf("RecommendedSavings = %v, want %v", est.RecommendedSavings, wantTotal*1.10)
	}
}

func TestEstimateTaxesNegativeNet(t *testing.T) {
	// Expenses above earnings: the estimate goes negative rather than
	// clamping, callers decide how to present it.
	est := EstimateTaxes(1000, 5000)
	if est.NetIncome != -4000 {
		t.Fatalf("NetIncome = %v, want -4000", est.NetIncome)
	}
	if est.TotalTaxLiability >= 0 {
		t.Fatalf("TotalTaxLiability = %v, want negative", est.TotalTaxLiability)
	}
}

func TestPlanBudget(t *testing.T) {
	est := EstimateTaxes(120000, 0)
	plan := PlanBudget(est)

	if !near(plan.MonthlyIncome, 10000) {
		t.Fatalf("MonthlyIncome = %v, want 10000", plan.MonthlyIncome)
	}
	if !near(plan.EmergencyFundTarget, 60000) {
		t.Fatalf("EmergencyFundTarget = %v, want 60000", plan.EmergencyFundTarget)
	}
	if !near(plan.MonthlySavings, 2000) {
		t.Fatalf("MonthlySavings = %v, want 2000", plan.MonthlySavings)
	}
	if !near(plan.MonthlyTaxSavings, est.RecommendedSavings/12) {
		t.Fatalf("MonthlyTaxSavings = %v", plan.MonthlyTaxSavings)
	}

	wantSpending := plan.MonthlyIncome - plan.MonthlySavings - plan.MonthlyTaxSavings
	if !near(plan.MonthlySpending, wantSpending) {
		t.Fatalf("MonthlySpending = %v, want %v", plan.MonthlySpending, wantSpending)
	}
}
