// Package finance estimates tax liability and budget targets for an
// independent contractor. Everything here is a pure function of the
// aggregate earnings and expenses; rounding happens only at display time.
package finance

// Tax rate assumptions for a US-based independent entertainer.
const (
	SelfEmploymentTaxRate = 0.1413 // Social Security + Medicare
	FederalTaxRate        = 0.22   // common bracket estimate
	StateTaxRate          = 0.05   // averaged, varies by state
	savingsBuffer         = 1.10   // 10% cushion on top of the liability
	savingsRate           = 0.20
	emergencyFundMonths   = 6
)

// TaxEstimate is the annual tax picture derived from net income.
type TaxEstimate struct {
	NetIncome          float64
	SelfEmploymentTax  float64
	FederalTax         float64
	StateTax           float64
	TotalTaxLiability  float64
	QuarterlyPayment   float64
	RecommendedSavings float64
}

// EstimateTaxes derives the annual tax estimate from aggregate earnings
// and expenses.
func EstimateTaxes(totalEarnings, totalExpenses float64) TaxEstimate {
	net := totalEarnings - totalExpenses

	se := net * SelfEmploymentTaxRate
	fed := net * FederalTaxRate
	state := net * StateTaxRate
	total := se + fed + state

	return TaxEstimate{
		NetIncome:          net,
		SelfEmploymentTax:  se,
		FederalTax:         fed,
		StateTax:           state,
		TotalTaxLiability:  total,
		QuarterlyPayment:   total / 4,
		RecommendedSavings: total * savingsBuffer,
	}
}

// BudgetPlan is the monthly money-management recommendation built on top
// of a tax estimate.
type BudgetPlan struct {
	MonthlyIncome       float64
	EmergencyFundTarget float64
	MonthlySavings      float64
	MonthlyTaxSavings   float64
	MonthlySpending     float64
}

// PlanBudget derives the monthly budget recommendation from a tax
// estimate.
func PlanBudget(t TaxEstimate) BudgetPlan {
	monthly := t.NetIncome / 12
	monthlySavings := monthly * savingsRate
	monthlyTax := t.RecommendedSavings / 12

	return BudgetPlan{
		MonthlyIncome:       monthly,
		EmergencyFundTarget: monthly * emergencyFundMonths,
		MonthlySavings:      monthlySavings,
		MonthlyTaxSavings:   monthlyTax,
		MonthlySpending:     monthly - monthlySavings - monthlyTax,
	}
}
