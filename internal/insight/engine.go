// Package insight generates ranked recommendations by analyzing the
// current repository snapshots. Every run rebuilds the full list from
// scratch: the engine keeps no state between passes and its output is a
// pure function of the snapshot it is handed.
package insight

import (
	"sort"
	"time"

	"hustle/internal/model"
)

// Snapshot is the read-only view of the repositories an analysis pass
// consumes. Now anchors all date arithmetic so a fixed snapshot always
// yields the same insights.
type Snapshot struct {
	Clients       []model.Client
	Earnings      []model.Earnings
	Expenses      []model.Expense
	Opportunities []model.Opportunity
	Shifts        []model.Shift
	Now           time.Time
}

// Analyzer is one independent rule. Analyzers never mutate the snapshot
// and abstain (return nothing) when their minimum data isn't there.
type Analyzer func(Snapshot) []model.Insight

// analyzers runs in a fixed order so equal-priority insights keep a
// stable relative position across runs.
var analyzers = []Analyzer{
	analyzeClientPatterns,
	analyzeEarningsTrends,
	analyzeExpenseOptimization,
	analyzeOpportunityManagement,
	analyzeWorkPatterns,
}

// Generate runs the full pipeline and returns insights sorted by
// descending priority. Ties keep emission order.
func Generate(snap Snapshot) []model.Insight {
	if snap.Now.IsZero() {
		snap.Now = time.Now()
	}

	var insights []model.Insight
	for _, analyze := range analyzers {
		insights = append(insights, analyze(snap)...)
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority.Rank() > insights[j].Priority.Rank()
	})
	return insights
}
