package insight

import (
	"fmt"
	"time"

	"hustle/internal/model"
)

// inactiveAfterDays is how long the top spender can stay away before the
// going-cold warning fires.
const inactiveAfterDays = 14

func analyzeClientPatterns(snap Snapshot) []model.Insight {
	if len(snap.Clients) == 0 {
		return nil
	}
	var insights []model.Insight

	// Top spender going cold.
	var top *model.Client
	for i := range snap.Clients {
		c := &snap.Clients[i]
		if c.TotalSpent <= 0 {
			continue
		}
		if top == nil || c.TotalSpent > top.TotalSpent {
			top = c
		}
	}
	if top != nil {
		daysSince := daysSinceDate(top.LastVisit, snap.Now)
		if daysSince > inactiveAfterDays {
			insights = append(insights, model.Insight{
				ID:       fmt.Sprintf("client-%s-inactive", top.ID),
				Type:     model.InsightWarning,
				Priority: model.PriorityHigh,
				Title:    "Top Client Going Cold",
				Message: fmt.Sprintf("%s ($%.0f spent) hasn't visited in %d days. Reach out before you lose them.",
					top.Name, top.TotalSpent, daysSince),
				Actionable:  true,
				Data:        map[string]any{"clientId": top.ID, "daysSince": daysSince},
				GeneratedAt: snap.Now,
			})
		}
	}

	// Clients in the upselling sweet spot: at least two visits, trailing
	// three averaging strictly between 100 and 500.
	var growth []string
	for _, c := range snap.Clients {
		if len(c.Visits) < 2 {
			continue
		}
		recent := c.Visits
		if len(recent) > 3 {
			recent = recent[len(recent)-3:]
		}
		sum := 0.0
		for _, v := range recent {
			sum += v.Amount
		}
		avg := sum / float64(len(recent))
		if avg > 100 && avg < 500 {
			growth = append(growth, c.Name)
		}
	}
	if len(growth) > 0 {
		insights = append(insights, model.Insight{
			ID:       "growth-clients",
			Type:     model.InsightOpportunity,
			Priority: model.PriorityMedium,
			Title:    "Upselling Opportunities",
			Message: fmt.Sprintf("%d clients are spending $100-500 per visit. Perfect candidates for VIP packages or premium services.",
				len(growth)),
			Actionable:  true,
			Data:        map[string]any{"clients": growth},
			GeneratedAt: snap.Now,
		})
	}

	return insights
}

func analyzeEarningsTrends(snap Snapshot) []model.Insight {
	earnings := snap.Earnings
	if len(earnings) < 7 {
		return nil
	}
	var insights []model.Insight

	// Week-over-week change: mean of the newest seven entries against the
	// mean of the seven before them.
	recent := earnings[len(earnings)-7:]
	prevEnd := len(earnings) - 7
	prevStart := prevEnd - 7
	if prevStart < 0 {
		prevStart = 0
	}
	previous := earnings[prevStart:prevEnd]

	recentAvg := sumTotals(recent) / 7
	previousAvg := sumTotals(previous) / 7

	// A zero previous window has no meaningful percent change.
	if previousAvg > 0 {
		changePercent := (recentAvg - previousAvg) / previousAvg * 100
		if changePercent < -15 {
			insights = append(insights, model.Insight{
				ID:       "earnings-decline",
				Type:     model.InsightWarning,
				Priority: model.PriorityHigh,
				Title:    "Earnings Declining",
				Message: fmt.Sprintf("Your average daily earnings dropped %.1f%% this week. Time to re-engage top clients or try new strategies.",
					-changePercent),
				Actionable: true,
				Data: map[string]any{
					"changePercent": changePercent,
					"recentAvg":     recentAvg,
					"previousAvg":   previousAvg,
				},
				GeneratedAt: snap.Now,
			})
		} else if changePercent > 20 {
			insights = append(insights, model.Insight{
				ID:       "earnings-surge",
				Type:     model.InsightPattern,
				Priority: model.PriorityMedium,
				Title:    "Earnings Surge",
				Message: fmt.Sprintf("Earnings up %.1f%% this week. Analyze what you did differently and repeat it.",
					changePercent),
				Actionable:  true,
				Data:        map[string]any{"changePercent": changePercent, "recentAvg": recentAvg},
				GeneratedAt: snap.Now,
			})
		}
	}

	// Peak earning weekday across all entries. Earliest weekday wins ties
	// so the result is stable.
	var dayTotals [7]float64
	var dayCounts [7]int
	for _, e := range earnings {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		wd := int(d.Weekday())
		dayTotals[wd] += e.Total
		dayCounts[wd]++
	}
	best := 0
	for wd := 1; wd < 7; wd++ {
		if dayTotals[wd] > dayTotals[best] {
			best = wd
		}
	}
	if dayCounts[best] > 0 {
		avg := dayTotals[best] / float64(dayCounts[best])
		dayName := time.Weekday(best).String()
		insights = append(insights, model.Insight{
			ID:       "best-day-pattern",
			Type:     model.InsightPattern,
			Priority: model.PriorityLow,
			Title:    "Peak Earning Day",
			Message: fmt.Sprintf("%s is your best earning day (avg $%.0f). Schedule more shifts on this day.",
				dayName, avg),
			Actionable:  true,
			Data:        map[string]any{"bestDay": dayName, "avgEarnings": avg},
			GeneratedAt: snap.Now,
		})
	}

	return insights
}

func analyzeExpenseOptimization(snap Snapshot) []model.Insight {
	if len(snap.Expenses) == 0 {
		return nil
	}

	byCategory := make(map[string]float64)
	total := 0.0
	for _, e := range snap.Expenses {
		byCategory[e.Category] += e.Amount
		total += e.Amount
	}
	if total <= 0 {
		return nil
	}

	// Highest category; lexicographic tie-break keeps the pick stable.
	topCategory := ""
	topAmount := 0.0
	for cat, amount := range byCategory {
		if amount > topAmount || (amount == topAmount && (topCategory == "" || cat < topCategory)) {
			topCategory = cat
			topAmount = amount
		}
	}

	if topAmount <= total*0.3 {
		return nil
	}

	percentage := topAmount / total * 100
	return []model.Insight{{
		ID:       "expense-optimization",
		Type:     model.InsightSuggestion,
		Priority: model.PriorityMedium,
		Title:    "Expense Optimization",
		Message: fmt.Sprintf("%s is %.1f%% of your expenses ($%.0f). Look for ways to reduce this category.",
			topCategory, percentage, topAmount),
		Actionable: true,
		Data: map[string]any{
			"category":   topCategory,
			"amount":     topAmount,
			"percentage": percentage,
		},
		GeneratedAt: snap.Now,
	}}
}

func analyzeOpportunityManagement(snap Snapshot) []model.Insight {
	var insights []model.Insight
	todayStr := snap.Now.Format("2006-01-02")

	overdue := 0
	activeValue := 0.0
	activeCount := 0
	for _, o := range snap.Opportunities {
		if !o.Status.Active() {
			continue
		}
		activeValue += o.PotentialValue
		activeCount++
		if o.FollowUpDate != "" && o.FollowUpDate < todayStr {
			overdue++
		}
	}

	if overdue > 0 {
		insights = append(insights, model.Insight{
			ID:       "overdue-opportunities",
			Type:     model.InsightWarning,
			Priority: model.PriorityCritical,
			Title:    "Overdue Opportunities",
			Message: fmt.Sprintf("%d high-value opportunities are overdue for follow-up. Don't let money slip away.",
				overdue),
			Actionable:  true,
			Data:        map[string]any{"count": overdue},
			GeneratedAt: snap.Now,
		})
	}

	if activeValue > 10000 {
		insights = append(insights, model.Insight{
			ID:       "high-value-pipeline",
			Type:     model.InsightOpportunity,
			Priority: model.PriorityHigh,
			Title:    "High-Value Pipeline",
			Message: fmt.Sprintf("You have $%.0f in active opportunities. Focus on converting these for maximum impact.",
				activeValue),
			Actionable:  true,
			Data:        map[string]any{"totalValue": activeValue, "count": activeCount},
			GeneratedAt: snap.Now,
		})
	}

	return insights
}

func analyzeWorkPatterns(snap Snapshot) []model.Insight {
	if len(snap.Shifts) < 5 {
		return nil
	}
	var insights []model.Insight

	recent := snap.Shifts
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}

	totalHours := 0.0
	counted := 0
	for _, s := range recent {
		hours, ok := shiftHours(s)
		if !ok {
			continue
		}
		totalHours += hours
		counted++
	}
	if counted == 0 {
		return nil
	}

	avgHours := totalHours / float64(counted)
	if avgHours > 8 {
		insights = append(insights, model.Insight{
			ID:       "long-shifts",
			Type:     model.InsightWarning,
			Priority: model.PriorityMedium,
			Title:    "Long Shift Alert",
			Message: fmt.Sprintf("Your average shift is %.1f hours. Consider shorter, more focused shifts to avoid burnout.",
				avgHours),
			Actionable:  true,
			Data:        map[string]any{"avgHours": avgHours},
			GeneratedAt: snap.Now,
		})
	}

	if len(snap.Earnings) > 0 && totalHours > 0 {
		hourlyRate := sumTotals(snap.Earnings) / totalHours
		if hourlyRate < 50 {
			insights = append(insights, model.Insight{
				ID:       "low-hourly-rate",
				Type:     model.InsightSuggestion,
				Priority: model.PriorityHigh,
				Title:    "Optimize Hourly Earnings",
				Message: fmt.Sprintf("Your current rate is $%.0f/hour. Focus on VIP clients and premium services to increase this.",
					hourlyRate),
				Actionable:  true,
				Data:        map[string]any{"hourlyRate": hourlyRate},
				GeneratedAt: snap.Now,
			})
		}
	}

	return insights
}

// daysSinceDate returns whole days between date (YYYY-MM-DD) and now, or a
// large sentinel when the date is missing or unparsable so a never-seen
// client counts as long gone.
func daysSinceDate(date string, now time.Time) int {
	if date == "" {
		return 999
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 999
	}
	return int(now.Sub(d).Hours() / 24)
}

func sumTotals(earnings []model.Earnings) float64 {
	sum := 0.0
	for _, e := range earnings {
		sum += e.Total
	}
	return sum
}

// shiftHours computes a shift's duration from its HH:MM times. Shifts that
// end past midnight wrap forward a day.
func shiftHours(s model.Shift) (float64, bool) {
	start, err := time.Parse("15:04", s.StartTime)
	if err != nil {
		return 0, false
	}
	end, err := time.Parse("15:04", s.EndTime)
	if err != nil {
		return 0, false
	}
	d := end.Sub(start)
	if d < 0 {
		d += 24 * time.Hour
	}
	return d.Hours(), true
}
