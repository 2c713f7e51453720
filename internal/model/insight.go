package model

import "time"

// InsightType classifies what kind of observation an insight is.
type InsightType string

// Insight types.
const (
	InsightPattern     InsightType = "pattern"
	InsightOpportunity InsightType = "opportunity"
	InsightWarning     InsightType = "warning"
	InsightSuggestion  InsightType = "suggestion"
)

// Insight is one generated recommendation or warning. Insights are
// ephemeral: each analysis pass rebuilds the full list from scratch and
// nothing here is ever persisted.
type Insight struct {
	ID          string         `json:"id"`
	Type        InsightType    `json:"type"`
	Priority    Priority       `json:"priority"`
	Title       string         `json:"title"`
	Message     string         `json:"message"`
	Actionable  bool           `json:"actionable"`
	Data        map[string]any `json:"data,omitempty"`
	GeneratedAt time.Time      `json:"dateGenerated"`
}
