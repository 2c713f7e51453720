// Package model defines the persisted record types for the hustle planner.
package model

// Visit is one paid visit by a client. Visits are owned by exactly one
// Client and are deleted with it.
type Visit struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"` // YYYY-MM-DD
	Amount float64 `json:"amount"`
	Notes  string  `json:"notes"`
}

// Client is one tracked client with their visit history.
// TotalSpent is derived from Visits and must never be edited directly.
type Client struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Notes       string  `json:"notes"`
	Preferences string  `json:"preferences"`
	LastVisit   string  `json:"lastVisit"`   // YYYY-MM-DD, date of most recent visit
	SpendAmount string  `json:"spendAmount"` // free-text display hint, not arithmetic
	TotalSpent  float64 `json:"totalSpent"`
	Visits      []Visit `json:"visits"`
}

// RecomputeSpending rederives TotalSpent from the visit list. Call after
// every visit mutation so the stored value never drifts from its parts.
func (c *Client) RecomputeSpending() {
	total := 0.0
	for _, v := range c.Visits {
		total += v.Amount
	}
	c.TotalSpent = total
}

// Appointment is a scheduled booking. ClientName is free text, not a
// reference into the client list; appointments outlive client deletion.
type Appointment struct {
	ID          string `json:"id"`
	ClientName  string `json:"clientName"`
	ServiceType string `json:"serviceType"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Notes       string `json:"notes"`
}

// HabitCategory names one of the fixed habit groupings.
type HabitCategory struct {
	Name  string
	Color string
}

// HabitCategories is the fixed set of categories with their display colors.
var HabitCategories = []HabitCategory{
	{Name: "Self-care", Color: "#f472b6"},
	{Name: "Career", Color: "#a78bfa"},
	{Name: "Skill-building", Color: "#60a5fa"},
	{Name: "Money", Color: "#4ade80"},
	{Name: "Health", Color: "#fb923c"},
	{Name: "Custom", Color: "#94a3b8"},
}

// HabitCategoryColor returns the display color for a category, falling back
// to the Custom color for unknown names.
func HabitCategoryColor(category string) string {
	for _, c := range HabitCategories {
		if c.Name == category {
			return c.Color
		}
	}
	return HabitCategories[len(HabitCategories)-1].Color
}

// Habit is a recurring goal tracked against a weekly target. Archived
// habits are hidden from active views but their logs are kept.
type Habit struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	TimesPerWeek int    `json:"timesPerWeek"` // 1-7
	Color        string `json:"color"`
	IsArchived   bool   `json:"isArchived"`
}

// HabitLog marks one habit on one calendar day. Identity is the
// (HabitID, Date) pair; at most one log exists per habit per day.
type HabitLog struct {
	HabitID   string `json:"habitId"`
	Date      string `json:"date"` // YYYY-MM-DD
	Completed bool   `json:"completed"`
	Notes     string `json:"notes,omitempty"`
}

// ExpenseCategories is the fixed list of deductible work expense buckets.
var ExpenseCategories = []string{
	"Outfits & Costumes",
	"Makeup & Beauty",
	"Transportation",
	"Club Fees",
	"DJ Tips",
	"Security Tips",
	"Food & Drinks",
	"Phone & Internet",
	"Health & Fitness",
	"Other",
}

// Expense is one work expense entry.
type Expense struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Earnings is one day's income split by source. Total is derived from the
// three components and recomputed on every write.
type Earnings struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Tips       float64 `json:"tips"`
	VIPDances  float64 `json:"vipDances"`
	AfterDates float64 `json:"afterDates"`
	Total      float64 `json:"total"`
}

// RecomputeTotal rederives Total from the component amounts.
func (e *Earnings) RecomputeTotal() {
	e.Total = e.Tips + e.VIPDances + e.AfterDates
}

// Shift is one worked shift. The shift collection is an external contract:
// other tooling writes these records and the work-pattern analysis only
// reads them. Times are HH:MM wall-clock strings.
type Shift struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// RepeatKind says how often a reminder fires.
type RepeatKind string

// Reminder repeat kinds.
const (
	RepeatNone   RepeatKind = "none"
	RepeatDaily  RepeatKind = "daily"
	RepeatWeekly RepeatKind = "weekly"
)

// Reminder is a scheduled nudge evaluated by the poll daemon. Actual
// delivery (OS notifications) happens outside this program.
type Reminder struct {
	ID            string     `json:"id"`
	Time          string     `json:"time"` // HH:MM
	Date          string     `json:"date"` // YYYY-MM-DD
	Message       string     `json:"message"`
	Enabled       bool       `json:"enabled"`
	Repeats       RepeatKind `json:"repeats"`
	Priority      Priority   `json:"priority,omitempty"`
	OpportunityID string     `json:"opportunityId,omitempty"`
}
