package model

// Priority orders insights and opportunities.
type Priority string

// Priority levels, lowest to highest.
const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Rank maps a priority to its sort weight (critical=4 .. low=1).
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// OpportunityStatus is the lifecycle state of an opportunity.
type OpportunityStatus string

// Opportunity lifecycle: new -> in_progress -> completed or missed.
const (
	StatusNew        OpportunityStatus = "new"
	StatusInProgress OpportunityStatus = "in_progress"
	StatusCompleted  OpportunityStatus = "completed"
	StatusMissed     OpportunityStatus = "missed"
)

// Active reports whether the opportunity still needs work.
func (s OpportunityStatus) Active() bool {
	return s == StatusNew || s == StatusInProgress
}

// CanTransitionTo reports whether the status change is legal.
func (s OpportunityStatus) CanTransitionTo(next OpportunityStatus) bool {
	switch s {
	case StatusNew:
		return next == StatusInProgress || next == StatusCompleted || next == StatusMissed
	case StatusInProgress:
		return next == StatusCompleted || next == StatusMissed
	}
	return false
}

// OpportunityType categorizes an opportunity and carries its defaults.
type OpportunityType string

// Known opportunity types.
const (
	TypeBusinessPartnership OpportunityType = "business_partnership"
	TypeInvestment          OpportunityType = "investment"
	TypeMentorship          OpportunityType = "mentorship"
	TypeShopping            OpportunityType = "shopping"
	TypeTravel              OpportunityType = "travel"
	TypeNetworking          OpportunityType = "networking"
	TypeOther               OpportunityType = "other"
)

// OpportunityDefaults holds the label, priority, and monetary value assumed
// for a type when the user doesn't supply explicit numbers.
type OpportunityDefaults struct {
	Label    string
	Priority Priority
	Value    float64
}

// OpportunityTypeDefaults is the static lookup table keyed by type.
var OpportunityTypeDefaults = map[OpportunityType]OpportunityDefaults{
	TypeBusinessPartnership: {Label: "Business Partnership", Priority: PriorityCritical, Value: 10000},
	TypeInvestment:          {Label: "Investment Opportunity", Priority: PriorityCritical, Value: 5000},
	TypeMentorship:          {Label: "Mentorship/Coaching", Priority: PriorityHigh, Value: 2000},
	TypeShopping:            {Label: "Shopping Trip", Priority: PriorityMedium, Value: 500},
	TypeTravel:              {Label: "Travel/Vacation", Priority: PriorityHigh, Value: 3000},
	TypeNetworking:          {Label: "Networking Event", Priority: PriorityMedium, Value: 1000},
	TypeOther:               {Label: "Other Opportunity", Priority: PriorityLow, Value: 200},
}

// Opportunity is a potential high-value engagement with a client. ClientID
// points at a Client but is not enforced as a foreign key. Notes is an
// append-only list of timestamped strings.
type Opportunity struct {
	ID             string            `json:"id"`
	ClientID       string            `json:"clientId"`
	Type           OpportunityType   `json:"type"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	PotentialValue float64           `json:"potentialValue"`
	Priority       Priority          `json:"priority"`
	Status         OpportunityStatus `json:"status"`
	DateCreated    string            `json:"dateCreated"`
	FollowUpDate   string            `json:"followUpDate"`
	LastContact    string            `json:"lastContact"`
	Notes          []string          `json:"notes"`
}
