package repo

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hustle/internal/model"
	"hustle/internal/store"
)

// Opportunities returns the full opportunity list.
func (r *Repos) Opportunities() []model.Opportunity {
	return store.Get(r.kv, keyOpportunities, []model.Opportunity{})
}

// SaveOpportunities overwrites the opportunity snapshot.
func (r *Repos) SaveOpportunities(opps []model.Opportunity) {
	r.kv.Set(keyOpportunities, opps)
}

// AddOpportunity validates and stores a new opportunity. When the caller
// leaves value or priority empty they are filled from the type's defaults;
// explicit values always win. Follow-up reminders are created alongside.
func (r *Repos) AddOpportunity(o model.Opportunity) (model.Opportunity, error) {
	if o.ClientID == "" {
		return model.Opportunity{}, errors.New("opportunity client is required")
	}
	if o.Title == "" {
		return model.Opportunity{}, errors.New("opportunity title is required")
	}

	defaults, ok := model.OpportunityTypeDefaults[o.Type]
	if !ok {
		return model.Opportunity{}, fmt.Errorf("unknown opportunity type %q", o.Type)
	}
	if o.PotentialValue == 0 {
		o.PotentialValue = defaults.Value
	}
	if o.Priority == "" {
		o.Priority = defaults.Priority
	}
	if o.FollowUpDate == "" {
		o.FollowUpDate = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	}

	o.ID = uuid.NewString()
	o.Status = model.StatusNew
	o.DateCreated = today()
	o.LastContact = today()
	o.FollowUpDate = normalizeDate(o.FollowUpDate)
	o.Notes = nil

	l := r.keyLock(keyOpportunities)
	l.Lock()
	defer l.Unlock()

	r.SaveOpportunities(append(r.Opportunities(), o))
	r.createFollowUpReminders(o)
	return o, nil
}

// createFollowUpReminders schedules the nudges that keep an opportunity
// from going stale: one on the follow-up date, plus a weekly check-in for
// high and critical priorities.
func (r *Repos) createFollowUpReminders(o model.Opportunity) {
	clientName := o.ClientID
	for _, c := range r.Clients() {
		if c.ID == o.ClientID {
			clientName = c.Name
			break
		}
	}

	reminders := []model.Reminder{{
		ID:            fmt.Sprintf("opp-%s-followup", o.ID),
		Time:          "10:00",
		Date:          o.FollowUpDate,
		Message:       fmt.Sprintf("Follow up with %s about %s (potential $%.0f)", clientName, o.Title, o.PotentialValue),
		Enabled:       true,
		Repeats:       model.RepeatNone,
		Priority:      o.Priority,
		OpportunityID: o.ID,
	}}

	if o.Priority == model.PriorityCritical || o.Priority == model.PriorityHigh {
		reminders = append(reminders, model.Reminder{
			ID:            fmt.Sprintf("opp-%s-weekly", o.ID),
			Time:          "09:00",
			Date:          o.FollowUpDate,
			Message:       fmt.Sprintf("Opportunity check: %s - %s", clientName, o.Title),
			Enabled:       true,
			Repeats:       model.RepeatWeekly,
			Priority:      o.Priority,
			OpportunityID: o.ID,
		})
	}

	l := r.keyLock(keyReminders)
	l.Lock()
	defer l.Unlock()
	r.SaveReminders(append(r.Reminders(), reminders...))
}

// UpdateOpportunityStatus moves an opportunity through its lifecycle
// (new -> in_progress -> completed or missed), refreshing LastContact and
// appending an optional timestamped note.
func (r *Repos) UpdateOpportunityStatus(id string, status model.OpportunityStatus, note string) error {
	l := r.keyLock(keyOpportunities)
	l.Lock()
	defer l.Unlock()

	opps := r.Opportunities()
	for i := range opps {
		if opps[i].ID != id {
			continue
		}
		if !opps[i].Status.CanTransitionTo(status) {
			return fmt.Errorf("cannot move opportunity from %s to %s", opps[i].Status, status)
		}
		opps[i].Status = status
		opps[i].LastContact = today()
		if note != "" {
			opps[i].Notes = append(opps[i].Notes, fmt.Sprintf("%s: %s", today(), note))
		}
		r.SaveOpportunities(opps)
		return nil
	}
	return fmt.Errorf("opportunity %s not found", id)
}

// AppendOpportunityNote appends a timestamped note without touching the
// status. Notes are append-only; nothing ever rewrites them.
func (r *Repos) AppendOpportunityNote(id, note string) error {
	if note == "" {
		return errors.New("note is required")
	}

	l := r.keyLock(keyOpportunities)
	l.Lock()
	defer l.Unlock()

	opps := r.Opportunities()
	for i := range opps {
		if opps[i].ID == id {
			opps[i].Notes = append(opps[i].Notes, fmt.Sprintf("%s: %s", today(), note))
			r.SaveOpportunities(opps)
			return nil
		}
	}
	return fmt.Errorf("opportunity %s not found", id)
}

// ActiveOpportunityValue sums the potential value of every opportunity
// still in play.
func ActiveOpportunityValue(opps []model.Opportunity) float64 {
	total := 0.0
	for _, o := range opps {
		if o.Status.Active() {
			total += o.PotentialValue
		}
	}
	return total
}
