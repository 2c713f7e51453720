package repo

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hustle/internal/model"
	"hustle/internal/store"
)

// Reminders returns the full reminder list.
func (r *Repos) Reminders() []model.Reminder {
	return store.Get(r.kv, keyReminders, []model.Reminder{})
}

// SaveReminders overwrites the reminder snapshot.
func (r *Repos) SaveReminders(reminders []model.Reminder) {
	r.kv.Set(keyReminders, reminders)
}

// AddReminder validates and stores a new reminder.
func (r *Repos) AddReminder(rem model.Reminder) (model.Reminder, error) {
	if rem.Date == "" || rem.Time == "" {
		return model.Reminder{}, errors.New("reminder date and time are required")
	}
	if rem.Message == "" {
		return model.Reminder{}, errors.New("reminder message is required")
	}
	if rem.Repeats == "" {
		rem.Repeats = model.RepeatNone
	}
	rem.ID = uuid.NewString()
	rem.Date = normalizeDate(rem.Date)
	rem.Enabled = true

	l := r.keyLock(keyReminders)
	l.Lock()
	defer l.Unlock()

	r.SaveReminders(append(r.Reminders(), rem))
	return rem, nil
}

// ToggleReminder flips a reminder's enabled flag.
func (r *Repos) ToggleReminder(id string) error {
	l := r.keyLock(keyReminders)
	l.Lock()
	defer l.Unlock()

	reminders := r.Reminders()
	for i := range reminders {
		if reminders[i].ID == id {
			reminders[i].Enabled = !reminders[i].Enabled
			r.SaveReminders(reminders)
			return nil
		}
	}
	return fmt.Errorf("reminder %s not found", id)
}

// DeleteReminder removes a reminder.
func (r *Repos) DeleteReminder(id string) error {
	l := r.keyLock(keyReminders)
	l.Lock()
	defer l.Unlock()

	reminders := r.Reminders()
	for i := range reminders {
		if reminders[i].ID == id {
			r.SaveReminders(append(reminders[:i], reminders[i+1:]...))
			return nil
		}
	}
	return fmt.Errorf("reminder %s not found", id)
}

// DueReminders returns the enabled reminders with an occurrence inside
// (from, until]. Repeating reminders occur on every matching day at their
// scheduled wall-clock time from their start date onward.
func (r *Repos) DueReminders(from, until time.Time) []model.Reminder {
	var due []model.Reminder
	for _, rem := range r.Reminders() {
		if !rem.Enabled {
			continue
		}
		if ReminderOccursWithin(rem, from, until) {
			due = append(due, rem)
		}
	}
	return due
}

// ReminderOccursWithin reports whether the reminder fires in (from, until].
func ReminderOccursWithin(rem model.Reminder, from, until time.Time) bool {
	base, err := time.ParseInLocation("2006-01-02 15:04", rem.Date+" "+rem.Time, time.Local)
	if err != nil {
		return false
	}

	switch rem.Repeats {
	case model.RepeatDaily:
		// Candidate occurrence on until's calendar day, or the day before
		// when the window straddles midnight.
		for d := 0; d <= 1; d++ {
			day := until.AddDate(0, 0, -d)
			occ := time.Date(day.Year(), day.Month(), day.Day(), base.Hour(), base.Minute(), 0, 0, time.Local)
			if !occ.Before(base) && occ.After(from) && !occ.After(until) {
				return true
			}
		}
		return false
	case model.RepeatWeekly:
		for d := 0; d <= 7; d++ {
			day := until.AddDate(0, 0, -d)
			if day.Weekday() != base.Weekday() {
				continue
			}
			occ := time.Date(day.Year(), day.Month(), day.Day(), base.Hour(), base.Minute(), 0, 0, time.Local)
			return !occ.Before(base) && occ.After(from) && !occ.After(until)
		}
		return false
	default:
		return base.After(from) && !base.After(until)
	}
}
