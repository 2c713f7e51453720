package repo

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hustle/internal/model"
	"hustle/internal/store"
)

// Habits returns the full habit list, archived ones included.
func (r *Repos) Habits() []model.Habit {
	return store.Get(r.kv, keyHabits, []model.Habit{})
}

// SaveHabits overwrites the habit snapshot.
func (r *Repos) SaveHabits(habits []model.Habit) {
	r.kv.Set(keyHabits, habits)
}

// HabitLogs returns all habit day-logs.
func (r *Repos) HabitLogs() []model.HabitLog {
	return store.Get(r.kv, keyHabitLogs, []model.HabitLog{})
}

// SaveHabitLogs overwrites the habit log snapshot.
func (r *Repos) SaveHabitLogs(logs []model.HabitLog) {
	r.kv.Set(keyHabitLogs, logs)
}

// AddHabit validates and stores a new habit. TimesPerWeek is clamped to
// 1..7 and the color falls back to the category's default.
func (r *Repos) AddHabit(h model.Habit) (model.Habit, error) {
	if h.Name == "" {
		return model.Habit{}, errors.New("habit name is required")
	}
	if h.Category == "" {
		h.Category = model.HabitCategories[0].Name
	}
	if h.TimesPerWeek < 1 {
		h.TimesPerWeek = 1
	}
	if h.TimesPerWeek > 7 {
		h.TimesPerWeek = 7
	}
	if h.Color == "" {
		h.Color = model.HabitCategoryColor(h.Category)
	}
	h.ID = uuid.NewString()
	h.IsArchived = false

	l := r.keyLock(keyHabits)
	l.Lock()
	defer l.Unlock()

	r.SaveHabits(append(r.Habits(), h))
	return h, nil
}

// ToggleArchive flips a habit's archived flag. Archived habits keep their
// logs and history.
func (r *Repos) ToggleArchive(habitID string) error {
	l := r.keyLock(keyHabits)
	l.Lock()
	defer l.Unlock()

	habits := r.Habits()
	for i := range habits {
		if habits[i].ID == habitID {
			habits[i].IsArchived = !habits[i].IsArchived
			r.SaveHabits(habits)
			return nil
		}
	}
	return fmt.Errorf("habit %s not found", habitID)
}

// DeleteHabit removes a habit and all of its logs.
func (r *Repos) DeleteHabit(habitID string) error {
	hl := r.keyLock(keyHabits)
	hl.Lock()
	defer hl.Unlock()

	habits := r.Habits()
	found := false
	for i := range habits {
		if habits[i].ID == habitID {
			habits = append(habits[:i], habits[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("habit %s not found", habitID)
	}
	r.SaveHabits(habits)

	ll := r.keyLock(keyHabitLogs)
	ll.Lock()
	defer ll.Unlock()

	logs := r.HabitLogs()
	kept := logs[:0]
	for _, log := range logs {
		if log.HabitID != habitID {
			kept = append(kept, log)
		}
	}
	r.SaveHabitLogs(kept)
	return nil
}

// ToggleHabitLog upserts the log for one habit on one day: an existing
// entry flips its completed flag, a missing one is created completed.
// Toggling the same day twice lands back on the original state. Returns
// the completion state after the toggle.
func (r *Repos) ToggleHabitLog(habitID, date string) (bool, error) {
	if habitID == "" {
		return false, errors.New("habit id is required")
	}
	date = normalizeDate(date)

	l := r.keyLock(keyHabitLogs)
	l.Lock()
	defer l.Unlock()

	logs := r.HabitLogs()
	for i := range logs {
		if logs[i].HabitID == habitID && logs[i].Date == date {
			logs[i].Completed = !logs[i].Completed
			r.SaveHabitLogs(logs)
			return logs[i].Completed, nil
		}
	}

	logs = append(logs, model.HabitLog{HabitID: habitID, Date: date, Completed: true})
	r.SaveHabitLogs(logs)
	return true, nil
}

// HabitCompletedOn reports whether the habit has a completed log for the
// given day.
func HabitCompletedOn(logs []model.HabitLog, habitID, date string) bool {
	for _, log := range logs {
		if log.HabitID == habitID && log.Date == date && log.Completed {
			return true
		}
	}
	return false
}

// WeeklyCompletionPercent is the share of the weekly target met over the
// trailing 7 days, capped at 100.
func WeeklyCompletionPercent(h model.Habit, logs []model.HabitLog, now time.Time) int {
	completed := 0
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		if HabitCompletedOn(logs, h.ID, day) {
			completed++
		}
	}
	target := h.TimesPerWeek
	if target < 1 {
		target = 7
	}
	pct := completed * 100 / target
	if pct > 100 {
		pct = 100
	}
	return pct
}

// WeeklyStreak counts consecutive weeks, newest first, in which the habit
// met its weekly target. The current partial week counts when the habit is
// on pace proportionally to the days elapsed.
func WeeklyStreak(h model.Habit, logs []model.HabitLog, now time.Time) int {
	weekStart := now.AddDate(0, 0, -int(now.Weekday())) // Sunday

	// Completions so far this week.
	done := 0
	elapsed := int(now.Weekday()) + 1
	for i := 0; i < elapsed; i++ {
		day := weekStart.AddDate(0, 0, i).Format("2006-01-02")
		if HabitCompletedOn(logs, h.ID, day) {
			done++
		}
	}

	onPace := done >= h.TimesPerWeek ||
		(elapsed < 7 && done*7 >= h.TimesPerWeek*elapsed && done > 0)
	if !onPace {
		return 0
	}

	streak := 1
	for {
		weekStart = weekStart.AddDate(0, 0, -7)
		done = 0
		for i := 0; i < 7; i++ {
			day := weekStart.AddDate(0, 0, i).Format("2006-01-02")
			if HabitCompletedOn(logs, h.ID, day) {
				done++
			}
		}
		if done < h.TimesPerWeek {
			return streak
		}
		streak++
	}
}
