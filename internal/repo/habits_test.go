package repo

import (
	"testing"
	"time"

	"hustle/internal/model"
)

func TestAddHabitClampsWeeklyTarget(t *testing.T) {
	r := newTestRepos(t)

	low, _ := r.AddHabit(model.Habit{Name: "stretch", TimesPerWeek: 0})
	if low.TimesPerWeek != 1 {
		t.Fatalf("TimesPerWeek = %d, want 1", low.TimesPerWeek)
	}

	high, _ := r.AddHabit(model.Habit{Name: "hydrate", TimesPerWeek: 12})
	if high.TimesPerWeek != 7 {
		t.Fatalf("TimesPerWeek = %d, want 7", high.TimesPerWeek)
	}
}

func TestAddHabitDefaultsCategoryColor(t *testing.T) {
	r := newTestRepos(t)

	h, err := r.AddHabit(model.Habit{Name: "save cash", Category: "Money", TimesPerWeek: 3})
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	if h.Color != model.HabitCategoryColor("Money") {
		t.Fatalf("Color = %q, want category default", h.Color)
	}
}

func TestToggleHabitLogParity(t *testing.T) {
	r := newTestRepos(t)
	h, _ := r.AddHabit(model.Habit{Name: "gym", TimesPerWeek: 3})

	done, err := r.ToggleHabitLog(h.ID, "2026-08-30")
	if err != nil {
		t.Fatalf("ToggleHabitLog: %v", err)
	}
	if !done {
		t.Fatal("first toggle should mark completed")
	}

	done, _ = r.ToggleHabitLog(h.ID, "2026-08-30")
	if done {
		t.Fatal("second toggle should unmark")
	}

	// One log row per (habit, day), flipped in place.
	if n := len(r.HabitLogs()); n != 1 {
		t.Fatalf("log rows = %d, want 1", n)
	}

	done, _ = r.ToggleHabitLog(h.ID, "2026-08-30")
	if !done {
		t.Fatal("third toggle should mark completed again")
	}
}

func TestDeleteHabitCascadesLogs(t *testing.T) {
	r := newTestRepos(t)

	h1, _ := r.AddHabit(model.Habit{Name: "gym", TimesPerWeek: 3})
	h2, _ := r.AddHabit(model.Habit{Name: "read", TimesPerWeek: 2})
	_, _ = r.ToggleHabitLog(h1.ID, "2026-08-29")
	_, _ = r.ToggleHabitLog(h2.ID, "2026-08-29")

	if err := r.DeleteHabit(h1.ID); err != nil {
		t.Fatalf("DeleteHabit: %v", err)
	}

	logs := r.HabitLogs()
	if len(logs) != 1 || logs[0].HabitID != h2.ID {
		t.Fatalf("logs after cascade = %+v", logs)
	}
}

func TestToggleArchiveKeepsLogs(t *testing.T) {
	r := newTestRepos(t)

	h, _ := r.AddHabit(model.Habit{Name: "gym", TimesPerWeek: 3})
	_, _ = r.ToggleHabitLog(h.ID, "2026-08-29")

	if err := r.ToggleArchive(h.ID); err != nil {
		t.Fatalf("ToggleArchive: %v", err)
	}
	if !r.Habits()[0].IsArchived {
		t.Fatal("habit not archived")
	}
	if len(r.HabitLogs()) != 1 {
		t.Fatal("archive dropped logs")
	}
}

func TestWeeklyCompletionPercent(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	h := model.Habit{ID: "h", TimesPerWeek: 4}

	logs := []model.HabitLog{
		{HabitID: "h", Date: "2026-08-31", Completed: true},
		{HabitID: "h", Date: "2026-08-30", Completed: true},
		{HabitID: "h", Date: "2026-08-29", Completed: false},
		{HabitID: "h", Date: "2026-08-20", Completed: true}, // outside the window
	}

	if got := WeeklyCompletionPercent(h, logs, now); got != 50 {
		t.Fatalf("percent = %d, want 50", got)
	}

	// Exceeding the target caps at 100.
	over := model.Habit{ID: "h", TimesPerWeek: 1}
	if got := WeeklyCompletionPercent(over, logs, now); got != 100 {
		t.Fatalf("capped percent = %d, want 100", got)
	}
}

func TestWeeklyStreak(t *testing.T) {
	// Monday Aug 31 2026; week starts Sunday Aug 30.
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	h := model.Habit{ID: "h", TimesPerWeek: 2}

	logs := []model.HabitLog{
		// Current week: 2 of 2 elapsed days done, on pace.
		{HabitID: "h", Date: "2026-08-30", Completed: true},
		{HabitID: "h", Date: "2026-08-31", Completed: true},
		// Previous week (Aug 23-29): target met.
		{HabitID: "h", Date: "2026-08-24", Completed: true},
		{HabitID: "h", Date: "2026-08-27", Completed: true},
		// Two weeks back: only one completion, streak breaks here.
		{HabitID: "h", Date: "2026-08-18", Completed: true},
	}

	if got := WeeklyStreak(h, logs, now); got != 2 {
		t.Fatalf("streak = %d, want 2", got)
	}

	if got := WeeklyStreak(h, nil, now); got != 0 {
		t.Fatalf("empty streak = %d, want 0", got)
	}
}
