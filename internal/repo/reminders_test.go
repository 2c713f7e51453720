package repo

import (
	"testing"
	"time"

	"hustle/internal/model"
)

func at(day string, hhmm string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02 15:04", day+" "+hhmm, time.Local)
	return t
}

func TestReminderOccursWithinOneShot(t *testing.T) {
	rem := model.Reminder{Date: "2026-08-31", Time: "10:00", Repeats: model.RepeatNone}

	if !ReminderOccursWithin(rem, at("2026-08-31", "09:59"), at("2026-08-31", "10:01")) {
		t.Fatal("in-window one-shot missed")
	}
	if ReminderOccursWithin(rem, at("2026-08-31", "10:00"), at("2026-08-31", "10:30")) {
		t.Fatal("window is half-open; the exact from instant must not refire")
	}
	if ReminderOccursWithin(rem, at("2026-08-31", "10:01"), at("2026-08-31", "11:00")) {
		t.Fatal("already-fired one-shot refired")
	}
}

func TestReminderOccursWithinDaily(t *testing.T) {
	rem := model.Reminder{Date: "2026-08-01", Time: "22:00", Repeats: model.RepeatDaily}

	if !ReminderOccursWithin(rem, at("2026-08-31", "21:59"), at("2026-08-31", "22:01")) {
		t.Fatal("daily occurrence missed")
	}

	// Window straddling midnight catches the previous evening's slot.
	if !ReminderOccursWithin(rem, at("2026-08-31", "21:30"), at("2026-09-01", "00:30")) {
		t.Fatal("midnight-straddling window missed the occurrence")
	}

	// Before the start date nothing fires.
	if ReminderOccursWithin(rem, at("2026-07-30", "21:59"), at("2026-07-30", "22:01")) {
		t.Fatal("fired before the start date")
	}
}

func TestReminderOccursWithinWeekly(t *testing.T) {
	// 2026-08-31 is a Monday.
	rem := model.Reminder{Date: "2026-08-31", Time: "09:00", Repeats: model.RepeatWeekly}

	if !ReminderOccursWithin(rem, at("2026-09-07", "08:59"), at("2026-09-07", "09:01")) {
		t.Fatal("weekly occurrence on the next Monday missed")
	}
	if ReminderOccursWithin(rem, at("2026-09-03", "08:59"), at("2026-09-03", "09:01")) {
		t.Fatal("fired on a Thursday")
	}
	if ReminderOccursWithin(rem, at("2026-08-24", "08:59"), at("2026-08-24", "09:01")) {
		t.Fatal("fired the Monday before the start date")
	}
}

func TestDueRemindersSkipsDisabled(t *testing.T) {
	r := newTestRepos(t)
	r.SaveReminders([]model.Reminder{
		{ID: "on", Date: "2026-08-31", Time: "10:00", Message: "go", Enabled: true, Repeats: model.RepeatNone},
		{ID: "off", Date: "2026-08-31", Time: "10:00", Message: "no", Enabled: false, Repeats: model.RepeatNone},
	})

	due := r.DueReminders(at("2026-08-31", "09:00"), at("2026-08-31", "11:00"))
	if len(due) != 1 || due[0].ID != "on" {
		t.Fatalf("due = %+v", due)
	}
}

func TestAddReminderValidation(t *testing.T) {
	r := newTestRepos(t)

	if _, err := r.AddReminder(model.Reminder{Message: "x", Time: "10:00"}); err == nil {
		t.Fatal("missing date accepted")
	}
	if _, err := r.AddReminder(model.Reminder{Date: "2026-08-31", Time: "10:00"}); err == nil {
		t.Fatal("missing message accepted")
	}

	rem, err := r.AddReminder(model.Reminder{Date: "2026-08-31", Time: "10:00", Message: "stretch"})
	if err != nil {
		t.Fatalf("AddReminder: %v", err)
	}
	if !rem.Enabled {
		t.Fatal("new reminder not enabled")
	}
	if rem.Repeats != model.RepeatNone {
		t.Fatalf("Repeats = %q, want none", rem.Repeats)
	}
}

func TestToggleAndDeleteReminder(t *testing.T) {
	r := newTestRepos(t)
	rem, _ := r.AddReminder(model.Reminder{Date: "2026-08-31", Time: "10:00", Message: "stretch"})

	if err := r.ToggleReminder(rem.ID); err != nil {
		t.Fatalf("ToggleReminder: %v", err)
	}
	if r.Reminders()[0].Enabled {
		t.Fatal("toggle did not disable")
	}

	if err := r.DeleteReminder(rem.ID); err != nil {
		t.Fatalf("DeleteReminder: %v", err)
	}
	if len(r.Reminders()) != 0 {
		t.Fatal("reminder survived deletion")
	}
}
