package daemon

import (
	"path/filepath"
	"testing"
	"time"

	"hustle/internal/model"
	"hustle/internal/repo"
	"hustle/internal/store"
)

func testRepos(t *testing.T) *repo.Repos {
	t.Helper()
	kv, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return repo.New(kv)
}

func TestPollOnceFiresDueReminders(t *testing.T) {
	repos := testRepos(t)

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	repos.SaveReminders([]model.Reminder{
		{ID: "a", Date: "2026-08-31", Time: "09:45", Message: "stretch", Enabled: true},
		{ID: "b", Date: "2026-08-31", Time: "11:00", Message: "later", Enabled: true},
		{ID: "c", Date: "2026-08-31", Time: "09:50", Message: "off", Enabled: false},
	})

	s := New(Config{Interval: time.Minute}, repos)
	s.now = func() time.Time { return now }
	s.lastPollAt = now.Add(-30 * time.Minute)

	s.pollOnce()

	if len(s.events) != 1 {
		t.Fatalf("events = %d, want 1", len(s.events))
	}
	ev := s.events[0]
	if ev.Type != "reminder_due" {
		t.Fatalf("event type = %q, want reminder_due", ev.Type)
	}
	if ev.Reminder.ID != "a" {
		t.Fatalf("fired reminder = %s, want a", ev.Reminder.ID)
	}
	if s.firedCount != 1 {
		t.Fatalf("firedCount = %d, want 1", s.firedCount)
	}

	// A second poll over the following window must not refire.
	s.pollOnce()
	if len(s.events) != 1 {
		t.Fatalf("events after second poll = %d, want 1", len(s.events))
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{Interval: 10 * time.Second, EventsBuffer: 2}, testRepos(t))

	s.publishEvent(Event{ID: 1})
	s.publishEvent(Event{ID: 2})
	s.publishEvent(Event{ID: 3})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
}
