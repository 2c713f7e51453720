package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSetGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	type record struct {
		Name  string  `json:"name"`
		Total float64 `json:"total"`
	}

	s.Set("records", []record{{Name: "a", Total: 12.5}, {Name: "b", Total: 3}})

	got := Get(s, "records", []record{})
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Name != "a" || got[0].Total != 12.5 {
		t.Fatalf("first record = %+v", got[0])
	}
}

func TestGetMissingReturnsDefault(t *testing.T) {
	s := openTestStore(t)

	got := Get(s, "nope", "fallback")
	if got != "fallback" {
		t.Fatalf("got %q, want fallback", got)
	}
}

func TestGetUnparsableReturnsDefault(t *testing.T) {
	s := openTestStore(t)

	s.setRaw(prefix+"broken", "{not json")

	got := Get(s, "broken", 42)
	if got != 42 {
		t.Fatalf("got %d, want default 42", got)
	}
}

func TestOverwriteReplacesValue(t *testing.T) {
	s := openTestStore(t)

	s.Set("theme", "dark")
	s.Set("theme", "light")

	if got := Get(s, "theme", ""); got != "light" {
		t.Fatalf("got %q, want light", got)
	}
}

func TestRemove(t *testing.T) {
	s := openTestStore(t)

	s.Set("key", true)
	s.Remove("key")

	if Get(s, "key", false) {
		t.Fatal("value survived Remove")
	}
}

func TestClearLeavesOtherNamespacesAlone(t *testing.T) {
	s := openTestStore(t)

	s.Set("plain", "gone")
	s.setRaw(obfuscationKeyRow, "the-key")
	s.setRaw(securePrefix+"money", "bW9uZXk=")

	s.Clear()

	if got := Get(s, "plain", "default"); got != "default" {
		t.Fatalf("plain key survived Clear: %q", got)
	}
	if _, ok := s.getRaw(obfuscationKeyRow); !ok {
		t.Fatal("Clear dropped the obfuscation key row")
	}
	if _, ok := s.getRaw(securePrefix + "money"); !ok {
		t.Fatal("Clear dropped a secure entry")
	}
}
