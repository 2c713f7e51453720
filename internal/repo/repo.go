// Package repo provides the typed record repositories over the key-value
// store. Every collection is persisted as one whole-snapshot JSON array
// under a single storage key; mutations load the full list, change it in
// memory, and write the full list back.
//
// The load-modify-save cycle is not atomic across processes: two programs
// writing the same key race and the last writer wins. Within one process a
// per-key mutex closes that window.
package repo

import (
	"sync"
	"time"

	"hustle/internal/store"
)

// Storage keys, one per collection role.
const (
	keyClients       = "hustle-clients"
	keyAppointments  = "hustle-appointments"
	keyHabits        = "hustle-habits"
	keyHabitLogs     = "hustle-habit-logs"
	keyShifts        = "hustle-shifts"
	keyReminders     = "hustle-reminders"
	keyOpportunities = "client-opportunities"
	keyExpenses      = "work-expenses" // obfuscated
	keyEarnings      = "work-earnings" // obfuscated
	keyTheme         = "hustle-theme"
	keyPrivacySeen   = "privacy-notice-seen"
)

// Repos bundles all repositories over one store. Financial records go
// through the obfuscated view; everything else through the plain store.
type Repos struct {
	kv     *store.Store
	secure *store.Secure

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New returns repositories backed by kv.
func New(kv *store.Store) *Repos {
	return &Repos{
		kv:     kv,
		secure: store.NewSecure(kv),
		locks:  make(map[string]*sync.Mutex),
	}
}

// keyLock returns the mutex guarding one storage key's load-modify-save
// cycle.
func (r *Repos) keyLock(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}

// today formats the current date the way all records store dates.
func today() string {
	return time.Now().Format("2006-01-02")
}

// normalizeDate reduces any supported date string to YYYY-MM-DD. Inputs
// already in that shape pass through unchanged.
func normalizeDate(s string) string {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("2006-01-02")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02")
	}
	return s
}
