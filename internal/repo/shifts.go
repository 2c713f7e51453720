package repo

import (
	"errors"

	"github.com/google/uuid"

	"hustle/internal/model"
	"hustle/internal/store"
)

// Shifts returns the recorded shift list. The shift collection is shared
// with external tooling; this side only appends and reads.
func (r *Repos) Shifts() []model.Shift {
	return store.Get(r.kv, keyShifts, []model.Shift{})
}

// SaveShifts overwrites the shift snapshot.
func (r *Repos) SaveShifts(shifts []model.Shift) {
	r.kv.Set(keyShifts, shifts)
}

// AddShift validates and stores a worked shift.
func (r *Repos) AddShift(s model.Shift) (model.Shift, error) {
	if s.StartTime == "" || s.EndTime == "" {
		return model.Shift{}, errors.New("shift start and end times are required")
	}
	if s.Date == "" {
		s.Date = today()
	}
	s.ID = uuid.NewString()
	s.Date = normalizeDate(s.Date)

	l := r.keyLock(keyShifts)
	l.Lock()
	defer l.Unlock()

	r.SaveShifts(append(r.Shifts(), s))
	return s, nil
}
