package repo

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"hustle/internal/model"
	"hustle/internal/store"
)

// ErrDateTimeRequired is returned when an appointment misses its date or
// time.
var ErrDateTimeRequired = errors.New("appointment date and time are required")

// Appointments returns the full appointment list.
func (r *Repos) Appointments() []model.Appointment {
	return store.Get(r.kv, keyAppointments, []model.Appointment{})
}

// SaveAppointments overwrites the appointment snapshot.
func (r *Repos) SaveAppointments(appts []model.Appointment) {
	r.kv.Set(keyAppointments, appts)
}

// AddAppointment validates and stores a new appointment.
func (r *Repos) AddAppointment(a model.Appointment) (model.Appointment, error) {
	if a.Date == "" || a.Time == "" {
		return model.Appointment{}, ErrDateTimeRequired
	}
	a.ID = uuid.NewString()
	a.Date = normalizeDate(a.Date)

	l := r.keyLock(keyAppointments)
	l.Lock()
	defer l.Unlock()

	r.SaveAppointments(append(r.Appointments(), a))
	return a, nil
}

// UpdateAppointment replaces the stored appointment with the same id.
func (r *Repos) UpdateAppointment(a model.Appointment) error {
	if a.Date == "" || a.Time == "" {
		return ErrDateTimeRequired
	}
	a.Date = normalizeDate(a.Date)

	l := r.keyLock(keyAppointments)
	l.Lock()
	defer l.Unlock()

	appts := r.Appointments()
	for i := range appts {
		if appts[i].ID == a.ID {
			appts[i] = a
			r.SaveAppointments(appts)
			return nil
		}
	}
	return fmt.Errorf("appointment %s not found", a.ID)
}

// DeleteAppointment removes an appointment.
func (r *Repos) DeleteAppointment(id string) error {
	l := r.keyLock(keyAppointments)
	l.Lock()
	defer l.Unlock()

	appts := r.Appointments()
	for i := range appts {
		if appts[i].ID == id {
			r.SaveAppointments(append(appts[:i], appts[i+1:]...))
			return nil
		}
	}
	return fmt.Errorf("appointment %s not found", id)
}

// AppointmentsOn returns the appointments scheduled for one calendar day.
func (r *Repos) AppointmentsOn(date string) []model.Appointment {
	date = normalizeDate(date)
	var out []model.Appointment
	for _, a := range r.Appointments() {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out
}
