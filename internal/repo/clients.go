package repo

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"hustle/internal/model"
	"hustle/internal/store"
)

// ErrNameRequired is returned when a client is added or updated without a
// name.
var ErrNameRequired = errors.New("client name is required")

// Clients returns the full client list, empty if nothing is stored.
func (r *Repos) Clients() []model.Client {
	return store.Get(r.kv, keyClients, []model.Client{})
}

// SaveClients overwrites the client snapshot.
func (r *Repos) SaveClients(clients []model.Client) {
	r.kv.Set(keyClients, clients)
}

// AddClient validates and stores a new client. The id, visit list, and
// derived spending start empty regardless of what the caller passed in.
func (r *Repos) AddClient(c model.Client) (model.Client, error) {
	if c.Name == "" {
		return model.Client{}, ErrNameRequired
	}

	c.ID = uuid.NewString()
	c.Visits = nil
	c.TotalSpent = 0

	l := r.keyLock(keyClients)
	l.Lock()
	defer l.Unlock()

	clients := r.Clients()
	r.SaveClients(append(clients, c))
	return c, nil
}

// UpdateClient replaces the stored client with the same id. The visit list
// is taken from the stored record, not the argument, and spending is
// recomputed so the derived total can never be edited directly.
func (r *Repos) UpdateClient(c model.Client) error {
	if c.Name == "" {
		return ErrNameRequired
	}

	l := r.keyLock(keyClients)
	l.Lock()
	defer l.Unlock()

	clients := r.Clients()
	for i := range clients {
		if clients[i].ID == c.ID {
			c.Visits = clients[i].Visits
			c.RecomputeSpending()
			clients[i] = c
			r.SaveClients(clients)
			return nil
		}
	}
	return fmt.Errorf("client %s not found", c.ID)
}

// DeleteClient removes a client. Its visits go with it; they have no life
// outside their owner.
func (r *Repos) DeleteClient(id string) error {
	l := r.keyLock(keyClients)
	l.Lock()
	defer l.Unlock()

	clients := r.Clients()
	for i := range clients {
		if clients[i].ID == id {
			r.SaveClients(append(clients[:i], clients[i+1:]...))
			return nil
		}
	}
	return fmt.Errorf("client %s not found", id)
}

// AddVisit records a visit against a client and rederives TotalSpent and
// LastVisit.
func (r *Repos) AddVisit(clientID, date string, amount float64, notes string) (model.Visit, error) {
	if amount < 0 {
		return model.Visit{}, errors.New("visit amount must not be negative")
	}
	if date == "" {
		date = today()
	}

	visit := model.Visit{
		ID:     uuid.NewString(),
		Date:   normalizeDate(date),
		Amount: amount,
		Notes:  notes,
	}

	l := r.keyLock(keyClients)
	l.Lock()
	defer l.Unlock()

	clients := r.Clients()
	for i := range clients {
		if clients[i].ID == clientID {
			clients[i].Visits = append(clients[i].Visits, visit)
			clients[i].LastVisit = visit.Date
			clients[i].RecomputeSpending()
			r.SaveClients(clients)
			return visit, nil
		}
	}
	return model.Visit{}, fmt.Errorf("client %s not found", clientID)
}

// DeleteVisit removes one visit from a client and rederives TotalSpent.
func (r *Repos) DeleteVisit(clientID, visitID string) error {
	l := r.keyLock(keyClients)
	l.Lock()
	defer l.Unlock()

	clients := r.Clients()
	for i := range clients {
		if clients[i].ID != clientID {
			continue
		}
		for j := range clients[i].Visits {
			if clients[i].Visits[j].ID == visitID {
				clients[i].Visits = append(clients[i].Visits[:j], clients[i].Visits[j+1:]...)
				clients[i].RecomputeSpending()
				r.SaveClients(clients)
				return nil
			}
		}
		return fmt.Errorf("visit %s not found", visitID)
	}
	return fmt.Errorf("client %s not found", clientID)
}
