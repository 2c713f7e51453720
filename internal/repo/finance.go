package repo

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"hustle/internal/model"
	"hustle/internal/store"
)

// Expenses returns the full expense list from the obfuscated store.
func (r *Repos) Expenses() []model.Expense {
	expenses, ok := store.GetSecure[[]model.Expense](r.secure, keyExpenses)
	if !ok {
		return []model.Expense{}
	}
	return expenses
}

// SaveExpenses overwrites the expense snapshot.
func (r *Repos) SaveExpenses(expenses []model.Expense) {
	r.secure.SetSecure(keyExpenses, expenses)
}

// AddExpense validates and stores a new expense. Category is required and
// the amount must be positive to count toward anything.
func (r *Repos) AddExpense(e model.Expense) (model.Expense, error) {
	if e.Category == "" {
		return model.Expense{}, errors.New("expense category is required")
	}
	if e.Amount <= 0 {
		return model.Expense{}, errors.New("expense amount must be positive")
	}
	if e.Date == "" {
		e.Date = today()
	}
	e.ID = uuid.NewString()
	e.Date = normalizeDate(e.Date)

	l := r.keyLock(keyExpenses)
	l.Lock()
	defer l.Unlock()

	r.SaveExpenses(append(r.Expenses(), e))
	return e, nil
}

// DeleteExpense removes an expense entry.
func (r *Repos) DeleteExpense(id string) error {
	l := r.keyLock(keyExpenses)
	l.Lock()
	defer l.Unlock()

	expenses := r.Expenses()
	for i := range expenses {
		if expenses[i].ID == id {
			r.SaveExpenses(append(expenses[:i], expenses[i+1:]...))
			return nil
		}
	}
	return fmt.Errorf("expense %s not found", id)
}

// Earnings returns the full earnings list from the obfuscated store.
func (r *Repos) Earnings() []model.Earnings {
	earnings, ok := store.GetSecure[[]model.Earnings](r.secure, keyEarnings)
	if !ok {
		return []model.Earnings{}
	}
	return earnings
}

// SaveEarnings overwrites the earnings snapshot.
func (r *Repos) SaveEarnings(earnings []model.Earnings) {
	r.secure.SetSecure(keyEarnings, earnings)
}

// AddEarnings stores a day's earnings. Total is always rederived from the
// components; whatever the caller put there is discarded.
func (r *Repos) AddEarnings(e model.Earnings) (model.Earnings, error) {
	if e.Tips < 0 || e.VIPDances < 0 || e.AfterDates < 0 {
		return model.Earnings{}, errors.New("earnings amounts must not be negative")
	}
	if e.Date == "" {
		e.Date = today()
	}
	e.ID = uuid.NewString()
	e.Date = normalizeDate(e.Date)
	e.RecomputeTotal()

	l := r.keyLock(keyEarnings)
	l.Lock()
	defer l.Unlock()

	r.SaveEarnings(append(r.Earnings(), e))
	return e, nil
}

// DeleteEarnings removes an earnings entry.
func (r *Repos) DeleteEarnings(id string) error {
	l := r.keyLock(keyEarnings)
	l.Lock()
	defer l.Unlock()

	earnings := r.Earnings()
	for i := range earnings {
		if earnings[i].ID == id {
			r.SaveEarnings(append(earnings[:i], earnings[i+1:]...))
			return nil
		}
	}
	return fmt.Errorf("earnings entry %s not found", id)
}

// TotalExpenses sums all expense amounts.
func TotalExpenses(expenses []model.Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// TotalEarnings sums all earnings totals.
func TotalEarnings(earnings []model.Earnings) float64 {
	total := 0.0
	for _, e := range earnings {
		total += e.Total
	}
	return total
}
