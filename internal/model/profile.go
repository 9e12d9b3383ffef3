// Package model defines the persisted domain types for a splyyt profile.
package model

import "time"

// DefaultAvatar is the cosmetic avatar every new profile starts with.
const DefaultAvatar = "🙂"

// Profile is the full persisted state of one user: ledger entries, the
// active savings goal, and progression state. It is loaded once per
// session, mutated in place, and serialized back after every mutation.
type Profile struct {
	Income       []IncomeEntry  `json:"income"`
	Expenses     []ExpenseEntry `json:"expenses"`
	Goal         *Goal          `json:"goal"`
	XP           int64          `json:"xp"`
	Achievements []string       `json:"achievements"`
	Avatar       string         `json:"avatar"`
}

// IncomeEntry is one logged income record. Date is set at creation and
// never changes; insertion order is chronological order.
type IncomeEntry struct {
	Source string    `json:"source"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// ExpenseEntry is one logged expense record.
type ExpenseEntry struct {
	Desc     string    `json:"desc"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

// Goal is the single active savings target. At most one goal exists at a
// time; setting a new one replaces it.
type Goal struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// NewProfile returns an empty profile with defaults applied.
func NewProfile() *Profile {
	return &Profile{
		Income:       []IncomeEntry{},
		Expenses:     []ExpenseEntry{},
		Achievements: []string{},
		Avatar:       DefaultAvatar,
	}
}

// HasAchievement reports whether the achievement id is already unlocked.
func (p *Profile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// LastExpense returns the most recently added expense, or nil if there are
// none. Entries are appended in chronological order, so the last element
// is the most recent.
func (p *Profile) LastExpense() *ExpenseEntry {
	if len(p.Expenses) == 0 {
		return nil
	}
	return &p.Expenses[len(p.Expenses)-1]
}
