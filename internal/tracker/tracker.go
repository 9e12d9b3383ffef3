// Package tracker owns the live profile for one session: it validates
// input, applies mutations, runs the progression engine, and persists the
// result after every change.
package tracker

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/diankaa7/splyyt/internal/ledger"
	"github.com/diankaa7/splyyt/internal/model"
	"github.com/diankaa7/splyyt/internal/progression"
	"github.com/diankaa7/splyyt/internal/store"
)

// KV is the durable string store the tracker persists into.
type KV interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
}

// ValidationError reports rejected input. Nothing is mutated or persisted
// when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistError reports a failed durable write. The in-memory profile
// already carries the change and stays correct for this session, but it
// will not survive a restart. Callers should warn, not abort.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persisting profile: %v", e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// Tracker is the session-scoped state owner. It is not safe for
// concurrent use; all mutations happen on one goroutine, to completion,
// matching the one-writer model of the app.
type Tracker struct {
	kv      KV
	profile *model.Profile

	// Now supplies wall-clock time for date stamps and the time-based
	// achievement predicates. Tests swap in a fixed clock.
	Now func() time.Time

	// Created is true when Load found no stored profile and started a
	// fresh one.
	Created bool
}

// Load reads the stored profile, or starts a fresh one when the store has
// none yet.
func Load(kv KV) (*Tracker, error) {
	t := &Tracker{kv: kv, Now: time.Now}

	raw, ok, err := kv.Get(store.ProfileKey)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	if !ok {
		t.profile = model.NewProfile()
		t.Created = true
		return t, nil
	}

	p := model.NewProfile()
	if err := json.Unmarshal([]byte(raw), p); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	if p.Avatar == "" {
		p.Avatar = model.DefaultAvatar
	}
	t.profile = p
	return t, nil
}

// Profile exposes the live profile for read-only display.
func (t *Tracker) Profile() *model.Profile {
	return t.profile
}

// RecordIncome validates and appends an income entry, then evaluates
// achievements and persists. It returns whatever unlocked.
func (t *Tracker) RecordIncome(source string, amount float64) ([]progression.AchievementDef, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, &ValidationError{Field: "source", Reason: "must not be empty"}
	}
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	t.profile.Income = append(t.profile.Income, model.IncomeEntry{
		Source: source,
		Amount: amount,
		Date:   t.Now(),
	})
	unlocked := progression.Evaluate(t.profile, t.Now())
	return unlocked, t.persist()
}

// RecordExpense validates and appends an expense entry, then evaluates
// achievements and persists.
func (t *Tracker) RecordExpense(desc string, amount float64, category string) ([]progression.AchievementDef, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return nil, &ValidationError{Field: "desc", Reason: "must not be empty"}
	}
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = ledger.CategoryOther
	}

	t.profile.Expenses = append(t.profile.Expenses, model.ExpenseEntry{
		Desc:     desc,
		Amount:   amount,
		Category: category,
		Date:     t.Now(),
	})
	unlocked := progression.Evaluate(t.profile, t.Now())
	return unlocked, t.persist()
}

// SetGoal validates and replaces the active goal, then evaluates
// achievements and persists. Any prior goal is discarded.
func (t *Tracker) SetGoal(name string, amount float64) ([]progression.AchievementDef, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	t.profile.Goal = &model.Goal{Name: name, Amount: amount}
	unlocked := progression.Evaluate(t.profile, t.Now())
	return unlocked, t.persist()
}

// SetAvatar replaces the cosmetic avatar and persists. Purchases are
// simulated; no payment happens here.
func (t *Tracker) SetAvatar(avatar string) error {
	if avatar == "" {
		return &ValidationError{Field: "avatar", Reason: "must not be empty"}
	}
	t.profile.Avatar = avatar
	return t.persist()
}

// EvaluateAchievements re-runs the unlock predicates on demand (e.g. when
// opening the profile view, which is when week-no-spend can fire without
// any mutation). Persists only when something unlocked.
func (t *Tracker) EvaluateAchievements() ([]progression.AchievementDef, error) {
	unlocked := progression.Evaluate(t.profile, t.Now())
	if len(unlocked) == 0 {
		return nil, nil
	}
	return unlocked, t.persist()
}

// CurrentLevel derives the level from the profile's XP.
func (t *Tracker) CurrentLevel() progression.Level {
	return progression.LevelForXP(t.profile.XP)
}

// LedgerSummary computes the derived dashboard values.
func (t *Tracker) LedgerSummary() ledger.Summary {
	return ledger.Summarize(t.profile)
}

// CategoryTotals aggregates expenses per category tag.
func (t *Tracker) CategoryTotals() map[string]float64 {
	return ledger.CategoryTotals(t.profile)
}

// Onboarded reports whether the onboarding flag has been set.
func (t *Tracker) Onboarded() (bool, error) {
	v, ok, err := t.kv.Get(store.OnboardedKey)
	if err != nil {
		return false, err
	}
	return ok && v == "true", nil
}

// SetOnboarded marks onboarding as completed.
func (t *Tracker) SetOnboarded() error {
	if err := t.kv.Put(store.OnboardedKey, "true"); err != nil {
		return &PersistError{Err: err}
	}
	return nil
}

// persist writes the full profile as one JSON document. The in-memory
// profile is the source of truth for this session even when the write
// fails.
func (t *Tracker) persist() error {
	data, err := json.Marshal(t.profile)
	if err != nil {
		return &PersistError{Err: err}
	}
	if err := t.kv.Put(store.ProfileKey, string(data)); err != nil {
		return &PersistError{Err: err}
	}
	return nil
}
