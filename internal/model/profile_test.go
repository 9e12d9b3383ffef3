package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewProfileDefaults(t *testing.T) {
	p := NewProfile()
	if p.Income == nil || p.Expenses == nil || p.Achievements == nil {
		t.Fatal("slices must be initialized, not nil")
	}
	if p.Goal != nil {
		t.Fatalf("fresh goal = %+v, want nil", p.Goal)
	}
	if p.Avatar != DefaultAvatar {
		t.Fatalf("avatar = %q, want %q", p.Avatar, DefaultAvatar)
	}
}

func TestProfileJSONShape(t *testing.T) {
	// The serialized form is the on-disk contract; empty collections must
	// encode as [] and the absent goal as null.
	data, err := json.Marshal(NewProfile())
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)

	for _, want := range []string{`"income":[]`, `"expenses":[]`, `"goal":null`, `"xp":0`, `"achievements":[]`, `"avatar":"🙂"`} {
		if !strings.Contains(s, want) {
			t.Errorf("encoded profile missing %s:\n%s", want, s)
		}
	}
}

func TestProfileDecodesStoredDocument(t *testing.T) {
	raw := `{
		"income":[{"source":"Job","amount":1000,"date":"2025-03-10T12:00:00Z"}],
		"expenses":[{"desc":"Coffee","amount":50,"category":"food","date":"2025-03-10T13:00:00Z"}],
		"goal":{"name":"Trip","amount":2000},
		"xp":90,
		"achievements":["first-income","first-expense","first-goal"],
		"avatar":"🚀"
	}`

	p := NewProfile()
	if err := json.Unmarshal([]byte(raw), p); err != nil {
		t.Fatal(err)
	}
	if len(p.Income) != 1 || p.Income[0].Source != "Job" {
		t.Fatalf("income = %+v", p.Income)
	}
	if len(p.Expenses) != 1 || p.Expenses[0].Category != "food" {
		t.Fatalf("expenses = %+v", p.Expenses)
	}
	if p.Goal == nil || p.Goal.Amount != 2000 {
		t.Fatalf("goal = %+v", p.Goal)
	}
	if p.XP != 90 || len(p.Achievements) != 3 {
		t.Fatalf("progression = xp %d, ach %v", p.XP, p.Achievements)
	}
}

func TestHasAchievement(t *testing.T) {
	p := NewProfile()
	p.Achievements = []string{"first-income"}
	if !p.HasAchievement("first-income") {
		t.Fatal("HasAchievement missed a present id")
	}
	if p.HasAchievement("first-goal") {
		t.Fatal("HasAchievement reported an absent id")
	}
}

func TestLastExpense(t *testing.T) {
	p := NewProfile()
	if p.LastExpense() != nil {
		t.Fatal("LastExpense on empty log != nil")
	}

	now := time.Now()
	p.Expenses = append(p.Expenses,
		ExpenseEntry{Desc: "old", Amount: 1, Category: "other", Date: now.Add(-time.Hour)},
		ExpenseEntry{Desc: "new", Amount: 2, Category: "other", Date: now},
	)
	if got := p.LastExpense(); got == nil || got.Desc != "new" {
		t.Fatalf("LastExpense = %+v, want the newest entry", got)
	}
}

func TestAvatarByID(t *testing.T) {
	item, ok := AvatarByID("avatar-rocket")
	if !ok || item.Emoji != "🚀" {
		t.Fatalf("AvatarByID(avatar-rocket) = %+v, %v", item, ok)
	}
	if _, ok := AvatarByID("avatar-crown"); ok {
		t.Fatal("AvatarByID reported an unknown id as present")
	}
}
