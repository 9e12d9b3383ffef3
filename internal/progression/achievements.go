package progression

import (
	"time"

	"github.com/diankaa7/splyyt/internal/model"
)

// UnlockReward is the XP paid for each first-time achievement unlock.
const UnlockReward = 30

// noSpendWindow is how long the ledger must stay expense-free for the
// week-no-spend achievement.
const noSpendWindow = 7 * 24 * time.Hour

// Achievement ids. The stored profile references achievements by id, so
// these are part of the persisted format.
const (
	FirstIncome  = "first-income"
	FirstExpense = "first-expense"
	FirstGoal    = "first-goal"
	WeekNoSpend  = "week-no-spend"
)

// AchievementDef describes one unlockable achievement. The predicate is
// evaluated against the current profile and wall-clock time; it must be
// pure and side-effect free.
type AchievementDef struct {
	ID        string
	Name      string
	Desc      string
	Predicate func(p *model.Profile, now time.Time) bool
}

// Catalog is the static achievement registry, in evaluation and display
// order. Unlocks are independent and idempotent, so evaluation order
// never changes the final state; the order here only fixes which
// notification comes first.
var Catalog = []AchievementDef{
	{
		ID:   FirstIncome,
		Name: "Первый доход",
		Desc: "Получил первый доход!",
		Predicate: func(p *model.Profile, _ time.Time) bool {
			return len(p.Income) > 0
		},
	},
	{
		ID:   FirstExpense,
		Name: "Первая трата",
		Desc: "Сделал первую покупку",
		Predicate: func(p *model.Profile, _ time.Time) bool {
			return len(p.Expenses) > 0
		},
	},
	{
		ID:   FirstGoal,
		Name: "Целеустремлённый",
		Desc: "Поставил первую финансовую цель!",
		Predicate: func(p *model.Profile, _ time.Time) bool {
			return p.Goal != nil
		},
	},
	{
		ID:   WeekNoSpend,
		Name: "Минималист",
		Desc: "Неделя без трат!",
		Predicate: func(p *model.Profile, now time.Time) bool {
			last := p.LastExpense()
			return last != nil && now.Sub(last.Date) >= noSpendWindow
		},
	},
}

// Lookup returns the catalog entry for an id. Ids persisted by a newer or
// older build may be absent; callers skip those rather than failing.
func Lookup(id string) (AchievementDef, bool) {
	for _, def := range Catalog {
		if def.ID == id {
			return def, true
		}
	}
	return AchievementDef{}, false
}

// Evaluate runs every catalog predicate against the profile and unlocks
// whatever newly holds: the id is appended to the profile's achievement
// set and the reward XP is added, at most once per id. The newly unlocked
// definitions are returned in catalog order so callers can notify the
// user. Re-evaluating with no intervening mutation returns nothing and
// changes nothing.
func Evaluate(p *model.Profile, now time.Time) []AchievementDef {
	var unlocked []AchievementDef
	for _, def := range Catalog {
		if p.HasAchievement(def.ID) {
			continue
		}
		if !def.Predicate(p, now) {
			continue
		}
		p.Achievements = append(p.Achievements, def.ID)
		p.XP += UnlockReward
		unlocked = append(unlocked, def)
	}
	return unlocked
}
