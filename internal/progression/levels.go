// Package progression implements the XP, level, and achievement rules.
//
// XP only ever grows: each achievement pays its reward exactly once, on
// the transition from locked to unlocked. Levels are a pure step function
// of XP against a static threshold table.
package progression

// Level is one named tier of the progression ladder.
type Level struct {
	Name        string
	XPThreshold int64
}

// Levels is the static level ladder, ascending by threshold. The first
// entry must have threshold 0 so every XP value resolves to a level.
var Levels = []Level{
	{Name: "Новичок", XPThreshold: 0},
	{Name: "Хранитель", XPThreshold: 100},
	{Name: "Стратег", XPThreshold: 300},
	{Name: "Финансовый Ниндзя", XPThreshold: 600},
}

// LevelForXP returns the highest level whose threshold is <= xp.
// Thresholds are inclusive: xp exactly at a threshold resolves to that
// threshold's level.
func LevelForXP(xp int64) Level {
	level := Levels[0]
	for _, l := range Levels {
		if xp >= l.XPThreshold {
			level = l
		}
	}
	return level
}

// NextLevel returns the level after the current one for the given xp,
// and false when xp is already at the top tier.
func NextLevel(xp int64) (Level, bool) {
	for _, l := range Levels {
		if xp < l.XPThreshold {
			return l, true
		}
	}
	return Level{}, false
}
