// Package ledger computes derived financial values from a profile
// snapshot. All functions are pure: they never mutate the profile and
// never touch storage.
package ledger

import "github.com/diankaa7/splyyt/internal/model"

// Summary holds the derived dashboard values for a profile.
type Summary struct {
	TotalIncome  float64
	TotalExpense float64
	Balance      float64

	// GoalProgress is the clamped goal completion in [0, 100].
	// Only meaningful when HasGoal is true.
	HasGoal      bool
	GoalProgress float64
}

// TotalIncome sums all income amounts. An empty ledger sums to 0.
func TotalIncome(p *model.Profile) float64 {
	var sum float64
	for _, e := range p.Income {
		sum += e.Amount
	}
	return sum
}

// TotalExpense sums all expense amounts.
func TotalExpense(p *model.Profile) float64 {
	var sum float64
	for _, e := range p.Expenses {
		sum += e.Amount
	}
	return sum
}

// Balance is total income minus total expense.
func Balance(p *model.Profile) float64 {
	return TotalIncome(p) - TotalExpense(p)
}

// GoalProgress returns the goal completion percentage clamped to [0, 100].
// A negative balance reports 0; overshooting the target reports 100.
// A missing or non-positive goal amount reports 0 (upstream validation
// rejects such goals, but division into them must never happen here).
func GoalProgress(p *model.Profile) float64 {
	if p.Goal == nil || p.Goal.Amount <= 0 {
		return 0
	}
	pct := Balance(p) / p.Goal.Amount * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Summarize computes the full dashboard summary in one pass.
func Summarize(p *model.Profile) Summary {
	s := Summary{
		TotalIncome:  TotalIncome(p),
		TotalExpense: TotalExpense(p),
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	if p.Goal != nil {
		s.HasGoal = true
		s.GoalProgress = GoalProgress(p)
	}
	return s
}

// CategoryTotals accumulates expense amounts per category tag. Tags
// outside the known catalog are kept as-is rather than rejected.
func CategoryTotals(p *model.Profile) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range p.Expenses {
		totals[e.Category] += e.Amount
	}
	return totals
}
