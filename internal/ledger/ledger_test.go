package ledger

import (
	"math"
	"testing"
	"time"

	"github.com/diankaa7/splyyt/internal/model"
)

func profileWith(t *testing.T, income []float64, expenses []float64) *model.Profile {
	t.Helper()
	p := model.NewProfile()
	now := time.Now()
	for i, v := range income {
		p.Income = append(p.Income, model.IncomeEntry{Source: "src", Amount: v, Date: now.Add(time.Duration(i) * time.Minute)})
	}
	for i, v := range expenses {
		p.Expenses = append(p.Expenses, model.ExpenseEntry{Desc: "exp", Amount: v, Category: CategoryOther, Date: now.Add(time.Duration(i) * time.Minute)})
	}
	return p
}

func TestBalanceIdentity(t *testing.T) {
	cases := []struct {
		name     string
		income   []float64
		expenses []float64
	}{
		{"empty", nil, nil},
		{"income only", []float64{1000, 250.5}, nil},
		{"expenses only", nil, []float64{10, 20, 30}},
		{"mixed", []float64{1000, 500}, []float64{250.25, 49.75}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := profileWith(t, tc.income, tc.expenses)
			got := Balance(p)
			want := TotalIncome(p) - TotalExpense(p)
			if math.Abs(got-want) > 1e-9 {
				t.Fatalf("Balance = %v, want TotalIncome-TotalExpense = %v", got, want)
			}
		})
	}
}

func TestEmptySumsToZero(t *testing.T) {
	p := model.NewProfile()
	if got := TotalIncome(p); got != 0 {
		t.Fatalf("TotalIncome(empty) = %v, want 0", got)
	}
	if got := TotalExpense(p); got != 0 {
		t.Fatalf("TotalExpense(empty) = %v, want 0", got)
	}
}

func TestGoalProgressClamped(t *testing.T) {
	cases := []struct {
		name       string
		income     float64
		expense    float64
		goalAmount float64
		want       float64
	}{
		{"no overshoot", 950, 0, 2000, 47.5},
		{"exact", 2000, 0, 2000, 100},
		{"overshoot clamps to 100", 5000, 0, 2000, 100},
		{"negative balance clamps to 0", 100, 500, 2000, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := profileWith(t, []float64{tc.income}, []float64{tc.expense})
			if tc.expense == 0 {
				p = profileWith(t, []float64{tc.income}, nil)
			}
			p.Goal = &model.Goal{Name: "g", Amount: tc.goalAmount}
			got := GoalProgress(p)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("GoalProgress = %v, want %v", got, tc.want)
			}
			if got < 0 || got > 100 {
				t.Fatalf("GoalProgress = %v, out of [0,100]", got)
			}
		})
	}
}

func TestGoalProgressNoGoal(t *testing.T) {
	p := profileWith(t, []float64{1000}, nil)
	if got := GoalProgress(p); got != 0 {
		t.Fatalf("GoalProgress without goal = %v, want 0", got)
	}

	// A non-positive goal amount must never divide; report 0 instead.
	p.Goal = &model.Goal{Name: "bad", Amount: 0}
	if got := GoalProgress(p); got != 0 {
		t.Fatalf("GoalProgress with zero goal amount = %v, want 0", got)
	}
}

func TestCategoryTotals(t *testing.T) {
	p := model.NewProfile()
	now := time.Now()
	for _, e := range []struct {
		cat string
		amt float64
	}{
		{"food", 10},
		{"food", 5},
		{"style", 20},
	} {
		p.Expenses = append(p.Expenses, model.ExpenseEntry{Desc: "x", Amount: e.amt, Category: e.cat, Date: now})
	}

	totals := CategoryTotals(p)
	if len(totals) != 2 {
		t.Fatalf("got %d categories, want 2", len(totals))
	}
	if totals["food"] != 15 {
		t.Errorf("food = %v, want 15", totals["food"])
	}
	if totals["style"] != 20 {
		t.Errorf("style = %v, want 20", totals["style"])
	}
}

func TestCategoryTotalsUnknownTagPassesThrough(t *testing.T) {
	p := model.NewProfile()
	p.Expenses = append(p.Expenses, model.ExpenseEntry{Desc: "x", Amount: 7, Category: "crypto", Date: time.Now()})

	totals := CategoryTotals(p)
	if totals["crypto"] != 7 {
		t.Fatalf("unknown tag bucket = %v, want 7", totals["crypto"])
	}
	if CategoryLabel("crypto") != "crypto" {
		t.Fatalf("CategoryLabel(unknown) = %q, want raw tag", CategoryLabel("crypto"))
	}
	if KnownCategory("crypto") {
		t.Fatal("KnownCategory(unknown) = true")
	}
}

func TestSummarize(t *testing.T) {
	p := profileWith(t, []float64{1000}, []float64{50})
	p.Goal = &model.Goal{Name: "Trip", Amount: 2000}

	s := Summarize(p)
	if s.TotalIncome != 1000 || s.TotalExpense != 50 || s.Balance != 950 {
		t.Fatalf("Summarize = %+v", s)
	}
	if !s.HasGoal {
		t.Fatal("HasGoal = false with goal set")
	}
	if math.Abs(s.GoalProgress-47.5) > 1e-9 {
		t.Fatalf("GoalProgress = %v, want 47.5", s.GoalProgress)
	}
}
