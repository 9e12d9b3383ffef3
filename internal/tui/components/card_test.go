package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/diankaa7/splyyt/internal/tui/theme"
)

func TestLayoutRowSumsExactly(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{120, 3},
		{100, 3},
		{71, 4},
		{10, 1},
	}

	for _, tc := range cases {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}

	if LayoutRow(50, 0) != nil {
		t.Error("LayoutRow with n=0 should return nil")
	}
}

func TestMetricCardRowHeightsAlign(t *testing.T) {
	theme.SetActive("flexoki-dark")

	cards := []struct{ Label, Value, Sub string }{
		{"Доходы", "1,000 ₽", "1 записей"},
		{"Траты", "50 ₽", "1 записей"},
		{"Баланс", "950 ₽", ""},
	}
	row := MetricCardRow(cards, 90)

	lines := strings.Split(row, "\n")
	width := lipgloss.Width(lines[0])
	for i, line := range lines {
		if lipgloss.Width(line) != width {
			t.Fatalf("line %d width %d, want %d", i, lipgloss.Width(line), width)
		}
	}
	if width != 90 {
		t.Fatalf("row width = %d, want 90", width)
	}
}

func TestContentCardWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	card := ContentCard("Цель", "Trip\nполоса", 40)
	for i, line := range strings.Split(card, "\n") {
		if lipgloss.Width(line) != 40 {
			t.Fatalf("line %d width %d, want 40", i, lipgloss.Width(line))
		}
	}
}

func TestCardInnerWidth(t *testing.T) {
	if got := CardInnerWidth(40); got != 36 {
		t.Fatalf("CardInnerWidth(40) = %d, want 36", got)
	}
	if got := CardInnerWidth(5); got != 10 {
		t.Fatalf("CardInnerWidth floor = %d, want 10", got)
	}
}

func TestGoalBarFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	cases := []struct {
		pct        float64
		width      int
		wantFilled int
		wantLabel  string
	}{
		{0, 20, 0, "0%"},
		{45, 20, 9, "45%"},
		{99.6, 20, 20, "100%"},
		{100, 20, 20, "100%"},
	}

	for _, tc := range cases {
		bar := GoalBar(tc.pct, tc.width)
		if got := strings.Count(bar, "█"); got != tc.wantFilled {
			t.Errorf("GoalBar(%v) filled = %d, want %d", tc.pct, got, tc.wantFilled)
		}
		if got := strings.Count(bar, "░"); got != tc.width-tc.wantFilled {
			t.Errorf("GoalBar(%v) empty = %d, want %d", tc.pct, got, tc.width-tc.wantFilled)
		}
		if !strings.Contains(bar, tc.wantLabel) {
			t.Errorf("GoalBar(%v) missing label %q", tc.pct, tc.wantLabel)
		}
	}
}

func TestXPBarAtTopTier(t *testing.T) {
	theme.SetActive("flexoki-dark")

	bar := XPBar(600, 600, 600, 10)
	if strings.Count(bar, "█") != 10 {
		t.Fatalf("top-tier bar not full: %q", bar)
	}
}
