package cli

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0 ₽"},
		{50, "50 ₽"},
		{1000, "1,000 ₽"},
		{950, "950 ₽"},
		{49.5, "49.50 ₽"},
		{1234567.89, "1,234,567.89 ₽"},
		{-250.25, "-250.25 ₽"},
		{10.004, "10 ₽"},
		{49.996, "50 ₽"},
		{999.999, "1,000 ₽"},
		{49.994, "49.99 ₽"},
	}

	for _, tc := range cases {
		if got := FormatAmount(tc.v, "₽"); got != tc.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestFormatAmountCustomSymbol(t *testing.T) {
	if got := FormatAmount(100, "$"); got != "100 $" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-42000, "-42,000"},
	}

	for _, tc := range cases {
		if got := FormatNumber(tc.n); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{0, "0%"},
		{47.5, "48%"},
		{47.4, "47%"},
		{100, "100%"},
	}

	for _, tc := range cases {
		if got := FormatPercent(tc.pct); got != tc.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}

func TestFormatXP(t *testing.T) {
	if got := FormatXP(90); got != "90 XP" {
		t.Fatalf("got %q", got)
	}
	if got := FormatXP(1200); got != "1,200 XP" {
		t.Fatalf("got %q", got)
	}
}
