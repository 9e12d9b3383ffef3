package progression

import "testing"

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp   int64
		want string
	}{
		{0, "Новичок"},
		{99, "Новичок"},
		{100, "Хранитель"},
		{250, "Хранитель"},
		{299, "Хранитель"},
		{300, "Стратег"},
		{599, "Стратег"},
		{600, "Финансовый Ниндзя"},
		{10000, "Финансовый Ниндзя"},
	}

	for _, tc := range cases {
		if got := LevelForXP(tc.xp); got.Name != tc.want {
			t.Errorf("LevelForXP(%d) = %q, want %q", tc.xp, got.Name, tc.want)
		}
	}
}

func TestLevelThresholdsAscending(t *testing.T) {
	for i := 1; i < len(Levels); i++ {
		if Levels[i].XPThreshold <= Levels[i-1].XPThreshold {
			t.Fatalf("thresholds not strictly increasing at %d: %d <= %d",
				i, Levels[i].XPThreshold, Levels[i-1].XPThreshold)
		}
	}
	if Levels[0].XPThreshold != 0 {
		t.Fatalf("first threshold = %d, want 0", Levels[0].XPThreshold)
	}
}

func TestNextLevel(t *testing.T) {
	next, ok := NextLevel(0)
	if !ok || next.Name != "Хранитель" {
		t.Fatalf("NextLevel(0) = %q, %v", next.Name, ok)
	}

	next, ok = NextLevel(250)
	if !ok || next.Name != "Стратег" {
		t.Fatalf("NextLevel(250) = %q, %v", next.Name, ok)
	}

	if _, ok := NextLevel(600); ok {
		t.Fatal("NextLevel at top tier reported a next level")
	}
	if _, ok := NextLevel(9999); ok {
		t.Fatal("NextLevel beyond top tier reported a next level")
	}
}
