package game

import "testing"

func TestLevelForNewPlayer(t *testing.T) {
	lvl := LevelFor(0, 0)
	if lvl.ID != 1 {
		t.Fatalf("expected tier 1 for a new player, got %d", lvl.ID)
	}
	if lvl.Name != "Rookie Musician" {
		t.Errorf("expected Rookie Musician, got %q", lvl.Name)
	}
}

func TestLevelForBands(t *testing.T) {
	tests := []struct {
		name string
		fame int
		rep  int
		want int
	}{
		{"both at tier floor", 11, 11, 2},
		{"both at tier ceiling", 20, 20, 2},
		{"mid tier", 40, 40, 4},
		{"top tier", 100, 100, 8},
		{"fame band edge", 35, 25, 3},
		{"one below tier floor", 10, 11, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelFor(tt.fame, tt.rep).ID; got != tt.want {
				t.Errorf("LevelFor(%d, %d) = %d, want %d", tt.fame, tt.rep, got, tt.want)
			}
		})
	}
}

func TestLevelForFallback(t *testing.T) {
	// High fame with low reputation lands outside every tier's
	// reputation band; lookup falls back to tier 1.
	if got := LevelFor(90, 5).ID; got != 1 {
		t.Errorf("expected fallback to tier 1, got %d", got)
	}
	// And the reverse.
	if got := LevelFor(5, 90).ID; got != 1 {
		t.Errorf("expected fallback to tier 1, got %d", got)
	}
}

func TestLevelBandsOrdered(t *testing.T) {
	for i := 1; i < len(Levels); i++ {
		prev, cur := Levels[i-1], Levels[i]
		if cur.ID != prev.ID+1 {
			t.Errorf("tier ids not sequential at index %d", i)
		}
		if cur.FameMin != prev.FameMax+1 {
			t.Errorf("fame bands not contiguous between tiers %d and %d", prev.ID, cur.ID)
		}
		if cur.RepMin != prev.RepMax+1 {
			t.Errorf("reputation bands not contiguous between tiers %d and %d", prev.ID, cur.ID)
		}
	}
	last := Levels[len(Levels)-1]
	if last.FameMax != 100 || last.RepMax != 100 {
		t.Error("top tier must cover fame and reputation 100")
	}
}

func TestNextLevel(t *testing.T) {
	next, ok := NextLevel(Levels[0])
	if !ok || next.ID != 2 {
		t.Errorf("NextLevel(tier 1) = %d, %v; want 2, true", next.ID, ok)
	}

	if _, ok := NextLevel(Levels[len(Levels)-1]); ok {
		t.Error("top tier must have no next level")
	}
}

func TestCanLevelUp(t *testing.T) {
	tier1 := Levels[0]

	if CanLevelUp(10, 10, tier1) {
		t.Error("should not level up below the next tier's floors")
	}
	if !CanLevelUp(11, 11, tier1) {
		t.Error("should level up at the next tier's floors")
	}
	if CanLevelUp(11, 10, tier1) {
		t.Error("fame alone must not unlock the next tier")
	}
	if CanLevelUp(100, 100, Levels[len(Levels)-1]) {
		t.Error("top tier can never level up")
	}
}

func TestLevelByIDOutOfRange(t *testing.T) {
	if got := LevelByID(0).ID; got != 1 {
		t.Errorf("LevelByID(0) = %d, want 1", got)
	}
	if got := LevelByID(99).ID; got != 1 {
		t.Errorf("LevelByID(99) = %d, want 1", got)
	}
}
