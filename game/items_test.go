package game

import "testing"

func TestSpawnWeightsSumTo100(t *testing.T) {
	sum := 0
	for _, w := range SpawnWeights() {
		if w.Weight <= 0 {
			t.Fatalf("weight for %s = %d, want > 0", w.Type, w.Weight)
		}
		sum += w.Weight
	}
	if sum != 100 {
		t.Fatalf("spawn weights sum = %d, want 100", sum)
	}
}

func TestItemConfigTableMatchesOrdinals(t *testing.T) {
	for typ := ItemPopcorn; typ < itemTypeCount; typ++ {
		cfg := ItemConfigFor(typ)
		if cfg.Type != typ {
			t.Fatalf("config at ordinal %d has type %s", typ, cfg.Type)
		}
		if cfg.Size <= 0 || cfg.SpeedMultiplier <= 0 {
			t.Fatalf("%s has unusable size/speed: %+v", typ, cfg)
		}
	}
}

func TestItemConfigOutOfRangeFallsBack(t *testing.T) {
	cfg := ItemConfigFor(ItemType(250))
	if cfg.Type != ItemPopcorn {
		t.Fatalf("out-of-range lookup returned %s, want popcorn fallback", cfg.Type)
	}
}

func TestBombIsOnlyNegativeItem(t *testing.T) {
	for typ := ItemPopcorn; typ < itemTypeCount; typ++ {
		score := ItemConfigFor(typ).Score
		if typ == ItemBomb && score >= 0 {
			t.Fatalf("bomb score = %d, want negative", score)
		}
		if typ != ItemBomb && score <= 0 {
			t.Fatalf("%s score = %d, want positive", typ, score)
		}
	}
}

func TestComboMultiplierTiers(t *testing.T) {
	cases := []struct {
		combo int
		want  float64
	}{
		{0, 1.0}, {1, 1.0}, {2, 1.2}, {4, 1.2}, {5, 1.5},
		{9, 1.5}, {10, 2.0}, {19, 2.0}, {20, 3.0}, {100, 3.0},
	}
	for _, c := range cases {
		if got := ComboMultiplier(c.combo); got != c.want {
			t.Fatalf("ComboMultiplier(%d) = %v, want %v", c.combo, got, c.want)
		}
	}
}
