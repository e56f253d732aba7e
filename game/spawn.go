package game

import "math/rand"

// Spawner owns the pseudo-random source and the monotone item id counter.
// One spawner per engine; seeding it makes runs reproducible.
type Spawner struct {
	rng    *rand.Rand
	nextID int
}

func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seedOrNow(seed)))}
}

// Reset restarts the id sequence for a new match.
func (sp *Spawner) Reset() {
	sp.nextID = 0
}

// Spawn creates one item above the top edge with phase-scaled kinematics.
func (sp *Spawner) Spawn(phase GamePhase, width float64) FallingItem {
	typ := sp.pickType()
	cfg := ItemConfigFor(typ)
	base := PhaseConfigFor(phase).FallSpeed
	jitter := 0.8 + 0.4*sp.rng.Float64() // avoids visually uniform columns

	item := FallingItem{
		ID:            sp.nextID,
		Type:          typ,
		X:             (0.1 + 0.8*sp.rng.Float64()) * width,
		Y:             SpawnTop,
		Size:          cfg.Size,
		Speed:         base * cfg.SpeedMultiplier * jitter,
		RotationSpeed: -180 + 360*sp.rng.Float64(),
		Active:        true,
	}
	sp.nextID++
	return item
}

// pickType walks the weight table with a cumulative roll in [0,100).
func (sp *Spawner) pickType() ItemType {
	roll := sp.rng.Intn(100)
	cumulative := 0
	for _, w := range spawnWeights {
		cumulative += w.Weight
		if roll < cumulative {
			return w.Type
		}
	}
	// Weights not summing to 100 is a config bug; fall back to the
	// cheapest item instead of spawning something unconfigured.
	return ItemPopcorn
}
