package game

// GamePhase is the time-keyed difficulty segment of a match.
type GamePhase uint8

const (
	PhaseWarmup GamePhase = iota
	PhaseRush
	PhaseFinale

	phaseCount
)

func (p GamePhase) String() string {
	switch p {
	case PhaseWarmup:
		return "warmup"
	case PhaseRush:
		return "rush"
	case PhaseFinale:
		return "finale"
	}
	return "unknown"
}

type PhaseConfig struct {
	Duration  float64 // seconds
	FallSpeed float64 // px/s base, before per-type multiplier and jitter
	SpawnRate float64 // items/s

	// Not consulted by the weighted pick; kept for renderers and a
	// possible future rebalance.
	SpecialRate  float64
	ObstacleRate float64

	Title    string
	Subtitle string
}

// Indexed by GamePhase ordinal.
var phaseConfigs = [phaseCount]PhaseConfig{
	PhaseWarmup: {15, 400, 4, 0.10, 0.05, "Warmup", "the crowd files in"},
	PhaseRush:   {15, 620, 6, 0.25, 0.10, "Rush", "here they come!"},
	PhaseFinale: {15, 880, 8, 0.40, 0.08, "Finale", "final sprint!"},
}

// PhaseConfigFor returns the tuning record for p, falling back to warmup
// on an out-of-range phase.
func PhaseConfigFor(p GamePhase) PhaseConfig {
	if p >= phaseCount {
		return phaseConfigs[PhaseWarmup]
	}
	return phaseConfigs[p]
}

// PhaseFor maps elapsed match time to the active phase.
func PhaseFor(elapsed float64) GamePhase {
	switch {
	case elapsed < PhaseWarmupEnd:
		return PhaseWarmup
	case elapsed < PhaseRushEnd:
		return PhaseRush
	default:
		return PhaseFinale
	}
}
