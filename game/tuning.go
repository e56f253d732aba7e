package game

import "time"

const (
	ScreenWidth  = 1920.0
	ScreenHeight = 1080.0

	MatchDuration = 45.0 // seconds

	// Screen zones left to right: player 1, shared band, player 2.
	ZoneP1     = 0.4
	ZoneShared = 0.2
	ZoneP2     = 0.4

	HandRadius           = 50.0 // capture circle around a tracked wrist, px
	PerfectCaptureRadius = 30.0 // center-to-center, px
	PerfectCaptureBonus  = 5

	ComboTimeout = 2.0 // seconds without a positive capture before the streak drops

	PhaseWarmupEnd = 15.0
	PhaseRushEnd   = 30.0

	SpawnTop     = -50.0 // items enter above the visible top edge
	BottomMargin = 100.0 // px past the bottom edge before an item is pruned

	HintInterval = 1.0 // seconds between "show the start gesture" hints
)

// ComboMultiplier returns the HUD multiplier tier for a streak length.
func ComboMultiplier(combo int) float64 {
	switch {
	case combo >= 20:
		return 3.0
	case combo >= 10:
		return 2.0
	case combo >= 5:
		return 1.5
	case combo >= 2:
		return 1.2
	}
	return 1.0
}

// Config is the immutable per-engine tuning set, fixed at construction.
type Config struct {
	Width  float64
	Height float64

	MatchDuration float64
	ComboTimeout  float64

	HandRadius    float64
	PerfectRadius float64
	PerfectBonus  int

	BottomMargin float64

	Seed int64 // 0 seeds from the clock
}

// DefaultConfig mirrors the arcade-cabinet tuning.
func DefaultConfig() Config {
	return Config{
		Width:         ScreenWidth,
		Height:        ScreenHeight,
		MatchDuration: MatchDuration,
		ComboTimeout:  ComboTimeout,
		HandRadius:    HandRadius,
		PerfectRadius: PerfectCaptureRadius,
		PerfectBonus:  PerfectCaptureBonus,
		BottomMargin:  BottomMargin,
	}
}

func seedOrNow(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
