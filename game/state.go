package game

// GameState is the match lifecycle state. Exactly one is active at a time.
type GameState uint8

const (
	StateCalibrating GameState = iota // waiting for a player and the start gesture
	StateCountdown                    // reserved, sequenced by the caller
	StatePlaying
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateCalibrating:
		return "calibrating"
	case StateCountdown:
		return "countdown"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	}
	return "unknown"
}
