package game

// FallingItem is a live instance on the play field. Owned by the engine;
// ids are unique for the lifetime of a match.
type FallingItem struct {
	ID   int
	Type ItemType

	X, Y  float64
	Size  float64
	Speed float64 // px/s downward

	Rotation      float64 // degrees, kept in [0,360)
	RotationSpeed float64 // deg/s, signed

	Active   bool // still in play
	Captured bool // registered a hit, pending exit animation
}

// Score returns the configured score delta for capturing this item.
func (it *FallingItem) Score() int {
	return ItemConfigFor(it.Type).Score
}
