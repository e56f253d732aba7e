package game

// Input types produced by the pose/gesture pipeline. The engine reads them
// for one tick and never mutates them; callers must hand off a consistent
// snapshot per tick.

// HandPosition is a tracked joint in screen pixels. Valid is false for
// low-confidence detections, which the collision resolver ignores.
type HandPosition struct {
	X          float64
	Y          float64
	Visibility float64
	Valid      bool
}

// DetectedPerson is one tracked player as reported by the pose detector.
type DetectedPerson struct {
	ID        int
	LeftHand  HandPosition
	RightHand HandPosition
	Head      HandPosition // for on-screen markers only
}

// GestureResult is the per-frame output of the gesture detector.
type GestureResult struct {
	LeftOK  bool
	RightOK bool
}

// AnyOK reports whether either hand currently forms the confirm gesture.
func (g GestureResult) AnyOK() bool {
	return g.LeftOK || g.RightOK
}
