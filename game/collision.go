package game

// CollisionResult records one hand/item contact resolved in a tick.
type CollisionResult struct {
	ItemID      int
	PersonID    int
	PersonIndex int
	LeftHand    bool
	Player      int // 1 or 2, see AttributePlayer
	ScoreDelta  int
	Perfect     bool
	X, Y        float64 // hand position at capture, for effects
}

// ResolveOptions carries the radii and screen width the resolver needs.
type ResolveOptions struct {
	HandRadius    float64
	PerfectRadius float64
	PerfectBonus  int
	Width         float64
}

// ResolveCollisions finds every hand/item contact for this tick. Hands are
// examined per person, left then right; the first match wins and the item
// is marked captured, so an item yields at most one hit per tick. Invalid
// (low-confidence) hands never hit. Stateless apart from mutating the
// Active/Captured flags of hit items.
func ResolveCollisions(items []FallingItem, persons []DetectedPerson, opt ResolveOptions) []CollisionResult {
	var results []CollisionResult

	for i := range items {
		item := &items[i]
		if !item.Active {
			continue
		}

	personLoop:
		for pi := range persons {
			hands := [2]struct {
				pos  HandPosition
				left bool
			}{
				{persons[pi].LeftHand, true},
				{persons[pi].RightHand, false},
			}
			for _, h := range hands {
				if !h.pos.Valid {
					continue
				}
				distSq := distanceSquared(h.pos.X, h.pos.Y, item.X, item.Y)
				radius := opt.HandRadius + item.Size/2
				if distSq > radius*radius {
					continue
				}

				delta := item.Score()
				perfect := false
				if delta > 0 && distSq <= opt.PerfectRadius*opt.PerfectRadius {
					perfect = true
					delta += opt.PerfectBonus
				}

				results = append(results, CollisionResult{
					ItemID:      item.ID,
					PersonID:    persons[pi].ID,
					PersonIndex: pi,
					LeftHand:    h.left,
					Player:      AttributePlayer(h.pos.X, opt.Width, pi),
					ScoreDelta:  delta,
					Perfect:     perfect,
					X:           h.pos.X,
					Y:           h.pos.Y,
				})
				item.Active = false
				item.Captured = true
				break personLoop
			}
		}
	}

	return results
}

// AttributePlayer maps a capture to a player slot by screen zone: the left
// 40% belongs to player 1, the right 40% to player 2. Inside the shared
// band the first detected person plays the left slot.
func AttributePlayer(x, width float64, personIndex int) int {
	switch {
	case x < ZoneP1*width:
		return 1
	case x >= (1-ZoneP2)*width:
		return 2
	case personIndex == 0:
		return 1
	default:
		return 2
	}
}

func distanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}
