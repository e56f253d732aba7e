package game

import "log"

// Engine is the match state machine. It owns all mutable match state and
// is stepped by exactly one caller per frame; it is not safe for
// concurrent use without external synchronization.
type Engine struct {
	cfg Config

	state GameState
	phase GamePhase

	p1Score, p2Score           int
	p1Combo, p2Combo           int
	p1ComboTimer, p2ComboTimer float64

	elapsed    float64
	remaining  float64
	spawnTimer float64
	hintTimer  float64
	hint       bool

	items   []FallingItem
	persons []DetectedPerson
	hits    []CollisionResult

	spawner *Spawner
}

func NewEngine(cfg Config) *Engine {
	e := &Engine{
		cfg:       cfg,
		state:     StateCalibrating,
		remaining: cfg.MatchDuration,
		spawner:   NewSpawner(cfg.Seed),
	}
	return e
}

// Update advances the simulation by dt seconds with this tick's detected
// persons and gesture result. dt is trusted as supplied and never clamped:
// a stalled frame applies as-is.
func (e *Engine) Update(dt float64, persons []DetectedPerson, gesture GestureResult) {
	e.persons = persons
	e.hits = e.hits[:0]
	e.hint = false

	switch e.state {
	case StateCalibrating:
		if len(persons) == 0 {
			e.hintTimer = 0
			return
		}
		if gesture.AnyOK() {
			log.Println("[engine] confirm gesture detected, starting match")
			e.StartGame()
			return
		}
		e.hintTimer += dt
		if e.hintTimer >= HintInterval {
			e.hintTimer = 0
			e.hint = true
			log.Println("[engine] player detected, waiting for confirm gesture")
		}

	case StateCountdown:
		// Sequenced by the caller between calibration and play.

	case StatePlaying:
		e.elapsed += dt
		e.remaining -= dt
		if e.remaining <= 0 {
			e.remaining = 0
			e.state = StateGameOver
			log.Printf("[engine] game over: p1=%d p2=%d", e.p1Score, e.p2Score)
			return
		}

		e.phase = PhaseFor(e.elapsed)

		e.p1ComboTimer -= dt
		e.p2ComboTimer -= dt
		if e.p1ComboTimer <= 0 {
			e.p1Combo = 0
		}
		if e.p2ComboTimer <= 0 {
			e.p2Combo = 0
		}

		e.spawnTimer += dt
		if interval := 1 / PhaseConfigFor(e.phase).SpawnRate; e.spawnTimer >= interval {
			e.items = append(e.items, e.spawner.Spawn(e.phase, e.cfg.Width))
			e.spawnTimer = 0
		}

		e.advanceItems(dt)

		if len(persons) > 0 {
			results := ResolveCollisions(e.items, persons, ResolveOptions{
				HandRadius:    e.cfg.HandRadius,
				PerfectRadius: e.cfg.PerfectRadius,
				PerfectBonus:  e.cfg.PerfectBonus,
				Width:         e.cfg.Width,
			})
			for _, hit := range results {
				e.applyHit(hit)
			}
			e.hits = append(e.hits, results...)
		}

		e.removeOffscreen()

	case StatePaused, StateGameOver:
		// Frozen; nothing moves and no time passes.
	}
}

// StartGame begins a match from Calibrating or GameOver; any other state
// is a no-op. Entering play always goes through a full reset.
func (e *Engine) StartGame() {
	if e.state != StateCalibrating && e.state != StateGameOver {
		return
	}
	e.Reset()
	e.state = StatePlaying
	log.Println("[engine] match started")
}

// TogglePause flips between Playing and Paused. No other state accepts it.
func (e *Engine) TogglePause() {
	switch e.state {
	case StatePlaying:
		e.state = StatePaused
		log.Println("[engine] paused")
	case StatePaused:
		e.state = StatePlaying
		log.Println("[engine] resumed")
	}
}

// Reset returns the engine to a fresh Calibrating state: scores, combos,
// timers, items, and the id sequence all restart. Callable at any time.
func (e *Engine) Reset() {
	e.p1Score, e.p2Score = 0, 0
	e.p1Combo, e.p2Combo = 0, 0
	e.p1ComboTimer, e.p2ComboTimer = 0, 0
	e.elapsed = 0
	e.remaining = e.cfg.MatchDuration
	e.phase = PhaseWarmup
	e.spawnTimer = 0
	e.hintTimer = 0
	e.hint = false
	e.items = e.items[:0]
	e.hits = e.hits[:0]
	e.spawner.Reset()
	e.state = StateCalibrating
	log.Println("[engine] reset")
}

func (e *Engine) applyHit(hit CollisionResult) {
	combo, timer := &e.p1Combo, &e.p1ComboTimer
	score := &e.p1Score
	if hit.Player == 2 {
		combo, timer = &e.p2Combo, &e.p2ComboTimer
		score = &e.p2Score
	}

	*score += hit.ScoreDelta
	switch {
	case hit.ScoreDelta > 0:
		*combo++
		*timer = e.cfg.ComboTimeout
	case hit.ScoreDelta < 0:
		// Catching an obstacle breaks the streak outright.
		*combo = 0
		*timer = 0
	}
}

func (e *Engine) advanceItems(dt float64) {
	for i := range e.items {
		item := &e.items[i]
		if !item.Active {
			continue
		}
		item.Y += item.Speed * dt
		item.Rotation += item.RotationSpeed * dt
		for item.Rotation >= 360 {
			item.Rotation -= 360
		}
		for item.Rotation < 0 {
			item.Rotation += 360
		}
	}
}

func (e *Engine) removeOffscreen() {
	kept := e.items[:0]
	for _, item := range e.items {
		if item.Active && item.Y <= e.cfg.Height+e.cfg.BottomMargin {
			kept = append(kept, item)
		}
	}
	e.items = kept
}

// Read-only views for the renderer boundary.

func (e *Engine) State() GameState          { return e.state }
func (e *Engine) Phase() GamePhase          { return e.phase }
func (e *Engine) P1Score() int              { return e.p1Score }
func (e *Engine) P2Score() int              { return e.p2Score }
func (e *Engine) Score() int                { return e.p1Score + e.p2Score }
func (e *Engine) P1Combo() int              { return e.p1Combo }
func (e *Engine) P2Combo() int              { return e.p2Combo }
func (e *Engine) Elapsed() float64          { return e.elapsed }
func (e *Engine) RemainingTime() float64    { return e.remaining }
func (e *Engine) Items() []FallingItem      { return e.items }
func (e *Engine) Persons() []DetectedPerson { return e.persons }

// RecentHits returns the collisions resolved by the last Update call. The
// slice is reused across ticks; callers must copy what they keep.
func (e *Engine) RecentHits() []CollisionResult { return e.hits }

// Hint reports whether the last Update emitted a "show the start gesture"
// UI hint. Signaling only; it never affects control flow.
func (e *Engine) Hint() bool { return e.hint }
