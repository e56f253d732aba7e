package room

import (
	"fmt"
	"log"
	"time"

	"catchrush/game"
	"catchrush/protocol"
)

// Room runs one match. A single goroutine owns the engine and all room
// state; everything reaches it through the Inbox, which is what keeps the
// sim single-writer.
type Room struct {
	Inbox          chan any
	tickHz         int
	broadcastEvery int

	engine  *game.Engine
	clients map[string]Conn

	latestPersons []game.DetectedPerson
	latestGesture game.GestureResult
	latestMarkers []protocol.Person

	pendingHits []protocol.HitSnapshot
	pendingHint bool

	tick   int
	nextID int
	quit   chan struct{}

	Code    string            // room code (e.g. "ABC123")
	OnEmpty func(code string) // called when the last client leaves
}

func New(cfg game.Config) *Room {
	broadcastEvery := protocol.SimTickHz / protocol.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	return &Room{
		Inbox:          make(chan any, 256),
		tickHz:         protocol.SimTickHz,
		broadcastEvery: broadcastEvery,
		engine:         game.NewEngine(cfg),
		clients:        make(map[string]Conn),
		nextID:         1,
		quit:           make(chan struct{}),
	}
}

func (r *Room) Stop() {
	close(r.quit)
}

// NumClients returns the current number of connected clients.
func (r *Room) NumClients() int {
	return len(r.clients)
}

func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()

	dt := 1.0 / float64(r.tickHz)
	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			r.step(dt)
		}
	}
}

func (r *Room) step(dt float64) {
	r.engine.Update(dt, r.latestPersons, r.latestGesture)

	for _, hit := range r.engine.RecentHits() {
		r.pendingHits = append(r.pendingHits, protocol.HitSnapshot{
			ItemID:  hit.ItemID,
			Player:  hit.Player,
			Score:   hit.ScoreDelta,
			Perfect: hit.Perfect,
			X:       hit.X,
			Y:       hit.Y,
		})
	}
	if r.engine.Hint() {
		r.pendingHint = true
	}

	r.tick++
	if r.tick%r.broadcastEvery == 0 {
		r.broadcastState()
		r.pendingHits = r.pendingHits[:0]
		r.pendingHint = false
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		clientID := fmt.Sprintf("c%d", r.nextID)
		r.nextID++
		r.clients[clientID] = c.Conn
		log.Printf("[room %s] client %s joined (%s)", r.Code, clientID, c.Role)
		c.Reply <- JoinResult{ClientID: clientID}
		r.sendStateTo(c.Conn)
	case Pose:
		if _, ok := r.clients[c.ClientID]; !ok {
			return
		}
		r.latestPersons = toGamePersons(c.Frame.Persons)
		r.latestGesture = game.GestureResult{
			LeftOK:  c.Frame.Gesture.LeftOK,
			RightOK: c.Frame.Gesture.RightOK,
		}
		r.latestMarkers = c.Frame.Persons
	case Control:
		if _, ok := r.clients[c.ClientID]; !ok {
			return
		}
		switch c.Action {
		case protocol.ActionStart:
			r.engine.StartGame()
		case protocol.ActionPause:
			r.engine.TogglePause()
		case protocol.ActionReset:
			r.engine.Reset()
		}
	case Leave:
		r.handleLeave(c.ClientID)
	}
}

func (r *Room) handleLeave(clientID string) {
	if c, ok := r.clients[clientID]; ok {
		_ = c.Close()
		delete(r.clients, clientID)
	}
	if len(r.clients) == 0 {
		// Nobody left to feed poses; stop the match rather than let the
		// clock run against an empty screen.
		r.latestPersons = nil
		r.latestGesture = game.GestureResult{}
		r.latestMarkers = nil
		r.engine.Reset()
		if r.OnEmpty != nil && r.Code != "" {
			r.OnEmpty(r.Code)
		}
	}
}

func (r *Room) removeClient(clientID string) {
	if c, ok := r.clients[clientID]; ok {
		_ = c.Close()
	}
	delete(r.clients, clientID)
}

func (r *Room) broadcastState() {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}

	var failed []string
	for id, c := range r.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.removeClient(id)
	}
}

func (r *Room) sendStateTo(c Conn) {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (r *Room) buildSnapshot() protocol.State {
	e := r.engine
	phase := game.PhaseConfigFor(e.Phase())
	items := e.Items()

	snapshot := protocol.State{
		Tick:          r.tick,
		GameState:     e.State().String(),
		Phase:         e.Phase().String(),
		PhaseTitle:    phase.Title,
		PhaseSubtitle: phase.Subtitle,
		Remaining:     e.RemainingTime(),
		P1: protocol.PlayerSnapshot{
			Score:      e.P1Score(),
			Combo:      e.P1Combo(),
			Multiplier: game.ComboMultiplier(e.P1Combo()),
		},
		P2: protocol.PlayerSnapshot{
			Score:      e.P2Score(),
			Combo:      e.P2Combo(),
			Multiplier: game.ComboMultiplier(e.P2Combo()),
		},
		Items:   make([]protocol.ItemSnapshot, 0, len(items)),
		Persons: r.latestMarkers,
		Hits:    r.pendingHits,
		Hint:    r.pendingHint,
	}
	for i := range items {
		it := &items[i]
		snapshot.Items = append(snapshot.Items, protocol.ItemSnapshot{
			ID:       it.ID,
			Type:     it.Type.String(),
			X:        it.X,
			Y:        it.Y,
			Rot:      it.Rotation,
			Size:     it.Size,
			Active:   it.Active,
			Captured: it.Captured,
		})
	}
	return snapshot
}

func toGamePersons(in []protocol.Person) []game.DetectedPerson {
	if len(in) == 0 {
		return nil
	}
	out := make([]game.DetectedPerson, len(in))
	for i, p := range in {
		out[i] = game.DetectedPerson{
			ID:        p.ID,
			LeftHand:  toGameHand(p.LeftHand),
			RightHand: toGameHand(p.RightHand),
			Head:      toGameHand(p.Head),
		}
	}
	return out
}

func toGameHand(h protocol.Hand) game.HandPosition {
	return game.HandPosition{X: h.X, Y: h.Y, Visibility: h.Visibility, Valid: h.Valid}
}
