package room

import (
	"crypto/rand"
	"math/big"
	"sync"

	"catchrush/game"
)

// RoomInfo is returned by the API for the room list.
type RoomInfo struct {
	Code    string `json:"code"`
	Clients int    `json:"clients"`
}

// Manager holds rooms by code. Rooms are created on first join or via
// CreateRoom, and removed when the last client leaves. Every room runs the
// same immutable game config, fixed at manager construction.
type Manager struct {
	mu    sync.RWMutex
	cfg   game.Config
	rooms map[string]*Room
}

func NewManager(cfg game.Config) *Manager {
	return &Manager{
		cfg:   cfg,
		rooms: make(map[string]*Room),
	}
}

// GameConfig returns the immutable config every room runs.
func (m *Manager) GameConfig() game.Config {
	return m.cfg
}

// GetOrCreateRoom returns the room for the given code, creating it if
// needed.
func (m *Manager) GetOrCreateRoom(code string) *Room {
	if code == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		return r
	}
	return m.startRoom(code)
}

// CreateRoom generates a unique 6-char code, starts the room, and returns
// the code.
func (m *Manager) CreateRoom() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		code := generateCode(6)
		if _, exists := m.rooms[code]; exists {
			continue
		}
		m.startRoom(code)
		return code
	}
}

// startRoom must be called with m.mu held.
func (m *Manager) startRoom(code string) *Room {
	r := New(m.cfg)
	r.Code = code
	r.OnEmpty = func(c string) {
		m.removeRoom(c)
	}
	m.rooms[code] = r
	go r.Run()
	return r
}

func (m *Manager) removeRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		r.Stop()
		delete(m.rooms, code)
	}
}

// ListRooms returns all active rooms with code and client count.
func (m *Manager) ListRooms() []RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RoomInfo, 0, len(m.rooms))
	for code, r := range m.rooms {
		out = append(out, RoomInfo{Code: code, Clients: r.NumClients()})
	}
	return out
}

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
