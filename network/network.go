package network

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"catchrush/protocol"
	"catchrush/room"
)

const (
	readLimit    = 1 << 20 // 1MB
	pongWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	writeWait    = 10 * time.Second
	sendBuffer   = 64
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server bridges websocket clients to rooms.
type Server struct {
	mgr *room.Manager
}

func NewServer(mgr *room.Manager) *Server {
	return &Server{mgr: mgr}
}

// Routes returns the HTTP mux: /ws for clients, /rooms for the lobby API.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.wsHandler)
	mux.HandleFunc("/rooms", s.roomsHandler)
	return mux
}

func (s *Server) roomsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, s.mgr.ListRooms())
	case http.MethodPost:
		code := s.mgr.CreateRoom()
		writeJSON(w, map[string]string{"code": code})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("room")
	rm := s.mgr.GetOrCreateRoom(code)
	if rm == nil {
		http.Error(w, "missing room code", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("[network] upgrade:", err)
		return
	}

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	hello, err := readHello(conn)
	if err != nil {
		log.Println("[network] hello:", err)
		_ = conn.Close()
		return
	}

	wc := newWSConn(conn)
	go wc.writePump()

	reply := make(chan room.JoinResult, 1)
	rm.Inbox <- room.Join{Conn: wc, Name: hello.Name, Role: hello.Role, Reply: reply}
	res := <-reply

	cfg := s.mgr.GameConfig()
	welcome, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		ClientID: res.ClientID,
		TickHz:   protocol.SimTickHz,
		Width:    cfg.Width,
		Height:   cfg.Height,
	})
	if err == nil {
		_ = wc.Send(welcome)
	}

	s.readLoop(conn, rm, res.ClientID)
	rm.Inbox <- room.Leave{ClientID: res.ClientID}
}

// readHello expects the first client message to be a hello envelope.
func readHello(conn *websocket.Conn) (protocol.Hello, error) {
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return protocol.Hello{}, err
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return protocol.Hello{}, err
	}
	if env.T != protocol.MsgHello {
		return protocol.Hello{}, errors.New("first message must be hello")
	}
	return protocol.DecodePayload[protocol.Hello](env)
}

func (s *Server) readLoop(conn *websocket.Conn, rm *room.Room, clientID string) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			log.Println("[network] bad envelope:", err)
			continue
		}
		switch env.T {
		case protocol.MsgPose:
			frame, err := protocol.DecodePayload[protocol.PoseFrame](env)
			if err != nil {
				continue
			}
			rm.Inbox <- room.Pose{ClientID: clientID, Frame: frame}
		case protocol.MsgControl:
			ctl, err := protocol.DecodePayload[protocol.Control](env)
			if err != nil {
				continue
			}
			rm.Inbox <- room.Control{ClientID: clientID, Action: ctl.Action}
		}
	}
}

// wsConn adapts a websocket connection to room.Conn with a buffered,
// single-writer send channel.
type wsConn struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
}

func newWSConn(conn *websocket.Conn) *wsConn {
	return &wsConn{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

// Send queues b for delivery. A full buffer counts as a dead client so the
// room can drop it instead of blocking the frame loop.
func (c *wsConn) Send(b []byte) error {
	select {
	case <-c.done:
		return errors.New("connection closed")
	case c.send <- b:
		return nil
	default:
		return errors.New("send buffer full")
	}
}

func (c *wsConn) Close() error {
	select {
	case <-c.done:
	default:
		close(c.done)
	}
	return nil
}

func (c *wsConn) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case b := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
