package room

import "catchrush/protocol"

type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once after hello is parsed.
type Join struct {
	Conn  Conn
	Name  string
	Role  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	ClientID string
}

// Pose: latest detection frame from a pose client. Only the newest frame
// per tick is fed to the sim.
type Pose struct {
	ClientID string
	Frame    protocol.PoseFrame
}

// Control: start/pause/reset issued by a viewer.
type Control struct {
	ClientID string
	Action   string
}

// Leave: issued on disconnect.
type Leave struct {
	ClientID string
}
