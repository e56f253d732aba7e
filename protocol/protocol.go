package protocol

import (
	"encoding/json"
)

const (
	MsgHello   = "hello"
	MsgPose    = "pose"
	MsgControl = "control"
	MsgWelcome = "welcome"
	MsgState   = "state"
)

const (
	SimTickHz   = 60 // matches the cabinet's render-driven update rate
	BroadcastHz = 20
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
