package protocol

// Messages coming in from clients: the pose/gesture pipeline feeding the
// sim, and viewers issuing control actions.

type Hello struct {
	V    int    `json:"v"`              // protocol version
	Name string `json:"name,omitempty"` // optional display name
	Role string `json:"role,omitempty"` // "pose" or "viewer", informational
}

// Hand is one tracked joint in screen pixels. Valid false means the
// detection was below the confidence threshold.
type Hand struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Visibility float64 `json:"visibility,omitempty"`
	Valid      bool    `json:"valid"`
}

type Person struct {
	ID        int  `json:"id"`
	LeftHand  Hand `json:"leftHand"`
	RightHand Hand `json:"rightHand"`
	Head      Hand `json:"head"`
}

type Gesture struct {
	LeftOK  bool `json:"leftOk,omitempty"`
	RightOK bool `json:"rightOk,omitempty"`
}

// PoseFrame is one snapshot from the detection pipeline. The room keeps
// only the latest frame and feeds it to the sim once per tick.
type PoseFrame struct {
	Persons []Person `json:"persons"`
	Gesture Gesture  `json:"gesture"`
}

const (
	ActionStart = "start"
	ActionPause = "pause"
	ActionReset = "reset"
)

type Control struct {
	Action string `json:"action"`
}
