package protocol

type Welcome struct {
	ClientID string  `json:"clientId"`
	TickHz   int     `json:"tickHz"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// State is the render snapshot broadcast to every client.
type State struct {
	Tick          int            `json:"tick"`
	GameState     string         `json:"gameState"`
	Phase         string         `json:"phase"`
	PhaseTitle    string         `json:"phaseTitle,omitempty"`
	PhaseSubtitle string         `json:"phaseSubtitle,omitempty"`
	Remaining     float64        `json:"remaining"`
	P1            PlayerSnapshot `json:"p1"`
	P2            PlayerSnapshot `json:"p2"`
	Items         []ItemSnapshot `json:"items"`
	Persons       []Person       `json:"persons,omitempty"` // pass-through hand markers
	Hits          []HitSnapshot  `json:"hits,omitempty"`    // since last broadcast
	Hint          bool           `json:"hint,omitempty"`    // "show the start gesture"
}

type PlayerSnapshot struct {
	Score      int     `json:"score"`
	Combo      int     `json:"combo"`
	Multiplier float64 `json:"multiplier"`
}

type ItemSnapshot struct {
	ID       int     `json:"id"`
	Type     string  `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rot      float64 `json:"rot"`
	Size     float64 `json:"size"`
	Active   bool    `json:"active"`
	Captured bool    `json:"captured,omitempty"`
}

// HitSnapshot lets renderers place capture effects without diffing the
// item list.
type HitSnapshot struct {
	ItemID  int     `json:"itemId"`
	Player  int     `json:"player"`
	Score   int     `json:"score"`
	Perfect bool    `json:"perfect,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}
