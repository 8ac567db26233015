package config

// StateID is the player's derived movement status
type StateID int

const (
	StateIdle StateID = iota
	StateRun
	StateJump
	StateFall
)

var stateNames = map[StateID]string{
	StateIdle: "idle",
	StateRun:  "run",
	StateJump: "jump",
	StateFall: "fall",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Direction constants for shells and pearls
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// Sign returns -1 for left and 1 for right
func (d Direction) Sign() float64 {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

// Axis is the movement axis of a moving platform
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)
