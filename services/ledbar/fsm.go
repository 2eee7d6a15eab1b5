package ledbar

import "joybar-go/types"

// State of the Direction FSM.
type State uint8

const (
	Start State = iota
	MovingRight
	MovingLeft
	Holding
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case MovingRight:
		return "moving_right"
	case MovingLeft:
		return "moving_left"
	case Holding:
		return "holding"
	}
	return "unknown"
}

// Action is the output of a state.
type Action uint8

const (
	Clear Action = iota
	ShiftUp
	ShiftDown
	Keep
)

// Next is the transition function. Only Right leaves Start.
func Next(s State, in types.Direction) State {
	switch s {
	case Start:
		if in == types.Right {
			return MovingRight
		}
		return Start
	case MovingRight, MovingLeft, Holding:
		switch in {
		case types.Right:
			return MovingRight
		case types.Left:
			return MovingLeft
		}
		return Holding
	}
	return s
}

// Output maps a state to its action.
func Output(s State) Action {
	switch s {
	case Start:
		return Clear
	case MovingRight:
		return ShiftUp
	case MovingLeft:
		return ShiftDown
	}
	return Keep
}

// Apply moves the single lit bit. No wraparound.
func Apply(a Action, p uint8) uint8 {
	switch a {
	case Clear:
		return 0x00
	case ShiftUp:
		switch p {
		case 0x00:
			return 0x01
		case 0x80:
			return 0x80
		}
		return p << 1
	case ShiftDown:
		if p == 0x01 {
			return 0x01
		}
		return p >> 1
	}
	return p
}
