// Package joystick is the sender node's Stick/Link machine: every tick it
// samples the stick, folds in the button and emits one link frame.
package joystick

import (
	"joybar-go/core/fsm"
	"joybar-go/services/link"
	"joybar-go/types"
)

type State uint8

const (
	Start State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "start"
}

type Action uint8

const (
	Idle Action = iota
	Emit
)

func Next(s State, _ struct{}) State {
	switch s {
	case Start, Running:
		return Running
	}
	return s
}

func Output(s State) Action {
	if s == Running {
		return Emit
	}
	return Idle
}

// Sampler is satisfied by *drivers/joystick.Stick.
type Sampler interface {
	Read() (types.Direction, bool)
	Axes() (x, y uint16)
}

// Display is satisfied by *indicator.Indicator.
type Display interface {
	Show(types.Direction)
}

type Node struct {
	m     *fsm.Machine[State, struct{}, Action]
	stick Sampler
	ep    *link.Endpoint
	ind   Display // optional
	last  types.StickValue

	// OnEmit, if set, sees every emitted frame, sent or dropped.
	OnEmit func(v types.StickValue, sent bool)
}

// New builds the node. ind may be nil.
func New(stick Sampler, ep *link.Endpoint, ind Display) *Node {
	return &Node{
		m:     fsm.New(Start, Next, Output),
		stick: stick,
		ep:    ep,
		ind:   ind,
	}
}

// Step is the emit task action.
func (n *Node) Step() {
	if n.m.Step(struct{}{}) != Emit {
		return
	}
	dir, btn := n.stick.Read()
	if n.ind != nil {
		n.ind.Show(dir)
	}
	frame := link.Encode(dir, btn)
	sent := n.ep.TrySendRaw(frame)
	x, y := n.stick.Axes()
	n.last = types.StickValue{X: x, Y: y, Dir: dir, Button: btn, Frame: frame}
	if n.OnEmit != nil {
		n.OnEmit(n.last, sent)
	}
}

func (n *Node) State() State { return n.m.State() }

// Last is the most recent emitted value.
func (n *Node) Last() types.StickValue { return n.last }

func (n *Node) Stats() types.LinkStats { return n.ep.Stats() }
