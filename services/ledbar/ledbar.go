// Package ledbar runs the Direction FSM and drives the LED bar.
//
// The game is one scheduler task. Each run reads the current input
// direction, steps the machine, applies the resulting action to the
// pattern and sends the pattern to the shift register, changed or not.
package ledbar

import (
	"joybar-go/core/fsm"
	"joybar-go/types"
)

// Sender is satisfied by *shiftreg.Device.
type Sender interface {
	Send(pattern uint8)
}

// Input yields the direction to use for the next step.
type Input func() types.Direction

type Game struct {
	m       *fsm.Machine[State, types.Direction, Action]
	bar     Sender
	input   Input
	pattern uint8

	// OnStep, if set, sees every step after the pattern is sent.
	OnStep func(State, uint8)
}

func New(bar Sender, input Input) *Game {
	return &Game{
		m:     fsm.New(Start, Next, Output),
		bar:   bar,
		input: input,
	}
}

// Step is the game task action.
func (g *Game) Step() {
	a := g.m.Step(g.input())
	g.pattern = Apply(a, g.pattern)
	g.bar.Send(g.pattern)
	if g.OnStep != nil {
		g.OnStep(g.m.State(), g.pattern)
	}
}

func (g *Game) State() State   { return g.m.State() }
func (g *Game) Pattern() uint8 { return g.pattern }
func (g *Game) Value() types.BarValue {
	return types.BarValue{State: g.State().String(), Pattern: g.pattern}
}
