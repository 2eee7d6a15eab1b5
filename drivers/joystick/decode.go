// Package joystick classifies a two-axis analog stick into a Direction.
package joystick

import (
	"joybar-go/types"
	"joybar-go/x/mathx"
)

// Thresholds on the 10-bit ADC domain. The cross-axis band keeps the
// classes disjoint: a corner reading decodes to Neutral.
const (
	Max      = 1023
	bandLo   = 100
	bandHi   = 900
	highEdge = 1000
	lowEdge  = 50
)

// Sample is one reading of both axes.
type Sample struct {
	X, Y uint16
}

// Decode checks Up, Down, Right, Left in that order. No smoothing.
func Decode(s Sample) types.Direction {
	x, y := s.X, s.Y
	switch {
	case y > highEdge && mathx.Inside(x, bandLo, bandHi):
		return types.Up
	case y < lowEdge && mathx.Inside(x, bandLo, bandHi):
		return types.Down
	case x > highEdge && mathx.Inside(y, bandLo, bandHi):
		return types.Right
	case x < lowEdge && mathx.Inside(y, bandLo, bandHi):
		return types.Left
	}
	return types.Neutral
}
