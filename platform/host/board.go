//go:build !rp2040 && !rp2350

package host

import (
	"tinygo.org/x/drivers"

	"joybar-go/core/hal"
	"joybar-go/drivers/shiftreg"
	"joybar-go/services/link"
)

// SimBoard is a fully simulated board. The concrete sims stay reachable
// so tests and tools can drive inputs and watch outputs.
type SimBoard struct {
	Timer     hal.Timer
	ADC       *SimADC
	Button    *Pin
	Bar       *Sim595
	Indicator *RecordingPort
	UART      *link.StreamUART
}

// NewSimBoard builds a board on the real-time host timer. stream may be
// nil for a board without a link.
func NewSimBoard(stream drivers.UART) *SimBoard {
	return newSimBoard(&Timer{}, stream)
}

// NewManualBoard is NewSimBoard with a ManualTimer.
func NewManualBoard(stream drivers.UART) (*SimBoard, *ManualTimer) {
	t := &ManualTimer{}
	return newSimBoard(t, stream), t
}

func newSimBoard(t hal.Timer, stream drivers.UART) *SimBoard {
	b := &SimBoard{
		Timer:     t,
		ADC:       &SimADC{},
		Button:    &Pin{},
		Bar:       NewSim595(shiftreg.DefaultLines),
		Indicator: &RecordingPort{},
	}
	for ch := uint8(0); ch < 4; ch++ {
		b.ADC.Set(ch, Centre)
	}
	if stream != nil {
		b.UART = link.NewStreamUART(stream)
	}
	return b
}

// HAL returns the board as the contract bundle a node consumes.
func (b *SimBoard) HAL() hal.Board {
	hb := hal.Board{
		Timer:     b.Timer,
		ADC:       b.ADC,
		Button:    b.Button,
		Bar:       b.Bar,
		Indicator: b.Indicator,
	}
	if b.UART != nil {
		hb.UART = b.UART
	}
	return hb
}
