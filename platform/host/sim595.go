//go:build !rp2040 && !rp2350

package host

import (
	"sync/atomic"

	"joybar-go/drivers/shiftreg"
)

// Sim595 models a 74HC595 wired to an 8-bit port: SER is sampled on the
// SRCLK rising edge and shifted in from the top, RCLK rising copies the
// chain to the outputs, SRCLR low clears the chain.
type Sim595 struct {
	lines shiftreg.Lines
	prev  uint8
	chain uint8

	out     atomic.Uint32
	latches atomic.Uint32

	// OnLatch, if set, is called from Write on every latch.
	OnLatch func(out uint8)
}

// NewSim595 uses DefaultLines when lines is zero.
func NewSim595(lines shiftreg.Lines) *Sim595 {
	if lines == (shiftreg.Lines{}) {
		lines = shiftreg.DefaultLines
	}
	return &Sim595{lines: lines}
}

func (s *Sim595) Write(m uint8) {
	l := s.lines
	rising := m &^ s.prev
	s.prev = m
	if m&l.Clear == 0 {
		s.chain = 0
	}
	if rising&l.Clock != 0 {
		var ser uint8
		if m&l.Data != 0 {
			ser = 1
		}
		s.chain = s.chain>>1 | ser<<7
	}
	if rising&l.Latch != 0 {
		s.out.Store(uint32(s.chain))
		s.latches.Add(1)
		if s.OnLatch != nil {
			s.OnLatch(s.chain)
		}
	}
}

// Output is the latched pattern.
func (s *Sim595) Output() uint8 { return uint8(s.out.Load()) }

func (s *Sim595) Latches() uint32 { return s.latches.Load() }
