// Package shiftreg bit-bangs an 8-bit pattern into a 74HC595-style
// serial-in/parallel-out register through one 8-bit output port.
//
// Sequence per pattern, bit 0 first:
//
//	for each bit: clear; clear|data; clear|data|clock
//	then:         last|latch; 0
//
// The clear line (active low SRCLR) is held high for the whole shift.
package shiftreg

import "joybar-go/core/hal"

// Lines maps the register's control signals to port bits.
type Lines struct {
	Data  uint8 // SER
	Latch uint8 // RCLK
	Clock uint8 // SRCLK
	Clear uint8 // SRCLR, active low
}

// DefaultLines matches the reference wiring: SER=0, RCLK=1, SRCLK=2, SRCLR=3.
var DefaultLines = Lines{Data: 0x01, Latch: 0x02, Clock: 0x04, Clear: 0x08}

type Device struct {
	port  hal.Port
	lines Lines
	last  uint8 // last pattern sent
}

// New returns a driver on port. A zero Lines selects DefaultLines.
func New(port hal.Port, lines Lines) *Device {
	if lines == (Lines{}) {
		lines = DefaultLines
	}
	return &Device{port: port, lines: lines}
}

// Send shifts pattern out and latches it. There is no failure mode.
func (d *Device) Send(pattern uint8) {
	l := d.lines
	var w uint8
	for i := uint8(0); i < 8; i++ {
		var data uint8
		if pattern&(1<<i) != 0 {
			data = l.Data
		}
		d.port.Write(l.Clear)
		w = l.Clear | data
		d.port.Write(w)
		w |= l.Clock
		d.port.Write(w)
	}
	d.port.Write(w | l.Latch)
	d.port.Write(0)
	d.last = pattern
}

// Last is the most recently latched pattern.
func (d *Device) Last() uint8 { return d.last }
