// Package hal declares the peripheral contracts the runtime consumes.
// Backends live in platform/host and platform/rp2; register-level setup
// (ADC reference, baud divisors, timer prescalers, pin modes) stays there.
package hal

import "time"

// BaseInterval is the fixed real-time interval of the tick interrupt.
const BaseInterval = time.Millisecond

// ADC returns raw 10-bit samples (0..1023).
type ADC interface {
	Read(channel uint8) uint16
}

// Port is an 8-bit output port.
type Port interface {
	Write(mask uint8)
}

type InputPin interface {
	Get() bool
}

type OutputPin interface {
	Set(high bool)
}

// UART is the byte-at-a-time serial contract. None of the methods block.
type UART interface {
	Ready() bool       // transmitter can accept a byte
	Send(b byte)       // only meaningful when Ready
	HasReceived() bool // at least one byte waiting
	Receive() byte     // only meaningful when HasReceived
	Flush()            // drop everything waiting
}

// Timer calls isr every interval until stopped. isr runs in interrupt
// context on hardware and must only touch atomics.
type Timer interface {
	Start(interval time.Duration, isr func()) error
	Stop()
}

// Board bundles the peripherals a node may use. Optional members are nil
// when the board lacks them.
type Board struct {
	Timer     Timer
	ADC       ADC
	Button    InputPin // optional, active high
	Bar       Port     // shift register lines
	Indicator Port     // optional one-hot direction display
	UART      UART     // link
}
