package shiftreg

import "joybar-go/core/hal"

// PinPort drives up to eight discrete output pins as one port. Bit i of
// the mask goes to Pins[i]; nil entries are skipped.
type PinPort struct {
	Pins [8]hal.OutputPin
}

// NewPinPort wires the four register lines onto separate pins and returns
// the port together with the Lines that address it.
func NewPinPort(data, latch, clock, clear hal.OutputPin) (*PinPort, Lines) {
	p := &PinPort{}
	p.Pins[0], p.Pins[1], p.Pins[2], p.Pins[3] = data, latch, clock, clear
	return p, DefaultLines
}

func (p *PinPort) Write(mask uint8) {
	for i, pin := range p.Pins {
		if pin != nil {
			pin.Set(mask&(1<<uint(i)) != 0)
		}
	}
}
