// Package indicator shows a Direction as a one-hot mask on a spare port.
package indicator

import (
	"joybar-go/core/hal"
	"joybar-go/types"
)

// Port bits.
const (
	MaskUp    uint8 = 0x01
	MaskDown  uint8 = 0x02
	MaskRight uint8 = 0x04
	MaskLeft  uint8 = 0x08
)

func Mask(d types.Direction) uint8 {
	switch d {
	case types.Up:
		return MaskUp
	case types.Down:
		return MaskDown
	case types.Right:
		return MaskRight
	case types.Left:
		return MaskLeft
	}
	return 0
}

type Indicator struct {
	port hal.Port
	last uint8
}

func New(port hal.Port) *Indicator { return &Indicator{port: port} }

// Show writes the mask for d on every call.
func (i *Indicator) Show(d types.Direction) {
	i.last = Mask(d)
	i.port.Write(i.last)
}

func (i *Indicator) Last() uint8 { return i.last }
