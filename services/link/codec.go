// Package link carries direction and button state between nodes as one
// byte per frame. There is no framing, sequence number or checksum: the
// receiver simply keeps the latest byte.
package link

import (
	"joybar-go/errcode"
	"joybar-go/types"
)

// Frame bits.
const (
	BitLeft   uint8 = 1 << 0
	BitRight  uint8 = 1 << 1
	BitDown   uint8 = 1 << 2
	BitUp     uint8 = 1 << 3
	BitButton uint8 = 1 << 4

	DirMask      uint8 = BitLeft | BitRight | BitDown | BitUp
	ReservedMask uint8 = 0xE0
)

// Encode packs a direction and the button level.
func Encode(d types.Direction, button bool) uint8 {
	var b uint8
	switch d {
	case types.Left:
		b = BitLeft
	case types.Right:
		b = BitRight
	case types.Down:
		b = BitDown
	case types.Up:
		b = BitUp
	}
	if button {
		b |= BitButton
	}
	return b
}

// Decode unpacks a frame. Frames with reserved bits set or more than one
// direction bit yield Neutral and errcode.InvalidFrame; the button bit is
// still reported.
func Decode(b uint8) (types.Direction, bool, error) {
	button := b&BitButton != 0
	if b&ReservedMask != 0 {
		return types.Neutral, button, errcode.InvalidFrame
	}
	switch b & DirMask {
	case 0:
		return types.Neutral, button, nil
	case BitLeft:
		return types.Left, button, nil
	case BitRight:
		return types.Right, button, nil
	case BitDown:
		return types.Down, button, nil
	case BitUp:
		return types.Up, button, nil
	}
	return types.Neutral, button, errcode.InvalidFrame
}

// Frame is a decoded byte as seen by a receiver.
type Frame struct {
	Raw    uint8
	Dir    types.Direction
	Button bool
	Err    error
}

func DecodeFrame(b uint8) Frame {
	d, btn, err := Decode(b)
	return Frame{Raw: b, Dir: d, Button: btn, Err: err}
}
