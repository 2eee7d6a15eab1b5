//go:build !rp2040 && !rp2350

package host

import (
	"sync/atomic"

	"joybar-go/types"
)

// SimADC holds per-channel values settable from any goroutine.
type SimADC struct {
	ch [8]atomic.Uint32
}

func (a *SimADC) Read(channel uint8) uint16 {
	return uint16(a.ch[channel&7].Load())
}

func (a *SimADC) Set(channel uint8, v uint16) {
	a.ch[channel&7].Store(uint32(v))
}

// Centre is the resting reading of an axis.
const Centre = 512

// SetStick positions a simulated stick fully towards d.
func (a *SimADC) SetStick(xCh, yCh uint8, d types.Direction) {
	x, y := uint16(Centre), uint16(Centre)
	switch d {
	case types.Up:
		y = 1023
	case types.Down:
		y = 0
	case types.Right:
		x = 1023
	case types.Left:
		x = 0
	}
	a.Set(xCh, x)
	a.Set(yCh, y)
}

// Pin is a level usable as input or output.
type Pin struct{ v atomic.Bool }

func (p *Pin) Get() bool     { return p.v.Load() }
func (p *Pin) Set(high bool) { p.v.Store(high) }

// RecordingPort keeps the last mask written and a write count.
type RecordingPort struct {
	last   atomic.Uint32
	writes atomic.Uint32
}

func (r *RecordingPort) Write(mask uint8) {
	r.last.Store(uint32(mask))
	r.writes.Add(1)
}

func (r *RecordingPort) Last() uint8    { return uint8(r.last.Load()) }
func (r *RecordingPort) Writes() uint32 { return r.writes.Load() }
