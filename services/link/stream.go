package link

import (
	"tinygo.org/x/drivers"
)

// StreamUART adapts a buffered byte stream (machine or uartx UART, a host
// serial ring) to the single-byte hal.UART contract.
type StreamUART struct {
	s    drivers.UART
	one  [1]byte
	peek int16 // -1 when empty
}

func NewStreamUART(s drivers.UART) *StreamUART {
	return &StreamUART{s: s, peek: -1}
}

type spacer interface{ Space() int }

// Ready is true when the stream can take a byte now. Streams that cannot
// report free space are always ready.
func (u *StreamUART) Ready() bool {
	if sp, ok := u.s.(spacer); ok {
		return sp.Space() > 0
	}
	return true
}

func (u *StreamUART) Send(b byte) {
	u.one[0] = b
	_, _ = u.s.Write(u.one[:])
}

func (u *StreamUART) HasReceived() bool {
	if u.peek >= 0 {
		return true
	}
	if u.s.Buffered() == 0 {
		return false
	}
	if n, _ := u.s.Read(u.one[:]); n == 1 {
		u.peek = int16(u.one[0])
		return true
	}
	return false
}

func (u *StreamUART) Receive() byte {
	if !u.HasReceived() {
		return 0
	}
	b := byte(u.peek)
	u.peek = -1
	return b
}

// Flush discards the lookahead byte and everything buffered.
func (u *StreamUART) Flush() {
	u.peek = -1
	var tmp [16]byte
	for u.s.Buffered() > 0 {
		if n, err := u.s.Read(tmp[:]); n == 0 || err != nil {
			return
		}
	}
}
