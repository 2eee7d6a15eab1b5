package link

import (
	"joybar-go/core/hal"
	"joybar-go/types"
	"joybar-go/x/conv"
)

// Endpoint is the non-blocking send/receive side of one UART.
type Endpoint struct {
	u     hal.UART
	stats types.LinkStats
}

func NewEndpoint(u hal.UART) *Endpoint { return &Endpoint{u: u} }

// TrySend encodes and sends one frame. A busy transmitter drops it.
func (e *Endpoint) TrySend(d types.Direction, button bool) bool {
	return e.TrySendRaw(Encode(d, button))
}

// TrySendRaw sends b as-is if the transmitter is ready.
func (e *Endpoint) TrySendRaw(b uint8) bool {
	if !e.u.Ready() {
		e.stats.Dropped++
		return false
	}
	e.u.Send(b)
	e.stats.Sent++
	return true
}

// TryReceive takes one byte if one is waiting.
func (e *Endpoint) TryReceive() (Frame, bool) {
	if !e.u.HasReceived() {
		return Frame{}, false
	}
	f := DecodeFrame(e.u.Receive())
	e.stats.Received++
	if f.Err != nil {
		e.stats.Invalid++
	}
	return f, true
}

// Flush drops whatever else is buffered. Returns whether anything was.
func (e *Endpoint) Flush() bool {
	if !e.u.HasReceived() {
		return false
	}
	e.u.Flush()
	e.stats.Flushed++
	return true
}

func (e *Endpoint) Stats() types.LinkStats { return e.stats }

// Receiver is a scheduler poller: take one byte, remember it, flush the
// rest. The latest frame persists until another arrives.
type Receiver struct {
	ep      *Endpoint
	latest  Frame
	fresh   bool
	OnFrame func(Frame) // optional, called from Poll
}

func NewReceiver(ep *Endpoint) *Receiver { return &Receiver{ep: ep} }

// Poll services the UART once; it never waits.
func (r *Receiver) Poll() {
	f, ok := r.ep.TryReceive()
	if !ok {
		return
	}
	r.ep.Flush()
	r.latest = f
	r.fresh = true
	if f.Err != nil {
		println("[link] invalid frame", conv.Hex8String(f.Raw))
	}
	if r.OnFrame != nil {
		r.OnFrame(f)
	}
}

// Latest is the most recent frame, zero before the first one.
func (r *Receiver) Latest() Frame { return r.latest }

// Direction of the latest frame; invalid frames read as Neutral.
func (r *Receiver) Direction() types.Direction { return r.latest.Dir }

// Take returns the latest frame and whether it arrived since the last Take.
func (r *Receiver) Take() (Frame, bool) {
	f, fresh := r.latest, r.fresh
	r.fresh = false
	return f, fresh
}
