package link

import (
	"testing"

	"joybar-go/errcode"
	"joybar-go/types"
	"joybar-go/x/shmring"
)

func TestEncodeLayout(t *testing.T) {
	cases := []struct {
		d    types.Direction
		btn  bool
		want uint8
	}{
		{types.Neutral, false, 0x00},
		{types.Left, false, 0x01},
		{types.Right, false, 0x02},
		{types.Down, false, 0x04},
		{types.Up, false, 0x08},
		{types.Up, true, 0x18},
		{types.Neutral, true, 0x10},
	}
	for _, c := range cases {
		got := Encode(c.d, c.btn)
		if got != c.want {
			t.Fatalf("Encode(%v,%v)=%#02x want %#02x", c.d, c.btn, got, c.want)
		}
		d, btn, err := Decode(got)
		if err != nil || d != c.d || btn != c.btn {
			t.Fatalf("Decode(%#02x)=%v,%v,%v", got, d, btn, err)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, b := range []uint8{0x20, 0x80, 0x03, 0x0C, 0x0F, 0x1A} {
		d, _, err := Decode(b)
		if d != types.Neutral || err != errcode.InvalidFrame {
			t.Fatalf("Decode(%#02x)=%v,%v want neutral, invalid_frame", b, d, err)
		}
	}
	if _, btn, _ := Decode(0x1A); !btn {
		t.Fatal("button bit must survive an invalid direction nibble")
	}
}

// fakeUART is a scripted hal.UART.
type fakeUART struct {
	ready   bool
	sent    []uint8
	rx      []uint8
	flushes int
}

func (f *fakeUART) Ready() bool       { return f.ready }
func (f *fakeUART) Send(b byte)       { f.sent = append(f.sent, b) }
func (f *fakeUART) HasReceived() bool { return len(f.rx) > 0 }
func (f *fakeUART) Receive() byte {
	b := f.rx[0]
	f.rx = f.rx[1:]
	return b
}
func (f *fakeUART) Flush() { f.rx = nil; f.flushes++ }

func TestTrySendDropsWhenBusy(t *testing.T) {
	u := &fakeUART{}
	ep := NewEndpoint(u)
	if ep.TrySend(types.Up, false) {
		t.Fatal("send must fail when not ready")
	}
	u.ready = true
	if !ep.TrySend(types.Up, true) {
		t.Fatal("send failed when ready")
	}
	if len(u.sent) != 1 || u.sent[0] != 0x18 {
		t.Fatalf("sent=%v", u.sent)
	}
	st := ep.Stats()
	if st.Sent != 1 || st.Dropped != 1 {
		t.Fatalf("stats=%+v", st)
	}
}

func TestReceiverKeepsLatestAndFlushes(t *testing.T) {
	u := &fakeUART{rx: []uint8{Encode(types.Left, false), Encode(types.Up, false)}}
	r := NewReceiver(NewEndpoint(u))
	var seen []types.Direction
	r.OnFrame = func(f Frame) { seen = append(seen, f.Dir) }

	r.Poll()
	if r.Direction() != types.Left || u.flushes != 1 || len(u.rx) != 0 {
		t.Fatalf("dir=%v flushes=%d rx=%v", r.Direction(), u.flushes, u.rx)
	}
	r.Poll() // nothing waiting, latest persists
	if r.Direction() != types.Left || len(seen) != 1 {
		t.Fatalf("latest lost: %v seen=%v", r.Direction(), seen)
	}
	if _, fresh := r.Take(); !fresh {
		t.Fatal("expected fresh frame")
	}
	if _, fresh := r.Take(); fresh {
		t.Fatal("Take must clear freshness")
	}

	u.rx = []uint8{0x0C}
	r.Poll()
	if r.Direction() != types.Neutral || r.Latest().Err == nil {
		t.Fatalf("invalid frame must read as neutral: %+v", r.Latest())
	}
	if st := r.ep.Stats(); st.Received != 2 || st.Invalid != 1 || st.Flushed != 1 {
		t.Fatalf("stats=%+v", st)
	}
}

func TestStreamUARTOverRing(t *testing.T) {
	ring := shmring.New(4)
	u := NewStreamUART(ring)

	if u.HasReceived() {
		t.Fatal("empty ring reports data")
	}
	for i := uint8(0); i < 4; i++ {
		if !u.Ready() {
			t.Fatalf("not ready at %d", i)
		}
		u.Send(i + 1)
	}
	if u.Ready() {
		t.Fatal("full ring must not be ready")
	}
	if !u.HasReceived() || u.Receive() != 1 {
		t.Fatal("expected first byte")
	}
	if !u.HasReceived() {
		t.Fatal("more bytes expected")
	}
	u.Flush()
	if u.HasReceived() {
		t.Fatal("flush left data behind")
	}
	if u.Receive() != 0 {
		t.Fatal("Receive on empty must return 0")
	}
}
