package shiftreg

import "testing"

type recPort struct{ writes []uint8 }

func (r *recPort) Write(m uint8) { r.writes = append(r.writes, m) }

// sim595 models the register on the default lines: shift on SRCLK rising
// edge, copy to outputs on RCLK rising edge.
type sim595 struct {
	prev  uint8
	chain uint8
	out   uint8
}

func (s *sim595) Write(m uint8) {
	rising := m &^ s.prev
	if m&DefaultLines.Clear == 0 {
		s.chain = 0
	}
	if rising&DefaultLines.Clock != 0 {
		var ser uint8
		if m&DefaultLines.Data != 0 {
			ser = 1
		}
		s.chain = s.chain>>1 | ser<<7
	}
	if rising&DefaultLines.Latch != 0 {
		s.out = s.chain
	}
	s.prev = m
}

func TestSendSequence(t *testing.T) {
	p := &recPort{}
	d := New(p, Lines{})
	d.Send(0x05) // bits 0 and 2 set

	if len(p.writes) != 8*3+2 {
		t.Fatalf("writes=%d want 26", len(p.writes))
	}
	for i := 0; i < 8; i++ {
		var data uint8
		if 0x05&(1<<i) != 0 {
			data = 0x01
		}
		got := p.writes[i*3 : i*3+3]
		want := []uint8{0x08, 0x08 | data, 0x08 | data | 0x04}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("bit %d step %d: got %#02x want %#02x", i, j, got[j], want[j])
			}
		}
	}
	// bit 7 is clear, so the latch write is clear|clock|latch
	if p.writes[24] != 0x08|0x04|0x02 || p.writes[25] != 0 {
		t.Fatalf("tail = %#02x %#02x", p.writes[24], p.writes[25])
	}
	if d.Last() != 0x05 {
		t.Fatalf("Last=%#02x", d.Last())
	}
}

func TestSimulatedRegisterRoundTrip(t *testing.T) {
	sim := &sim595{}
	d := New(sim, DefaultLines)
	for p := 0; p < 256; p++ {
		d.Send(uint8(p))
		if sim.out != uint8(p) {
			t.Fatalf("pattern %#02x latched as %#02x", p, sim.out)
		}
	}
}

type fakePin struct{ level bool }

func (f *fakePin) Set(v bool) { f.level = v }

func TestPinPort(t *testing.T) {
	ser, rclk, srclk, srclr := &fakePin{}, &fakePin{}, &fakePin{}, &fakePin{}
	port, lines := NewPinPort(ser, rclk, srclk, srclr)
	if lines != DefaultLines {
		t.Fatalf("lines=%+v", lines)
	}
	port.Write(0x0D) // SER, SRCLK, SRCLR
	if !ser.level || rclk.level || !srclk.level || !srclr.level {
		t.Fatalf("levels ser=%v rclk=%v srclk=%v srclr=%v", ser.level, rclk.level, srclk.level, srclr.level)
	}
	port.Write(0)
	if ser.level || srclk.level || srclr.level {
		t.Fatal("pins not released")
	}
}
