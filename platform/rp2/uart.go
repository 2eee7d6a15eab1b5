//go:build rp2040 || rp2350

package rp2

import (
	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"joybar-go/x/shmring"
)

// uartStream presents a uartx port as a drivers.UART. Received bytes are
// pulled with TryRead into a small ring so Buffered can report them.
type uartStream struct {
	u   *uartx.UART
	rx  *shmring.Ring
	tmp [16]byte
}

func newUARTStream(u *uartx.UART) *uartStream {
	return &uartStream{u: u, rx: shmring.New(64)}
}

func (s *uartStream) fill() {
	for {
		room := min(s.rx.Space(), len(s.tmp))
		if room == 0 {
			return
		}
		n := s.u.TryRead(s.tmp[:room])
		if n == 0 {
			return
		}
		s.rx.WriteFrom(s.tmp[:n])
	}
}

func (s *uartStream) Read(p []byte) (int, error) {
	s.fill()
	return s.rx.Read(p)
}

func (s *uartStream) Write(p []byte) (int, error) { return s.u.Write(p) }

func (s *uartStream) Buffered() int {
	s.fill()
	return s.rx.Available()
}
