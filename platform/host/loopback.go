//go:build !rp2040 && !rp2350

package host

import "joybar-go/x/shmring"

// Stream is one end of an in-memory full-duplex link. It satisfies
// tinygo.org/x/drivers.UART and reports free transmit space.
type Stream struct {
	rx *shmring.Ring
	tx *shmring.Ring
}

// Pipe returns two connected ends; size is the per-direction buffer and
// must be a power of two.
func Pipe(size int) (a, b *Stream) {
	ab := shmring.New(size)
	ba := shmring.New(size)
	return &Stream{rx: ba, tx: ab}, &Stream{rx: ab, tx: ba}
}

func (s *Stream) Read(p []byte) (int, error)  { return s.rx.Read(p) }
func (s *Stream) Write(p []byte) (int, error) { return s.tx.Write(p) }
func (s *Stream) Buffered() int               { return s.rx.Buffered() }
func (s *Stream) Space() int                  { return s.tx.Space() }
