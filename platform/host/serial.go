//go:build !rp2040 && !rp2350

package host

import (
	"sync"
	"sync/atomic"
	"time"

	"go.bug.st/serial"

	"joybar-go/errcode"
	"joybar-go/types"
	"joybar-go/x/shmring"
)

const (
	defaultRXSize = 256
	readTimeout   = 50 * time.Millisecond
)

// SerialStream is a host serial port. A reader goroutine moves received
// bytes into a ring so the cooperative loop never blocks on Read.
type SerialStream struct {
	port    serial.Port
	rx      *shmring.Ring
	overrun atomic.Uint32

	closeOnce sync.Once
	done      chan struct{}
	exited    chan struct{}
}

// ListPorts enumerates serial ports known to the OS.
func ListPorts() ([]string, error) { return serial.GetPortsList() }

func mode(cfg types.SerialConfig) *serial.Mode {
	m := &serial.Mode{BaudRate: int(cfg.Baud), DataBits: 8, StopBits: serial.OneStopBit}
	if cfg.Baud == 0 {
		m.BaudRate = int(types.DefaultBaud)
	}
	if cfg.DataBits >= 5 && cfg.DataBits <= 8 {
		m.DataBits = int(cfg.DataBits)
	}
	if cfg.StopBits == 2 {
		m.StopBits = serial.TwoStopBits
	}
	switch cfg.Parity {
	case types.ParityEven:
		m.Parity = serial.EvenParity
	case types.ParityOdd:
		m.Parity = serial.OddParity
	default:
		m.Parity = serial.NoParity
	}
	return m
}

func OpenSerial(cfg types.SerialConfig) (*SerialStream, error) {
	if cfg.Port == "" {
		return nil, errcode.Wrap(errcode.InvalidParams, "serial.open", "missing port", nil)
	}
	size := cfg.RXSize
	if size == 0 {
		size = defaultRXSize
	}
	if size < 2 || size&(size-1) != 0 {
		return nil, errcode.Wrap(errcode.InvalidParams, "serial.open", "rx_size must be a power of two", nil)
	}
	p, err := serial.Open(cfg.Port, mode(cfg))
	if err != nil {
		return nil, errcode.Wrap(errcode.Error, "serial.open", cfg.Port, err)
	}
	if err := p.SetReadTimeout(readTimeout); err != nil {
		_ = p.Close()
		return nil, errcode.Wrap(errcode.Error, "serial.open", "read timeout", err)
	}
	s := &SerialStream{
		port:   p,
		rx:     shmring.New(size),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go s.reader()
	return s, nil
}

func (s *SerialStream) reader() {
	defer close(s.exited)
	var buf [64]byte
	for {
		select {
		case <-s.done:
			return
		default:
		}
		n, err := s.port.Read(buf[:])
		if err != nil {
			println("[serial] read error:", err.Error())
			return
		}
		if n > 0 {
			if w := s.rx.WriteFrom(buf[:n]); w < n {
				s.overrun.Add(uint32(n - w))
			}
		}
	}
}

func (s *SerialStream) Read(p []byte) (int, error)  { return s.rx.Read(p) }
func (s *SerialStream) Write(p []byte) (int, error) { return s.port.Write(p) }
func (s *SerialStream) Buffered() int               { return s.rx.Buffered() }

// Readable signals newly received bytes.
func (s *SerialStream) Readable() <-chan struct{} { return s.rx.Readable() }

// Overrun counts bytes lost to a full receive ring.
func (s *SerialStream) Overrun() uint32 { return s.overrun.Load() }

func (s *SerialStream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.port.Close()
		<-s.exited
	})
	return err
}
