//go:build !rp2040 && !rp2350

// Package host provides simulated and serial-backed HAL implementations
// for running nodes on a development machine.
package host

import (
	"sync"
	"time"

	"joybar-go/errcode"
)

// Timer calls the handler from a ticker goroutine, standing in for the
// MCU's timer interrupt.
type Timer struct {
	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func (t *Timer) Start(interval time.Duration, isr func()) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return errcode.Busy
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.loop(interval, isr, t.stop, t.done)
	return nil
}

func (t *Timer) loop(interval time.Duration, isr func(), stop, done chan struct{}) {
	defer close(done)
	tk := time.NewTicker(interval)
	defer tk.Stop()
	for {
		select {
		case <-stop:
			return
		case <-tk.C:
			isr()
		}
	}
}

func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop == nil {
		return
	}
	close(t.stop)
	<-t.done
	t.stop, t.done = nil, nil
}

// ManualTimer fires only when told to. For tests and stepping.
type ManualTimer struct {
	mu  sync.Mutex
	isr func()
}

func (m *ManualTimer) Start(_ time.Duration, isr func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.isr != nil {
		return errcode.Busy
	}
	m.isr = isr
	return nil
}

func (m *ManualTimer) Stop() {
	m.mu.Lock()
	m.isr = nil
	m.mu.Unlock()
}

// Fire delivers n interrupts. No-op while stopped.
func (m *ManualTimer) Fire(n int) {
	m.mu.Lock()
	isr := m.isr
	m.mu.Unlock()
	if isr == nil {
		return
	}
	for i := 0; i < n; i++ {
		isr()
	}
}
