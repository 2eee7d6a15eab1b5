// Package tick turns a fixed-rate timer interrupt into a single pending
// "tick" flag for the cooperative scheduler.
//
// The interrupt side only decrements a counter and sets a flag. At most one
// tick is ever pending; ticks that arrive before the previous one was
// consumed are lost and only counted.
package tick

import (
	"sync/atomic"

	"joybar-go/core/hal"
	"joybar-go/errcode"
)

// Config is fixed once the source is armed (SetPeriod aside).
type Config struct {
	PeriodMs uint32 `json:"period_ms"`
}

// Validate is for callers at configuration time; the source itself accepts
// a zero period and then ticks on every interrupt.
func (c Config) Validate() error {
	if c.PeriodMs == 0 {
		return errcode.InvalidPeriod
	}
	return nil
}

type Source struct {
	timer hal.Timer

	reload  atomic.Uint32
	counter atomic.Uint32 // written by the interrupt handler once armed
	pending atomic.Bool
	armed   atomic.Bool
	missed  atomic.Uint32
}

func New(t hal.Timer) *Source {
	return &Source{timer: t}
}

// Arm loads the counter and starts the base-interval timer.
func (s *Source) Arm(cfg Config) error {
	if s.armed.Load() {
		return errcode.AlreadyArmed
	}
	s.reload.Store(cfg.PeriodMs)
	s.counter.Store(cfg.PeriodMs)
	s.pending.Store(false)
	s.armed.Store(true)
	if err := s.timer.Start(hal.BaseInterval, s.Interrupt); err != nil {
		s.armed.Store(false)
		return errcode.Wrap(errcode.Error, "tick.arm", "timer start", err)
	}
	println("[tick] armed period_ms=", cfg.PeriodMs)
	return nil
}

// Disarm stops the timer. Interrupts already in flight are ignored.
func (s *Source) Disarm() {
	if !s.armed.Swap(false) {
		return
	}
	s.timer.Stop()
	println("[tick] disarmed")
}

// SetPeriod changes the reload value only; the running countdown is
// left alone so the new period applies from the next reload.
func (s *Source) SetPeriod(ms uint32) { s.reload.Store(ms) }

// PeriodMs is the real-time length of one tick.
func (s *Source) PeriodMs() uint32 { return s.reload.Load() }

func (s *Source) Armed() bool { return s.armed.Load() }

// Missed counts ticks that found the previous one still pending.
func (s *Source) Missed() uint32 { return s.missed.Load() }

// Interrupt is the handler body. O(1), calls nothing.
func (s *Source) Interrupt() {
	if !s.armed.Load() {
		return
	}
	if c := s.counter.Load(); c > 1 {
		s.counter.Store(c - 1)
		return
	}
	if s.pending.Swap(true) {
		s.missed.Add(1)
	}
	s.counter.Store(s.reload.Load())
}

// Consume reports and clears a pending tick.
func (s *Source) Consume() bool {
	return s.pending.Swap(false)
}
