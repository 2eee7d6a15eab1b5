package tick

import (
	"errors"
	"testing"
	"time"

	"joybar-go/errcode"
)

type fakeTimer struct {
	started  int
	stopped  int
	interval time.Duration
	isr      func()
	err      error
}

func (f *fakeTimer) Start(d time.Duration, isr func()) error {
	if f.err != nil {
		return f.err
	}
	f.started++
	f.interval = d
	f.isr = isr
	return nil
}

func (f *fakeTimer) Stop() { f.stopped++ }

func (f *fakeTimer) fire(n int) {
	for i := 0; i < n; i++ {
		f.isr()
	}
}

func TestTickEveryPeriodInterrupts(t *testing.T) {
	ft := &fakeTimer{}
	s := New(ft)
	if err := s.Arm(Config{PeriodMs: 100}); err != nil {
		t.Fatalf("arm: %v", err)
	}
	if ft.started != 1 || ft.interval != time.Millisecond {
		t.Fatalf("timer not started at base interval: %+v", ft)
	}
	ft.fire(99)
	if s.Consume() {
		t.Fatal("tick after 99 interrupts")
	}
	ft.fire(1)
	if !s.Consume() {
		t.Fatal("no tick after 100 interrupts")
	}
	if s.Consume() {
		t.Fatal("Consume must clear the flag")
	}
	ft.fire(100)
	if !s.Consume() {
		t.Fatal("no tick after reload")
	}
}

func TestAtMostOnePendingTick(t *testing.T) {
	ft := &fakeTimer{}
	s := New(ft)
	_ = s.Arm(Config{PeriodMs: 10})
	ft.fire(30) // three ticks, nobody consuming
	if !s.Consume() {
		t.Fatal("expected a pending tick")
	}
	if s.Consume() {
		t.Fatal("ticks must not queue")
	}
	if s.Missed() != 2 {
		t.Fatalf("Missed=%d want 2", s.Missed())
	}
}

func TestZeroPeriodTicksEveryInterrupt(t *testing.T) {
	ft := &fakeTimer{}
	s := New(ft)
	_ = s.Arm(Config{PeriodMs: 0})
	for i := 0; i < 3; i++ {
		ft.fire(1)
		if !s.Consume() {
			t.Fatalf("interrupt %d: no tick", i)
		}
	}
	if err := (Config{}).Validate(); err != errcode.InvalidPeriod {
		t.Fatalf("Validate(0) = %v", err)
	}
}

func TestSetPeriodAppliesAtNextReload(t *testing.T) {
	ft := &fakeTimer{}
	s := New(ft)
	_ = s.Arm(Config{PeriodMs: 10})
	ft.fire(5)
	s.SetPeriod(3)
	if s.PeriodMs() != 3 {
		t.Fatalf("PeriodMs=%d", s.PeriodMs())
	}
	ft.fire(4)
	if s.Consume() {
		t.Fatal("current countdown must not be shortened")
	}
	ft.fire(1) // 10th interrupt ends the old period
	if !s.Consume() {
		t.Fatal("expected tick at end of old period")
	}
	ft.fire(2)
	if s.Consume() {
		t.Fatal("early tick")
	}
	ft.fire(1)
	if !s.Consume() {
		t.Fatal("expected tick after new period")
	}
}

func TestDisarmIgnoresInterrupts(t *testing.T) {
	ft := &fakeTimer{}
	s := New(ft)
	_ = s.Arm(Config{PeriodMs: 1})
	s.Disarm()
	if ft.stopped != 1 {
		t.Fatalf("stopped=%d", ft.stopped)
	}
	ft.fire(5)
	if s.Consume() {
		t.Fatal("tick after disarm")
	}
	s.Disarm()
	if ft.stopped != 1 {
		t.Fatal("second Disarm must be a no-op")
	}
}

func TestArmErrors(t *testing.T) {
	ft := &fakeTimer{}
	s := New(ft)
	_ = s.Arm(Config{PeriodMs: 5})
	if err := s.Arm(Config{PeriodMs: 5}); err != errcode.AlreadyArmed {
		t.Fatalf("double arm: %v", err)
	}

	boom := errors.New("no timer")
	s2 := New(&fakeTimer{err: boom})
	err := s2.Arm(Config{PeriodMs: 5})
	if !errors.Is(err, boom) || s2.Armed() {
		t.Fatalf("arm with failing timer: err=%v armed=%v", err, s2.Armed())
	}
}
