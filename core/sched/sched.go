// Package sched is the cooperative, run-to-completion main loop.
//
// Every task shares one hardware tick and keeps its own logical period by
// accumulating elapsed milliseconds. Tasks must not block; an overrunning
// task delays every other task and nothing corrects for it.
package sched

import (
	"context"
	"runtime"
)

// TickSource is satisfied by *tick.Source.
type TickSource interface {
	Consume() bool
	PeriodMs() uint32
}

// Task runs Action once Elapsed reaches PeriodMs.
type Task struct {
	Name     string
	PeriodMs uint32
	Elapsed  uint32
	Action   func()

	runs uint32
}

// SetPeriod changes the logical period; Elapsed is kept.
func (t *Task) SetPeriod(ms uint32) { t.PeriodMs = ms }

// Runs is how many times Action has fired.
func (t *Task) Runs() uint32 { return t.runs }

// Poller services I/O on every loop iteration, tick or not.
type Poller func()

type Scheduler struct {
	src     TickSource
	tasks   []*Task
	pollers []Poller
	ticks   uint32
}

func New(src TickSource) *Scheduler {
	return &Scheduler{src: src}
}

// Add registers a task starting at Elapsed 0.
func (s *Scheduler) Add(name string, periodMs uint32, action func()) *Task {
	return s.AddTask(&Task{Name: name, PeriodMs: periodMs, Action: action})
}

// AddTask registers a prepared task, e.g. one with a preset phase.
func (s *Scheduler) AddTask(t *Task) *Task {
	s.tasks = append(s.tasks, t)
	return t
}

func (s *Scheduler) AddPoller(p Poller) {
	s.pollers = append(s.pollers, p)
}

func (s *Scheduler) Tasks() []*Task { return s.tasks }

// Ticks is the number of ticks handled so far.
func (s *Scheduler) Ticks() uint32 { return s.ticks }

// Run loops until ctx ends. Pollers run on every pass; tasks advance only
// when a tick is pending.
func (s *Scheduler) Run(ctx context.Context) error {
	println("[sched] run tasks=", len(s.tasks), " pollers=", len(s.pollers))
	for {
		if s.RunOnce() {
			continue
		}
		select {
		case <-ctx.Done():
			println("[sched] stop ticks=", s.ticks)
			return ctx.Err()
		default:
		}
		runtime.Gosched()
	}
}

// RunOnce is one loop pass: pollers, then Step if a tick is pending.
func (s *Scheduler) RunOnce() bool {
	for _, p := range s.pollers {
		p()
	}
	if !s.src.Consume() {
		return false
	}
	s.Step()
	return true
}

// Step handles one consumed tick.
func (s *Scheduler) Step() {
	s.ticks++
	d := s.src.PeriodMs()
	for _, t := range s.tasks {
		t.Elapsed += d
		if t.Elapsed >= t.PeriodMs {
			t.Action()
			t.runs++
			t.Elapsed = 0
		}
	}
}
