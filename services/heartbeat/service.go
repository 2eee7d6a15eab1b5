// Package heartbeat is a low-rate liveness task on the shared scheduler.
package heartbeat

import (
	"joybar-go/bus"
	"joybar-go/core/sched"
	"joybar-go/types"
	"joybar-go/x/mathx"
	"joybar-go/x/timex"
	"joybar-go/x/util"
)

var (
	topicConfigHeartbeat = bus.T("config", "heartbeat")
	TopicHeartbeat       = bus.T("heartbeat")
)

const (
	DefaultIntervalMs uint32 = 5000
	minIntervalMs     uint32 = 100
	maxIntervalMs     uint32 = 60000
)

// Config is the payload on config/heartbeat.
type Config struct {
	IntervalMs uint32 `json:"interval_ms"`
}

type Service struct {
	conn  *bus.Connection
	cfg   *bus.Subscription
	task  *sched.Task
	stats func() types.TickStats
	seq   uint32
	start int64

	// OnBeat, if set, runs after each beat is published.
	OnBeat func(seq uint32)
}

// New builds the service; stats may be nil.
func New(conn *bus.Connection, stats func() types.TickStats) *Service {
	return &Service{conn: conn, stats: stats}
}

// Register adds the beat task and a config poller to s. intervalMs of 0
// selects the default.
func (s *Service) Register(sc *sched.Scheduler, intervalMs uint32) *sched.Task {
	if intervalMs == 0 {
		intervalMs = DefaultIntervalMs
	}
	s.start = timex.NowMs()
	s.cfg = s.conn.Subscribe(topicConfigHeartbeat)
	s.task = sc.Add("heartbeat", clampInterval(intervalMs), s.beat)
	sc.AddPoller(s.poll)
	return s.task
}

// Close drops the config subscription.
func (s *Service) Close() {
	if s.cfg != nil {
		s.conn.Unsubscribe(s.cfg)
		s.cfg = nil
	}
}

func clampInterval(ms uint32) uint32 {
	return mathx.Clamp(ms, minIntervalMs, maxIntervalMs)
}

// poll applies config updates without blocking.
func (s *Service) poll() {
	if s.cfg == nil {
		return
	}
	select {
	case msg, ok := <-s.cfg.Channel():
		if !ok {
			s.cfg = nil
			return
		}
		var c Config
		if err := util.DecodeJSON(msg.Payload, &c); err != nil || c.IntervalMs == 0 {
			println("[heartbeat] ignoring config:", msg.Topic.String())
			return
		}
		s.task.SetPeriod(clampInterval(c.IntervalMs))
		println("Info: heartbeat interval_ms set to", s.task.PeriodMs)
	default:
	}
}

func (s *Service) beat() {
	s.seq++
	v := types.HeartbeatValue{Seq: s.seq, UptimeMs: timex.NowMs() - s.start}
	if s.stats != nil {
		v.Tick = s.stats()
	}
	println("Info: heartbeat", s.seq, "missed", v.Tick.Missed)
	s.conn.Publish(s.conn.NewMessage(TopicHeartbeat, v, false))
	if s.OnBeat != nil {
		s.OnBeat(s.seq)
	}
}

// Seq is the number of beats so far.
func (s *Service) Seq() uint32 { return s.seq }
