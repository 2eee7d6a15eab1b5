// Package node wires a role (joystick sender or ledbar display) from a
// NodeConfig and a hal.Board, then runs it on the cooperative scheduler.
package node

import (
	"context"

	"joybar-go/bus"
	"joybar-go/core/hal"
	"joybar-go/core/sched"
	"joybar-go/core/tick"
	"joybar-go/drivers/joystick"
	"joybar-go/drivers/shiftreg"
	"joybar-go/errcode"
	"joybar-go/services/heartbeat"
	"joybar-go/services/indicator"
	jsvc "joybar-go/services/joystick"
	"joybar-go/services/ledbar"
	"joybar-go/services/link"
	"joybar-go/types"
	"joybar-go/x/timex"
	"joybar-go/x/util"
)

var (
	topicConfigNode = bus.T("config", "node")

	TopicState     = bus.T("node", "state")
	TopicStick     = bus.T("joystick", "value")
	TopicBar       = bus.T("ledbar", "value")
	TopicLinkRx    = bus.T("link", "rx")
	TopicLinkStats = bus.T("link", "stats")
)

type Node struct {
	cfg  types.NodeConfig
	conn *bus.Connection

	src *tick.Source
	sc  *sched.Scheduler
	hb  *heartbeat.Service

	ep     *link.Endpoint
	rx     *link.Receiver
	stick  *joystick.Stick
	sender *jsvc.Node
	bar    *shiftreg.Device
	game   *ledbar.Game
	ind    *indicator.Indicator

	lastFrame uint8
	lastBar   types.BarValue
	published bool
}

// New validates cfg against the board and builds the role. Nothing runs
// until Run.
func New(cfg types.NodeConfig, b hal.Board, conn *bus.Connection) (*Node, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if b.Timer == nil {
		return nil, errcode.Wrap(errcode.InvalidParams, "node.new", "board has no timer", nil)
	}

	n := &Node{cfg: cfg, conn: conn}
	n.src = tick.New(b.Timer)
	n.sc = sched.New(n.src)
	if cfg.Indicator && b.Indicator != nil {
		n.ind = indicator.New(b.Indicator)
	}

	var err error
	switch cfg.Role {
	case types.RoleJoystick:
		err = n.buildJoystick(b)
	case types.RoleLedbar:
		err = n.buildLedbar(b)
	}
	if err != nil {
		return nil, err
	}

	n.hb = heartbeat.New(conn, n.tickStats)
	n.hb.OnBeat = n.publishLinkStats
	n.hb.Register(n.sc, cfg.Heartbeat)
	return n, nil
}

func missing(what string) error {
	return errcode.Wrap(errcode.InvalidParams, "node.new", "board has no "+what, nil)
}

func (n *Node) buildJoystick(b hal.Board) error {
	if b.ADC == nil {
		return missing("adc")
	}
	if b.UART == nil {
		return missing("uart")
	}
	n.stick = joystick.NewStick(b.ADC, n.cfg.Stick.XChannel, n.cfg.Stick.YChannel, b.Button)
	n.ep = link.NewEndpoint(b.UART)

	var disp jsvc.Display
	if n.ind != nil {
		disp = n.ind
	}
	n.sender = jsvc.New(n.stick, n.ep, disp)
	n.sender.OnEmit = n.onEmit
	n.sc.Add("emit", n.cfg.Stick.EmitMs, n.sender.Step)
	return nil
}

func (n *Node) buildLedbar(b hal.Board) error {
	if b.Bar == nil {
		return missing("bar port")
	}
	n.bar = shiftreg.New(b.Bar, shiftreg.Lines{})

	var input ledbar.Input
	switch n.cfg.Bar.Input {
	case types.InputLink:
		if b.UART == nil {
			return missing("uart")
		}
		n.ep = link.NewEndpoint(b.UART)
		n.rx = link.NewReceiver(n.ep)
		n.rx.OnFrame = n.onFrame
		n.sc.AddPoller(n.rx.Poll)
		input = n.rx.Direction
	case types.InputLocal:
		if b.ADC == nil {
			return missing("adc")
		}
		n.stick = joystick.NewStick(b.ADC, n.cfg.Stick.XChannel, n.cfg.Stick.YChannel, b.Button)
		input = n.localInput
	}

	n.game = ledbar.New(n.bar, input)
	n.game.OnStep = n.onStep
	n.sc.AddTask(&sched.Task{
		Name:     "game",
		PeriodMs: n.cfg.Bar.PeriodMs,
		Elapsed:  n.cfg.Bar.PhaseMs,
		Action:   n.game.Step,
	})
	return nil
}

func (n *Node) localInput() types.Direction {
	d, _ := n.stick.Read()
	if n.ind != nil {
		n.ind.Show(d)
	}
	return d
}

// Arm starts the tick source. Run does this itself.
func (n *Node) Arm() error {
	if err := n.src.Arm(tick.Config{PeriodMs: n.cfg.TickMs}); err != nil {
		n.publishState("error", string(errcode.Of(err)))
		return err
	}
	println("[node] armed role=", string(n.cfg.Role), " tick_ms=", n.cfg.TickMs)
	n.publishState("running", "ok")
	return nil
}

// Stop disarms the tick source and releases subscriptions.
func (n *Node) Stop() {
	n.src.Disarm()
	n.hb.Close()
	n.publishState("stopped", "ok")
}

// Run arms the tick source and runs the scheduler until ctx ends.
func (n *Node) Run(ctx context.Context) error {
	if err := n.Arm(); err != nil {
		return err
	}
	defer n.Stop()
	return n.sc.Run(ctx)
}

// ---- telemetry ----

func (n *Node) publishState(level, status string) {
	n.conn.Publish(n.conn.NewMessage(TopicState,
		types.NodeState{Level: level, Status: status, TS: timex.NowMs()}, true))
}

// onEmit publishes on change only.
func (n *Node) onEmit(v types.StickValue, _ bool) {
	if n.published && v.Frame == n.lastFrame {
		return
	}
	n.published = true
	n.lastFrame = v.Frame
	n.conn.Publish(n.conn.NewMessage(TopicStick, v, true))
}

func (n *Node) onStep(s ledbar.State, pattern uint8) {
	v := types.BarValue{State: s.String(), Pattern: pattern}
	if n.published && v == n.lastBar {
		return
	}
	n.published = true
	n.lastBar = v
	n.conn.Publish(n.conn.NewMessage(TopicBar, v, true))
}

func (n *Node) onFrame(f link.Frame) {
	n.conn.Publish(n.conn.NewMessage(TopicLinkRx, f, false))
}

func (n *Node) publishLinkStats(uint32) {
	if n.ep == nil {
		return
	}
	n.conn.Publish(n.conn.NewMessage(TopicLinkStats, n.ep.Stats(), true))
}

func (n *Node) tickStats() types.TickStats {
	return types.TickStats{PeriodMs: n.src.PeriodMs(), Missed: n.src.Missed()}
}

// ---- accessors ----

func (n *Node) Config() types.NodeConfig      { return n.cfg }
func (n *Node) Tick() *tick.Source            { return n.src }
func (n *Node) Scheduler() *sched.Scheduler   { return n.sc }
func (n *Node) Game() *ledbar.Game            { return n.game }
func (n *Node) Sender() *jsvc.Node            { return n.sender }
func (n *Node) Receiver() *link.Receiver      { return n.rx }
func (n *Node) Heartbeat() *heartbeat.Service { return n.hb }

// ---- config-driven start ----

// BoardFunc builds the peripherals for a validated config, e.g. to apply
// the configured baud rate.
type BoardFunc func(cfg types.NodeConfig) (hal.Board, error)

// Fixed ignores the config and always returns b.
func Fixed(b hal.Board) BoardFunc {
	return func(types.NodeConfig) (hal.Board, error) { return b, nil }
}

// Start waits for config/node, builds the board and node, and runs it
// until ctx ends.
func Start(ctx context.Context, conn *bus.Connection, boards BoardFunc) error {
	sub := conn.Subscribe(topicConfigNode)
	var msg *bus.Message
	select {
	case <-ctx.Done():
		conn.Unsubscribe(sub)
		return ctx.Err()
	case msg = <-sub.Channel():
	}
	conn.Unsubscribe(sub)

	var cfg types.NodeConfig
	if err := util.DecodeJSON(msg.Payload, &cfg); err != nil {
		println("[node] bad config:", err.Error())
		return errcode.Wrap(errcode.InvalidPayload, "node.start", "config/node", err)
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		println("[node] config rejected:", err.Error())
		return err
	}
	b, err := boards(cfg)
	if err != nil {
		println("[node] board setup failed:", err.Error())
		return err
	}
	n, err := New(cfg, b, conn)
	if err != nil {
		println("[node] build failed:", err.Error())
		return err
	}
	return n.Run(ctx)
}
