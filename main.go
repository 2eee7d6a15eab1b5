//go:build !rp2040 && !rp2350

// Command joybar-go runs both nodes on the host, joined by an in-memory
// link, and prints the LED bar each time it latches.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"joybar-go/bus"
	"joybar-go/platform/host"
	"joybar-go/services/config"
	"joybar-go/services/node"
	"joybar-go/types"
	"joybar-go/x/conv"
	"joybar-go/x/util"
)

type move struct {
	dir types.Direction
	dur time.Duration
}

// script walks the bar up to the top, holds, then back down.
var script = []move{
	{types.Neutral, 500 * time.Millisecond},
	{types.Right, 5 * time.Second},
	{types.Neutral, time.Second},
	{types.Left, 2 * time.Second},
	{types.Up, time.Second}, // ignored by the game: holds
	{types.Neutral, 500 * time.Millisecond},
}

func render(p uint8) string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		if p&(1<<i) != 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func loadConfig(device string) (types.NodeConfig, error) {
	b := bus.NewBus(4)
	conn := b.NewConnection("loader")
	if err := config.NewConfigService().Publish(device, conn); err != nil {
		return types.NodeConfig{}, err
	}
	sub := conn.Subscribe(config.Topic("node"))
	defer conn.Unsubscribe(sub)
	var nc types.NodeConfig
	select {
	case m := <-sub.Channel():
		return nc, util.DecodeJSON(m.Payload, &nc)
	case <-time.After(time.Second):
		return nc, fmt.Errorf("no node config for %s", device)
	}
}

func main() {
	verbose := flag.Bool("v", false, "print every latch, not just changes")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	jcfg, err := loadConfig("joystick")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	lcfg, err := loadConfig("ledbar")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	b := bus.NewBus(16)
	a, c := host.Pipe(64)
	jb := host.NewSimBoard(a)
	lb := host.NewSimBoard(c)

	var last uint8
	var buf [8]byte
	lb.Bar.OnLatch = func(p uint8) {
		if p == last && !*verbose {
			return
		}
		last = p
		fmt.Printf("[bar] %s %s\n", render(p), conv.Hex8(buf[:], p))
	}

	jn, err := node.New(jcfg, jb.HAL(), b.NewConnection("joystick"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "joystick:", err)
		os.Exit(1)
	}
	ln, err := node.New(lcfg, lb.HAL(), b.NewConnection("ledbar"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "ledbar:", err)
		os.Exit(1)
	}

	ctx, stop := context.WithCancel(ctx)
	done := make(chan struct{}, 2)
	for _, n := range []*node.Node{jn, ln} {
		go func() {
			_ = n.Run(ctx)
			done <- struct{}{}
		}()
	}

	for _, m := range script {
		fmt.Printf("[stick] %s\n", m.dir)
		jb.ADC.SetStick(jcfg.Stick.XChannel, jcfg.Stick.YChannel, m.dir)
		select {
		case <-ctx.Done():
		case <-time.After(m.dur):
		}
	}
	stop()
	<-done
	<-done

	st := jn.Sender().Stats()
	fmt.Printf("[link] sent=%d dropped=%d missed_ticks=%d\n", st.Sent, st.Dropped, ln.Tick().Missed())
}
