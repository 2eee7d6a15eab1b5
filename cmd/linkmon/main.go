//go:build !rp2040 && !rp2350

// Command linkmon watches a node link on a host serial port and can
// inject frames for a chosen direction.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"joybar-go/core/sched"
	"joybar-go/core/tick"
	"joybar-go/platform/host"
	"joybar-go/services/link"
	"joybar-go/types"
	"joybar-go/x/conv"
)

func main() {
	var (
		port   = flag.String("port", "", "serial port, e.g. /dev/ttyUSB0")
		baud   = flag.Uint("baud", uint(types.DefaultBaud), "baud rate")
		list   = flag.Bool("list", false, "list serial ports and exit")
		send   = flag.String("send", "", "transmit frames for a direction: up|down|left|right|neutral")
		button = flag.Bool("button", false, "set the button bit on transmitted frames")
		rateMs = flag.Uint("rate", 100, "transmit period in ms")
		all    = flag.Bool("all", false, "print every frame, not only changes")
	)
	flag.Parse()

	if *list {
		ports, err := host.ListPorts()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(1)
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return
	}

	var txDir types.Direction
	if *send != "" {
		d, ok := types.ParseDirection(*send)
		if !ok {
			fmt.Fprintln(os.Stderr, "unknown direction:", *send)
			os.Exit(2)
		}
		txDir = d
	}

	s, err := host.OpenSerial(types.SerialConfig{Port: *port, Baud: uint32(*baud)})
	if err != nil {
		fmt.Fprintln(os.Stderr, "open:", err)
		os.Exit(1)
	}
	defer s.Close()

	ep := link.NewEndpoint(link.NewStreamUART(s))
	rx := link.NewReceiver(ep)
	var prev link.Frame
	first := true
	rx.OnFrame = func(f link.Frame) {
		if !*all && !first && f.Raw == prev.Raw {
			return
		}
		first = false
		prev = f
		var hb, bb [8]byte
		status := "ok"
		if f.Err != nil {
			status = f.Err.Error()
		}
		fmt.Printf("rx %s %s dir=%-7s button=%-5v %s\n",
			conv.Hex8(hb[:], f.Raw), conv.Bin8(bb[:], f.Raw), f.Dir, f.Button, status)
	}

	src := tick.New(&host.Timer{})
	sc := sched.New(src)
	sc.AddPoller(rx.Poll)
	if *send != "" {
		sc.Add("tx", uint32(*rateMs), func() { ep.TrySend(txDir, *button) })
	}
	if err := src.Arm(tick.Config{PeriodMs: uint32(*rateMs)}); err != nil {
		fmt.Fprintln(os.Stderr, "tick:", err)
		os.Exit(1)
	}
	defer src.Disarm()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	fmt.Printf("listening on %s @ %d baud\n", *port, *baud)
	_ = sc.Run(ctx)

	st := ep.Stats()
	fmt.Printf("received=%d invalid=%d flushed=%d sent=%d dropped=%d overrun=%d\n",
		st.Received, st.Invalid, st.Flushed, st.Sent, st.Dropped, s.Overrun())
}
