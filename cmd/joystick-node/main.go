//go:build rp2040 || rp2350

package main

import (
	"context"
	"time"

	"joybar-go/bus"
	"joybar-go/platform/rp2"
	"joybar-go/services/config"
	"joybar-go/services/node"
)

const device = "joystick"

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[main] boot device=", device)

	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, device)
	b := bus.NewBus(4)
	conn := b.NewConnection("main")

	if err := config.NewConfigService().Start(ctx, conn); err != nil {
		halt(err)
	}
	halt(node.Start(ctx, conn, rp2.NewBoard))
}

func halt(err error) {
	if err != nil {
		println("[main] halted:", err.Error())
	}
	for {
		time.Sleep(time.Hour)
	}
}
