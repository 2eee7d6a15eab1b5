//go:build !rp2040 && !rp2350

// Command barsim is a desktop simulator: arrow keys move the joystick
// node's stick, the window shows the ledbar node's latched register.
package main

import (
	"context"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"joybar-go/bus"
	"joybar-go/platform/host"
	"joybar-go/services/node"
	"joybar-go/types"
	"joybar-go/x/conv"
)

var (
	ledOn  = color.NRGBA{R: 0xff, G: 0x30, B: 0x20, A: 0xff}
	ledOff = color.NRGBA{R: 0x40, G: 0x10, B: 0x10, A: 0xff}
)

const (
	xCh = 3
	yCh = 2
)

func main() {
	a, c := host.Pipe(64)
	jb := host.NewSimBoard(a)
	lb := host.NewSimBoard(c)

	b := bus.NewBus(16)
	jn, err := node.New(types.NodeConfig{
		Role:   types.RoleJoystick,
		TickMs: 100,
		Stick:  types.StickConf{XChannel: xCh, YChannel: yCh},
	}, jb.HAL(), b.NewConnection("joystick"))
	if err != nil {
		panic(err)
	}
	ln, err := node.New(types.NodeConfig{
		Role:   types.RoleLedbar,
		TickMs: 100,
		Stick:  types.StickConf{XChannel: xCh, YChannel: yCh},
		Bar:    types.BarConf{Input: types.InputLink, PeriodMs: 500, PhaseMs: 300},
	}, lb.HAL(), b.NewConnection("ledbar"))
	if err != nil {
		panic(err)
	}

	application := app.New()
	window := application.NewWindow("joybar simulator")

	leds := make([]fyne.CanvasObject, 8)
	circles := make([]*canvas.Circle, 8)
	for i := range circles {
		circles[i] = canvas.NewCircle(ledOff)
		leds[i] = circles[i]
	}
	stickLabel := widget.NewLabel("stick: neutral")
	stateLabel := widget.NewLabel("state: start")

	lb.Bar.OnLatch = func(p uint8) {
		state := ln.Game().State().String()
		fyne.Do(func() {
			for i, c := range circles {
				if p&(1<<i) != 0 {
					c.FillColor = ledOn
				} else {
					c.FillColor = ledOff
				}
				c.Refresh()
			}
			stateLabel.SetText(fmt.Sprintf("state: %s  pattern: %s", state, conv.Bin8String(p)))
		})
	}

	setDir := func(d types.Direction) {
		jb.ADC.SetStick(xCh, yCh, d)
		stickLabel.SetText("stick: " + d.String())
	}
	window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyUp:
			setDir(types.Up)
		case fyne.KeyDown:
			setDir(types.Down)
		case fyne.KeyLeft:
			setDir(types.Left)
		case fyne.KeyRight:
			setDir(types.Right)
		case fyne.KeySpace:
			setDir(types.Neutral)
		case fyne.KeyB:
			jb.Button.Set(!jb.Button.Get())
		}
	})

	buttons := container.NewGridWithColumns(5,
		widget.NewButton("Left", func() { setDir(types.Left) }),
		widget.NewButton("Up", func() { setDir(types.Up) }),
		widget.NewButton("Centre", func() { setDir(types.Neutral) }),
		widget.NewButton("Down", func() { setDir(types.Down) }),
		widget.NewButton("Right", func() { setDir(types.Right) }),
	)

	window.SetContent(container.NewVBox(
		container.NewGridWrap(fyne.NewSize(36, 36), leds...),
		stateLabel,
		stickLabel,
		buttons,
		widget.NewLabel("arrows move, space centres, b toggles the button"),
	))
	window.Resize(fyne.NewSize(340, 200))

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = jn.Run(ctx) }()
	go func() { _ = ln.Run(ctx) }()
	window.SetOnClosed(cancel)

	window.ShowAndRun()
	cancel()
}
