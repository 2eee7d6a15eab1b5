//go:build rp2040 || rp2350

// Package rp2 binds the node contracts to a Raspberry Pi Pico.
//
// Pin map (GP numbers):
//
//	shift register  SER=2 RCLK=3 SRCLK=4 SRCLR=5
//	indicator       up=6 down=7 right=8 left=9
//	button          15 (pulled down, active high)
//	link UART0      TX=0 RX=1
//	stick           ADC0..ADC3 on GP26..GP29
package rp2

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"joybar-go/core/hal"
	"joybar-go/drivers/shiftreg"
	"joybar-go/services/link"
	"joybar-go/types"
)

var adcPins = [4]machine.Pin{machine.ADC0, machine.ADC1, machine.ADC2, machine.ADC3}

// ADC reads the RP2 SAR ADC and scales its 16-bit result to 10 bits.
type ADC struct {
	ch [4]machine.ADC
}

func NewADC() *ADC {
	machine.InitADC()
	a := &ADC{}
	for i, p := range adcPins {
		a.ch[i] = machine.ADC{Pin: p}
		a.ch[i].Configure(machine.ADCConfig{})
	}
	return a
}

func (a *ADC) Read(channel uint8) uint16 {
	if int(channel) >= len(a.ch) {
		return 0
	}
	return a.ch[channel].Get() >> 6
}

func output(p machine.Pin) machine.Pin {
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Low()
	return p
}

// NewBoard configures the peripherals the role in cfg needs.
func NewBoard(cfg types.NodeConfig) (hal.Board, error) {
	b := hal.Board{Timer: &SysTick{}}

	port, _ := shiftreg.NewPinPort(output(machine.GP2), output(machine.GP3), output(machine.GP4), output(machine.GP5))
	b.Bar = port

	if cfg.Indicator {
		ind := &shiftreg.PinPort{}
		for i, p := range []machine.Pin{machine.GP6, machine.GP7, machine.GP8, machine.GP9} {
			ind.Pins[i] = output(p)
		}
		b.Indicator = ind
	}

	btn := machine.GP15
	btn.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	b.Button = btn

	if cfg.Role == types.RoleJoystick || cfg.Bar.Input == types.InputLocal {
		b.ADC = NewADC()
	}

	if cfg.Role == types.RoleJoystick || cfg.Bar.Input == types.InputLink {
		u := uartx.UART0
		if err := u.Configure(uartx.UARTConfig{
			BaudRate: cfg.Link.Baud,
			TX:       machine.UART0_TX_PIN,
			RX:       machine.UART0_RX_PIN,
		}); err != nil {
			return hal.Board{}, err
		}
		b.UART = link.NewStreamUART(newUARTStream(u))
	}
	println("[rp2] board ready role=", string(cfg.Role))
	return b, nil
}
