//go:build rp2040 || rp2350

package rp2

import (
	"device/arm"
	"machine"
	"time"

	"joybar-go/errcode"
)

// The SysTick exception is free on RP2: the TinyGo runtime keeps time
// with the TIMER peripheral.
var sysTickISR func()

//export SysTick_Handler
func sysTickHandler() {
	if f := sysTickISR; f != nil {
		f()
	}
}

// SysTick drives the tick source from the Cortex-M system timer.
type SysTick struct {
	running bool
}

func (s *SysTick) Start(interval time.Duration, isr func()) error {
	if s.running {
		return errcode.Busy
	}
	cycles := uint64(machine.CPUFrequency()) * uint64(interval) / uint64(time.Second)
	if cycles == 0 || cycles > 0x00FFFFFF {
		return errcode.Wrap(errcode.InvalidParams, "systick.start", "interval out of range", nil)
	}
	sysTickISR = isr
	if err := arm.SetupSystemTimer(uint32(cycles)); err != nil {
		sysTickISR = nil
		return err
	}
	s.running = true
	return nil
}

// Stop disables the counter and its exception.
func (s *SysTick) Stop() {
	if !s.running {
		return
	}
	_ = arm.SetupSystemTimer(0)
	sysTickISR = nil
	s.running = false
}
