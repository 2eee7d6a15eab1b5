package joystick

import (
	"tinygo.org/x/drivers"

	"joybar-go/core/hal"
	"joybar-go/types"
	"joybar-go/x/mathx"
)

// Stick samples the two axes from an ADC. It follows the TinyGo sensor
// model: Update refreshes the cached reading, accessors return it.
type Stick struct {
	adc    hal.ADC
	xCh    uint8
	yCh    uint8
	button hal.InputPin // optional, active high

	last    Sample
	pressed bool
}

var _ drivers.Sensor = (*Stick)(nil)

// NewStick reads y from yCh and x from xCh. button may be nil.
func NewStick(adc hal.ADC, xCh, yCh uint8, button hal.InputPin) *Stick {
	return &Stick{adc: adc, xCh: xCh, yCh: yCh, button: button}
}

// Update reads y then x (Voltage) and the button. Other measurements are
// ignored.
func (s *Stick) Update(which drivers.Measurement) error {
	if which&drivers.Voltage == 0 {
		return nil
	}
	y := s.adc.Read(s.yCh)
	x := s.adc.Read(s.xCh)
	s.last = Sample{X: mathx.Min[uint16](x, Max), Y: mathx.Min[uint16](y, Max)}
	if s.button != nil {
		s.pressed = s.button.Get()
	}
	return nil
}

// Sample is the reading from the last Update.
func (s *Stick) Sample() Sample { return s.last }

// Axes is the last reading as (x, y).
func (s *Stick) Axes() (x, y uint16) { return s.last.X, s.last.Y }

// Button is the button level from the last Update.
func (s *Stick) Button() bool { return s.pressed }

// Direction decodes the last reading.
func (s *Stick) Direction() types.Direction { return Decode(s.last) }

// Read updates and decodes in one call.
func (s *Stick) Read() (types.Direction, bool) {
	_ = s.Update(drivers.Voltage)
	return s.Direction(), s.pressed
}
