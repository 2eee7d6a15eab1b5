package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID (same value placed in ctx under CtxDeviceKey)
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

// Sender: 100 ms tick, emit every tick, stick on ADC2 (y) / ADC3 (x).
const cfgJoystick = `{
  "node": {
    "role": "joystick",
    "tick_ms": 100,
    "stick": {"x_channel": 3, "y_channel": 2},
    "link": {"baud": 9600},
    "indicator": true
  },
  "heartbeat": {
    "interval_ms": 5000
  }
}`

// Display: 100 ms tick, game every 500 ms starting 300 ms in.
const cfgLedbar = `{
  "node": {
    "role": "ledbar",
    "tick_ms": 100,
    "stick": {"x_channel": 3, "y_channel": 2},
    "bar": {"input": "link", "period_ms": 500, "phase_ms": 300},
    "link": {"baud": 9600}
  },
  "heartbeat": {
    "interval_ms": 5000
  }
}`

// Display driven by its own stick, no link.
const cfgLedbarLocal = `{
  "node": {
    "role": "ledbar",
    "tick_ms": 100,
    "stick": {"x_channel": 3, "y_channel": 2},
    "bar": {"input": "local", "period_ms": 500, "phase_ms": 300},
    "indicator": true
  },
  "heartbeat": {
    "interval_ms": 5000
  }
}`

var embeddedConfigs = map[string][]byte{
	"joystick":     []byte(cfgJoystick),
	"ledbar":       []byte(cfgLedbar),
	"ledbar-local": []byte(cfgLedbarLocal),
}
