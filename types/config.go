package types

import "joybar-go/errcode"

// Node configuration supplied on topic "config/node".

type Role string

const (
	RoleJoystick Role = "joystick"
	RoleLedbar   Role = "ledbar"
)

// InputSource selects what drives the ledbar's Direction FSM.
type InputSource string

const (
	InputLink  InputSource = "link"  // frames received over the UART
	InputLocal InputSource = "local" // the node's own analog stick
)

const (
	DefaultBaud      uint32 = 9600
	DefaultTickMs    uint32 = 100
	DefaultBarPeriod uint32 = 500
	maxADCChannel    uint8  = 3
)

type NodeConfig struct {
	Role      Role      `json:"role"`
	TickMs    uint32    `json:"tick_ms"`
	Stick     StickConf `json:"stick"`
	Bar       BarConf   `json:"bar"`
	Link      LinkConf  `json:"link"`
	Indicator bool      `json:"indicator,omitempty"`
	Heartbeat uint32    `json:"heartbeat_ms,omitempty"`
}

type StickConf struct {
	XChannel uint8 `json:"x_channel"`
	YChannel uint8 `json:"y_channel"`
	// EmitMs is the logical period of the Stick/Link task; 0 means every tick.
	EmitMs uint32 `json:"emit_ms,omitempty"`
}

type BarConf struct {
	Input    InputSource `json:"input"`
	PeriodMs uint32      `json:"period_ms"`
	PhaseMs  uint32      `json:"phase_ms,omitempty"` // initial Elapsed of the game task
}

type LinkConf struct {
	Baud uint32 `json:"baud,omitempty"`
}

// WithDefaults fills zero-valued optional fields.
func (c NodeConfig) WithDefaults() NodeConfig {
	if c.Link.Baud == 0 {
		c.Link.Baud = DefaultBaud
	}
	if c.Stick.EmitMs == 0 {
		c.Stick.EmitMs = c.TickMs
	}
	if c.Role == RoleLedbar && c.Bar.Input == "" {
		c.Bar.Input = InputLink
	}
	return c
}

// Validate rejects configurations the runtime cannot honour. Period
// checks happen here, not in the tick source.
func (c NodeConfig) Validate() error {
	switch c.Role {
	case RoleJoystick, RoleLedbar:
	default:
		return errcode.Wrap(errcode.UnknownRole, "config.validate", string(c.Role), nil)
	}
	if c.TickMs == 0 {
		return errcode.Wrap(errcode.InvalidPeriod, "config.validate", "tick_ms", nil)
	}
	if c.Stick.XChannel > maxADCChannel || c.Stick.YChannel > maxADCChannel ||
		c.Stick.XChannel == c.Stick.YChannel {
		return errcode.Wrap(errcode.InvalidParams, "config.validate", "stick channels", nil)
	}
	if c.Role == RoleLedbar {
		switch c.Bar.Input {
		case InputLink, InputLocal:
		default:
			return errcode.Wrap(errcode.UnknownInput, "config.validate", string(c.Bar.Input), nil)
		}
		if c.Bar.PeriodMs == 0 {
			return errcode.Wrap(errcode.InvalidPeriod, "config.validate", "bar.period_ms", nil)
		}
		if c.Bar.PhaseMs >= c.Bar.PeriodMs {
			return errcode.Wrap(errcode.InvalidParams, "config.validate", "bar.phase_ms", nil)
		}
	}
	return nil
}
