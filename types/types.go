package types

// ---- Retained node state ----

type NodeState struct {
	Level  string `json:"level"`  // "idle", "running", "stopped"
	Status string `json:"status"` // short code
	TS     int64  `json:"ts_ms"`
}

// ---- Telemetry payloads ----

// StickValue is published by the joystick node on every emitted frame.
type StickValue struct {
	X      uint16    `json:"x"`
	Y      uint16    `json:"y"`
	Dir    Direction `json:"dir"`
	Button bool      `json:"button"`
	Frame  uint8     `json:"frame"`
}

// BarValue is published by the ledbar node after every game step.
type BarValue struct {
	State   string `json:"state"`
	Pattern uint8  `json:"pattern"`
}

// LinkStats counts link activity. Dropped frames never retry.
type LinkStats struct {
	Sent     uint32 `json:"sent"`
	Dropped  uint32 `json:"dropped"`
	Received uint32 `json:"received"`
	Invalid  uint32 `json:"invalid"`
	Flushed  uint32 `json:"flushed"`
}

// TickStats exposes the tick source diagnostics.
type TickStats struct {
	PeriodMs uint32 `json:"period_ms"`
	Missed   uint32 `json:"missed"`
}

type HeartbeatValue struct {
	Seq      uint32    `json:"seq"`
	UptimeMs int64     `json:"uptime_ms"`
	Tick     TickStats `json:"tick"`
}
