package config

import (
	"context"
	"encoding/json"

	"joybar-go/bus"
	"joybar-go/errcode"
)

// -----------------------------------------------------------------------------
// String constants (live in flash, not RAM)
// -----------------------------------------------------------------------------

const (
	serviceName  = "config"
	configPrefix = "config"
	CtxDeviceKey = "device" // context key used for device ID
)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// Topic returns config/<key>.
func Topic(key string) bus.Topic { return bus.T(configPrefix, key) }

// -----------------------------------------------------------------------------
// Config Service
// -----------------------------------------------------------------------------

type ConfigService struct {
	Name string
}

func NewConfigService() *ConfigService {
	return &ConfigService{Name: serviceName}
}

// Publish parses the embedded document for device and publishes every
// top-level key as a retained config/<key> message.
func (s *ConfigService) Publish(device string, conn *bus.Connection) error {
	if device == "" {
		return errcode.Wrap(errcode.InvalidParams, "config.publish", "missing device ID", nil)
	}
	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return errcode.Wrap(errcode.InvalidParams, "config.publish", "no embedded config for device: "+device, nil)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return errcode.Wrap(errcode.InvalidPayload, "config.publish", "embedded config is not a JSON object", err)
	}

	for k, v := range m {
		conn.Publish(conn.NewMessage(Topic(k), v, true))
	}
	println("[config] published", len(m), "keys for", device)
	return nil
}

// Start publishes the config for the device ID carried in ctx.
func (s *ConfigService) Start(ctx context.Context, conn *bus.Connection) error {
	device, _ := ctx.Value(CtxDeviceKey).(string)
	if err := s.Publish(device, conn); err != nil {
		println("[config] error:", err.Error())
		return err
	}
	return nil
}
