// Package util holds small helpers shared by services.
package util

import (
	"encoding/json"
)

// DecodeJSON accepts raw JSON ([]byte, string) or an already-decoded value
// (e.g. map[string]any from a bus payload) and decodes it into dst.
func DecodeJSON[T any](src any, dst *T) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	case json.RawMessage:
		return json.Unmarshal(v, dst)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, dst)
	}
}
