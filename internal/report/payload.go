package report

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrFieldShape is returned when a payload field is present but holds a
// value of the wrong type (e.g. a string where a number is expected).
// Use errors.Is() to check for it.
var ErrFieldShape = errors.New("report: field has unexpected shape")

// Payload is one decoded JSON document from a sensor message.
// It lives only for the duration of a single dispatch call.
type Payload map[string]any

// decodePayload parses raw message bytes as a JSON object.
func decodePayload(raw []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return p, nil
}

// Float returns the numeric value stored under key.
//
// The three-way result distinguishes the conditions the formatters care
// about: an absent field renders as the not-available marker, while a
// present field of the wrong shape aborts the whole report.
//
// Returns:
//   - float64: The value (JSON numbers always decode as float64)
//   - bool: Whether the key was present
//   - error: ErrFieldShape if present but not a number
func (p Payload) Float(key string) (float64, bool, error) {
	v, ok := p[key]
	if !ok {
		return 0, false, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, false, fmt.Errorf("%w: %q is %T, want number", ErrFieldShape, key, v)
	}
	return f, true, nil
}

// String returns the string value stored under key.
// Result semantics match Float.
func (p Payload) String(key string) (string, bool, error) {
	v, ok := p[key]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: %q is %T, want string", ErrFieldShape, key, v)
	}
	return s, true, nil
}

// Bool returns the boolean value stored under key.
// Result semantics match Float.
func (p Payload) Bool(key string) (bool, bool, error) {
	v, ok := p[key]
	if !ok {
		return false, false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, false, fmt.Errorf("%w: %q is %T, want bool", ErrFieldShape, key, v)
	}
	return b, true, nil
}
