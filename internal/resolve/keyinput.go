package resolve

import (
	"encoding/json"
	"fmt"
)

// KeyInput is a JSON key parameter that may be a public key string, a
// boolean, or absent. The zero value is "not set".
type KeyInput struct {
	set bool
	str string
	b   *bool
}

// KeyString builds a set KeyInput holding a key string. Used by tests and
// programmatic callers.
func KeyString(s string) KeyInput { return KeyInput{set: true, str: s} }

// KeyBool builds a set KeyInput holding a boolean.
func KeyBool(v bool) KeyInput { return KeyInput{set: true, b: &v} }

func (k *KeyInput) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*k = KeyInput{set: true, str: s}
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*k = KeyInput{set: true, b: &b}
		return nil
	}
	return fmt.Errorf("key must be a string or a boolean, got %s", data)
}

func (k KeyInput) MarshalJSON() ([]byte, error) {
	switch {
	case !k.set:
		return []byte("null"), nil
	case k.b != nil:
		return json.Marshal(*k.b)
	default:
		return json.Marshal(k.str)
	}
}

// IsSet reports whether the parameter was present in the payload.
func (k KeyInput) IsSet() bool { return k.set }

// IsTrue reports a boolean true value.
func (k KeyInput) IsTrue() bool { return k.b != nil && *k.b }

// IsFalse reports a boolean false value.
func (k KeyInput) IsFalse() bool { return k.b != nil && !*k.b }

// String returns the key string; empty for boolean or unset inputs.
func (k KeyInput) String() string {
	if k.b != nil {
		return ""
	}
	return k.str
}
