package toolkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/hashpilot/hashpilot/internal/hederr"
)

// Validate checks a raw argument payload against an operation schema.
// Every violation is collected into one hederr.ErrValidation message so the
// caller can correct all fields at once.
func Validate(schema *jsonschema.Schema, raw json.RawMessage) error {
	if len(raw) == 0 {
		raw = json.RawMessage(`{}`)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: arguments are not valid JSON: %v", hederr.ErrValidation, err)
	}
	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("%w: %s", hederr.ErrValidation, strings.Join(leafMessages(ve), "; "))
		}
		return fmt.Errorf("%w: %v", hederr.ErrValidation, err)
	}
	return nil
}

// leafMessages flattens a validation error tree into its leaf causes,
// each prefixed with the offending instance location.
func leafMessages(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		if ve.InstanceLocation == "" {
			return []string{ve.Message}
		}
		return []string{fmt.Sprintf("%s: %s", ve.InstanceLocation, ve.Message)}
	}
	var out []string
	for _, cause := range ve.Causes {
		out = append(out, leafMessages(cause)...)
	}
	return out
}

// Unmarshal decodes a validated payload into an operation struct. A
// decode failure after schema validation still surfaces as hederr.ErrValidation
// (union branches the schema cannot pin down).
func Unmarshal(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		raw = json.RawMessage(`{}`)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", hederr.ErrValidation, err)
	}
	return nil
}
