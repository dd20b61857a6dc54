package agent

import (
	"encoding/json"
	"regexp"
	"strings"
)

var redactKeys = map[string]struct{}{
	"password":      {},
	"api_key":       {},
	"apikey":        {},
	"access_token":  {},
	"refresh_token": {},
	"private_key":   {},
	"operator_key":  {},
	"secret":        {},
}

// derKeyPattern matches DER-encoded private keys wherever they appear
// as values, regardless of the field name. 302e0201...2b6570 is the
// ASN.1 header for ed25519 keys, 3030...2b8104000a for ECDSA secp256k1;
// both wrap a 32-byte seed.
var derKeyPattern = regexp.MustCompile(`(?i)^(0x)?(302e020100300506032b6570|3030020100300706052b8104000a)[0-9a-f]{66,}$`)

func RedactJSONArgs(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}

	redacted := redactValue(v)
	b, err := json.Marshal(redacted)
	if err != nil {
		return raw
	}
	return string(b)
}

func redactValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			if _, ok := redactKeys[strings.ToLower(k)]; ok {
				out[k] = "***REDACTED***"
				continue
			}
			out[k] = redactValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = redactValue(t[i])
		}
		return out
	case string:
		if derKeyPattern.MatchString(t) {
			return "***REDACTED***"
		}
		return t
	default:
		return v
	}
}
