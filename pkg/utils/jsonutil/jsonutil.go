// pkg/utils/jsonutil/jsonutil.go
package jsonutil

import (
	"bytes"
	"encoding/json"
)

// Settings values historically arrive either as JSON objects or as
// JSON wrapped inside a JSON string. Every reader goes through these
// helpers so the ambiguity is handled in exactly one place.

// Unwrap peels a string-encoded JSON layer off raw, if present. Nil and
// unparseable input come back unchanged.
func Unwrap(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return raw
	}

	var inner string
	if err := json.Unmarshal(trimmed, &inner); err != nil {
		return raw
	}

	candidate := bytes.TrimSpace([]byte(inner))
	if json.Valid(candidate) && len(candidate) > 0 && (candidate[0] == '{' || candidate[0] == '[') {
		return candidate
	}
	return raw
}

// Decode unmarshals raw into out, unwrapping string-encoded JSON first.
// Parse failures leave out untouched so callers keep their defaults.
func Decode(raw json.RawMessage, out any) bool {
	unwrapped := Unwrap(raw)
	if len(bytes.TrimSpace(unwrapped)) == 0 {
		return false
	}
	return json.Unmarshal(unwrapped, out) == nil
}

// DecodeObject returns the value as a generic object map, or nil when it
// is not an object.
func DecodeObject(raw json.RawMessage) map[string]any {
	var obj map[string]any
	if !Decode(raw, &obj) {
		return nil
	}
	return obj
}

// IsEmptyValue reports whether a decoded JSON value counts as "empty"
// for merge purposes: nil, empty string or empty array. Empty fields
// must never erase existing data.
func IsEmptyValue(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case []any:
		return len(value) == 0
	}
	return false
}

// MergeNonEmpty overlays the non-empty fields of incoming onto existing
// and returns the merged object. Neither argument is modified.
func MergeNonEmpty(existing, incoming map[string]any) map[string]any {
	merged := make(map[string]any, len(existing)+len(incoming))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range incoming {
		if IsEmptyValue(v) {
			continue
		}
		merged[k] = v
	}
	return merged
}
