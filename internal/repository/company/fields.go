package company

import (
	"encoding/json"
	"strconv"
)

// Field helpers over the raw registry maps. The index is loose about
// numeric types, so readers accept json.Number, float64, and int alike.

// nestedMap walks a chain of object keys, reporting false on the first
// missing or non-object link.
func nestedMap(m map[string]any, keys ...string) (map[string]any, bool) {
	cur := m
	for _, k := range keys {
		next, ok := cur[k].(map[string]any)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// stringField reads a string value. A present empty string still counts
// as present.
func stringField(m map[string]any, key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok
}

// intField reads an integral value.
func intField(m map[string]any, key string) (int, bool) {
	switch v := m[key].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

// boolField reads a boolean value.
func boolField(m map[string]any, key string) (bool, bool) {
	v, ok := m[key].(bool)
	return v, ok
}

// scalarString renders a string or numeric value as text. Empty strings
// count as absent so composed values never pick up blank parts.
func scalarString(m map[string]any, key string) (string, bool) {
	switch v := m[key].(type) {
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	}
	return "", false
}
