package tixbit

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Scalar coercions shared by the mappers. All of them are total: any input
// shape yields a value or an absent marker, never a panic.

// asString extracts a trimmed string from an arbitrary value. Numbers are
// rendered in their JSON textual form; everything else is absent.
func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case json.Number:
		return t.String(), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return "", false
		}
		b, _ := json.Marshal(t)
		return string(b), true
	default:
		return "", false
	}
}

// asNumber extracts a finite float from an arbitrary value. Non-numeric and
// non-finite inputs are absent, never NaN.
func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// asBool extracts a boolean, absent on anything that is not one.
func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// strField probes m for the first candidate key holding a usable string.
func strField(m map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := asString(v); ok {
				return s, true
			}
		}
	}
	return "", false
}

// numField probes m for the first candidate key holding a finite number.
func numField(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if f, ok := asNumber(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}

// optStr is strField returning nil instead of an empty default.
func optStr(m map[string]any, keys ...string) *string {
	if s, ok := strField(m, keys...); ok && s != "" {
		return &s
	}
	return nil
}

// intSlice coerces an array-shaped value to a slice of ints, skipping
// non-numeric elements. Anything that is not an array yields an empty slice.
func intSlice(v any) []int {
	arr, ok := v.([]any)
	if !ok {
		return []int{}
	}
	out := make([]int, 0, len(arr))
	for _, e := range arr {
		if f, ok := asNumber(e); ok {
			out = append(out, int(f))
		}
	}
	return out
}
