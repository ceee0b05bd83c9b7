// Package cast coerces dynamic request parameter values into the typed
// forms the provider SDK expects. Parameter maps mix values written in Go
// (int, int64) with values round-tripped through JSON (float64), so every
// numeric conversion accepts both families.
package cast

import "math"

// ToString reports v as a string when it is one.
func ToString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// ToInt64 converts integer and float values to int64. Unsigned values above
// math.MaxInt64 clamp; non-finite floats are rejected.
func ToInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case uint:
		if uint64(x) > math.MaxInt64 {
			return math.MaxInt64, true
		}
		return int64(x), true
	case uint64:
		if x > math.MaxInt64 {
			return math.MaxInt64, true
		}
		return int64(x), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return int64(x), true
	case float32:
		return ToInt64(float64(x))
	default:
		return 0, false
	}
}

// ToFloat64 converts integer and float values to float64.
func ToFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
