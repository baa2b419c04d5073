// Package numbers classifies and renders the values read from MBean
// attributes. Only values of Go's primitive numeric types count as numeric;
// strings never do, even when they would parse as numbers.
package numbers

import (
	"fmt"
	"strconv"
)

// IsNumeric reports whether v is a value of a primitive numeric type.
// Booleans, strings, nil and composite values are not numeric.
func IsNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// FromBool renders a boolean as a number: 1 for true, 0 for false.
func FromBool(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Format renders a numeric value as a decimal string. Floats are formatted
// without an exponent so consumers can parse the value back.
func Format(v any) string {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
