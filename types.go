package bicodec

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Pair is a fixed two-element tuple, written on the wire as a
// two-element array.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a fixed three-element tuple, written on the wire as a
// three-element array.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// KindOf names the JSON kind of a raw value for failure messages:
// "null", "string", "number", "boolean", "array" or "object". Values
// outside the JSON data model report their Go type.
func KindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// AsNumber coerces the numeric representations produced by the
// supported wire formats (float64 from JSON, signed/unsigned ints from
// YAML and CBOR, json.Number from number-preserving decoders) to
// float64. It reports false for non-numeric values.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
