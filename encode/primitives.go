package encode

import "math"

// String passes a string through.
func String() Encoder[string] {
	return New(func(v string) any { return v })
}

// Bool passes a boolean through.
func Bool() Encoder[bool] {
	return New(func(v bool) any { return v })
}

// Number encodes a finite float64. NaN and the infinities have no JSON
// representation; Number is the one primitive with a built-in guard and
// panics on them, since an encoder has no failure channel.
func Number() Encoder[float64] {
	return New(func(v float64) any {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			invariant("cannot encode non-finite number %v", v)
		}
		return v
	})
}

// JSON passes an already JSON-shaped value through structurally.
func JSON() Encoder[any] {
	return New(func(v any) any { return v })
}

// StringEnum validates membership in the allowed literals and panics on
// anything else.
func StringEnum(values ...string) Encoder[string] {
	allowed := append([]string(nil), values...)
	return New(func(v string) any {
		for _, a := range allowed {
			if v == a {
				return v
			}
		}
		invariant("%q is not a valid value for enum", v)
		return nil
	})
}
