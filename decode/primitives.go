package decode

import (
	"context"
	"math"
	"strconv"
	"strings"

	bicodec "github.com/reoring/bicodec"
	"github.com/reoring/bicodec/i18n"
)

// String accepts a JSON string.
func String() Decoder[string] {
	return New(func(ctx context.Context, v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", failExpected("string", v)
		}
		return s, nil
	})
}

// Number accepts a JSON number. The wire formats materialize numbers as
// float64 (JSON), signed/unsigned integers (YAML, CBOR) or json.Number;
// all coerce to float64.
func Number() Decoder[float64] {
	return New(func(ctx context.Context, v any) (float64, error) {
		f, ok := bicodec.AsNumber(v)
		if !ok {
			return 0, failExpected("number", v)
		}
		return f, nil
	})
}

// Bool accepts a JSON boolean.
func Bool() Decoder[bool] {
	return New(func(ctx context.Context, v any) (bool, error) {
		b, ok := v.(bool)
		if !ok {
			return false, failExpected("boolean", v)
		}
		return b, nil
	})
}

// Any never fails and yields the raw value unchanged.
func Any() Decoder[any] {
	return New(func(ctx context.Context, v any) (any, error) { return v, nil })
}

// Null accepts only JSON null.
func Null() Decoder[any] {
	return New(func(ctx context.Context, v any) (any, error) {
		if v != nil {
			return nil, failExpected("null", v)
		}
		return nil, nil
	})
}

// Undefined accepts an absent value. A materialized tree has no
// undefined distinct from null, so both surface as nil here; field
// absence proper is handled by the Optional wrappers inside Object.
func Undefined() Decoder[any] { return Null() }

// StringLiteral accepts exactly the given string.
func StringLiteral(want string) Decoder[string] {
	return Chain(String(), func(got string) Decoder[string] {
		if got != want {
			return New(func(context.Context, any) (string, error) {
				return "", bicodec.NewFailure(bicodec.CodeInvalidLiteral,
					i18n.T(bicodec.CodeInvalidLiteral, map[string]string{"want": want, "got": got}))
			})
		}
		return Succeed(got)
	})
}

// StringEnum accepts any of the given strings, rejecting everything
// else by name.
func StringEnum(values ...string) Decoder[string] {
	return Chain(String(), func(got string) Decoder[string] {
		for _, v := range values {
			if got == v {
				return Succeed(got)
			}
		}
		return New(func(context.Context, any) (string, error) {
			return "", bicodec.NewFailure(bicodec.CodeInvalidEnum,
				i18n.T(bicodec.CodeInvalidEnum, map[string]string{"got": got}))
		})
	})
}

// StringNumber accepts a string holding a number ("42", "-1.5") and
// yields its numeric value. NaN is rejected.
func StringNumber() Decoder[float64] {
	return Chain(String(), func(s string) Decoder[float64] {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) {
			return New(func(context.Context, any) (float64, error) {
				return 0, bicodec.NewFailure(bicodec.CodeInvalidFormat,
					i18n.T(bicodec.CodeInvalidFormat, map[string]string{"reason": "expected numeric string but found \"" + s + "\""}))
			})
		}
		return Succeed(f)
	})
}
